package game

import (
	"errors"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrCellOccupied    = errors.New("cell already occupied")
	ErrGameFinished    = errors.New("game already finished")
)

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Outcome is derived from board contents on every call.
type Outcome int

const (
	NoWinner Outcome = iota
	XWins
	OWins
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	default:
		return "no_winner"
	}
}

// Winner returns the mark that owns the winning line, or None.
func (o Outcome) Winner() PlayerMark {
	switch o {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return None
	}
}

// WinFor returns the outcome in which mark wins.
func WinFor(mark PlayerMark) Outcome {
	switch mark {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	default:
		return NoWinner
	}
}

// Board is addressed by (row, col); row 0 is the top row.
type Board [3][3]PlayerMark

// lines lists the 8 winning triples in evaluation order:
// rows top-to-bottom, columns left-to-right, main diagonal, anti-diagonal.
var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate reports which mark, if any, fully occupies a line.
// The first matching line wins, so the result is deterministic even for boards
// that cannot be reached through alternating play.
func Evaluate(b Board) Outcome {
	for _, line := range lines {
		a := b[line[0][0]][line[0][1]]
		if a == None {
			continue
		}
		if a == b[line[1][0]][line[1][1]] && a == b[line[2][0]][line[2][1]] {
			return WinFor(a)
		}
	}
	return NoWinner
}

// At returns the mark at p, or None for an invalid position.
func (b Board) At(p Position) PlayerMark {
	row, col, ok := p.Coords()
	if !ok {
		return None
	}
	return b[row][col]
}

// Set places mark at p without any validation.
func (b *Board) Set(p Position, mark PlayerMark) {
	if row, col, ok := p.Coords(); ok {
		b[row][col] = mark
	}
}

// IsEmpty reports whether p is a valid, unoccupied cell.
func (b Board) IsEmpty(p Position) bool {
	return p.Valid() && b.At(p) == None
}

// EmptyPositions returns the unoccupied cells in increasing positional order.
func (b Board) EmptyPositions() []Position {
	var empty []Position
	for _, p := range AllPositions() {
		if b.At(p) == None {
			empty = append(empty, p)
		}
	}
	return empty
}

// IsFull checks if no empty cell is left.
func (b Board) IsFull() bool {
	for r := range [3]int{} {
		for c := range [3]int{} {
			if b[r][c] == None {
				return false
			}
		}
	}
	return true
}

// Rows converts the board to a dynamic slice of slices, the shape used on the wire.
func (b Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, 3)
	for i := range [3]int{} {
		rows[i] = make([]PlayerMark, 3)
		copy(rows[i], b[i][:])
	}
	return rows
}

// BoardFromRows is the inverse of Rows. Missing cells stay empty.
func BoardFromRows(rows [][]PlayerMark) Board {
	var b Board
	for r := 0; r < len(rows) && r < 3; r++ {
		for c := 0; c < len(rows[r]) && c < 3; c++ {
			b[r][c] = rows[r][c]
		}
	}
	return b
}

// Game is one match: a board, whose turn it is, and the moves made so far.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Outcome     Outcome
	Moves       int
}

// NewGame starts an empty board with X to move.
func NewGame() *Game {
	return &Game{
		CurrentTurn: PlayerX,
		Outcome:     NoWinner,
	}
}

// Move places the current player's mark at p and passes the turn.
func (g *Game) Move(p Position) error {
	if g.Finished() {
		return ErrGameFinished
	}
	if !p.Valid() {
		return ErrInvalidPosition
	}
	if !g.Board.IsEmpty(p) {
		return ErrCellOccupied
	}

	g.Board.Set(p, g.CurrentTurn)
	g.Moves++
	g.Outcome = Evaluate(g.Board)
	if !g.Finished() {
		g.CurrentTurn = g.CurrentTurn.Opponent()
	}
	return nil
}

// Finished reports whether someone won or the board is full.
func (g *Game) Finished() bool {
	return g.Outcome != NoWinner || g.Board.IsFull()
}

// IsDraw checks if the game ended without a winner.
func (g *Game) IsDraw() bool {
	return g.Outcome == NoWinner && g.Board.IsFull()
}
