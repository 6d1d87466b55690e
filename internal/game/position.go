package game

// Position is the 1-9 keypad-style index of a cell. The bottom row is 1-3,
// the top row 7-9.
type Position int

// NoPosition means no cell could be selected.
const NoPosition Position = 0

// positionTable maps Position-1 to its (row, col) coordinates.
// Every piece of code that converts between the two addressing schemes goes through it.
var positionTable = [9][2]int{
	{2, 0}, {2, 1}, {2, 2},
	{1, 0}, {1, 1}, {1, 2},
	{0, 0}, {0, 1}, {0, 2},
}

const (
	Center Position = 5
)

// Corners in the order the heuristic opponent tries them.
var Corners = [4]Position{1, 3, 7, 9}

// Valid reports whether p addresses a cell.
func (p Position) Valid() bool {
	return p >= 1 && p <= 9
}

// Coords returns the board coordinates for p.
func (p Position) Coords() (row, col int, ok bool) {
	if !p.Valid() {
		return -1, -1, false
	}
	rc := positionTable[p-1]
	return rc[0], rc[1], true
}

// PositionAt is the inverse of Coords.
func PositionAt(row, col int) Position {
	for i, rc := range positionTable {
		if rc[0] == row && rc[1] == col {
			return Position(i + 1)
		}
	}
	return NoPosition
}

// AllPositions returns 1..9 in scan order.
func AllPositions() []Position {
	positions := make([]Position, 0, len(positionTable))
	for i := range positionTable {
		positions = append(positions, Position(i+1))
	}
	return positions
}
