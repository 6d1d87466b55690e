package terminal

import (
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/match"
	"ctchen222/tictactoe-cli/internal/player"
	"fmt"
	"io"
	"strings"
	"time"
)

// Screen renders the game. It implements match.Presenter.
type Screen struct {
	w    io.Writer
	sink Sink
}

func NewScreen(w io.Writer, sink Sink) *Screen {
	return &Screen{w: w, sink: sink}
}

func (s *Screen) printf(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
}

// Splash clears the screen and shows the welcome banner for d.
func (s *Screen) Splash(d time.Duration) {
	s.sink.Clear()
	s.printf("\n\n")
	s.printf("      #####################################################\n")
	s.printf("      #                                                   #\n")
	s.printf("      #              WELCOME TO TIC-TAC-TOE               #\n")
	s.printf("      #                                                   #\n")
	s.printf("      #####################################################\n\n")
	s.sink.Pause(d)
}

func (s *Screen) Header() {
	s.printf("=====================================================\n")
	s.printf("                TIC-TAC-TOE - BATTLE                 \n")
	s.printf("=====================================================\n\n")
}

// Menu prints the main menu options.
func (s *Screen) Menu() {
	s.Header()
	s.printf("1 - Multiplayer\n")
	s.printf("2 - Solo (vs. Computer)\n")
	s.printf("3 - About\n")
	s.printf("4 - Quit\n")
}

func (s *Screen) About() {
	s.sink.Clear()
	s.Header()
	s.printf("Tic-Tac-Toe for the terminal, written in Go.\n")
	s.printf("Multiplayer and Solo (vs. Computer) modes.\n")
}

func (s *Screen) Message(format string, args ...any) {
	s.printf("\n"+format+"\n", args...)
}

// Mark paints a cell: X red, O green, empty yellow.
func (s *Screen) Mark(mark game.PlayerMark) string {
	switch mark {
	case game.PlayerX:
		return s.sink.Colorize(string(mark), Red)
	case game.PlayerO:
		return s.sink.Colorize(string(mark), Green)
	default:
		return s.sink.Colorize("-", Yellow)
	}
}

func (s *Screen) Board(b game.Board) {
	s.printf("\n")
	for r := range [3]int{} {
		cells := make([]string, 3)
		for c := range [3]int{} {
			cells[c] = s.Mark(b[r][c])
		}
		s.printf("      %s\n", strings.Join(cells, " | "))
		if r < 2 {
			s.printf("     ---+---+---\n")
		}
	}
}

// PositionMap shows which number addresses which cell.
func (s *Screen) PositionMap() {
	s.printf("\n      POSITION MAP:\n")
	for r := range [3]int{} {
		nums := make([]string, 3)
		for c := range [3]int{} {
			nums[c] = fmt.Sprint(int(game.PositionAt(r, c)))
		}
		s.printf("      %s \n", strings.Join(nums, " | "))
		if r < 2 {
			s.printf("     ---+---+---\n")
		}
	}
}

// Scoreboard prints "Ana (X): 1  vs  Bia (O): 0".
func (s *Screen) Scoreboard(prefix string, st match.State) {
	s.printf("%s%s  vs  %s", prefix,
		s.sink.Colorize(fmt.Sprintf("%s: %d", st.PlayerX.Label(), st.Score.X), Blue),
		s.sink.Colorize(fmt.Sprintf("%s: %d", st.PlayerO.Label(), st.Score.O), Magenta),
	)
	if st.Score.Draws > 0 {
		s.printf("  (draws: %d)", st.Score.Draws)
	}
	s.printf("\n")
}

func (s *Screen) ShowTurn(st match.State, board game.Board, moveNumber int) {
	s.sink.Clear()
	s.Header()
	s.Scoreboard("Score: ", st)
	s.printf("\nMove %d\n", moveNumber)
	s.Board(board)
	s.PositionMap()
}

func (s *Screen) ShowThinking(p player.Player) {
	s.printf("\n%s is thinking...\n", p.Name)
}

func (s *Screen) ShowComputerMove(p player.Player, pos game.Position) {
	s.printf("\n%s chose position %d.\n", p.Name, int(pos))
}

func (s *Screen) ShowResult(st match.State, board game.Board, outcome game.Outcome) {
	s.sink.Clear()
	s.Header()
	s.Board(board)
	if winner := outcome.Winner(); winner != game.None {
		p := st.PlayerFor(winner)
		s.printf("\n%s won the match!\n", p.Label())
		s.victoryBanner(p)
	} else {
		s.printf("\nDraw!\n")
	}
	s.printf("\n")
	s.Scoreboard("Current score: ", st)
}

func (s *Screen) victoryBanner(p player.Player) {
	s.printf("\n****************************************\n")
	s.printf("*                                      *\n")
	s.printf("*%s*\n", center("WINNER: "+p.Label(), 38))
	s.printf("*                                      *\n")
	s.printf("****************************************\n")
}

func (s *Screen) Pause(d time.Duration) {
	s.sink.Pause(d)
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
