package match

import (
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/player"
)

// Mode is how a match was started.
type Mode string

const (
	Multiplayer Mode = "multiplayer"
	Solo        Mode = "solo"
	Online      Mode = "online"
)

// Score counts finished rounds between the same two players.
type Score struct {
	X     int
	O     int
	Draws int
}

// Record returns the score after a round that ended with outcome.
func (s Score) Record(outcome game.Outcome) Score {
	switch outcome {
	case game.XWins:
		s.X++
	case game.OWins:
		s.O++
	default:
		s.Draws++
	}
	return s
}

// Of returns the wins credited to mark.
func (s Score) Of(mark game.PlayerMark) int {
	switch mark {
	case game.PlayerX:
		return s.X
	case game.PlayerO:
		return s.O
	default:
		return 0
	}
}

// State is everything that survives between rounds. It is passed by value;
// methods return an updated copy.
type State struct {
	Mode    Mode
	PlayerX player.Player
	PlayerO player.Player
	Score   Score
	Round   int
}

// NewState starts a match with no rounds played.
func NewState(mode Mode, x, o player.Player) State {
	x.Mark = game.PlayerX
	o.Mark = game.PlayerO
	return State{
		Mode:    mode,
		PlayerX: x,
		PlayerO: o,
	}
}

// PlayerFor returns whoever plays mark.
func (s State) PlayerFor(mark game.PlayerMark) player.Player {
	if mark == game.PlayerO {
		return s.PlayerO
	}
	return s.PlayerX
}

// Finish records a round result.
func (s State) Finish(outcome game.Outcome) State {
	s.Score = s.Score.Record(outcome)
	s.Round++
	return s
}
