package bot

import (
	"context"
	"ctchen222/tictactoe-cli/internal/game"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("bot")

var decisionCounter metric.Int64Counter

func init() {
	var err error
	// On error the meter still hands back a usable no-op counter.
	decisionCounter, err = otel.Meter("bot").Int64Counter("ttt.bot.decisions",
		metric.WithDescription("Moves chosen by the computer player, by rule"),
	)
	if err != nil {
		otel.Handle(err)
	}
}

// Difficulty selects which rule list the computer follows.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a config or query value to a Difficulty. Unknown values play hard.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case Easy, Medium:
		return Difficulty(s)
	default:
		return Hard
	}
}

// Rule names the step of the decision list that produced a move.
type Rule string

const (
	RuleWin    Rule = "win"
	RuleBlock  Rule = "block"
	RuleCenter Rule = "center"
	RuleCorner Rule = "corner"
	RuleRandom Rule = "random"
	RuleNone   Rule = "none"
)

// Selector picks moves for the computer player. It never mutates the board it is given.
type Selector struct {
	difficulty Difficulty
	intN       func(n int) int
}

// NewSelector creates a selector. A nil rng uses the global math/rand/v2 source.
func NewSelector(difficulty Difficulty, rng *rand.Rand) *Selector {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	return &Selector{
		difficulty: ParseDifficulty(string(difficulty)),
		intN:       intN,
	}
}

// Difficulty returns the level the selector plays at.
func (s *Selector) Difficulty() Difficulty {
	return s.difficulty
}

// Decide returns the chosen position together with the rule that produced it.
// On a full board it returns game.NoPosition and RuleNone.
func (s *Selector) Decide(ctx context.Context, board game.Board, own, opponent game.PlayerMark) (game.Position, Rule) {
	ctx, span := tracer.Start(ctx, "bot.Decide", trace.WithAttributes(
		attribute.String("bot.mark", string(own)),
		attribute.String("bot.difficulty", string(s.difficulty)),
	))
	defer span.End()

	var (
		pos  game.Position
		rule Rule
	)
	switch s.difficulty {
	case Easy:
		pos, rule = s.easyMove(board)
	case Medium:
		pos, rule = s.mediumMove(board, own, opponent)
	default:
		pos, rule = s.hardMove(board, own, opponent)
	}

	span.SetAttributes(attribute.Int("bot.position", int(pos)), attribute.String("bot.rule", string(rule)))
	decisionCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("rule", string(rule))))
	return pos, rule
}

// SelectMove runs the heuristic opponent: win, block, center, corner, random.
func SelectMove(board game.Board, own, opponent game.PlayerMark) game.Position {
	pos, _ := NewSelector(Hard, nil).Decide(context.Background(), board, own, opponent)
	return pos
}

// easyMove makes a completely random move.
func (s *Selector) easyMove(board game.Board) (game.Position, Rule) {
	return s.randomMove(board)
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func (s *Selector) mediumMove(board game.Board, own, opponent game.PlayerMark) (game.Position, Rule) {
	// 1. Win: Check if the bot can win in the next move
	if pos, ok := findWinningMove(board, own); ok {
		return pos, RuleWin
	}

	// 2. Block: Check if the opponent is about to win and block them
	if pos, ok := findWinningMove(board, opponent); ok {
		return pos, RuleBlock
	}

	// 3. Random: Otherwise, make a random move
	return s.randomMove(board)
}

// hardMove is the fixed priority list. It has no lookahead and can lose to a fork.
func (s *Selector) hardMove(board game.Board, own, opponent game.PlayerMark) (game.Position, Rule) {
	// 1. Win: Check if the bot can win in the next move
	if pos, ok := findWinningMove(board, own); ok {
		return pos, RuleWin
	}

	// 2. Block: Check if the opponent is about to win and block them
	if pos, ok := findWinningMove(board, opponent); ok {
		return pos, RuleBlock
	}

	// 3. Center: Take the center if it's available
	if board.IsEmpty(game.Center) {
		return game.Center, RuleCenter
	}

	// 4. Corners: first free corner in fixed order
	for _, corner := range game.Corners {
		if board.IsEmpty(corner) {
			return corner, RuleCorner
		}
	}

	// 5. Random: whatever is left
	return s.randomMove(board)
}

func (s *Selector) randomMove(board game.Board) (game.Position, Rule) {
	available := board.EmptyPositions()
	if len(available) == 0 {
		return game.NoPosition, RuleNone
	}
	return available[s.intN(len(available))], RuleRandom
}

// findWinningMove scans empty cells 1..9 and returns the first one where placing
// mark completes a line for it.
func findWinningMove(board game.Board, mark game.PlayerMark) (game.Position, bool) {
	want := game.WinFor(mark)
	if want == game.NoWinner {
		return game.NoPosition, false
	}
	for _, pos := range board.EmptyPositions() {
		board.Set(pos, mark)
		outcome := game.Evaluate(board)
		board.Set(pos, game.None)
		if outcome == want {
			return pos, true
		}
	}
	return game.NoPosition, false
}
