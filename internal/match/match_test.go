package match

import (
	"context"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/player"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedMover plays a fixed list of positions.
type scriptedMover struct {
	moves []game.Position
	err   error
}

func (m *scriptedMover) NextMove(_ context.Context, _ game.Board) (game.Position, error) {
	if m.err != nil {
		return game.NoPosition, m.err
	}
	if len(m.moves) == 0 {
		return game.NoPosition, errors.New("script exhausted")
	}
	pos := m.moves[0]
	m.moves = m.moves[1:]
	return pos, nil
}

type fakePresenter struct {
	turns         int
	thinking      int
	computerMoves []game.Position
	pauses        []time.Duration
	results       []game.Outcome
	lastBoard     game.Board
	lastState     State
}

func (p *fakePresenter) ShowTurn(_ State, _ game.Board, _ int) { p.turns++ }
func (p *fakePresenter) ShowThinking(_ player.Player) { p.thinking++ }
func (p *fakePresenter) ShowComputerMove(_ player.Player, pos game.Position) {
	p.computerMoves = append(p.computerMoves, pos)
}
func (p *fakePresenter) ShowResult(st State, board game.Board, outcome game.Outcome) {
	p.results = append(p.results, outcome)
	p.lastBoard = board
	p.lastState = st
}
func (p *fakePresenter) Pause(d time.Duration) { p.pauses = append(p.pauses, d) }

type fakeStore struct {
	results []Result
	err     error
}

func (s *fakeStore) Save(_ context.Context, r Result) error {
	s.results = append(s.results, r)
	return s.err
}

func humans(xMoves, oMoves []game.Position) State {
	x := player.NewPlayer("p1", "Ana", game.PlayerX, &scriptedMover{moves: xMoves})
	o := player.NewPlayer("p2", "Bia", game.PlayerO, &scriptedMover{moves: oMoves})
	return NewState(Multiplayer, x, o)
}

func TestRunner_PlayRound_XWins(t *testing.T) {
	presenter := &fakePresenter{}
	store := &fakeStore{}
	runner := NewRunner(presenter, store, 0, nil)

	st := humans([]game.Position{7, 8, 9}, []game.Position{1, 2})
	next, outcome, err := runner.PlayRound(context.Background(), st)

	require.NoError(t, err)
	assert.Equal(t, game.XWins, outcome)
	assert.Equal(t, Score{X: 1}, next.Score)
	assert.Equal(t, 1, next.Round)
	assert.Equal(t, Score{}, st.Score, "the caller's state must not change")
	assert.Equal(t, 5, presenter.turns)
	assert.Empty(t, presenter.pauses, "humans do not pause")
	assert.Equal(t, []game.Outcome{game.XWins}, presenter.results)
	assert.Equal(t, next, presenter.lastState)

	require.Len(t, store.results, 1)
	saved := store.results[0]
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, Multiplayer, saved.Mode)
	assert.Equal(t, "Ana", saved.PlayerX)
	assert.Equal(t, "Bia", saved.PlayerO)
	assert.Equal(t, game.PlayerX, saved.Winner)
	assert.Equal(t, 5, saved.Moves)
}

func TestRunner_PlayRound_Draw(t *testing.T) {
	presenter := &fakePresenter{}
	runner := NewRunner(presenter, nil, 0, nil)

	// X O X / X O O / O X X
	st := humans([]game.Position{7, 9, 4, 2, 3}, []game.Position{8, 5, 6, 1})
	next, outcome, err := runner.PlayRound(context.Background(), st)

	require.NoError(t, err)
	assert.Equal(t, game.NoWinner, outcome)
	assert.Equal(t, Score{Draws: 1}, next.Score)
	assert.True(t, presenter.lastBoard.IsFull())
}

func TestRunner_PlayRound_AgainstComputer(t *testing.T) {
	presenter := &fakePresenter{}
	runner := NewRunner(presenter, nil, time.Second, nil)

	human := player.NewPlayer("p1", "Ana", game.PlayerX, &scriptedMover{moves: []game.Position{1, 3, 8, 4, 6}})
	computer := bot.NewBotPlayer("Computer", game.PlayerO, bot.Hard)
	st := NewState(Solo, human, computer)

	// X1 O5, X3 O2 (block), X8 O7 (corner), X4 O9 (corner), X6: draw.
	next, outcome, err := runner.PlayRound(context.Background(), st)

	require.NoError(t, err)
	assert.Equal(t, game.NoWinner, outcome)
	assert.Equal(t, Score{Draws: 1}, next.Score)
	assert.Equal(t, 4, presenter.thinking)
	assert.Equal(t, []game.Position{5, 2, 7, 9}, presenter.computerMoves)
	assert.Len(t, presenter.pauses, 8)
	for _, d := range presenter.pauses {
		assert.Equal(t, time.Second, d)
	}
}

func TestRunner_PlayRound_MoverError(t *testing.T) {
	quit := errors.New("quit")
	x := player.NewPlayer("p1", "Ana", game.PlayerX, &scriptedMover{err: quit})
	o := player.NewPlayer("p2", "Bia", game.PlayerO, &scriptedMover{})
	st := NewState(Multiplayer, x, o)
	store := &fakeStore{}

	next, _, err := NewRunner(&fakePresenter{}, store, 0, nil).PlayRound(context.Background(), st)

	assert.ErrorIs(t, err, quit)
	assert.Equal(t, st, next)
	assert.Empty(t, store.results)
}

func TestRunner_PlayRound_IllegalMove(t *testing.T) {
	st := humans([]game.Position{5}, []game.Position{5})

	_, _, err := NewRunner(&fakePresenter{}, nil, 0, nil).PlayRound(context.Background(), st)

	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.ErrorIs(t, err, game.ErrCellOccupied)
}

func TestRunner_PlayRound_StoreFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	st := humans([]game.Position{7, 8, 9}, []game.Position{1, 2})

	next, outcome, err := NewRunner(&fakePresenter{}, store, 0, nil).PlayRound(context.Background(), st)

	require.NoError(t, err)
	assert.Equal(t, game.XWins, outcome)
	assert.Equal(t, 1, next.Score.X)
	assert.Len(t, store.results, 1)
}

func TestScore(t *testing.T) {
	s := Score{}.Record(game.XWins).Record(game.OWins).Record(game.OWins).Record(game.NoWinner)

	assert.Equal(t, Score{X: 1, O: 2, Draws: 1}, s)
	assert.Equal(t, 1, s.Of(game.PlayerX))
	assert.Equal(t, 2, s.Of(game.PlayerO))
	assert.Equal(t, 0, s.Of(game.None))
}

func TestNewStateAssignsMarks(t *testing.T) {
	a := player.NewPlayer("a", "A", game.PlayerO, nil)
	b := player.NewPlayer("b", "B", game.PlayerX, nil)

	st := NewState(Multiplayer, a, b)

	assert.Equal(t, game.PlayerX, st.PlayerX.Mark)
	assert.Equal(t, game.PlayerO, st.PlayerO.Mark)
	assert.Equal(t, "A", st.PlayerFor(game.PlayerX).Name)
	assert.Equal(t, "B", st.PlayerFor(game.PlayerO).Name)
}

func TestResult_WinnerName(t *testing.T) {
	r := Result{PlayerX: "Ana", PlayerO: "Bo"}

	r.Winner = game.PlayerX
	assert.Equal(t, "Ana", r.WinnerName())
	r.Winner = game.PlayerO
	assert.Equal(t, "Bo", r.WinnerName())
	r.Winner = game.None
	assert.Equal(t, "", r.WinnerName())
}

func TestRoundsCounterRegistered(t *testing.T) {
	assert.NotNil(t, roundsCounter)
}
