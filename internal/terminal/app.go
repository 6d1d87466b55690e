package terminal

import (
	"context"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/match"
	"ctchen222/tictactoe-cli/internal/player"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	menuMultiplayer = 1
	menuSolo        = 2
	menuAbout       = 3
	menuQuit        = 4
)

// Settings are the knobs of the terminal game.
type Settings struct {
	Difficulty   bot.Difficulty
	ThinkDelay   time.Duration
	SplashDelay  time.Duration
	ComputerName string
}

// App is the main menu and the replay loop around match.Runner.
type App struct {
	screen   *Screen
	prompter *Prompter
	runner   *match.Runner
	settings Settings
	logger   *slog.Logger
}

// NewApp wires a terminal game. store may be nil.
func NewApp(in io.Reader, out io.Writer, sink Sink, store match.ResultStore, settings Settings, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if settings.ComputerName == "" {
		settings.ComputerName = "Computer"
	}
	screen := NewScreen(out, sink)
	return &App{
		screen:   screen,
		prompter: NewPrompter(in, out),
		runner:   match.NewRunner(screen, store, settings.ThinkDelay, logger),
		settings: settings,
		logger:   logger.With("component", "terminal"),
	}
}

// Run shows the menu until the player quits or the input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.screen.Splash(a.settings.SplashDelay)
		a.screen.Menu()
		choice, err := a.prompter.ReadChoice("\nChoose an option: ")
		if err != nil {
			return a.finish(ctx, err)
		}
		a.logger.DebugContext(ctx, "menu choice", "choice", choice)

		switch choice {
		case menuMultiplayer:
			err = a.playMultiplayer(ctx)
		case menuSolo:
			err = a.playSolo(ctx)
		case menuAbout:
			a.screen.About()
			err = a.prompter.WaitForEnter()
		case menuQuit:
			a.screen.Message("Thanks for playing! See you soon.")
			return nil
		default:
			a.screen.Message("Invalid option. Try again.")
			err = a.prompter.WaitForEnter()
		}
		if err != nil {
			return a.finish(ctx, err)
		}
	}
}

// finish treats the end of input as a normal exit.
func (a *App) finish(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		a.logger.InfoContext(ctx, "input closed, leaving")
		return nil
	}
	return err
}

func (a *App) human(name string, mark game.PlayerMark) player.Player {
	return player.NewPlayer(uuid.NewString(), name, mark, NewHumanMover(a.prompter, a.screen, name, mark))
}

func (a *App) playMultiplayer(ctx context.Context) error {
	nameX, err := a.prompter.ReadName("\nEnter Player 1 name (X): ")
	if err != nil {
		return err
	}
	nameO, err := a.prompter.ReadName("Enter Player 2 name (O): ")
	if err != nil {
		return err
	}

	st := match.NewState(match.Multiplayer, a.human(nameX, game.PlayerX), a.human(nameO, game.PlayerO))
	return a.playRounds(ctx, st)
}

func (a *App) playSolo(ctx context.Context) error {
	name, err := a.prompter.ReadName("\nEnter your name (you play X): ")
	if err != nil {
		return err
	}

	computer := bot.NewBotPlayer(a.settings.ComputerName, game.PlayerO, a.settings.Difficulty)
	st := match.NewState(match.Solo, a.human(name, game.PlayerX), computer)
	return a.playRounds(ctx, st)
}

// playRounds replays with the same players and running score while they answer y.
func (a *App) playRounds(ctx context.Context, st match.State) error {
	for {
		next, _, err := a.runner.PlayRound(ctx, st)
		if err != nil {
			return err
		}
		st = next

		if err := a.prompter.WaitForEnter(); err != nil {
			return err
		}
		again, err := a.prompter.Confirm("\nPlay again? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
