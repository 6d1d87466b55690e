package main

import (
	"context"
	"ctchen222/tictactoe-cli/internal/api/controller"
	"ctchen222/tictactoe-cli/internal/api/service"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/config"
	"ctchen222/tictactoe-cli/internal/db"
	"ctchen222/tictactoe-cli/internal/logger"
	"ctchen222/tictactoe-cli/internal/repository"
	"ctchen222/tictactoe-cli/internal/server"
	"ctchen222/tictactoe-cli/internal/telemetry"
	"ctchen222/tictactoe-cli/internal/terminal"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	serve := flag.Bool("serve", false, "run the HTTP and websocket server instead of the terminal game")
	flag.Parse()

	if err := run(*configPath, *serve); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath string, serve bool) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Warn("error shutting down telemetry", "error", err)
		}
	}()

	logOut, closeLog, err := logOutput(cfg, serve)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logger.Init(logOut, cfg.SlogLevel())

	resultService, closeStores, err := openResultService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStores()

	if serve {
		return runServer(cfg, resultService, log)
	}
	return runTerminal(ctx, cfg, resultService, log)
}

// logOutput keeps log lines off the board in terminal mode: they go to the log file,
// or only to the OpenTelemetry bridge when none is configured.
func logOutput(cfg *config.Config, serve bool) (io.Writer, func(), error) {
	if serve {
		return os.Stdout, func() {}, nil
	}
	if cfg.LogFile == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func openResultService(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.ResultService, func(), error) {
	var (
		results     repository.ResultRepository
		leaderboard repository.LeaderboardRepository
		closers     []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("failed to close store", "error", err)
			}
		}
	}

	if cfg.Storage.SQLitePath != "" {
		pool, err := db.ConnectSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize sqlite db: %w", err)
		}
		closers = append(closers, pool.Close)
		results = repository.NewResultRepository(pool)
	}

	if cfg.Storage.RedisAddr != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.Storage.RedisAddr)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		closers = append(closers, rdb.Close)
		leaderboard = repository.NewLeaderboardRepository(rdb)
	}

	return service.NewResultService(results, leaderboard, log), closeAll, nil
}

func runTerminal(ctx context.Context, cfg *config.Config, resultService service.ResultService, log *slog.Logger) error {
	sink := terminal.NewTermSink(os.Stdout, !cfg.NoColor)
	app := terminal.NewApp(os.Stdin, os.Stdout, sink, resultService, terminal.Settings{
		Difficulty:  bot.ParseDifficulty(cfg.Difficulty),
		ThinkDelay:  cfg.ThinkDelay,
		SplashDelay: cfg.SplashDelay,
	}, log)
	return app.Run(ctx)
}

func runServer(cfg *config.Config, resultService service.ResultService, log *slog.Logger) error {
	srv := server.NewServer(
		controller.NewGameController(),
		controller.NewResultController(resultService),
		resultService,
		server.Settings{
			Difficulty: bot.ParseDifficulty(cfg.Difficulty),
			ThinkDelay: cfg.ThinkDelay,
		},
		log,
	)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Engine(),
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server started", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-stop:
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("websocket sessions did not finish in time", "error", err)
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}
