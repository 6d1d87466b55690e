package server

import (
	"context"
	"ctchen222/tictactoe-cli/internal/api/controller"
	"ctchen222/tictactoe-cli/internal/api/response"
	"ctchen222/tictactoe-cli/internal/api/service"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/session"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Settings are the defaults applied to websocket sessions.
type Settings struct {
	Difficulty bot.Difficulty
	ThinkDelay time.Duration
}

type Server struct {
	engine        *gin.Engine
	upgrader      websocket.Upgrader
	resultService service.ResultService
	settings      Settings
	logger        *slog.Logger

	// Websocket sessions run under ctx; Shutdown cancels it.
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	closing  bool
	sessions sync.WaitGroup
}

func NewServer(gameController *controller.GameController, resultController *controller.ResultController, resultService service.ResultService, settings Settings, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		engine:        gin.New(),
		resultService: resultService,
		settings:      settings,
		logger:        logger.With("component", "server"),
		ctx:           ctx,
		cancel:        cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine.Use(gin.Recovery())
	s.registerHandlers(gameController, resultController)
	return s
}

func (s *Server) registerHandlers(gc *controller.GameController, rc *controller.ResultController) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		response.SuccessResponse(c, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/evaluate", gc.Evaluate)
		v1.POST("/move", gc.Move)
		v1.GET("/results", rc.Results)
		v1.GET("/leaderboard", rc.Leaderboard)
	}

	s.engine.GET("/ws", s.handleWebSocket)
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Shutdown ends every open websocket session and waits for them to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// trackSession registers a session with Shutdown. It reports false once Shutdown has
// started; no session is added after that.
func (s *Server) trackSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.sessions.Add(1)
	return true
}

// handleWebSocket upgrades the connection and plays a session against the computer
// until the client leaves.
func (s *Server) handleWebSocket(c *gin.Context) {
	_, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
		attribute.String("http.method", c.Request.Method),
	))

	if !s.trackSession() {
		span.SetStatus(codes.Error, "Server is shutting down")
		span.End()
		response.ErrorResponse(c, http.StatusServiceUnavailable, "server is shutting down")
		return
	}
	defer s.sessions.Done()

	difficulty := s.settings.Difficulty
	if raw := c.Query("difficulty"); raw != "" {
		difficulty = bot.ParseDifficulty(raw)
	}
	name := c.Query("name")
	span.SetAttributes(attribute.String("game.difficulty", string(difficulty)))

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WarnContext(c.Request.Context(), "failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		span.End()
		return
	}
	span.End()

	sess := session.New(conn, name, difficulty, s.resultService, s.settings.ThinkDelay, s.logger)
	s.logger.InfoContext(c.Request.Context(), "session started", "session.id", sess.ID, "difficulty", difficulty)

	if err := sess.Run(s.ctx); err != nil {
		s.logger.InfoContext(c.Request.Context(), "session stopped", "session.id", sess.ID, "error", err)
	}
}
