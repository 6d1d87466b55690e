package controller

import (
	"bytes"
	"context"
	"ctchen222/tictactoe-cli/internal/api/service"
	"ctchen222/tictactoe-cli/internal/match"
	"ctchen222/tictactoe-cli/internal/repository"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Extras  json.RawMessage `json:"extras"`
}

type stubResultService struct {
	results   []repository.MatchResult
	standings []repository.Standing
	err       error
	lastLimit int
	lastN     int64
}

func (s *stubResultService) Save(context.Context, match.Result) error { return nil }

func (s *stubResultService) Recent(_ context.Context, limit int) ([]repository.MatchResult, error) {
	s.lastLimit = limit
	return s.results, s.err
}

func (s *stubResultService) Leaderboard(_ context.Context, n int64) ([]repository.Standing, error) {
	s.lastN = n
	return s.standings, s.err
}

func newRouter(rs service.ResultService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	gc := NewGameController()
	rc := NewResultController(rs)
	r.POST("/evaluate", gc.Evaluate)
	r.POST("/move", gc.Move)
	r.GET("/results", rc.Results)
	r.GET("/leaderboard", rc.Leaderboard)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestGameController_Evaluate(t *testing.T) {
	r := newRouter(&stubResultService{})

	tests := []struct {
		name     string
		body     string
		wantCode int
		want     string
	}{
		{
			name:     "Column win for O",
			body:     `{"board":[["O","X",""],["O","X",""],["O","",""]]}`,
			wantCode: http.StatusOK,
			want:     `{"outcome":"o_wins","winner":"O","full":false}`,
		},
		{
			name:     "Full board without a line",
			body:     `{"board":[["X","O","X"],["X","O","O"],["O","X","X"]]}`,
			wantCode: http.StatusOK,
			want:     `{"outcome":"no_winner","winner":"","full":true}`,
		},
		{
			name:     "Unknown symbol",
			body:     `{"board":[["Q","",""],["","",""],["","",""]]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Two rows",
			body:     `{"board":[["","",""],["","",""]]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Malformed JSON",
			body:     `{"board":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, http.MethodPost, "/evaluate", tt.body)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, env.Success)
			if tt.want != "" {
				assert.JSONEq(t, tt.want, string(env.Extras))
			}
		})
	}
}

func TestGameController_Move(t *testing.T) {
	r := newRouter(&stubResultService{})

	tests := []struct {
		name     string
		body     string
		wantCode int
		want     string
	}{
		{
			name:     "Own win over block",
			body:     `{"board":[["X","X",""],["O","O",""],["","",""]],"mark":"O"}`,
			wantCode: http.StatusOK,
			want:     `{"position":6,"row":1,"col":2,"rule":"win"}`,
		},
		{
			name:     "Block",
			body:     `{"board":[["X","X",""],["","O",""],["","",""]],"mark":"O","difficulty":"hard"}`,
			wantCode: http.StatusOK,
			want:     `{"position":9,"row":0,"col":2,"rule":"block"}`,
		},
		{
			name:     "Center on empty board",
			body:     `{"board":[["","",""],["","",""],["","",""]],"mark":"X"}`,
			wantCode: http.StatusOK,
			want:     `{"position":5,"row":1,"col":1,"rule":"center"}`,
		},
		{
			name:     "Full board",
			body:     `{"board":[["X","O","X"],["X","O","O"],["O","X","X"]],"mark":"O"}`,
			wantCode: http.StatusConflict,
		},
		{
			name:     "Missing mark",
			body:     `{"board":[["","",""],["","",""],["","",""]]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Unknown difficulty",
			body:     `{"board":[["","",""],["","",""],["","",""]],"mark":"X","difficulty":"nightmare"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, r, http.MethodPost, "/move", tt.body)

			assert.Equal(t, tt.wantCode, code)
			if tt.want != "" {
				assert.JSONEq(t, tt.want, string(env.Extras))
			}
		})
	}
}

func TestResultController(t *testing.T) {
	t.Run("Results with default limit", func(t *testing.T) {
		rs := &stubResultService{results: []repository.MatchResult{{ID: "a", Mode: "solo", Winner: "Ana"}}}
		code, env := do(t, newRouter(rs), http.MethodGet, "/results", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, defaultListSize, rs.lastLimit)
		assert.Contains(t, string(env.Extras), `"id":"a"`)
	})

	t.Run("Limit is capped", func(t *testing.T) {
		rs := &stubResultService{}
		code, _ := do(t, newRouter(rs), http.MethodGet, "/results?limit=5000", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, maxListSize, rs.lastLimit)
	})

	t.Run("Bad limit", func(t *testing.T) {
		code, _ := do(t, newRouter(&stubResultService{}), http.MethodGet, "/results?limit=-1", "")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Disabled history is an empty list", func(t *testing.T) {
		rs := &stubResultService{err: service.ErrHistoryDisabled}
		code, env := do(t, newRouter(rs), http.MethodGet, "/results", "")

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"list":[]}`, string(env.Extras))
	})

	t.Run("Backend failure", func(t *testing.T) {
		rs := &stubResultService{err: errors.New("database is locked")}
		code, env := do(t, newRouter(rs), http.MethodGet, "/results", "")

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.False(t, env.Success)
	})

	t.Run("Leaderboard", func(t *testing.T) {
		rs := &stubResultService{standings: []repository.Standing{{Name: "Ana", Wins: 4}}}
		code, env := do(t, newRouter(rs), http.MethodGet, "/leaderboard?n=3", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, int64(3), rs.lastN)
		assert.JSONEq(t, `{"list":[{"name":"Ana","wins":4}]}`, string(env.Extras))
	})

	t.Run("Disabled leaderboard", func(t *testing.T) {
		rs := &stubResultService{err: service.ErrLeaderboardDisabled}
		code, env := do(t, newRouter(rs), http.MethodGet, "/leaderboard", "")

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"list":[]}`, string(env.Extras))
	})
}
