package controller

import (
	"ctchen222/tictactoe-cli/internal/api/response"
	"ctchen222/tictactoe-cli/internal/api/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultListSize = 10
	maxListSize     = 100
)

// ResultController serves match history and the leaderboard.
type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
	}
}

// Results lists the most recent rounds. An unconfigured history is an empty list.
func (rc *ResultController) Results(c *gin.Context) {
	limit, ok := listSize(c, "limit")
	if !ok {
		return
	}

	results, err := rc.resultService.Recent(c.Request.Context(), limit)
	if err != nil && !errors.Is(err, service.ErrHistoryDisabled) {
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.SuccessResponseList(c, results)
}

// Leaderboard lists the players with the most wins.
func (rc *ResultController) Leaderboard(c *gin.Context) {
	n, ok := listSize(c, "n")
	if !ok {
		return
	}

	standings, err := rc.resultService.Leaderboard(c.Request.Context(), int64(n))
	if err != nil && !errors.Is(err, service.ErrLeaderboardDisabled) {
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.SuccessResponseList(c, standings)
}

func listSize(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return defaultListSize, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		response.ErrorResponse(c, http.StatusBadRequest, key+" must be a positive integer")
		return 0, false
	}
	return min(n, maxListSize), true
}
