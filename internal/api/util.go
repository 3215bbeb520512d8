package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/engine"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/logging"
	"github.com/ericogr/joust-arena/internal/service"

	"github.com/gin-gonic/gin"
)

// statusForError maps engine and session errors onto HTTP status codes.
// Every rule violation is a conflict with the current game state.
func statusForError(err error) int {
	switch {
	case errors.Is(err, engine.ErrTournamentNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrUnknownCommand), errors.Is(err, service.ErrNotPlayerCommand):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSessionClosed):
		return http.StatusServiceUnavailable
	case isRuleViolation(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func isRuleViolation(err error) bool {
	for _, target := range []error{
		engine.ErrNoCombat,
		engine.ErrCombatInProgress,
		engine.ErrResultsPending,
		engine.ErrNotPlayerTurn,
		engine.ErrNotEnemyTurn,
		engine.ErrNotOnResults,
		engine.ErrSkillNotFound,
		engine.ErrSkillOnCooldown,
		engine.ErrInsufficientEnergy,
		engine.ErrInsufficientGold,
		engine.ErrTournamentCompleted,
		engine.ErrInvalidCombatant,
		engine.ErrCombatantDown,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondRejected answers a refused command with the reason and the
// unchanged state so clients can resynchronise.
func respondRejected(c *gin.Context, err error, st game.State) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logging.Error("command failed", err, nil)
		c.JSON(status, gin.H{constants.JSONKeyError: constants.ErrFailedProcessCommand})
		return
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error(), constants.JSONKeyState: st})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: msg})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debug("request", logging.Fields{
			constants.LogFieldPath:     c.Request.Method + " " + c.FullPath(),
			constants.LogFieldRemote:   c.ClientIP(),
			constants.JSONKeyStatus:    c.Writer.Status(),
			constants.LogFieldDuration: time.Since(start).Milliseconds(),
		})
	}
}
