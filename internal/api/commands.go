package api

import (
	"net/http"
	"strings"

	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/engine"
	"github.com/ericogr/joust-arena/internal/logging"

	"github.com/gin-gonic/gin"
)

type StartCombatRequest struct {
	TournamentID string `json:"tournament_id" binding:"required"`
}

type UseSkillRequest struct {
	SkillID string `json:"skill_id" binding:"required"`
}

type SelectCombatantRequest struct {
	// Pointer so an explicit 0 is distinguishable from a missing field.
	Index *int `json:"index" binding:"required"`
}

// submit forwards cmd to the session and writes the resulting state.
func (h *GameHandler) submit(c *gin.Context, cmd engine.Command) {
	st, err := h.session.Submit(c.Request.Context(), cmd)
	if err != nil {
		respondRejected(c, err, st)
		return
	}
	c.JSON(http.StatusOK, st)
}

// StartCombat enters the next bout of a tournament.
func (h *GameHandler) StartCombat(c *gin.Context) {
	var req StartCombatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.TournamentID) == "" {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	logging.Info("combat requested", logging.Fields{constants.LogFieldTournament: req.TournamentID})
	h.submit(c, engine.StartCombat(strings.TrimSpace(req.TournamentID)))
}

func (h *GameHandler) Attack(c *gin.Context) { h.submit(c, engine.Attack()) }

func (h *GameHandler) UseSkill(c *gin.Context) {
	var req UseSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.SkillID) == "" {
		badRequest(c, constants.ErrInvalidSkillID)
		return
	}
	h.submit(c, engine.UseSkill(strings.TrimSpace(req.SkillID)))
}

func (h *GameHandler) Defend(c *gin.Context) { h.submit(c, engine.Defend()) }

// Continue leaves the results screen.
func (h *GameHandler) Continue(c *gin.Context) { h.submit(c, engine.Continue()) }

func (h *GameHandler) SelectCombatant(c *gin.Context) {
	var req SelectCombatantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	h.submit(c, engine.SelectCombatant(*req.Index))
}

func (h *GameHandler) Rest(c *gin.Context) { h.submit(c, engine.Rest()) }

// Reset discards the saved game and starts over.
func (h *GameHandler) Reset(c *gin.Context) {
	st, err := h.session.Reset(c.Request.Context())
	if err != nil {
		logging.Error("failed to reset game", err, nil)
		c.JSON(statusForError(err), gin.H{constants.JSONKeyError: constants.ErrFailedResetGame})
		return
	}
	c.JSON(http.StatusOK, st)
}
