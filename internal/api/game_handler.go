package api

import (
	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/service"

	"github.com/gin-gonic/gin"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	session *service.Session
}

// NewGameHandler creates a new GameHandler driving the given session.
func NewGameHandler(session *service.Session) *GameHandler {
	return &GameHandler{session: session}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *GameHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	RegisterRoutes(router, h)
	return router
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(router gin.IRouter, h *GameHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteState, h.GetState)
		apiRoutes.GET(constants.RouteActions, h.ListActions)
		apiRoutes.GET(constants.RoutePreview, h.PreviewDamage)
		apiRoutes.GET(constants.RouteTournaments, h.ListTournaments)
		apiRoutes.GET(constants.RouteCombatCard, h.BattleCard)
		apiRoutes.GET(constants.RouteWebsocket, h.StateFeed)
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteHealth, Health)

		apiRoutes.POST(constants.RouteCombatStart, h.StartCombat)
		apiRoutes.POST(constants.RouteCombatAttack, h.Attack)
		apiRoutes.POST(constants.RouteCombatSkill, h.UseSkill)
		apiRoutes.POST(constants.RouteCombatDefend, h.Defend)
		apiRoutes.POST(constants.RouteCombatContinue, h.Continue)
		apiRoutes.POST(constants.RouteRosterSelect, h.SelectCombatant)
		apiRoutes.POST(constants.RouteRosterRest, h.Rest)
		apiRoutes.POST(constants.RouteReset, h.Reset)
	}
}
