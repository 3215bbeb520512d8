package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ericogr/joust-arena/internal/battlecard"
	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/logging"

	"github.com/gin-gonic/gin"
)

// BattleCard serves a PNG of the current battle. URL format:
// /api/combat/card.png?size=<pixels>
func (h *GameHandler) BattleCard(c *gin.Context) {
	size := constants.DefaultCardSize
	if raw := c.Query(constants.QueryParamSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < constants.MinCardSize || n > constants.MaxCardSize {
			badRequest(c, constants.ErrInvalidCardSize)
			return
		}
		size = n
	}

	out, err := battlecard.RenderPNG(h.session.State(), size)
	if err != nil {
		if errors.Is(err, battlecard.ErrNoCombat) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		logging.Error("failed to render battle card", err, logging.Fields{constants.LogFieldSize: size})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRenderCard})
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.Data(http.StatusOK, constants.ContentTypePNG, out)
}
