package api

import (
	"net/http"
	"strings"

	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/engine"

	"github.com/gin-gonic/gin"
)

// TournamentSummary is the menu view of one bracket.
type TournamentSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Progress         int    `json:"progress"`
	Rounds           int    `json:"rounds"`
	Completed        bool   `json:"completed"`
	NextOpponent     string `json:"next_opponent,omitempty"`
	NextLevel        int    `json:"next_level,omitempty"`
	RewardGold       int    `json:"reward_gold"`
	RewardExperience int    `json:"reward_experience"`
}

// GetState returns the full game snapshot.
func (h *GameHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

// ListActions returns the commands the player may issue now.
func (h *GameHandler) ListActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyActions: h.session.Actions()})
}

// PreviewDamage returns the expected damage of an attack, or of a skill
// when skill_id is given.
func (h *GameHandler) PreviewDamage(c *gin.Context) {
	skillID := strings.TrimSpace(c.Query(constants.QueryParamSkillID))
	hit, err := h.session.Preview(skillID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{constants.JSONKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyDamage:     hit.Damage,
		constants.JSONKeyMultiplier: hit.Multiplier,
		constants.JSONKeyDetails:    engine.DescribeMultiplier(hit.Multiplier),
	})
}

// ListTournaments summarises every bracket for the menu.
func (h *GameHandler) ListTournaments(c *gin.Context) {
	st := h.session.State()
	out := make([]TournamentSummary, 0, len(st.Tournaments))
	for i := range st.Tournaments {
		t := &st.Tournaments[i]
		sum := TournamentSummary{
			ID:               t.ID,
			Name:             t.Name,
			Progress:         t.Progress,
			Rounds:           len(t.Enemies),
			Completed:        t.Completed,
			RewardGold:       t.RewardGold,
			RewardExperience: t.RewardExperience,
		}
		if next := t.NextEnemy(); next != nil {
			sum.NextOpponent = next.Name
			sum.NextLevel = next.Level
		}
		out = append(out, sum)
	}
	c.JSON(http.StatusOK, out)
}
