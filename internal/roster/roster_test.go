package roster

import (
	"testing"

	"github.com/ericogr/joust-arena/internal/config"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) *config.LoadedConfig {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func TestNewEnemy_ScalesWithLevel(t *testing.T) {
	cfg := defaults(t)
	knight, ok := cfg.ClassTemplate(game.ClassKnight)
	require.True(t, ok)

	e := NewEnemy(knight, "Baron Godfrey", 4, 0.1)
	// 1 + 0.1*3 = 1.3
	assert.Equal(t, 4, e.Level)
	assert.Equal(t, 32, e.Attack)
	assert.Equal(t, 19, e.Defense)
	assert.Equal(t, 156, e.MaxHealth)
	assert.Equal(t, e.MaxHealth, e.Health)
	assert.Len(t, e.Skills, len(knight.Skills))

	lvl1 := NewEnemy(knight, "", 0, 0.1)
	assert.Equal(t, 1, lvl1.Level)
	assert.Equal(t, knight.Attack, lvl1.Attack)
	assert.Equal(t, "knight", lvl1.Name)
}

func TestNewState_Defaults(t *testing.T) {
	cfg := defaults(t)
	s, err := NewState(cfg)
	require.NoError(t, err)

	assert.Equal(t, game.StateVersion, s.Version)
	assert.Equal(t, game.ScreenMenu, s.Screen)
	assert.Nil(t, s.Combat)
	assert.Equal(t, 100, s.Player.Energy)
	assert.Equal(t, 100, s.Player.MaxEnergy)
	assert.Equal(t, cfg.StartingGold, s.Player.Gold)
	require.Len(t, s.Player.Roster, len(cfg.StartingRoster))
	assert.Equal(t, "Sir Galahad", s.Player.Roster[0].Name)

	ids := map[string]bool{}
	for _, c := range s.Player.Roster {
		assert.NotEmpty(t, c.ID)
		assert.False(t, ids[c.ID])
		ids[c.ID] = true
		for _, sk := range c.Skills {
			assert.Zero(t, sk.CurrentCooldown)
		}
	}
	require.Len(t, s.Tournaments, len(cfg.Tournaments))
	for _, tour := range s.Tournaments {
		assert.Zero(t, tour.Progress)
		assert.False(t, tour.Completed)
		assert.NotEmpty(t, tour.Enemies)
	}
	require.NoError(t, s.Validate())
}

func TestNewTournament_UnknownClass(t *testing.T) {
	cfg := defaults(t)
	_, err := NewTournament(cfg, config.TournamentTemplate{Name: "Odd", Enemies: []config.EnemyEntry{{Class: "dragon", Level: 1}}})
	assert.Error(t, err)
}
