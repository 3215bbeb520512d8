// Package roster turns configured class and tournament templates into the
// combatants and brackets of a fresh game.
package roster

import (
	"fmt"
	"math"
	"time"

	"github.com/ericogr/joust-arena/internal/config"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/google/uuid"
)

// NewCombatant builds a level-1 combatant of the template's class.
func NewCombatant(ct config.ClassTemplate, name string) game.Combatant {
	if name == "" {
		name = string(ct.Class)
	}
	skills := make([]game.Skill, 0, len(ct.Skills))
	for _, st := range ct.Skills {
		skills = append(skills, game.Skill{
			ID:         st.Key,
			Name:       st.Name,
			Damage:     st.Damage,
			EnergyCost: st.EnergyCost,
			Cooldown:   st.Cooldown,
			AttackType: st.AttackType,
		})
	}
	return game.Combatant{
		ID:          uuid.NewString(),
		Name:        name,
		Class:       ct.Class,
		Health:      ct.Health,
		MaxHealth:   ct.Health,
		Attack:      ct.Attack,
		Defense:     ct.Defense,
		Speed:       ct.Speed,
		AttackType:  ct.AttackType,
		DefenseType: ct.DefenseType,
		Skills:      skills,
		Level:       1,
	}
}

// NewEnemy builds an opponent at the given level. Attack, defense and max
// health grow by growth per level above the first.
func NewEnemy(ct config.ClassTemplate, name string, level int, growth float64) game.Combatant {
	c := NewCombatant(ct, name)
	if level < 1 {
		level = 1
	}
	scale := 1 + growth*float64(level-1)
	c.Level = level
	c.Attack = scaled(c.Attack, scale)
	c.Defense = scaled(c.Defense, scale)
	c.MaxHealth = scaled(c.MaxHealth, scale)
	c.Health = c.MaxHealth
	return c
}

func scaled(v int, f float64) int {
	return int(math.Floor(float64(v)*f + 1e-9))
}

// NewTournament generates a bracket from its template.
func NewTournament(cfg *config.LoadedConfig, tt config.TournamentTemplate) (game.Tournament, error) {
	t := game.Tournament{
		ID:               uuid.NewString(),
		Name:             tt.Name,
		RewardGold:       tt.RewardGold,
		RewardExperience: tt.RewardExperience,
		Enemies:          make([]game.Combatant, 0, len(tt.Enemies)),
	}
	for _, e := range tt.Enemies {
		ct, ok := cfg.ClassTemplate(e.Class)
		if !ok {
			return game.Tournament{}, fmt.Errorf("tournament %q: unknown class %q", tt.Name, e.Class)
		}
		t.Enemies = append(t.Enemies, NewEnemy(ct, e.Name, e.Level, cfg.Rules.EnemyLevelGrowth))
	}
	return t, nil
}

// NewState returns the default game: the starting roster with full energy
// and every configured tournament at round one.
func NewState(cfg *config.LoadedConfig) (game.State, error) {
	s := game.State{
		Version: game.StateVersion,
		Player: game.Player{
			Roster:    make([]game.Combatant, 0, len(cfg.StartingRoster)),
			Energy:    cfg.Rules.MaxEnergy,
			MaxEnergy: cfg.Rules.MaxEnergy,
			Gold:      cfg.StartingGold,
		},
		Tournaments: make([]game.Tournament, 0, len(cfg.Tournaments)),
		Screen:      game.ScreenMenu,
		Message:     "Welcome to the tournament grounds. Choose your contest.",
		UpdatedAt:   time.Now().UTC(),
	}
	for _, r := range cfg.StartingRoster {
		ct, ok := cfg.ClassTemplate(r.Class)
		if !ok {
			return game.State{}, fmt.Errorf("starting roster %q: unknown class %q", r.Name, r.Class)
		}
		s.Player.Roster = append(s.Player.Roster, NewCombatant(ct, r.Name))
	}
	for _, tt := range cfg.Tournaments {
		t, err := NewTournament(cfg, tt)
		if err != nil {
			return game.State{}, err
		}
		s.Tournaments = append(s.Tournaments, t)
	}
	return s, nil
}
