package engine

import (
	"fmt"

	"github.com/ericogr/joust-arena/internal/game"
)

// ActionOption describes a command the client may offer right now.
type ActionOption struct {
	Command Command `json:"command"`
	Label   string  `json:"label"`
	Enabled bool    `json:"enabled"`
	Reason  string  `json:"reason,omitempty"`
}

// AvailableActions lists the player-facing commands for the current screen,
// disabled ones included with the reason they would be rejected.
func AvailableActions(s game.State, rules Rules) []ActionOption {
	out := make([]ActionOption, 0, 8)
	option := func(cmd Command, label string) {
		o := ActionOption{Command: cmd, Label: label, Enabled: true}
		if err := Check(&s, cmd, rules); err != nil {
			o.Enabled = false
			o.Reason = err.Error()
		}
		out = append(out, o)
	}

	switch {
	case s.Combat == nil:
		for _, t := range s.Tournaments {
			if t.Completed {
				continue
			}
			option(StartCombat(t.ID), fmt.Sprintf("Enter %s (round %d of %d)", t.Name, t.Progress+1, len(t.Enemies)))
		}
		for i, c := range s.Player.Roster {
			if i == s.Player.ActiveIndex {
				continue
			}
			option(SelectCombatant(i), "Send in "+c.Name)
		}
		option(Rest(), fmt.Sprintf("Rest at the inn (%d gold)", rules.RestCost))
	case s.Combat.Turn == game.TurnPlayer:
		option(Attack(), "Attack")
		if active := s.Player.Active(); active != nil {
			for _, sk := range active.Skills {
				option(UseSkill(sk.ID), fmt.Sprintf("%s (%d energy)", sk.Name, sk.EnergyCost))
			}
		}
		option(Defend(), "Defend")
	case s.Combat.Turn.Terminal():
		option(Continue(), "Continue")
	}
	return out
}

// PreviewDamage returns the non-critical damage the active combatant would
// deal to the current opponent with the given skill, or a plain attack when
// skillID is empty. Cooldowns and energy are not considered.
func PreviewDamage(s game.State, skillID string) (Hit, error) {
	if !s.Combat.Active() {
		return Hit{}, ErrNoCombat
	}
	active := s.Player.Active()
	if active == nil {
		return Hit{}, ErrInvalidCombatant
	}
	var sk *game.Skill
	if skillID != "" {
		if sk = active.FindSkill(skillID); sk == nil {
			return Hit{}, ErrSkillNotFound
		}
	}
	return Preview(active, &s.Combat.Enemy, sk), nil
}
