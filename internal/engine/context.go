package engine

import (
	"fmt"

	"github.com/ericogr/joust-arena/internal/game"
)

// --- Transition context -------------------------------------------------
type turnContext struct {
	s     *game.State
	rng   Rand
	rules Rules
}

func newTurnContext(s *game.State, rng Rand, rules Rules) *turnContext {
	return &turnContext{s: s, rng: rng, rules: rules}
}

func (tc *turnContext) active() *game.Combatant { return tc.s.Player.Active() }

func (tc *turnContext) enemy() *game.Combatant { return &tc.s.Combat.Enemy }

// add appends to the combat log, numbering entries from 1.
func (tc *turnContext) add(e game.LogEntry) {
	e.Seq = len(tc.s.Combat.Log) + 1
	tc.s.Combat.Log = append(tc.s.Combat.Log, e)
	tc.s.Message = e.Message
}

func hitMessage(actor, target, verb string, dmg int, crit, defended bool) string {
	msg := fmt.Sprintf("%s %s %s for %d damage", actor, verb, target, dmg)
	if crit {
		msg += " (critical!)"
	}
	if defended {
		msg += " (blocked half)"
	}
	return msg
}

func takeDamage(c *game.Combatant, dmg int) {
	c.Health -= dmg
	if c.Health < 0 {
		c.Health = 0
	}
}

func (tc *turnContext) addEnergy(n int) {
	p := &tc.s.Player
	p.Energy += n
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
}

func tickCooldowns(c *game.Combatant) {
	for i := range c.Skills {
		if c.Skills[i].CurrentCooldown > 0 {
			c.Skills[i].CurrentCooldown--
		}
	}
}
