package engine

import (
	"fmt"

	"github.com/ericogr/joust-arena/internal/game"
)

// GrantExperience adds xp to c and applies every level-up it pays for,
// carrying the remainder forward. It returns the number of levels gained.
func GrantExperience(c *game.Combatant, xp int, rules Rules) int {
	if xp <= 0 {
		return 0
	}
	c.Experience += xp
	gained := 0
	for rules.LevelThreshold > 0 && c.Experience >= c.Level*rules.LevelThreshold {
		c.Experience -= c.Level * rules.LevelThreshold
		levelUp(c, rules)
		gained++
	}
	return gained
}

func levelUp(c *game.Combatant, rules Rules) {
	c.Level++
	c.Attack = floor(float64(c.Attack) * rules.LevelUpGrowth)
	c.Defense = floor(float64(c.Defense) * rules.LevelUpGrowth)
	c.MaxHealth = floor(float64(c.MaxHealth) * rules.LevelUpGrowth)
	c.Health = c.MaxHealth
}

// afterBattle applies the partial heal and energy refund granted after every
// battle, won or lost.
func (tc *turnContext) afterBattle() {
	c := tc.active()
	c.Health += c.MaxHealth * tc.rules.PostBattleHealPercent / 100
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	tc.addEnergy(tc.rules.PostBattleEnergy)
}

// --- Terminal transitions ------------------------------------------------

func (tc *turnContext) victory() {
	enemy := tc.enemy()
	active := tc.active()
	tc.s.Combat.Turn = game.TurnVictory
	tc.s.Combat.PlayerDefending = false
	tc.add(game.LogEntry{Turn: game.TurnVictory, Actor: active.Name, Action: game.ActionVictory,
		Message: fmt.Sprintf("%s defeats %s!", active.Name, enemy.Name)})

	t := tc.s.FindTournament(tc.s.Combat.TournamentID)
	if t != nil {
		t.Progress++
		if t.Progress >= len(t.Enemies) {
			t.Progress = len(t.Enemies)
		}
	}

	xp := tc.rules.ExperiencePerEnemyLevel * enemy.Level
	levels := GrantExperience(active, xp, tc.rules)
	summary := fmt.Sprintf("Victory! %s gains %d XP", active.Name, xp)

	if t != nil && t.Progress == len(t.Enemies) && !t.Completed {
		t.Completed = true
		tc.s.Player.Gold += t.RewardGold
		tc.s.Player.TournamentWins++
		levels += GrantExperience(active, t.RewardExperience, tc.rules)
		summary += fmt.Sprintf(" and wins the %s: +%d gold, +%d XP", t.Name, t.RewardGold, t.RewardExperience)
	}
	if levels > 0 {
		summary += fmt.Sprintf(". Level up! Now level %d", active.Level)
	}

	tc.afterBattle()
	tc.s.Screen = game.ScreenResults
	tc.s.Message = summary
}

func (tc *turnContext) defeat() {
	enemy := tc.enemy()
	active := tc.active()
	tc.s.Combat.Turn = game.TurnDefeat
	tc.s.Combat.PlayerDefending = false
	tc.add(game.LogEntry{Turn: game.TurnDefeat, Actor: enemy.Name, Action: game.ActionDefeat,
		Message: fmt.Sprintf("%s has fallen to %s.", active.Name, enemy.Name)})
	tc.afterBattle()
	tc.s.Screen = game.ScreenResults
	tc.s.Message = fmt.Sprintf("Defeat. %s must try again.", active.Name)
}
