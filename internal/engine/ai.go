package engine

import "github.com/ericogr/joust-arena/internal/game"

// chooseEnemySkill implements the opponent's policy: with at least one ready
// skill it rolls once against EnemySkillChance and, on success, picks one of
// the ready skills uniformly. A nil result means a plain attack.
func chooseEnemySkill(enemy *game.Combatant, rng Rand, rules Rules) *game.Skill {
	ready := make([]int, 0, len(enemy.Skills))
	for i := range enemy.Skills {
		if enemy.Skills[i].Ready() {
			ready = append(ready, i)
		}
	}
	if len(ready) == 0 {
		return nil
	}
	if rng.Float64() >= rules.EnemySkillChance {
		return nil
	}
	return &enemy.Skills[ready[rng.Intn(len(ready))]]
}
