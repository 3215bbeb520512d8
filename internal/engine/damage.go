package engine

import (
	"math"

	"github.com/ericogr/joust-arena/internal/game"
)

// Rand is the only source of nondeterminism in the engine. *rand.Rand
// satisfies it; tests pass scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Hit is the outcome of one damage resolution.
type Hit struct {
	Damage     int     `json:"damage"`
	Critical   bool    `json:"critical"`
	Multiplier float64 `json:"multiplier"`
}

// Resolve computes the damage attacker deals to defender, using skill when
// non-nil. It draws exactly one Float64 for the critical roll and never
// mutates either combatant.
func Resolve(attacker, defender *game.Combatant, skill *game.Skill, rng Rand, rules Rules) Hit {
	hit := baseHit(attacker, defender, skill)
	if rng.Float64() < rules.CritChance {
		hit.Critical = true
		hit.Damage = atLeastOne(floor(float64(hit.Damage) * rules.CritMultiplier))
	}
	return hit
}

// Preview is Resolve without the critical roll.
func Preview(attacker, defender *game.Combatant, skill *game.Skill) Hit {
	return baseHit(attacker, defender, skill)
}

func baseHit(attacker, defender *game.Combatant, skill *game.Skill) Hit {
	power := attacker.Attack
	attackType := attacker.AttackType
	if skill != nil {
		power = skill.Damage
		attackType = skill.AttackType
	}
	mitigated := math.Max(1, float64(power)-float64(defender.Defense)/2)
	mult := Effectiveness(attackType, defender.DefenseType)
	return Hit{
		Damage:     atLeastOne(floor(mitigated * mult)),
		Multiplier: mult,
	}
}

// defended scales damage for a defensive stance, keeping the one-damage floor.
func defended(damage int, rules Rules) int {
	return atLeastOne(floor(float64(damage) * rules.DefendMultiplier))
}

// floor truncates toward negative infinity after absorbing binary
// representation noise, so 22.5*1.2 yields 27 rather than 26.
func floor(v float64) int {
	return int(math.Floor(v + 1e-9))
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
