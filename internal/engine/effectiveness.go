package engine

import "github.com/ericogr/joust-arena/internal/game"

const (
	multWeak    = 0.8
	multNeutral = 1.0
	multStrong  = 1.2
)

var effectivenessTable = map[game.AttackType]map[game.DefenseType]float64{
	game.AttackSlash: {
		game.DefenseHeavy:  multWeak,
		game.DefenseMedium: multStrong,
		game.DefenseLight:  multNeutral,
	},
	game.AttackPierce: {
		game.DefenseHeavy:  multStrong,
		game.DefenseMedium: multWeak,
		game.DefenseLight:  multNeutral,
	},
	game.AttackMagic: {
		game.DefenseHeavy:  multNeutral,
		game.DefenseMedium: multNeutral,
		game.DefenseLight:  multWeak,
	},
}

// Effectiveness returns the damage multiplier of an attack type against a
// defense type. Unknown tags are neutral.
func Effectiveness(attack game.AttackType, defense game.DefenseType) float64 {
	if row, ok := effectivenessTable[attack]; ok {
		if m, ok := row[defense]; ok {
			return m
		}
	}
	return multNeutral
}

// DescribeMultiplier names an effectiveness multiplier for display.
func DescribeMultiplier(m float64) string {
	switch {
	case m > multNeutral:
		return "strong"
	case m < multNeutral:
		return "weak"
	default:
		return "neutral"
	}
}
