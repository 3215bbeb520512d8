package engine

import (
	"testing"

	"github.com/ericogr/joust-arena/internal/game"
)

// scriptedRand replays fixed draws. Once a script runs dry it returns values
// that never trigger a critical hit or an enemy skill, and counts the extra
// draws so tests can assert on how many were consumed.
type scriptedRand struct {
	floats []float64
	ints   []int
	fDraws int
	iDraws int
}

func (r *scriptedRand) Float64() float64 {
	r.fDraws++
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.iDraws++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func noCrit() *scriptedRand { return &scriptedRand{} }

func knight() game.Combatant {
	return game.Combatant{
		ID: "k1", Name: "Sir Galahad", Class: game.ClassKnight,
		Health: 120, MaxHealth: 120, Attack: 25, Defense: 15, Speed: 8,
		AttackType: game.AttackSlash, DefenseType: game.DefenseHeavy, Level: 1,
		Skills: []game.Skill{
			{ID: "shield_bash", Name: "Shield Bash", Damage: 30, EnergyCost: 20, Cooldown: 2, AttackType: game.AttackSlash},
			{ID: "mighty_cleave", Name: "Mighty Cleave", Damage: 45, EnergyCost: 35, Cooldown: 4, AttackType: game.AttackSlash},
		},
	}
}

func mage(name string, level int) game.Combatant {
	return game.Combatant{
		ID: "m-" + name, Name: name, Class: game.ClassMage,
		Health: 70, MaxHealth: 70, Attack: 28, Defense: 5, Speed: 10,
		AttackType: game.AttackMagic, DefenseType: game.DefenseLight, Level: level,
		Skills: []game.Skill{
			{ID: "fireball", Name: "Fireball", Damage: 40, EnergyCost: 25, Cooldown: 2, AttackType: game.AttackMagic},
			{ID: "arcane_storm", Name: "Arcane Storm", Damage: 55, EnergyCost: 40, Cooldown: 4, AttackType: game.AttackMagic},
		},
	}
}

// newMenuState returns a game on the menu with one knight and a
// three-round bracket of mages at levels 1, 2 and 3.
func newMenuState() game.State {
	return game.State{
		Version: game.StateVersion,
		Player: game.Player{
			Roster:    []game.Combatant{knight()},
			Energy:    100,
			MaxEnergy: 100,
			Gold:      100,
		},
		Tournaments: []game.Tournament{
			{
				ID: "fair", Name: "Village Fair",
				Enemies:    []game.Combatant{mage("Osric", 1), mage("Morgana", 2), mage("Merlin", 3)},
				RewardGold: 50, RewardExperience: 50,
			},
		},
		Screen: game.ScreenMenu,
	}
}

// mustApply applies cmd and fails the test on rejection.
func mustApply(t *testing.T, s game.State, cmd Command, rng Rand) game.State {
	t.Helper()
	next, err := Apply(s, cmd, rng, DefaultRules())
	if err != nil {
		t.Fatalf("apply %s: unexpected error: %v", cmd.Kind, err)
	}
	return next
}
