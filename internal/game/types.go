package game

// Class is one of the fixed combatant archetypes.
type Class string

const (
	ClassKnight Class = "knight"
	ClassArcher Class = "archer"
	ClassMage   Class = "mage"
	ClassRogue  Class = "rogue"
)

// Classes lists every known class in display order.
var Classes = []Class{ClassKnight, ClassArcher, ClassMage, ClassRogue}

// Valid reports whether c is a known class.
func (c Class) Valid() bool {
	for _, k := range Classes {
		if k == c {
			return true
		}
	}
	return false
}

type AttackType string

const (
	AttackSlash  AttackType = "slash"
	AttackPierce AttackType = "pierce"
	AttackMagic  AttackType = "magic"
)

type DefenseType string

const (
	DefenseHeavy  DefenseType = "heavy"
	DefenseMedium DefenseType = "medium"
	DefenseLight  DefenseType = "light"
)

// Turn tracks whose move it is, including the two terminal outcomes.
type Turn string

const (
	TurnPlayer  Turn = "player"
	TurnEnemy   Turn = "enemy"
	TurnVictory Turn = "victory"
	TurnDefeat  Turn = "defeat"
)

// Terminal reports whether the battle is over.
func (t Turn) Terminal() bool { return t == TurnVictory || t == TurnDefeat }

// Screen is the coarse UI phase the client should render.
type Screen string

const (
	ScreenMenu    Screen = "menu"
	ScreenCombat  Screen = "combat"
	ScreenResults Screen = "results"
)

// Action names recorded in combat log entries.
const (
	ActionStart   = "start"
	ActionAttack  = "attack"
	ActionSkill   = "skill"
	ActionDefend  = "defend"
	ActionVictory = "victory"
	ActionDefeat  = "defeat"
)
