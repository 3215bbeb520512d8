package engine

import "errors"

// Rejections. Every one of these leaves the state exactly as it was.
var (
	ErrUnknownCommand      = errors.New("unknown command")
	ErrNoCombat            = errors.New("no combat in progress")
	ErrCombatInProgress    = errors.New("combat in progress")
	ErrResultsPending      = errors.New("battle results must be acknowledged first")
	ErrNotPlayerTurn       = errors.New("not the player's turn")
	ErrNotEnemyTurn        = errors.New("not the opponent's turn")
	ErrNotOnResults        = errors.New("no battle results to continue from")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrSkillOnCooldown     = errors.New("skill is on cooldown")
	ErrInsufficientEnergy  = errors.New("insufficient energy")
	ErrInsufficientGold    = errors.New("insufficient gold")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrTournamentCompleted = errors.New("tournament already completed")
	ErrInvalidCombatant    = errors.New("invalid combatant")
	ErrCombatantDown       = errors.New("active combatant cannot fight")
)
