package engine

import "github.com/ericogr/joust-arena/internal/game"

type CommandKind string

const (
	CmdStartCombat     CommandKind = "start_combat"
	CmdAttack          CommandKind = "attack"
	CmdUseSkill        CommandKind = "use_skill"
	CmdDefend          CommandKind = "defend"
	CmdEnemyTurn       CommandKind = "enemy_turn"
	CmdContinue        CommandKind = "continue"
	CmdSelectCombatant CommandKind = "select_combatant"
	CmdRest            CommandKind = "rest"
)

// Command is a discrete input to the state machine. Only the fields relevant
// to Kind are read.
type Command struct {
	Kind         CommandKind `json:"kind"`
	TournamentID string      `json:"tournament_id,omitempty"`
	SkillID      string      `json:"skill_id,omitempty"`
	Index        int         `json:"index,omitempty"`
}

func StartCombat(tournamentID string) Command {
	return Command{Kind: CmdStartCombat, TournamentID: tournamentID}
}
func Attack() Command                   { return Command{Kind: CmdAttack} }
func UseSkill(skillID string) Command   { return Command{Kind: CmdUseSkill, SkillID: skillID} }
func Defend() Command                   { return Command{Kind: CmdDefend} }
func EnemyTurn() Command                { return Command{Kind: CmdEnemyTurn} }
func Continue() Command                 { return Command{Kind: CmdContinue} }
func SelectCombatant(index int) Command { return Command{Kind: CmdSelectCombatant, Index: index} }
func Rest() Command                     { return Command{Kind: CmdRest} }

// Check reports whether cmd is legal in s without changing anything.
func Check(s *game.State, cmd Command, rules Rules) error {
	switch cmd.Kind {
	case CmdStartCombat:
		if err := requireMenu(s); err != nil {
			return err
		}
		t := s.FindTournament(cmd.TournamentID)
		if t == nil {
			return ErrTournamentNotFound
		}
		if t.Completed || t.NextEnemy() == nil {
			return ErrTournamentCompleted
		}
		active := s.Player.Active()
		if active == nil {
			return ErrInvalidCombatant
		}
		if !active.Alive() {
			return ErrCombatantDown
		}
		return nil
	case CmdAttack, CmdDefend:
		return requireTurn(s, game.TurnPlayer)
	case CmdUseSkill:
		if err := requireTurn(s, game.TurnPlayer); err != nil {
			return err
		}
		sk := s.Player.Active().FindSkill(cmd.SkillID)
		if sk == nil {
			return ErrSkillNotFound
		}
		if !sk.Ready() {
			return ErrSkillOnCooldown
		}
		if s.Player.Energy < sk.EnergyCost {
			return ErrInsufficientEnergy
		}
		return nil
	case CmdEnemyTurn:
		return requireTurn(s, game.TurnEnemy)
	case CmdContinue:
		if s.Combat == nil || !s.Combat.Turn.Terminal() {
			return ErrNotOnResults
		}
		return nil
	case CmdSelectCombatant:
		if err := requireMenu(s); err != nil {
			return err
		}
		if cmd.Index < 0 || cmd.Index >= len(s.Player.Roster) {
			return ErrInvalidCombatant
		}
		return nil
	case CmdRest:
		if err := requireMenu(s); err != nil {
			return err
		}
		if s.Player.Active() == nil {
			return ErrInvalidCombatant
		}
		if s.Player.Gold < rules.RestCost {
			return ErrInsufficientGold
		}
		return nil
	default:
		return ErrUnknownCommand
	}
}

func requireMenu(s *game.State) error {
	if s.Combat == nil {
		return nil
	}
	if s.Combat.Turn.Terminal() {
		return ErrResultsPending
	}
	return ErrCombatInProgress
}

func requireTurn(s *game.State, turn game.Turn) error {
	if !s.Combat.Active() {
		return ErrNoCombat
	}
	if s.Player.Active() == nil {
		return ErrInvalidCombatant
	}
	if s.Combat.Turn != turn {
		if turn == game.TurnPlayer {
			return ErrNotPlayerTurn
		}
		return ErrNotEnemyTurn
	}
	return nil
}
