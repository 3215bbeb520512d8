package engine

import (
	"fmt"

	"github.com/ericogr/joust-arena/internal/game"
	"github.com/google/uuid"
)

// Apply is the single transition function of the game. prev is never
// modified: the returned state is a fresh copy, or prev itself together with
// an error when the command is rejected.
func Apply(prev game.State, cmd Command, rng Rand, rules Rules) (game.State, error) {
	if err := Check(&prev, cmd, rules); err != nil {
		return prev, err
	}
	next := prev.Clone()
	tc := newTurnContext(&next, rng, rules)

	switch cmd.Kind {
	case CmdStartCombat:
		tc.startCombat(cmd.TournamentID)
	case CmdAttack:
		tc.playerStrike(nil)
	case CmdUseSkill:
		tc.useSkill(cmd.SkillID)
	case CmdDefend:
		tc.defend()
	case CmdEnemyTurn:
		tc.enemyTurn()
	case CmdContinue:
		next.Combat = nil
		next.Screen = game.ScreenMenu
		next.Message = "Choose your next tournament."
	case CmdSelectCombatant:
		next.Player.ActiveIndex = cmd.Index
		next.Message = next.Player.Active().Name + " steps forward."
	case CmdRest:
		tc.rest()
	}
	return next, nil
}

func (tc *turnContext) startCombat(tournamentID string) {
	t := tc.s.FindTournament(tournamentID)
	enemy := t.NextEnemy().Clone()
	enemy.Health = enemy.MaxHealth
	for i := range enemy.Skills {
		enemy.Skills[i].CurrentCooldown = 0
	}
	tc.s.Combat = &game.CombatSession{
		ID:           uuid.NewString(),
		TournamentID: t.ID,
		Enemy:        enemy,
		Turn:         game.TurnPlayer,
		Log:          make([]game.LogEntry, 0, 16),
	}
	tc.s.Screen = game.ScreenCombat
	tc.add(game.LogEntry{Turn: game.TurnPlayer, Actor: tc.active().Name, Action: game.ActionStart,
		Message: fmt.Sprintf("%s: %s faces %s (round %d of %d)", t.Name, tc.active().Name, enemy.Name, t.Progress+1, len(t.Enemies))})
}

func (tc *turnContext) useSkill(skillID string) {
	sk := tc.active().FindSkill(skillID)
	tc.s.Player.Energy -= sk.EnergyCost
	sk.CurrentCooldown = sk.Cooldown
	tc.playerStrike(sk)
}

// playerStrike resolves the player's attack (plain when skill is nil) and
// passes control to the opponent unless the blow was decisive.
func (tc *turnContext) playerStrike(skill *game.Skill) {
	active, enemy := tc.active(), tc.enemy()
	hit := Resolve(active, enemy, skill, tc.rng, tc.rules)
	takeDamage(enemy, hit.Damage)

	entry := game.LogEntry{Turn: game.TurnPlayer, Actor: active.Name, Action: game.ActionAttack, Damage: hit.Damage, Critical: hit.Critical}
	verb := "strikes"
	if skill != nil {
		entry.Action = game.ActionSkill
		entry.SkillID = skill.ID
		verb = "uses " + skill.Name + " on"
	}
	entry.Message = hitMessage(active.Name, enemy.Name, verb, hit.Damage, hit.Critical, false)
	tc.add(entry)

	if !enemy.Alive() {
		tc.victory()
		return
	}
	tc.s.Combat.Turn = game.TurnEnemy
}

func (tc *turnContext) defend() {
	tc.s.Combat.PlayerDefending = true
	tc.add(game.LogEntry{Turn: game.TurnPlayer, Actor: tc.active().Name, Action: game.ActionDefend,
		Message: tc.active().Name + " raises their guard"})
	tc.s.Combat.Turn = game.TurnEnemy
}

func (tc *turnContext) enemyTurn() {
	active, enemy := tc.active(), tc.enemy()
	skill := chooseEnemySkill(enemy, tc.rng, tc.rules)
	if skill != nil {
		skill.CurrentCooldown = skill.Cooldown
	}
	hit := Resolve(enemy, active, skill, tc.rng, tc.rules)
	dmg := hit.Damage
	wasDefending := tc.s.Combat.PlayerDefending
	if wasDefending {
		dmg = defended(dmg, tc.rules)
	}
	tc.s.Combat.PlayerDefending = false
	takeDamage(active, dmg)

	entry := game.LogEntry{Turn: game.TurnEnemy, Actor: enemy.Name, Action: game.ActionAttack, Damage: dmg, Critical: hit.Critical, Defended: wasDefending}
	verb := "strikes"
	if skill != nil {
		entry.Action = game.ActionSkill
		entry.SkillID = skill.ID
		verb = "uses " + skill.Name + " on"
	}
	entry.Message = hitMessage(enemy.Name, active.Name, verb, dmg, hit.Critical, wasDefending)
	tc.add(entry)

	if !active.Alive() {
		tc.defeat()
		return
	}

	// End of a full cycle.
	tickCooldowns(active)
	tickCooldowns(enemy)
	tc.addEnergy(tc.rules.EnergyRegen)
	tc.s.Combat.Turn = game.TurnPlayer
}

func (tc *turnContext) rest() {
	c := tc.active()
	tc.s.Player.Gold -= tc.rules.RestCost
	c.Health = c.MaxHealth
	tc.s.Player.Energy = tc.s.Player.MaxEnergy
	tc.s.Message = fmt.Sprintf("%s rests at the inn and recovers fully (-%d gold)", c.Name, tc.rules.RestCost)
}
