package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRoster       = errors.New("roster is empty")
	ErrUnknownVersion    = errors.New("unknown state version")
	ErrDanglingSession   = errors.New("combat session references unknown tournament")
	ErrInvalidCombatant  = errors.New("combatant has no max health")
	ErrInvalidTournament = errors.New("tournament has no enemies")
	ErrInvalidTurn       = errors.New("combat session has an unknown turn")
	ErrInvalidSkill      = errors.New("skill has negative damage or energy cost")
)

// Validate checks the structural invariants a loaded snapshot must satisfy
// and clamps the numeric ones back into range. A non-nil error means the
// snapshot cannot be trusted at all.
func (s *State) Validate() error {
	if s.Version != StateVersion {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, s.Version)
	}
	if len(s.Player.Roster) == 0 {
		return ErrEmptyRoster
	}
	for i := range s.Player.Roster {
		if err := s.Player.Roster[i].normalize(); err != nil {
			return fmt.Errorf("roster[%d]: %w", i, err)
		}
	}
	if s.Player.ActiveIndex < 0 || s.Player.ActiveIndex >= len(s.Player.Roster) {
		s.Player.ActiveIndex = 0
	}
	if s.Player.MaxEnergy < 0 {
		s.Player.MaxEnergy = 0
	}
	s.Player.Energy = clamp(s.Player.Energy, 0, s.Player.MaxEnergy)
	if s.Player.Gold < 0 {
		s.Player.Gold = 0
	}

	for i := range s.Tournaments {
		t := &s.Tournaments[i]
		if len(t.Enemies) == 0 {
			return fmt.Errorf("tournament %q: %w", t.Name, ErrInvalidTournament)
		}
		for j := range t.Enemies {
			if err := t.Enemies[j].normalize(); err != nil {
				return fmt.Errorf("tournament %q enemy[%d]: %w", t.Name, j, err)
			}
		}
		t.Progress = clamp(t.Progress, 0, len(t.Enemies))
		t.Completed = t.Progress == len(t.Enemies)
	}

	if s.Combat != nil {
		if s.FindTournament(s.Combat.TournamentID) == nil {
			return ErrDanglingSession
		}
		switch s.Combat.Turn {
		case TurnPlayer, TurnEnemy, TurnVictory, TurnDefeat:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidTurn, s.Combat.Turn)
		}
		if err := s.Combat.Enemy.normalize(); err != nil {
			return fmt.Errorf("combat enemy: %w", err)
		}
	}
	switch {
	case s.Combat == nil:
		s.Screen = ScreenMenu
	case s.Combat.Turn.Terminal():
		s.Screen = ScreenResults
	default:
		s.Screen = ScreenCombat
	}
	return nil
}

func (c *Combatant) normalize() error {
	if c.MaxHealth <= 0 {
		return ErrInvalidCombatant
	}
	c.Health = clamp(c.Health, 0, c.MaxHealth)
	if c.Level < 1 {
		c.Level = 1
	}
	if c.Experience < 0 {
		c.Experience = 0
	}
	for i := range c.Skills {
		sk := &c.Skills[i]
		if sk.Damage < 0 || sk.EnergyCost < 0 {
			return fmt.Errorf("skill %q: %w", sk.ID, ErrInvalidSkill)
		}
		if sk.Cooldown < 0 {
			sk.Cooldown = 0
		}
		sk.CurrentCooldown = clamp(sk.CurrentCooldown, 0, sk.Cooldown)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
