package game

// Clone returns a copy of the combatant that shares no slices with c.
func (c Combatant) Clone() Combatant {
	out := c
	if c.Skills != nil {
		out.Skills = make([]Skill, len(c.Skills))
		copy(out.Skills, c.Skills)
	}
	return out
}

// Clone returns a deep copy of the tournament.
func (t Tournament) Clone() Tournament {
	out := t
	if t.Enemies != nil {
		out.Enemies = make([]Combatant, len(t.Enemies))
		for i := range t.Enemies {
			out.Enemies[i] = t.Enemies[i].Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the session, or nil for a nil receiver.
func (s *CombatSession) Clone() *CombatSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Enemy = s.Enemy.Clone()
	if s.Log != nil {
		out.Log = make([]LogEntry, len(s.Log))
		copy(out.Log, s.Log)
	}
	return &out
}

// Clone returns a deep copy of the whole snapshot. Transitions work on the
// clone so the previous state stays untouched when a command is rejected.
func (s State) Clone() State {
	out := s
	if s.Player.Roster != nil {
		out.Player.Roster = make([]Combatant, len(s.Player.Roster))
		for i := range s.Player.Roster {
			out.Player.Roster[i] = s.Player.Roster[i].Clone()
		}
	}
	if s.Tournaments != nil {
		out.Tournaments = make([]Tournament, len(s.Tournaments))
		for i := range s.Tournaments {
			out.Tournaments[i] = s.Tournaments[i].Clone()
		}
	}
	out.Combat = s.Combat.Clone()
	return out
}
