package game

import "time"

// Skill is a special attack owned by a combatant. CurrentCooldown counts the
// turns left before it can be used again; zero means ready.
type Skill struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Damage          int        `json:"damage"`
	EnergyCost      int        `json:"energy_cost"`
	Cooldown        int        `json:"cooldown"`
	CurrentCooldown int        `json:"current_cooldown"`
	AttackType      AttackType `json:"attack_type"`
}

// Ready reports whether the skill is off cooldown.
func (s Skill) Ready() bool { return s.CurrentCooldown == 0 }

// Combatant is either a roster character or a tournament enemy. Both sides
// share the same stat block so the damage resolver treats them alike.
type Combatant struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Class       Class       `json:"class"`
	Health      int         `json:"health"`
	MaxHealth   int         `json:"max_health"`
	Attack      int         `json:"attack"`
	Defense     int         `json:"defense"`
	Speed       int         `json:"speed"`
	AttackType  AttackType  `json:"attack_type"`
	DefenseType DefenseType `json:"defense_type"`
	Skills      []Skill     `json:"skills"`
	Level       int         `json:"level"`
	Experience  int         `json:"experience"`
}

// Alive reports whether the combatant can still act.
func (c Combatant) Alive() bool { return c.Health > 0 }

// FindSkill returns a pointer into c.Skills for the given id, or nil.
func (c *Combatant) FindSkill(id string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i]
		}
	}
	return nil
}

// LogEntry is one resolved action in a combat session.
type LogEntry struct {
	Seq      int    `json:"seq"`
	Turn     Turn   `json:"turn"`
	Actor    string `json:"actor"`
	Action   string `json:"action"`
	SkillID  string `json:"skill_id,omitempty"`
	Damage   int    `json:"damage"`
	Critical bool   `json:"critical"`
	Defended bool   `json:"defended"`
	Message  string `json:"message"`
}

// CombatSession is the battle in progress. Enemy is a private copy of the
// tournament's template so damage never leaks back before the fight ends.
type CombatSession struct {
	ID              string     `json:"id"`
	TournamentID    string     `json:"tournament_id"`
	Enemy           Combatant  `json:"enemy"`
	Turn            Turn       `json:"turn"`
	PlayerDefending bool       `json:"player_defending"`
	Log             []LogEntry `json:"log"`
}

// Active reports whether the session still accepts actions.
func (s *CombatSession) Active() bool {
	return s != nil && (s.Turn == TurnPlayer || s.Turn == TurnEnemy)
}

// LastEntries returns at most n trailing log entries.
func (s *CombatSession) LastEntries(n int) []LogEntry {
	if s == nil || n <= 0 {
		return nil
	}
	if len(s.Log) <= n {
		return s.Log
	}
	return s.Log[len(s.Log)-n:]
}

type Tournament struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Enemies          []Combatant `json:"enemies"`
	Progress         int         `json:"progress"`
	Completed        bool        `json:"completed"`
	RewardGold       int         `json:"reward_gold"`
	RewardExperience int         `json:"reward_experience"`
}

// NextEnemy returns the next opponent or nil when the bracket is exhausted.
func (t *Tournament) NextEnemy() *Combatant {
	if t.Progress < 0 || t.Progress >= len(t.Enemies) {
		return nil
	}
	return &t.Enemies[t.Progress]
}

type Player struct {
	Roster         []Combatant `json:"roster"`
	ActiveIndex    int         `json:"active_index"`
	Energy         int         `json:"energy"`
	MaxEnergy      int         `json:"max_energy"`
	Gold           int         `json:"gold"`
	TournamentWins int         `json:"tournament_wins"`
}

// Active returns the active roster member, or nil when the index is stale.
func (p *Player) Active() *Combatant {
	if p.ActiveIndex < 0 || p.ActiveIndex >= len(p.Roster) {
		return nil
	}
	return &p.Roster[p.ActiveIndex]
}

// State is the whole game snapshot persisted as one blob.
type State struct {
	Version     int            `json:"version"`
	Player      Player         `json:"player"`
	Tournaments []Tournament   `json:"tournaments"`
	Combat      *CombatSession `json:"combat,omitempty"`
	Screen      Screen         `json:"screen"`
	Message     string         `json:"message"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// StateVersion is bumped whenever the persisted layout changes incompatibly.
const StateVersion = 1

// FindTournament returns a pointer into s.Tournaments, or nil.
func (s *State) FindTournament(id string) *Tournament {
	for i := range s.Tournaments {
		if s.Tournaments[i].ID == id {
			return &s.Tournaments[i]
		}
	}
	return nil
}
