package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() State {
	hero := Combatant{ID: "h", Name: "Hero", Class: ClassKnight, Health: 50, MaxHealth: 100, Level: 1,
		Skills: []Skill{{ID: "bash", Cooldown: 2}}}
	foe := Combatant{ID: "f", Name: "Foe", Class: ClassRogue, Health: 80, MaxHealth: 80, Level: 1}
	return State{
		Version: StateVersion,
		Player:  Player{Roster: []Combatant{hero}, Energy: 40, MaxEnergy: 100},
		Tournaments: []Tournament{
			{ID: "t1", Name: "Fair", Enemies: []Combatant{foe, foe}},
		},
		Screen: ScreenMenu,
	}
}

func TestValidate_ClampsOutOfRangeValues(t *testing.T) {
	s := sampleState()
	s.Player.Roster[0].Health = 500
	s.Player.Roster[0].Skills[0].CurrentCooldown = 9
	s.Player.Energy = 250
	s.Player.ActiveIndex = 4
	s.Tournaments[0].Progress = 7
	s.Screen = ScreenCombat

	require.NoError(t, s.Validate())

	assert.Equal(t, 100, s.Player.Roster[0].Health)
	assert.Equal(t, 2, s.Player.Roster[0].Skills[0].CurrentCooldown)
	assert.Equal(t, 100, s.Player.Energy)
	assert.Equal(t, 0, s.Player.ActiveIndex)
	assert.Equal(t, 2, s.Tournaments[0].Progress)
	assert.True(t, s.Tournaments[0].Completed)
	assert.Equal(t, ScreenMenu, s.Screen)
}

func TestValidate_CompletedFollowsProgress(t *testing.T) {
	s := sampleState()
	s.Tournaments[0].Completed = true
	require.NoError(t, s.Validate())
	assert.False(t, s.Tournaments[0].Completed)
}

func TestValidate_ScreenFollowsSession(t *testing.T) {
	s := sampleState()
	s.Combat = &CombatSession{TournamentID: "t1", Enemy: s.Tournaments[0].Enemies[0], Turn: TurnDefeat}
	require.NoError(t, s.Validate())
	assert.Equal(t, ScreenResults, s.Screen)

	s.Combat.Turn = TurnEnemy
	require.NoError(t, s.Validate())
	assert.Equal(t, ScreenCombat, s.Screen)
}

func TestValidate_RejectsBrokenSnapshots(t *testing.T) {
	cases := map[string]struct {
		mutate func(*State)
		want   error
	}{
		"version":    {func(s *State) { s.Version = 99 }, ErrUnknownVersion},
		"roster":     {func(s *State) { s.Player.Roster = nil }, ErrEmptyRoster},
		"combatant":  {func(s *State) { s.Player.Roster[0].MaxHealth = 0 }, ErrInvalidCombatant},
		"skillCost":  {func(s *State) { s.Player.Roster[0].Skills[0].EnergyCost = -500 }, ErrInvalidSkill},
		"skillPower": {func(s *State) { s.Player.Roster[0].Skills[0].Damage = -1 }, ErrInvalidSkill},
		"tournament": {func(s *State) { s.Tournaments[0].Enemies = nil }, ErrInvalidTournament},
		"dangling":   {func(s *State) { s.Combat = &CombatSession{TournamentID: "gone", Turn: TurnPlayer} }, ErrDanglingSession},
		"unknownTurn": {func(s *State) {
			s.Combat = &CombatSession{TournamentID: "t1", Enemy: s.Tournaments[0].Enemies[0], Turn: "nap"}
		}, ErrInvalidTurn},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := sampleState()
			tc.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tc.want)
		})
	}
}

func TestClone_SharesNothing(t *testing.T) {
	s := sampleState()
	s.Combat = &CombatSession{TournamentID: "t1", Enemy: s.Tournaments[0].Enemies[0], Turn: TurnPlayer,
		Log: []LogEntry{{Seq: 1, Message: "begin"}}}

	c := s.Clone()
	c.Player.Roster[0].Skills[0].CurrentCooldown = 2
	c.Tournaments[0].Enemies[0].Health = 1
	c.Combat.Enemy.Health = 1
	c.Combat.Log[0].Message = "changed"

	assert.Equal(t, 0, s.Player.Roster[0].Skills[0].CurrentCooldown)
	assert.Equal(t, 80, s.Tournaments[0].Enemies[0].Health)
	assert.Equal(t, 80, s.Combat.Enemy.Health)
	assert.Equal(t, "begin", s.Combat.Log[0].Message)

	var empty *CombatSession
	assert.Nil(t, empty.Clone())
}

func TestCombatSession_LastEntries(t *testing.T) {
	cs := &CombatSession{Log: []LogEntry{{Seq: 1}, {Seq: 2}, {Seq: 3}}}
	assert.Len(t, cs.LastEntries(5), 3)
	last := cs.LastEntries(2)
	require.Len(t, last, 2)
	assert.Equal(t, 2, last[0].Seq)
	assert.Nil(t, (*CombatSession)(nil).LastEntries(2))
}
