package service

import (
	"context"
	"testing"
	"time"

	"github.com/ericogr/joust-arena/internal/engine"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_PersistsFreshGame(t *testing.T) {
	repo := storage.NewMemoryRepo()
	s := newTestSession(t, repo, 0)
	assert.Equal(t, 1, repo.Saves())
	assert.Equal(t, game.ScreenMenu, s.State().Screen)
}

func TestSession_ImmediateOpponentReply(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepo()
	s := newTestSession(t, repo, 0)

	st, err := s.Submit(ctx, engine.StartCombat(firstTournamentID(s.State())))
	require.NoError(t, err)
	require.Equal(t, game.TurnPlayer, st.Combat.Turn)

	st, err = s.Submit(ctx, engine.Attack())
	require.NoError(t, err)

	// Cutpurse Tom: 80 - (25 - 4) = 59. Knight: 120 - floor(16.5 * 1.2) = 101.
	assert.Equal(t, game.TurnPlayer, st.Combat.Turn)
	assert.Equal(t, 59, st.Combat.Enemy.Health)
	assert.Equal(t, 101, st.Player.Roster[0].Health)
	require.Len(t, st.Combat.Log, 3)
	assert.Equal(t, game.TurnEnemy, st.Combat.Log[2].Turn)
	assert.Equal(t, 2024, st.UpdatedAt.Year())
	// Fresh save, start, attack and the opponent's reply.
	assert.Equal(t, 4, repo.Saves())

	reloaded, fresh, err := newTestStore(t, repo).Load(ctx)
	require.NoError(t, err)
	assert.False(t, fresh)
	assert.Equal(t, st.Combat.Log, reloaded.Combat.Log)
}

func TestSession_RejectedCommandChangesNothing(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepo()
	s := newTestSession(t, repo, 0)
	before := s.State()
	updates, cancel, err := s.Subscribe()
	require.NoError(t, err)
	defer cancel()
	<-updates

	got, err := s.Submit(ctx, engine.Attack())
	assert.ErrorIs(t, err, engine.ErrNoCombat)
	assert.Equal(t, before, got)
	assert.Equal(t, before, s.State())
	assert.Equal(t, 1, repo.Saves())
	select {
	case <-updates:
		t.Fatal("rejected command must not publish")
	default:
	}

	_, err = s.Submit(ctx, engine.EnemyTurn())
	assert.ErrorIs(t, err, ErrNotPlayerCommand)
}

func TestSession_PacedOpponentReply(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, storage.NewMemoryRepo(), 20*time.Millisecond)
	updates, cancel, err := s.Subscribe()
	require.NoError(t, err)
	defer cancel()

	_, err = s.Submit(ctx, engine.StartCombat(firstTournamentID(s.State())))
	require.NoError(t, err)
	st, err := s.Submit(ctx, engine.Attack())
	require.NoError(t, err)
	require.Equal(t, game.TurnEnemy, st.Combat.Turn)

	_, err = s.Submit(ctx, engine.Attack())
	assert.ErrorIs(t, err, engine.ErrNotPlayerTurn)

	replied := waitFor(t, updates, func(st game.State) bool {
		return st.Combat != nil && st.Combat.Turn == game.TurnPlayer && len(st.Combat.Log) == 3
	})
	assert.Equal(t, 101, replied.Player.Roster[0].Health)
}

func TestSession_ResetCancelsPendingReply(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, storage.NewMemoryRepo(), 30*time.Millisecond)

	_, err := s.Submit(ctx, engine.StartCombat(firstTournamentID(s.State())))
	require.NoError(t, err)
	_, err = s.Submit(ctx, engine.Attack())
	require.NoError(t, err)

	st, err := s.Reset(ctx)
	require.NoError(t, err)
	require.Nil(t, st.Combat)

	time.Sleep(120 * time.Millisecond)
	after := s.State()
	assert.Nil(t, after.Combat)
	assert.Equal(t, game.ScreenMenu, after.Screen)
	assert.Equal(t, 120, after.Player.Roster[0].Health)
}

func TestSession_ResumesOpponentTurnOnLoad(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepo()
	store := newTestStore(t, repo)
	st, _, err := store.Load(ctx)
	require.NoError(t, err)
	st, err = engine.Apply(st, engine.StartCombat(firstTournamentID(st)), calmRand{}, engine.DefaultRules())
	require.NoError(t, err)
	st, err = engine.Apply(st, engine.Attack(), calmRand{}, engine.DefaultRules())
	require.NoError(t, err)
	require.Equal(t, game.TurnEnemy, st.Combat.Turn)
	require.NoError(t, store.Save(ctx, st))

	s := newTestSession(t, repo, 0)
	resumed := s.State()
	assert.Equal(t, game.TurnPlayer, resumed.Combat.Turn)
	assert.Len(t, resumed.Combat.Log, 3)
}

func TestSession_CloseRejectsFurtherInput(t *testing.T) {
	s := newTestSession(t, storage.NewMemoryRepo(), 0)
	updates, _, err := s.Subscribe()
	require.NoError(t, err)
	<-updates

	s.Close()

	_, open := <-updates
	assert.False(t, open)
	_, err = s.Submit(context.Background(), engine.Rest())
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, _, err = s.Subscribe()
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_QueriesReflectState(t *testing.T) {
	s := newTestSession(t, storage.NewMemoryRepo(), 0)
	_, err := s.Preview("")
	assert.ErrorIs(t, err, engine.ErrNoCombat)

	_, err = s.Submit(context.Background(), engine.StartCombat(firstTournamentID(s.State())))
	require.NoError(t, err)
	hit, err := s.Preview("")
	require.NoError(t, err)
	assert.Equal(t, 21, hit.Damage)

	kinds := map[engine.CommandKind]bool{}
	for _, o := range s.Actions() {
		kinds[o.Command.Kind] = true
	}
	assert.True(t, kinds[engine.CmdAttack])
	assert.True(t, kinds[engine.CmdDefend])
	assert.True(t, kinds[engine.CmdUseSkill])
	assert.Equal(t, engine.DefaultRules(), s.Rules())
}
