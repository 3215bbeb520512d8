package service

import (
	"context"
	"testing"
	"time"

	"github.com/ericogr/joust-arena/internal/config"
	"github.com/ericogr/joust-arena/internal/engine"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/roster"
	"github.com/ericogr/joust-arena/internal/storage"
	"github.com/stretchr/testify/require"
)

const testKey = "medieval-tournament-state"

// calmRand never rolls a critical hit and never lets the opponent use a
// skill, so every exchange is deterministic.
type calmRand struct{}

func (calmRand) Float64() float64 { return 0.99 }
func (calmRand) Intn(int) int     { return 0 }

func testConfig(t *testing.T) *config.LoadedConfig {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func newTestStore(t *testing.T, repo storage.Repository) *Store {
	t.Helper()
	cfg := testConfig(t)
	return NewStore(repo, testKey, func() (game.State, error) { return roster.NewState(cfg) })
}

func newTestSession(t *testing.T, repo storage.Repository, pacing time.Duration) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), newTestStore(t, repo), SessionOptions{
		Rules:  engine.DefaultRules(),
		Rand:   calmRand{},
		Pacing: pacing,
		Now:    func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

// waitFor reads states until one satisfies ok or the deadline passes.
func waitFor(t *testing.T, ch <-chan game.State, ok func(game.State) bool) game.State {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st, open := <-ch:
			require.True(t, open, "subscription closed early")
			if ok(st) {
				return st
			}
		case <-deadline:
			t.Fatal("timed out waiting for state")
		}
	}
}

func firstTournamentID(s game.State) string { return s.Tournaments[0].ID }
