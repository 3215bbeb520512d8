package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/dedupe"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/logging"
	"github.com/ericogr/joust-arena/internal/storage"
)

// FreshStateFunc builds the default game used when nothing usable is saved.
type FreshStateFunc func() (game.State, error)

// Store is the persistence boundary: the whole game state is one JSON blob
// under a fixed key.
type Store struct {
	repo  storage.Repository
	key   string
	fresh FreshStateFunc
}

func NewStore(repo storage.Repository, key string, fresh FreshStateFunc) *Store {
	return &Store{repo: repo, key: key, fresh: fresh}
}

// Key returns the slot key this store reads and writes.
func (s *Store) Key() string { return s.key }

// Load returns the saved state. Missing, unreadable or corrupted blobs fall
// back to a fresh default state; the boolean reports whether that happened.
// An error is returned only when even the default state cannot be built.
func (s *Store) Load(ctx context.Context) (game.State, bool, error) {
	type loaded struct {
		state game.State
		fresh bool
	}
	v, err, _ := dedupe.StateLoads.Do("state:"+s.key, func() (interface{}, error) {
		st, fresh, err := s.load(ctx)
		return loaded{state: st, fresh: fresh}, err
	})
	if err != nil {
		return game.State{}, false, err
	}
	l := v.(loaded)
	// Results are shared between concurrent callers.
	return l.state.Clone(), l.fresh, nil
}

func (s *Store) load(ctx context.Context) (game.State, bool, error) {
	blob, err := s.repo.LoadBlob(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logging.Info("no saved game; starting fresh", logging.Fields{constants.LogFieldKey: s.key})
		} else {
			logging.Error("failed to read saved game; starting fresh", err, logging.Fields{constants.LogFieldKey: s.key})
		}
		return s.freshState()
	}
	st, err := Decode(blob)
	if err != nil {
		logging.Error("saved game is corrupted; starting fresh", err, logging.Fields{constants.LogFieldKey: s.key, constants.LogFieldBytes: len(blob)})
		return s.freshState()
	}
	return st, false, nil
}

func (s *Store) freshState() (game.State, bool, error) {
	st, err := s.fresh()
	if err != nil {
		return game.State{}, false, err
	}
	return st, true, nil
}

// Save writes the full snapshot.
func (s *Store) Save(ctx context.Context, st game.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.repo.SaveBlob(ctx, s.key, b)
}

// Reset discards the saved game and stores a fresh one.
func (s *Store) Reset(ctx context.Context) (game.State, error) {
	st, err := s.fresh()
	if err != nil {
		return game.State{}, err
	}
	if err := s.repo.DeleteBlob(ctx, s.key); err != nil {
		logging.Warn("failed to delete saved game", err, logging.Fields{constants.LogFieldKey: s.key})
	}
	return st, s.Save(ctx, st)
}

// Decode parses and validates a saved blob.
func Decode(blob []byte) (game.State, error) {
	var st game.State
	if err := json.Unmarshal(blob, &st); err != nil {
		return game.State{}, err
	}
	if err := st.Validate(); err != nil {
		return game.State{}, err
	}
	return st, nil
}
