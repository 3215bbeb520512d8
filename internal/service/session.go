package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/engine"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/logging"
)

var (
	ErrSessionClosed    = errors.New("session is closed")
	ErrNotPlayerCommand = errors.New("command is reserved for the opponent")
	ErrSubscriberLimit  = errors.New("too many subscribers")
)

const (
	maxSubscribers       = 64
	subscriberBufferSize = 4
)

// Session drives one game. Inputs are processed one at a time under mu;
// the opponent's reply is queued as a pending transition and drained either
// immediately (no pacing) or by a single-fire timer.
type Session struct {
	mu      sync.Mutex
	state   game.State
	store   *Store
	rules   engine.Rules
	rng     engine.Rand
	pacing  time.Duration
	now     func() time.Time
	pending []engine.Command
	// gen invalidates deferred callbacks scheduled before a Reset or Close.
	gen    uint64
	timer  *time.Timer
	closed bool
	subs   map[int]chan game.State
	nextID int
}

type SessionOptions struct {
	Rules  engine.Rules
	Rand   engine.Rand
	Pacing time.Duration
	Now    func() time.Time
}

// NewSession loads the saved game and resumes any opponent turn that was
// pending when it was saved.
func NewSession(ctx context.Context, store *Store, opts SessionOptions) (*Session, error) {
	st, fresh, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{
		state:  st,
		store:  store,
		rules:  opts.Rules,
		rng:    opts.Rand,
		pacing: opts.Pacing,
		now:    opts.Now,
		subs:   make(map[int]chan game.State),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if fresh {
		s.persistLocked(ctx)
	}
	s.queueOpponentLocked(ctx)
	return s, nil
}

// State returns a copy of the current snapshot.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Rules returns the balance constants in use.
func (s *Session) Rules() engine.Rules { return s.rules }

// Actions lists the commands the player may issue now.
func (s *Session) Actions() []engine.ActionOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.AvailableActions(s.state, s.rules)
}

// Preview returns the expected non-critical damage of an attack or skill.
func (s *Session) Preview(skillID string) (engine.Hit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.PreviewDamage(s.state, skillID)
}

// Submit applies a player command. Rejected commands change nothing and
// return the engine's sentinel error alongside the unchanged state.
func (s *Session) Submit(ctx context.Context, cmd engine.Command) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.state.Clone(), ErrSessionClosed
	}
	if cmd.Kind == engine.CmdEnemyTurn {
		return s.state.Clone(), ErrNotPlayerCommand
	}
	next, err := engine.Apply(s.state, cmd, s.rng, s.rules)
	if err != nil {
		logging.Debug("command rejected", logging.Fields{constants.LogFieldCommand: cmd.Kind, constants.LogFieldReason: err.Error()})
		return s.state.Clone(), err
	}
	s.commitLocked(ctx, next)
	s.queueOpponentLocked(ctx)
	return s.state.Clone(), nil
}

// Reset replaces the game with a fresh default one. Pending opponent turns
// are cancelled.
func (s *Session) Reset(ctx context.Context) (game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.state.Clone(), ErrSessionClosed
	}
	s.cancelPendingLocked()
	st, err := s.store.Reset(ctx)
	if err != nil {
		logging.Error("failed to persist reset game", err, nil)
		if st.Version == 0 {
			return s.state.Clone(), err
		}
	}
	s.state = st
	s.publishLocked()
	logging.Info("game reset", logging.Fields{constants.LogFieldKey: s.store.Key()})
	return s.state.Clone(), nil
}

// Close cancels pending work and releases subscribers. Further commands
// are rejected.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancelPendingLocked()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}

// Subscribe returns a channel receiving every new state. Slow readers only
// see the most recent snapshots. cancel must be called to unsubscribe.
func (s *Session) Subscribe() (<-chan game.State, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, ErrSessionClosed
	}
	if len(s.subs) >= maxSubscribers {
		return nil, nil, ErrSubscriberLimit
	}
	id := s.nextID
	s.nextID++
	ch := make(chan game.State, subscriberBufferSize)
	s.subs[id] = ch
	ch <- s.state.Clone()
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			close(c)
			delete(s.subs, id)
		}
	}
	return ch, cancel, nil
}

// --- internals (mu held) --------------------------------------------------

func (s *Session) commitLocked(ctx context.Context, next game.State) {
	next.UpdatedAt = s.now().UTC()
	s.state = next
	s.persistLocked(ctx)
	s.publishLocked()
}

func (s *Session) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.state); err != nil {
		logging.Error("failed to save game", err, logging.Fields{constants.LogFieldKey: s.store.Key()})
	}
}

func (s *Session) publishLocked() {
	for _, ch := range s.subs {
		snap := s.state.Clone()
		select {
		case ch <- snap:
		default:
			// Drop the oldest snapshot to make room for the newest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// queueOpponentLocked enqueues the opponent's reply when control has passed
// to it, then either drains now or schedules a deferred drain.
func (s *Session) queueOpponentLocked(ctx context.Context) {
	if s.state.Combat == nil || s.state.Combat.Turn != game.TurnEnemy || len(s.pending) > 0 {
		return
	}
	s.pending = append(s.pending, engine.EnemyTurn())
	if s.pacing <= 0 {
		s.drainLocked(ctx)
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.pacing, func() { s.fire(gen) })
}

func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		return
	}
	s.timer = nil
	s.drainLocked(context.Background())
}

func (s *Session) drainLocked(ctx context.Context) {
	for len(s.pending) > 0 {
		cmd := s.pending[0]
		s.pending = s.pending[1:]
		// The battle may have ended or been abandoned since this was queued.
		if !s.state.Combat.Active() {
			continue
		}
		next, err := engine.Apply(s.state, cmd, s.rng, s.rules)
		if err != nil {
			logging.Debug("pending transition dropped", logging.Fields{constants.LogFieldCommand: cmd.Kind, constants.LogFieldReason: err.Error()})
			continue
		}
		s.commitLocked(ctx, next)
	}
}

func (s *Session) cancelPendingLocked() {
	s.gen++
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
