// internal/session/manager.go
//
// Session manager: the boundary a presentation layer talks to.
// Responsibilities:
//   - Start, reset and end game sessions identified by UUID.
//   - Serialize submissions per session so each Submit applies atomically.
//   - Invoke the render callback after every state mutation.
//
// Rejected submissions are reported through the returned game.Result only;
// they do not change state and therefore do not trigger a render.

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// Engine is the game logic the manager drives.
type Engine interface {
	NewGame() game.State
	Submit(raw string, st game.State) (game.Result, game.State)
}

// RenderFunc receives the state of session id after each mutation.
type RenderFunc func(id string, st game.State)

// Manager owns the sessions of one host process.
type Manager struct {
	engine Engine
	store  store.Store
	render RenderFunc
	log    zerolog.Logger
	now    func() time.Time

	mu    sync.Mutex             // guards locks
	locks map[string]*sync.Mutex // per-session submission locks
}

// Option configures a Manager.
type Option func(*Manager)

// WithRender sets the callback invoked after each mutation.
func WithRender(fn RenderFunc) Option {
	return func(m *Manager) { m.render = fn }
}

// WithLogger sets the manager logger.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// NewManager constructs a Manager.
func NewManager(engine Engine, st store.Store, opts ...Option) *Manager {
	m := &Manager{
		engine: engine,
		store:  st,
		render: func(string, game.State) {},
		log:    zerolog.Nop(),
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start creates a session with a fresh game.
func (m *Manager) Start(ctx context.Context) (store.Session, error) {
	now := m.now().UTC()
	s := store.Session{
		ID:        uuid.NewString(),
		State:     m.engine.NewGame(),
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Save(ctx, s); err != nil {
		return store.Session{}, fmt.Errorf("save session: %w", err)
	}
	m.log.Info().Str("session", s.ID).Str("root", s.State.RootWord).Msg("session started")
	m.render(s.ID, s.State)
	return s, nil
}

// State returns the current state of session id.
func (m *Manager) State(ctx context.Context, id string) (game.State, error) {
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return game.State{}, err
	}
	return s.State, nil
}

// Submit validates raw against session id. Validation outcomes are reported
// in the Result; the error is non-nil only for store failures or unknown ids.
func (m *Manager) Submit(ctx context.Context, id, raw string) (game.Result, game.State, error) {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()

	s, err := m.store.Get(ctx, id)
	if err != nil {
		m.forgetUnknown(id, err)
		return game.Result{}, game.State{}, err
	}

	res, next := m.engine.Submit(raw, s.State)
	if !res.OK() {
		return res, s.State, nil
	}

	s.State = next
	s.UpdatedAt = m.now().UTC()
	if err := m.store.Save(ctx, s); err != nil {
		return game.Result{}, game.State{}, fmt.Errorf("save session: %w", err)
	}
	m.log.Debug().Str("session", id).Str("word", res.Word).Int("score", next.Score).Msg("word accepted")
	m.render(id, next)
	return res, next, nil
}

// NewGame replaces the game of session id with a fresh one.
func (m *Manager) NewGame(ctx context.Context, id string) (game.State, error) {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()

	s, err := m.store.Get(ctx, id)
	if err != nil {
		m.forgetUnknown(id, err)
		return game.State{}, err
	}
	now := m.now().UTC()
	s.State = m.engine.NewGame()
	s.StartedAt, s.UpdatedAt = now, now
	if err := m.store.Save(ctx, s); err != nil {
		return game.State{}, fmt.Errorf("save session: %w", err)
	}
	m.log.Info().Str("session", id).Str("root", s.State.RootWord).Msg("new game")
	m.render(id, s.State)
	return s.State, nil
}

// End removes session id.
func (m *Manager) End(ctx context.Context, id string) error {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()

	if err := m.store.Delete(ctx, id); err != nil {
		m.forgetUnknown(id, err)
		return err
	}
	m.forget(id)
	m.log.Info().Str("session", id).Msg("session ended")
	return nil
}

// lock returns the submission lock for id, creating it on first use.
func (m *Manager) lock(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

func (m *Manager) forget(id string) {
	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()
}

// forgetUnknown drops the lock of an id the store does not know, so lookups
// of bogus ids do not accumulate locks.
func (m *Manager) forgetUnknown(id string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		m.forget(id)
	}
}
