package loader

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// State is a step of the session protocol.
type State int

const (
	StateInit State = iota
	StateLoadingEssential
	StateEssentialReady
	StateLoadingFull
	StateFullReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateLoadingEssential:
		return "LOADING_ESSENTIAL"
	case StateEssentialReady:
		return "ESSENTIAL_READY"
	case StateLoadingFull:
		return "LOADING_FULL"
	case StateFullReady:
		return "FULL_READY"
	case StateError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Observer is told about every state change together with the snapshot of record at that point.
type Observer func(State, Snapshot)

type view struct {
	state    State
	snapshot Snapshot
	err      error
}

/*
Session drives one page load through
INIT → LOADING_ESSENTIAL → ESSENTIAL_READY → LOADING_FULL → FULL_READY.

ERROR is reachable only from LOADING_ESSENTIAL. The full stage starts after
the essential stage has completely settled. Once the full snapshot is ready
it replaces the essential one as the snapshot of record.

Teardown does not abort requests already issued. It only guarantees that
nothing arriving afterwards changes the session or reaches the observer.
Retrying after ERROR means starting a new session.
*/
type Session struct {
	id       uuid.UUID
	loader   *Loader
	observer Observer

	// mu serialises check-teardown-then-apply so Teardown and a late result cannot interleave.
	mu       sync.Mutex
	tornDown atomic.Bool
	started  atomic.Bool
	view     atomic.Pointer[view]
}

// NewSession creates a session in INIT. observer may be nil.
func (l *Loader) NewSession(observer Observer) *Session {
	s := &Session{
		id:       uuid.New(),
		loader:   l,
		observer: observer,
	}
	s.view.Store(&view{state: StateInit})
	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) State() State { return s.view.Load().state }

// Snapshot is the current snapshot of record: nil, then essential, then full.
func (s *Session) Snapshot() Snapshot { return s.view.Load().snapshot }

// Err is the essential-stage failure, if the session ended in ERROR.
func (s *Session) Err() error { return s.view.Load().err }

// TornDown reports whether Teardown was called.
func (s *Session) TornDown() bool { return s.tornDown.Load() }

// Teardown marks the session discarded. It is safe to call from the observer.
func (s *Session) Teardown() {
	s.tornDown.Store(true)
}

/*
Run executes both stages and returns when the session reaches FULL_READY or
ERROR, or when a result is dropped because of Teardown (ErrTornDown).
*/
func (s *Session) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	logger := s.loader.logger.With("session", s.id.String())

	if !s.apply(StateLoadingEssential, nil, nil, false) {
		return ErrTornDown
	}

	essential, err := s.loader.PrefetchEssential(ctx)
	if err != nil {
		if !s.apply(StateError, nil, err, false) {
			return ErrTornDown
		}
		logger.ErrorContext(ctx, "session failed", "state", StateError.String(), "error", err)
		return err
	}
	if !s.apply(StateEssentialReady, essential, nil, true) {
		return ErrTornDown
	}

	if !s.apply(StateLoadingFull, nil, nil, false) {
		return ErrTornDown
	}
	full, err := s.loader.PrefetchAll(ctx)
	if err != nil {
		// The orchestration could not run; every resource degrades.
		logger.WarnContext(ctx, "full stage did not run, using fallbacks", "error", err)
		full = s.loader.registry.Fallbacks()
	}
	if !s.apply(StateFullReady, full, nil, true) {
		return ErrTornDown
	}

	logger.InfoContext(ctx, "session ready", "state", StateFullReady.String())
	return nil
}

// apply moves to next, replacing the snapshot when replace is set. It returns false after Teardown.
func (s *Session) apply(next State, snap Snapshot, err error, replace bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tornDown.Load() {
		return false
	}
	v := &view{state: next, snapshot: s.view.Load().snapshot, err: err}
	if replace {
		v.snapshot = snap
	}
	s.view.Store(v)

	if s.observer != nil {
		s.observer(next, v.snapshot)
	}
	return true
}
