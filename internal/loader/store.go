package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ufccards/ufccards/internal/roster"
)

// State is the lifecycle state of a Store.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// UserMessage is shown whenever a load fails, whatever the cause.
const UserMessage = "Failed to load fighter data. Please make sure the fighter data source is available."

var (
	// ErrNotReady is returned when the roster is queried before a
	// successful load.
	ErrNotReady = errors.New("roster not loaded")

	// ErrSuperseded is returned by a load whose result was discarded
	// because a newer load was started.
	ErrSuperseded = errors.New("load superseded by a newer load")
)

// Store holds the canonical roster for the process. It is populated by
// Load and read-only otherwise.
type Store struct {
	mu       sync.RWMutex
	source   Source
	logger   *zap.Logger
	gen      uint64
	state    State
	roster   *roster.Roster
	err      error
	loadedAt time.Time
}

// NewStore creates an empty Store reading from source.
func NewStore(source Source, opts ...Option) *Store {
	options := applyOptions(opts)
	return &Store{
		source: source,
		logger: options.logger,
		state:  StateIdle,
	}
}

// Source returns the configured source.
func (s *Store) Source() Source {
	return s.source
}

// Load fetches, parses and normalizes the source. Only the most recently
// started load may publish its result; older loads that finish later
// return ErrSuperseded and leave the store untouched. On failure the store
// enters StateFailed with an empty roster and Load may simply be retried.
func (s *Store) Load(ctx context.Context) (*roster.Roster, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = StateLoading
	s.mu.Unlock()

	loadID := uuid.NewString()
	logger := s.logger.With(zap.String("load_id", loadID), zap.String("source", s.source.String()))
	logger.Info("Loading roster")
	started := time.Now()

	r, err := s.fetch(ctx, logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		logger.Debug("Discarding superseded load")
		return nil, ErrSuperseded
	}

	if err != nil {
		s.state = StateFailed
		s.roster = nil
		s.err = err
		logger.Error("Roster load failed", zap.Error(err))
		return nil, err
	}

	s.state = StateReady
	s.roster = r
	s.err = nil
	s.loadedAt = time.Now()
	logger.Info("Roster loaded",
		zap.Int("fighters", r.Len()),
		zap.Int("dropped", len(r.Dropped())),
		zap.Duration("elapsed", time.Since(started)))
	return r, nil
}

func (s *Store) fetch(ctx context.Context, logger *zap.Logger) (*roster.Roster, error) {
	rc, err := s.source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r, err := roster.Build(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.source, err)
	}

	for _, dropped := range r.Dropped() {
		logger.Debug("Dropped row", zap.Int("row", dropped.Position), zap.String("reason", dropped.Reason))
	}
	return r, nil
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the last failed load.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Roster returns the loaded roster, or ErrNotReady.
func (s *Store) Roster() (*roster.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateReady || s.roster == nil {
		return nil, ErrNotReady
	}
	return s.roster, nil
}

// Fighters returns the canonical fighters in rank order, or ErrNotReady.
func (s *Store) Fighters() ([]roster.Fighter, error) {
	r, err := s.Roster()
	if err != nil {
		return nil, err
	}
	return r.All(), nil
}

// LoadedAt returns when the current roster was published.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// UserMessage returns the generic failure message when the last load
// failed, or "" otherwise.
func (s *Store) UserMessage() string {
	if s.State() == StateFailed {
		return UserMessage
	}
	return ""
}
