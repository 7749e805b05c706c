package paginate

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ufccards/ufccards/internal/roster"
)

// View is a snapshot of what a Session currently exposes.
type View struct {
	Fighters  []roster.Fighter
	Criteria  roster.Criteria
	Matched   int
	Total     int
	Searching bool
	HasMore   bool
	Loading   bool
}

// Shown returns the number of visible fighters.
func (v View) Shown() int {
	return len(v.Fighters)
}

// Summary renders the result counter, e.g. "25 fighters of 60".
func (v View) Summary() string {
	if v.Matched > v.Shown() {
		return fmt.Sprintf("%d fighters of %d", v.Shown(), v.Matched)
	}
	return fmt.Sprintf("%d fighters", v.Shown())
}

// sessionOptions holds optional Session settings.
type sessionOptions struct {
	batchSize int
	delay     time.Duration
	onAdvance func(View)
	logger    *zap.Logger
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

// WithBatchSize sets the pagination step.
func WithBatchSize(n int) SessionOption {
	return func(o *sessionOptions) {
		o.batchSize = n
	}
}

// WithAdvanceDelay sets how long RequestMore waits before advancing.
func WithAdvanceDelay(d time.Duration) SessionOption {
	return func(o *sessionOptions) {
		o.delay = d
	}
}

// WithOnAdvance registers a callback invoked after a delayed advance.
func WithOnAdvance(fn func(View)) SessionOption {
	return func(o *sessionOptions) {
		o.onAdvance = fn
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// Session binds filter criteria, the filtered sequence and a Paginator
// over a read-only canonical set.
type Session struct {
	mu       sync.Mutex
	all      []roster.Fighter
	criteria roster.Criteria
	filtered []roster.Fighter
	pager    *Paginator
	trigger  *Trigger
	logger   *zap.Logger

	// epoch changes on every criteria change; a scheduled advance only
	// applies to the epoch it was requested in.
	epoch        uint64
	pendingEpoch uint64

	onAdvance func(View)
}

// NewSession creates a Session over all with default criteria.
func NewSession(all []roster.Fighter, opts ...SessionOption) *Session {
	options := &sessionOptions{
		batchSize: DefaultBatchSize,
		delay:     DefaultAdvanceDelay,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	s := &Session{
		all:       all,
		criteria:  roster.DefaultCriteria(),
		pager:     New(options.batchSize),
		logger:    options.logger,
		onAdvance: options.onAdvance,
	}
	s.filtered = s.criteria.Apply(s.all)
	s.trigger = NewTrigger(options.delay, s.scheduledAdvance)
	return s
}

// Criteria returns the active criteria.
func (s *Session) Criteria() roster.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// SetSearch changes the search term. It reports whether the criteria changed.
func (s *Session) SetSearch(term string) bool {
	s.mu.Lock()
	c := s.criteria
	s.mu.Unlock()

	c.Search = term
	return s.SetCriteria(c)
}

// SetWeightClass changes the category selector. Only values from
// roster.WeightClasses are accepted.
func (s *Session) SetWeightClass(weightClass string) (bool, error) {
	if !roster.IsWeightClass(weightClass) {
		return false, fmt.Errorf("%w: %q", roster.ErrUnknownWeightClass, weightClass)
	}

	s.mu.Lock()
	c := s.criteria
	s.mu.Unlock()

	c.WeightClass = weightClass
	return s.SetCriteria(c), nil
}

// SetCriteria replaces the criteria. The filtered sequence is recomputed
// and the window reset only when the criteria actually change.
func (s *Session) SetCriteria(c roster.Criteria) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Equal(s.criteria) {
		return false
	}

	s.criteria = c
	s.filtered = c.Apply(s.all)
	s.pager.Reset()
	s.epoch++
	s.trigger.Cancel()

	s.logger.Debug("criteria changed",
		zap.String("search", c.Search),
		zap.String("weight_class", c.WeightClass),
		zap.Int("matched", len(s.filtered)))
	return true
}

// View returns the current snapshot.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	searching := s.criteria.Searching()
	return View{
		Fighters:  s.pager.Window(s.filtered, searching),
		Criteria:  s.criteria,
		Matched:   len(s.filtered),
		Total:     len(s.all),
		Searching: searching,
		HasMore:   s.pager.HasMore(len(s.filtered), searching),
		Loading:   s.trigger.Pending(),
	}
}

// HasMore reports whether more records can be revealed.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.HasMore(len(s.filtered), s.criteria.Searching())
}

// VisibleCount returns the paginator window size.
func (s *Session) VisibleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager.VisibleCount()
}

// Advance immediately reveals the next batch.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pager.HasMore(len(s.filtered), s.criteria.Searching()) {
		return false
	}
	return s.pager.Advance(len(s.filtered))
}

// RequestMore is the proximity signal: when more records are available it
// schedules an advance after the configured delay. Requests made while an
// advance is pending are coalesced. It reports whether a new advance was
// scheduled.
func (s *Session) RequestMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pager.HasMore(len(s.filtered), s.criteria.Searching()) {
		return false
	}
	if !s.trigger.Signal() {
		return false
	}
	s.pendingEpoch = s.epoch
	return true
}

// Loading reports whether a delayed advance is pending.
func (s *Session) Loading() bool {
	return s.trigger.Pending()
}

// Close cancels any pending advance.
func (s *Session) Close() {
	s.trigger.Stop()
}

func (s *Session) scheduledAdvance() {
	s.mu.Lock()
	if s.pendingEpoch != s.epoch {
		s.mu.Unlock()
		return
	}
	advanced := s.pager.Advance(len(s.filtered))
	view := s.viewLocked()
	s.mu.Unlock()

	s.logger.Debug("advanced window",
		zap.Bool("advanced", advanced),
		zap.Int("visible", len(view.Fighters)),
		zap.Int("matched", view.Matched))

	if s.onAdvance != nil {
		view.Loading = false
		s.onAdvance(view)
	}
}
