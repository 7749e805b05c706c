// Package paginate provides the incremental windowing policy applied to
// filtered fighter lists.
package paginate

import "github.com/ufccards/ufccards/internal/roster"

// DefaultBatchSize is the number of records revealed per step.
const DefaultBatchSize = 25

// Paginator tracks how much of a filtered sequence is visible.
// The zero value is not usable; use New.
type Paginator struct {
	batch   int
	visible int
}

// New creates a Paginator revealing batch records per step. Non-positive
// sizes fall back to DefaultBatchSize.
func New(batch int) *Paginator {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &Paginator{batch: batch, visible: batch}
}

// BatchSize returns the step size.
func (p *Paginator) BatchSize() int {
	return p.batch
}

// VisibleCount returns the current window size.
func (p *Paginator) VisibleCount() int {
	return p.visible
}

// Advance grows the window by one batch, capped at filteredLen. It is a
// no-op once the window already covers the sequence.
func (p *Paginator) Advance(filteredLen int) bool {
	if p.visible >= filteredLen {
		return false
	}
	p.visible = min(p.visible+p.batch, filteredLen)
	return true
}

// Reset restores the window to a single batch.
func (p *Paginator) Reset() {
	p.visible = p.batch
}

// HasMore reports whether Advance would reveal more records.
// Searches are never paginated, so there is never more to show.
func (p *Paginator) HasMore(filteredLen int, searching bool) bool {
	return !searching && filteredLen > p.visible
}

// Window returns the visible prefix of filtered. While searching the
// whole sequence is visible.
func (p *Paginator) Window(filtered []roster.Fighter, searching bool) []roster.Fighter {
	if searching || len(filtered) <= p.visible {
		return filtered
	}
	return filtered[:p.visible]
}
