// Package roster provides the fighter data model, delimited-text parsing,
// normalization and filtering for ufccards.
package roster

import (
	"io"
	"sort"
)

// Roster is the canonical, read-only set of fighters.
type Roster struct {
	// fighters is sorted by rank and never modified after construction.
	fighters []Fighter

	// dropped lists rows discarded during normalization.
	dropped []*ValidationError
}

// New wraps an already-normalized fighter slice. The slice is copied.
func New(fighters []Fighter) *Roster {
	return &Roster{fighters: append([]Fighter{}, fighters...)}
}

// Build parses and normalizes raw text into a Roster.
func Build(r io.Reader) (*Roster, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	fighters, dropped := NormalizeReport(rows)
	return &Roster{fighters: fighters, dropped: dropped}, nil
}

// Len returns the number of fighters.
func (r *Roster) Len() int {
	return len(r.fighters)
}

// All returns the fighters in rank order. The returned slice is a copy.
func (r *Roster) All() []Fighter {
	return append([]Fighter{}, r.fighters...)
}

// Dropped returns the rows discarded during normalization.
func (r *Roster) Dropped() []*ValidationError {
	return append([]*ValidationError{}, r.dropped...)
}

// Filter returns the fighters matching the criteria.
func (r *Roster) Filter(c Criteria) []Fighter {
	return c.Apply(r.fighters)
}

// Lookup finds a fighter by slug or name.
func (r *Roster) Lookup(query string) (Fighter, bool) {
	return Lookup(r.fighters, query)
}

// WeightClassCounts returns a map of weight class to fighter count.
func (r *Roster) WeightClassCounts() map[string]int {
	counts := make(map[string]int)
	for _, f := range r.fighters {
		counts[f.WeightClass]++
	}
	return counts
}

// PresentWeightClasses returns the distinct weight classes in the data,
// sorted alphabetically.
func (r *Roster) PresentWeightClasses() []string {
	seen := make(map[string]bool)
	var classes []string
	for _, f := range r.fighters {
		if !seen[f.WeightClass] {
			seen[f.WeightClass] = true
			classes = append(classes, f.WeightClass)
		}
	}
	sort.Strings(classes)
	return classes
}
