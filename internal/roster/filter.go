package roster

import (
	"strings"

	"golang.org/x/text/cases"
)

// Criteria is the query applied to the canonical set.
type Criteria struct {
	Search      string `json:"search"`
	WeightClass string `json:"weight_class"`
}

// DefaultCriteria selects everything.
func DefaultCriteria() Criteria {
	return Criteria{WeightClass: AllWeightClasses}
}

// Searching reports whether a non-blank search term is active.
func (c Criteria) Searching() bool {
	return strings.TrimSpace(c.Search) != ""
}

// Equal reports whether two criteria select the same records.
func (c Criteria) Equal(o Criteria) bool {
	return c.Search == o.Search && c.WeightClass == o.WeightClass
}

// Apply filters all by the criteria.
func (c Criteria) Apply(all []Fighter) []Fighter {
	return Filter(all, c.Search, c.WeightClass)
}

// Filter returns the fighters whose name or nickname contains searchTerm
// (case-folded) and whose weight class equals weightClass. A blank term
// and the AllWeightClasses selector each pass everything through.
// The input is never modified; the result is always a new slice.
func Filter(all []Fighter, searchTerm, weightClass string) []Fighter {
	results := make([]Fighter, 0, len(all))

	term := strings.TrimSpace(searchTerm)
	var folded string
	folder := cases.Fold()
	if term != "" {
		folded = folder.String(term)
	}

	for _, f := range all {
		if term != "" && !matchesSearch(folder, f, folded) {
			continue
		}
		if weightClass != AllWeightClasses && f.WeightClass != weightClass {
			continue
		}
		results = append(results, f)
	}

	return results
}

func matchesSearch(folder cases.Caser, f Fighter, folded string) bool {
	return strings.Contains(folder.String(f.Name), folded) ||
		strings.Contains(folder.String(f.Nickname), folded)
}
