package roster

import (
	"fmt"
	"strings"
)

// AllWeightClasses is the selector meaning "no category filter".
const AllWeightClasses = "Pound for Pound"

// weightClasses is the ordered set of legal category selectors.
var weightClasses = []string{
	AllWeightClasses,
	"heavyweight",
	"light heavyweight",
	"middleweight",
	"welterweight",
	"lightweight",
	"featherweight",
	"bantamweight",
	"flyweight",
	"women's flyweight",
	"women's bantamweight",
	"women's featherweight",
	"women's strawweight",
}

// WeightClasses returns the legal selectors in display order.
func WeightClasses() []string {
	return append([]string{}, weightClasses...)
}

// IsWeightClass reports whether s is a legal selector, exactly as spelled.
func IsWeightClass(s string) bool {
	for _, wc := range weightClasses {
		if wc == s {
			return true
		}
	}
	return false
}

// ParseWeightClass resolves a selector case-insensitively and returns its
// canonical spelling. An empty string selects all weight classes.
func ParseWeightClass(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllWeightClasses, nil
	}
	for _, wc := range weightClasses {
		if strings.EqualFold(wc, s) {
			return wc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeightClass, s)
}
