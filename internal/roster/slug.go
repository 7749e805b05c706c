package roster

import (
	"regexp"
	"strings"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases name, collapses every run of characters outside
// [a-z0-9] into a single "-" and trims leading and trailing dashes.
func Slugify(name string) string {
	slug := slugSeparators.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// FindBySlug returns the first fighter whose slug equals slug.
func FindBySlug(fighters []Fighter, slug string) (Fighter, bool) {
	for _, f := range fighters {
		if f.Slug() == slug {
			return f, true
		}
	}
	return Fighter{}, false
}

// Lookup resolves a fighter by slug, falling back to a case-insensitive
// exact name match.
func Lookup(fighters []Fighter, query string) (Fighter, bool) {
	if f, ok := FindBySlug(fighters, query); ok {
		return f, true
	}
	if f, ok := FindBySlug(fighters, Slugify(query)); ok {
		return f, true
	}
	for _, f := range fighters {
		if strings.EqualFold(f.Name, strings.TrimSpace(query)) {
			return f, true
		}
	}
	return Fighter{}, false
}
