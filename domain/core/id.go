package core

import (
	"fmt"
	"regexp"
	"strings"
)

// Slug is the sole lookup key for a protocol record. URL-safe,
// case-sensitive, unique across the collection.
type Slug string

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]*$`)

// ParseSlug validates a raw string into a Slug.
func ParseSlug(s string) (Slug, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("slug cannot be empty")
	}
	if !slugPattern.MatchString(s) {
		return "", fmt.Errorf("slug %q is not URL-safe", s)
	}
	return Slug(s), nil
}

// String returns the string representation
func (s Slug) String() string {
	return string(s)
}

// IsEmpty checks if the slug is empty
func (s Slug) IsEmpty() bool {
	return s == ""
}
