package service

import (
	"regexp"
	"strings"
)

var (
	slugStripPattern  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacePattern  = regexp.MustCompile(`\s+`)
	slugHyphenPattern = regexp.MustCompile(`-+`)
)

// Slugify normalizes a title (or an author-supplied slug override) into a
// URL-safe identifier: lowercase, characters outside [a-z0-9\s-] stripped,
// whitespace runs and hyphen runs collapsed to a single hyphen. Idempotent.
//
// A string with no alphanumeric characters slugifies to ""; callers must
// reject that before using the result as an identifier.
func Slugify(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugSpacePattern.ReplaceAllString(s, "-")
	s = slugHyphenPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
