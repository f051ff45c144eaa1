package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ID validates a simple resource identifier (product/promotion ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Slug validates a category slug.
func Slug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, reSlug.MatchString(s)
}

// Locale narrows the locale query parameter to the supported set. Anything
// else falls back to the default locale.
func Locale(s string) string {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "ar":
		return "ar"
	case "fr":
		return "fr"
	default:
		return ""
	}
}

// Percent parses a discount percentage and enforces the [0,100] window.
func Percent(v float64) (float64, bool) {
	return v, v >= 0 && v <= 100
}

// Limit parses the page-size query parameter. Defaulting and capping are
// the service's job; garbage parses to 0 and takes the default there.
func Limit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Instant parses an optional RFC3339 timestamp field from a write payload.
// Empty means absent.
func Instant(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// Title validates a displayable title with a reasonable max length.
func Title(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}
