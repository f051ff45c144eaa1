package validate_test

import (
	"testing"

	"github.com/NaouresKraiem/kachabity-sub002/internal/validate"
)

// Limit only parses; defaulting and capping happen once, in the service.
func TestLimitParsesOnly(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{" 25 ", 25},
		{"999", 999},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := validate.Limit(tc.in); got != tc.want {
			t.Fatalf("Limit(%q): want %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestSlug(t *testing.T) {
	for _, good := range []string{"abayas", "chiffon-hijab", "a1-b2"} {
		if _, ok := validate.Slug(good); !ok {
			t.Fatalf("want %q accepted", good)
		}
	}
	for _, bad := range []string{"", "Abayas", "a_b", "-lead", "trail-", "a--b"} {
		if _, ok := validate.Slug(bad); ok {
			t.Fatalf("want %q rejected", bad)
		}
	}
}
