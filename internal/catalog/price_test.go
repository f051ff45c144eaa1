package catalog_test

import (
	"math"
	"testing"

	"github.com/NaouresKraiem/kachabity-sub002/internal/catalog"
)

func pct(v float64) *float64 { return &v }

func TestPrice_ConcreteDiscount(t *testing.T) {
	got := catalog.Price(100, pct(25))
	if got.FinalPrice != 75 || got.Savings != 25 || !got.HasDiscount {
		t.Fatalf("want 75/25/true, got %+v", got)
	}
}

func TestPrice_NoDiscount(t *testing.T) {
	for _, d := range []*float64{nil, pct(0), pct(-5)} {
		got := catalog.Price(49.9, d)
		if got.FinalPrice != 49.9 || got.Savings != 0 || got.HasDiscount {
			t.Fatalf("discount %v: want untouched price, got %+v", d, got)
		}
	}
}

func TestPrice_NeverExceedsBase(t *testing.T) {
	bases := []float64{0, 1, 25, 99.9, 120, 1500.49}
	for _, base := range bases {
		for d := 0.0; d <= 100; d++ {
			got := catalog.Price(base, &d)
			if got.FinalPrice > base+0.5 {
				t.Fatalf("base=%v d=%v: final %v above base", base, d, got.FinalPrice)
			}
			if d > 0 {
				want := math.Round(base * (1 - d/100))
				if got.FinalPrice != want {
					t.Fatalf("base=%v d=%v: want %v, got %v", base, d, want, got.FinalPrice)
				}
				if got.Savings != math.Round(base-want) {
					t.Fatalf("base=%v d=%v: bad savings %v", base, d, got.Savings)
				}
			}
		}
	}
}
