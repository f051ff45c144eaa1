package catalog

import (
	"math"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

// Rate computes the mean rating and the count of valid reviews. Upstream
// storage is heterogeneous, so a rating may arrive as a float, an integer,
// a string, or nothing; only genuine non-NaN numbers count, and invalid
// entries are excluded from the denominator, not just the sum. The mean is
// rounded to one decimal.
func Rate(reviews []domain.Review) (rating float64, count int) {
	var sum float64
	for _, r := range reviews {
		v, ok := numericRating(r.Rating)
		if !ok {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return math.Round(sum/float64(count)*10) / 10, count
}

func numericRating(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		// nil, strings and anything else the store hands back
		return 0, false
	}
}
