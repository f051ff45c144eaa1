package catalog

import (
	"math"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

// Price applies an optional discount percentage to a base price. Prices are
// rounded to the nearest whole currency unit; savings is the rounded
// difference. A nil or non-positive percentage leaves the base price
// untouched.
func Price(base float64, discountPercent *float64) domain.PriceInfo {
	if discountPercent == nil || *discountPercent <= 0 {
		return domain.PriceInfo{FinalPrice: base, Savings: 0, HasDiscount: false}
	}
	final := math.Round(base * (1 - *discountPercent/100))
	return domain.PriceInfo{
		FinalPrice:  final,
		Savings:     math.Round(base - final),
		HasDiscount: true,
	}
}
