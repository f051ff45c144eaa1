// Package catalog holds the pure pricing & promotion resolution rules.
// Nothing in here touches the store; every function is deterministic for a
// given input so the rules stay unit-testable in isolation.
package catalog

import (
	"time"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

// Visible reports whether a soft-deletable row may appear in a public read
// result. Every listing path goes through this predicate, whether the query
// also filters or not.
func Visible(deletedAt *time.Time) bool {
	return deletedAt == nil
}

// ProductVisible applies the stricter product rule: not deleted AND status
// "active". Inactive and archived products stay hidden from listings.
func ProductVisible(p domain.Product) bool {
	return Visible(p.DeletedAt) && p.Status == domain.StatusActive
}

// VariantVisible keeps soft-deleted variants out of public variant lists.
func VariantVisible(v domain.ProductVariant) bool {
	return Visible(v.DeletedAt)
}
