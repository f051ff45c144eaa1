package catalog

import (
	"sort"
	"time"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

// SelectPromotion chooses the single promotion the store advertises at
// instant now:
//
//  1. only active rows are considered;
//  2. rows already ended (ends_at < now) or not yet started
//     (starts_at > now) are discarded;
//  3. survivors split into timed (ends_at present) and ongoing
//     (ends_at absent);
//  4. each group is ordered by discount_percent descending, ties broken by
//     most recently created, then by id;
//  5. the best timed promotion wins over any ongoing one.
//
// Selection says nothing about rendering: a selected ongoing promotion is
// still suppressed by ShouldDisplayBanner because it has no countdown to
// show. Keep the two stages separate.
func SelectPromotion(now time.Time, promos []domain.Promotion) *domain.Promotion {
	var timed, ongoing []domain.Promotion
	for _, p := range promos {
		if !p.Active {
			continue
		}
		if p.EndsAt != nil && p.EndsAt.Before(now) {
			continue
		}
		if p.StartsAt != nil && p.StartsAt.After(now) {
			continue
		}
		if p.EndsAt != nil {
			timed = append(timed, p)
		} else {
			ongoing = append(ongoing, p)
		}
	}
	sortByDiscount(timed)
	sortByDiscount(ongoing)
	if len(timed) > 0 {
		return &timed[0]
	}
	if len(ongoing) > 0 {
		return &ongoing[0]
	}
	return nil
}

func sortByDiscount(promos []domain.Promotion) {
	sort.SliceStable(promos, func(i, j int) bool {
		a, b := promos[i], promos[j]
		if a.DiscountPercent != b.DiscountPercent {
			return a.DiscountPercent > b.DiscountPercent
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// ShouldDisplayBanner gates rendering of a selected promotion: only a
// promotion carrying an end date is shown, since the banner always renders
// a countdown.
func ShouldDisplayBanner(p *domain.Promotion) bool {
	return p != nil && p.EndsAt != nil
}
