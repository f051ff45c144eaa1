package services

import (
	"time"

	"github.com/NaouresKraiem/kachabity-sub002/internal/catalog"
	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
	applog "github.com/NaouresKraiem/kachabity-sub002/internal/log"
	"github.com/NaouresKraiem/kachabity-sub002/internal/repos"
)

// PromotionService picks the store-wide banner for "now".
type PromotionService struct {
	Promos *repos.PromotionRepo
}

func NewPromotionService(promos *repos.PromotionRepo) *PromotionService {
	return &PromotionService{Promos: promos}
}

// Current returns the selected promotion and whether the banner should
// actually render (only timed promotions carry the countdown). Store
// failure degrades to no banner.
func (s *PromotionService) Current(now time.Time) (*domain.Promotion, bool) {
	rows, err := s.Promos.All()
	if err != nil {
		applog.Error(nil, "promotions.load", err, nil)
		return nil, false
	}
	selected := catalog.SelectPromotion(now, rows)
	return selected, catalog.ShouldDisplayBanner(selected)
}
