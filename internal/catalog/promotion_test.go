package catalog_test

import (
	"testing"
	"time"

	"github.com/NaouresKraiem/kachabity-sub002/internal/catalog"
	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(t time.Time) *time.Time { return &t }

func promo(id string, percent float64, startsAt, endsAt *time.Time, active bool) domain.Promotion {
	return domain.Promotion{
		ID: id, Title: id, DiscountPercent: percent,
		StartsAt: startsAt, EndsAt: endsAt, Active: active,
		CreatedAt: now.Add(-24 * time.Hour),
	}
}

func TestSelectPromotion_ExcludesExpiredInactiveAndFuture(t *testing.T) {
	promos := []domain.Promotion{
		promo("expired", 50, nil, at(now.Add(-time.Hour)), true),
		promo("inactive", 40, nil, at(now.Add(time.Hour)), false),
		promo("not-started", 60, at(now.Add(time.Hour)), at(now.Add(2*time.Hour)), true),
	}
	if got := catalog.SelectPromotion(now, promos); got != nil {
		t.Fatalf("want nil, got %s", got.ID)
	}
}

func TestSelectPromotion_TimedBeatsOngoing(t *testing.T) {
	promos := []domain.Promotion{
		promo("ongoing", 90, nil, nil, true),
		promo("timed", 10, nil, at(now.Add(time.Hour)), true),
	}
	got := catalog.SelectPromotion(now, promos)
	if got == nil || got.ID != "timed" {
		t.Fatalf("want timed, got %+v", got)
	}
	if !catalog.ShouldDisplayBanner(got) {
		t.Fatal("timed promotion must render a countdown banner")
	}
}

func TestSelectPromotion_OngoingPickedButSuppressed(t *testing.T) {
	promos := []domain.Promotion{
		promo("ongoing-10", 10, nil, nil, true),
		promo("ongoing-20", 20, nil, nil, true),
	}
	got := catalog.SelectPromotion(now, promos)
	if got == nil || got.ID != "ongoing-20" {
		t.Fatalf("want ongoing-20, got %+v", got)
	}
	if catalog.ShouldDisplayBanner(got) {
		t.Fatal("ongoing promotion has no end date, banner must stay hidden")
	}
}

func TestSelectPromotion_TieBreakNewestThenID(t *testing.T) {
	older := promo("a-older", 30, nil, at(now.Add(time.Hour)), true)
	newer := promo("b-newer", 30, nil, at(now.Add(time.Hour)), true)
	newer.CreatedAt = now.Add(-time.Hour)

	got := catalog.SelectPromotion(now, []domain.Promotion{older, newer})
	if got == nil || got.ID != "b-newer" {
		t.Fatalf("want most recently created, got %+v", got)
	}

	// identical created_at: lowest id wins
	twin := promo("a-twin", 30, nil, at(now.Add(time.Hour)), true)
	got = catalog.SelectPromotion(now, []domain.Promotion{older, twin})
	if got == nil || got.ID != "a-older" {
		t.Fatalf("want lowest id on full tie, got %+v", got)
	}
}

func TestShouldDisplayBanner_Nil(t *testing.T) {
	if catalog.ShouldDisplayBanner(nil) {
		t.Fatal("nil promotion must not render")
	}
}
