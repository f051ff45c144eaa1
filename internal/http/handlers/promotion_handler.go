package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NaouresKraiem/kachabity-sub002/internal/services"
)

type PromotionHandler struct {
	Promos *services.PromotionService
}

// Current serves the store-wide banner. promotion may be null; when
// display_banner is false the client renders nothing, since an ongoing
// promotion has no countdown to show.
func (h *PromotionHandler) Current(c *fiber.Ctx) error {
	promo, display := h.Promos.Current(time.Now().UTC())
	return c.JSON(fiber.Map{
		"promotion":      promo,
		"display_banner": display,
	})
}
