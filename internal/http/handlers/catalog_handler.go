package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NaouresKraiem/kachabity-sub002/internal/log"
	"github.com/NaouresKraiem/kachabity-sub002/internal/services"
	"github.com/NaouresKraiem/kachabity-sub002/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// Listing endpoints fail soft: when the store is unreachable the response
// is an empty product list with a success status, never a 5xx.

func (h *CatalogHandler) BestSellers(c *fiber.Ctx) error {
	views, err := h.Catalog.BestSellers(validate.Limit(c.Query("limit")), validate.Locale(c.Query("locale")))
	if err != nil {
		log.Error(c, "catalog.best_sellers", err, nil)
		return emptyProducts(c)
	}
	return products(c, views)
}

func (h *CatalogHandler) Deals(c *fiber.Ctx) error {
	views, err := h.Catalog.LatestDeals(validate.Limit(c.Query("limit")), validate.Locale(c.Query("locale")))
	if err != nil {
		log.Error(c, "catalog.deals", err, nil)
		return emptyProducts(c)
	}
	return products(c, views)
}

func (h *CatalogHandler) ByCategory(c *fiber.Ctx) error {
	slug, okSlug := validate.Slug(c.Query("category"))
	if !okSlug {
		log.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	views, err := h.Catalog.ByCategory(slug, validate.Limit(c.Query("limit")), validate.Locale(c.Query("locale")))
	if err != nil {
		log.Error(c, "catalog.by_category", err, map[string]any{"category": slug})
		return emptyProducts(c)
	}
	return products(c, views)
}
