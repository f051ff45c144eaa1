package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NaouresKraiem/kachabity-sub002/internal/log"
	"github.com/NaouresKraiem/kachabity-sub002/internal/repos"
	"github.com/NaouresKraiem/kachabity-sub002/internal/validate"
)

// TaxonomyHandler serves the lookup listings (categories, colors, sizes,
// variants). These are admin-style reads: { success, data } envelopes, and
// unlike the product listings they do report store failure.
type TaxonomyHandler struct {
	Cats     *repos.CategoryRepo
	Taxonomy *repos.TaxonomyRepo
	Variants *repos.VariantRepo
}

func (h *TaxonomyHandler) Categories(c *fiber.Ctx) error {
	locale := validate.Locale(c.Query("locale"))
	cats, err := h.Cats.List()
	if err != nil {
		log.Error(c, "categories.list", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load categories")
	}
	data := make([]fiber.Map, 0, len(cats))
	for _, cat := range cats {
		data = append(data, fiber.Map{
			"id":   cat.ID,
			"slug": cat.Slug,
			"name": cat.Name.Resolve(locale),
		})
	}
	return ok(c, data)
}

func (h *TaxonomyHandler) Colors(c *fiber.Ctx) error {
	locale := validate.Locale(c.Query("locale"))
	colors, err := h.Taxonomy.Colors()
	if err != nil {
		log.Error(c, "colors.list", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load colors")
	}
	data := make([]fiber.Map, 0, len(colors))
	for _, col := range colors {
		data = append(data, fiber.Map{
			"id":   col.ID,
			"name": col.Name.Resolve(locale),
			"hex":  col.Hex,
		})
	}
	return ok(c, data)
}

func (h *TaxonomyHandler) Sizes(c *fiber.Ctx) error {
	sizes, err := h.Taxonomy.Sizes()
	if err != nil {
		log.Error(c, "sizes.list", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load sizes")
	}
	data := make([]fiber.Map, 0, len(sizes))
	for _, s := range sizes {
		data = append(data, fiber.Map{"id": s.ID, "name": s.Name})
	}
	return ok(c, data)
}

func (h *TaxonomyHandler) ProductVariants(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	variants, err := h.Variants.ByProduct(id)
	if err != nil {
		log.Error(c, "variants.list", err, map[string]any{"product": id})
		return fail(c, fiber.StatusInternalServerError, "could not load variants")
	}
	data := make([]fiber.Map, 0, len(variants))
	for _, v := range variants {
		data = append(data, fiber.Map{
			"id":           v.ID,
			"product_id":   v.ProductID,
			"size_id":      v.SizeID,
			"color_id":     v.ColorID,
			"price":        v.Price,
			"stock":        v.Stock,
			"is_available": v.IsAvailable,
		})
	}
	return ok(c, data)
}
