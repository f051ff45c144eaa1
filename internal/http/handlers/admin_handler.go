package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
	"github.com/NaouresKraiem/kachabity-sub002/internal/log"
	"github.com/NaouresKraiem/kachabity-sub002/internal/repos"
	"github.com/NaouresKraiem/kachabity-sub002/internal/validate"
)

// AdminHandler is the write-side CRUD collaborator the read engine coexists
// with. Unlike the listing endpoints it reports store failure explicitly:
// { success:false, error } with a 5xx. Missing required fields come back
// as 4xx.
type AdminHandler struct {
	Discounts *repos.DiscountRepo
	Promos    *repos.PromotionRepo
	Products  *repos.ProductRepo
}

type productPayload struct {
	Name       string  `json:"name"`
	NameAr     string  `json:"name_ar"`
	NameFr     string  `json:"name_fr"`
	Slug       string  `json:"slug"`
	CategoryID string  `json:"category_id"`
	BasePrice  float64 `json:"base_price"`
	ImageURL   string  `json:"image_url"`
	Status     string  `json:"status"`
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in productPayload
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	name, okName := validate.Title(in.Name)
	if !okName {
		log.Security(c, "validation.fail", map[string]any{"field": "name"})
		return fail(c, fiber.StatusBadRequest, "name is required")
	}
	slug, okSlug := validate.Slug(in.Slug)
	if !okSlug {
		log.Security(c, "validation.fail", map[string]any{"field": "slug"})
		return fail(c, fiber.StatusBadRequest, "slug is required")
	}
	categoryID, okCat := validate.ID(in.CategoryID)
	if !okCat {
		log.Security(c, "validation.fail", map[string]any{"field": "category_id"})
		return fail(c, fiber.StatusBadRequest, "category_id is required")
	}
	if in.BasePrice < 0 {
		return fail(c, fiber.StatusBadRequest, "base_price must be non-negative")
	}
	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	switch status {
	case domain.StatusActive, domain.StatusInactive, domain.StatusArchived:
	default:
		return fail(c, fiber.StatusBadRequest, "invalid status")
	}

	p := domain.Product{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Name:       domain.NewLocalized(name, map[string]string{"ar": in.NameAr, "fr": in.NameFr}),
		Slug:       slug,
		BasePrice:  in.BasePrice,
		Status:     status,
		ImageURL:   in.ImageURL,
	}
	if err := h.Products.Create(p); err != nil {
		log.Error(c, "admin.product.create", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not save product")
	}
	created, err := h.Products.Get(p.ID)
	if err != nil {
		log.Error(c, "admin.product.create.readback", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load created product")
	}
	log.Audit(c, "admin.product.create", map[string]any{"id": created.ID, "slug": created.Slug})
	return ok(c, fiber.Map{
		"id":          created.ID,
		"slug":        created.Slug,
		"name":        created.Name.Default,
		"category_id": created.CategoryID,
		"base_price":  created.BasePrice,
		"status":      created.Status,
	})
}

type discountPayload struct {
	ProductID       string  `json:"product_id"`
	DiscountPercent float64 `json:"discount_percent"`
	StartsAt        string  `json:"starts_at"`
	EndsAt          string  `json:"ends_at"`
	Active          *bool   `json:"active"`
}

func (h *AdminHandler) CreateDiscount(c *fiber.Ctx) error {
	var in discountPayload
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	productID, okID := validate.ID(in.ProductID)
	if !okID {
		log.Security(c, "validation.fail", map[string]any{"field": "product_id"})
		return fail(c, fiber.StatusBadRequest, "product_id is required")
	}
	percent, okPct := validate.Percent(in.DiscountPercent)
	if !okPct {
		return fail(c, fiber.StatusBadRequest, "discount_percent must be within [0,100]")
	}
	startsAt, okStart := validate.Instant(in.StartsAt)
	endsAt, okEnd := validate.Instant(in.EndsAt)
	if !okStart || !okEnd {
		return fail(c, fiber.StatusBadRequest, "timestamps must be RFC3339")
	}

	d := domain.Discount{
		ID:              uuid.NewString(),
		ProductID:       productID,
		DiscountPercent: percent,
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		Active:          in.Active == nil || *in.Active,
	}
	if err := h.Discounts.Create(d); err != nil {
		log.Error(c, "admin.discount.create", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not save discount")
	}
	log.Audit(c, "admin.discount.create", map[string]any{"id": d.ID, "product": d.ProductID})
	return ok(c, fiber.Map{"id": d.ID})
}

type promotionPayload struct {
	Title           string  `json:"title"`
	Subtitle        string  `json:"subtitle"`
	DiscountPercent float64 `json:"discount_percent"`
	StartsAt        string  `json:"starts_at"`
	EndsAt          string  `json:"ends_at"`
	Active          *bool   `json:"active"`
}

func (h *AdminHandler) parsePromotion(c *fiber.Ctx, id string) (domain.Promotion, bool) {
	var in promotionPayload
	if err := c.BodyParser(&in); err != nil {
		_ = fail(c, fiber.StatusBadRequest, "invalid payload")
		return domain.Promotion{}, false
	}
	title, okTitle := validate.Title(in.Title)
	if !okTitle {
		log.Security(c, "validation.fail", map[string]any{"field": "title"})
		_ = fail(c, fiber.StatusBadRequest, "title is required")
		return domain.Promotion{}, false
	}
	percent, okPct := validate.Percent(in.DiscountPercent)
	if !okPct {
		_ = fail(c, fiber.StatusBadRequest, "discount_percent must be within [0,100]")
		return domain.Promotion{}, false
	}
	startsAt, okStart := validate.Instant(in.StartsAt)
	endsAt, okEnd := validate.Instant(in.EndsAt)
	if !okStart || !okEnd {
		_ = fail(c, fiber.StatusBadRequest, "timestamps must be RFC3339")
		return domain.Promotion{}, false
	}
	return domain.Promotion{
		ID:              id,
		Title:           title,
		Subtitle:        in.Subtitle,
		DiscountPercent: percent,
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		Active:          in.Active == nil || *in.Active,
	}, true
}

func (h *AdminHandler) CreatePromotion(c *fiber.Ctx) error {
	p, okBody := h.parsePromotion(c, uuid.NewString())
	if !okBody {
		return nil
	}
	if err := h.Promos.Create(p); err != nil {
		log.Error(c, "admin.promotion.create", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not save promotion")
	}
	log.Audit(c, "admin.promotion.create", map[string]any{"id": p.ID})
	return ok(c, fiber.Map{"id": p.ID})
}

func (h *AdminHandler) UpdatePromotion(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid promotion id")
	}
	p, okBody := h.parsePromotion(c, id)
	if !okBody {
		return nil
	}
	if err := h.Promos.Update(p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, fiber.StatusNotFound, "promotion not found")
		}
		log.Error(c, "admin.promotion.update", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not update promotion")
	}
	log.Audit(c, "admin.promotion.update", map[string]any{"id": id})
	return ok(c, fiber.Map{"id": id})
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Products.SoftDelete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail(c, fiber.StatusNotFound, "product not found")
		}
		log.Error(c, "admin.product.delete", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not delete product")
	}
	log.Audit(c, "admin.product.delete", map[string]any{"id": id})
	return ok(c, fiber.Map{"id": id})
}
