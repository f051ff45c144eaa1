package services

import (
	"github.com/NaouresKraiem/kachabity-sub002/internal/catalog"
	"github.com/NaouresKraiem/kachabity-sub002/internal/domain"
	"github.com/NaouresKraiem/kachabity-sub002/internal/repos"
)

// CatalogService assembles the denormalized catalog views served by the
// listing endpoints. Each request runs one batched lookup per concern
// (discounts, images, reviews, category slugs) regardless of batch size.
type CatalogService struct {
	Products   *repos.ProductRepo
	Categories *repos.CategoryRepo
	Discounts  *repos.DiscountRepo
	Images     *repos.ImageRepo
	Reviews    *repos.ReviewRepo

	// PlaceholderImage is the URL served when a product has neither image
	// rows nor a legacy image column.
	PlaceholderImage string
}

func NewCatalogService(products *repos.ProductRepo, categories *repos.CategoryRepo,
	discounts *repos.DiscountRepo, images *repos.ImageRepo, reviews *repos.ReviewRepo,
	placeholder string) *CatalogService {
	return &CatalogService{
		Products:         products,
		Categories:       categories,
		Discounts:        discounts,
		Images:           images,
		Reviews:          reviews,
		PlaceholderImage: placeholder,
	}
}

func (s *CatalogService) BestSellers(limit int, locale string) ([]domain.CatalogView, error) {
	products, err := s.Products.BestSellers(clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return s.Assemble(products, locale)
}

func (s *CatalogService) LatestDeals(limit int, locale string) ([]domain.CatalogView, error) {
	products, err := s.Products.Discounted(clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return s.Assemble(products, locale)
}

func (s *CatalogService) ByCategory(slug string, limit int, locale string) ([]domain.CatalogView, error) {
	products, err := s.Products.ByCategorySlug(slug, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return s.Assemble(products, locale)
}

// Assemble turns a batch of products into catalog views: visibility filter,
// batched discount/image/review/category-slug resolution, price
// calculation. The input ordering is preserved. Any failed batch lookup
// (other than the fail-soft discount path) fails the whole batch; partial
// results never go out.
func (s *CatalogService) Assemble(products []domain.Product, locale string) ([]domain.CatalogView, error) {
	visible := products[:0:0]
	for _, p := range products {
		if catalog.ProductVisible(p) {
			visible = append(visible, p)
		}
	}
	if len(visible) == 0 {
		return []domain.CatalogView{}, nil
	}

	ids := make([]string, 0, len(visible))
	catIDs := make([]string, 0, len(visible))
	seenCat := map[string]bool{}
	for _, p := range visible {
		ids = append(ids, p.ID)
		if !seenCat[p.CategoryID] {
			seenCat[p.CategoryID] = true
			catIDs = append(catIDs, p.CategoryID)
		}
	}

	discounts := s.Discounts.ActiveByProductIDs(ids)
	images, err := s.Images.ByProductIDs(ids)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.ByProductIDs(ids)
	if err != nil {
		return nil, err
	}
	slugs, err := s.Categories.SlugsByIDs(catIDs)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CatalogView, 0, len(visible))
	for _, p := range visible {
		views = append(views, buildView(p, discounts, images, reviews, slugs, s.PlaceholderImage, locale))
	}
	return views, nil
}

func buildView(p domain.Product,
	discounts map[string]domain.Discount,
	images map[string][]domain.ProductImage,
	reviews map[string][]domain.Review,
	slugs map[string]string,
	placeholder, locale string) domain.CatalogView {

	view := domain.CatalogView{
		ID:           p.ID,
		Name:         p.Name.Resolve(locale),
		Slug:         p.Slug,
		BasePrice:    p.BasePrice,
		PriceCents:   p.BasePrice,
		ImageURL:     catalog.ResolveImage(images[p.ID], p.ImageURL, placeholder),
		CategoryID:   p.CategoryID,
		CategorySlug: slugs[p.CategoryID],
		Currency:     domain.Currency,
		SoldCount:    p.SoldCount,
	}

	view.Rating, view.ReviewCount = catalog.Rate(reviews[p.ID])

	var percent *float64
	if d, ok := discounts[p.ID]; ok {
		percent = &d.DiscountPercent
		view.DiscountPercent = &d.DiscountPercent
		view.PromoEndDate = d.EndsAt
	}
	price := catalog.Price(p.BasePrice, percent)
	view.FinalPrice = price.FinalPrice
	view.Savings = price.Savings
	view.HasDiscount = price.HasDiscount

	return view
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 12
	}
	if limit > 50 {
		return 50
	}
	return limit
}
