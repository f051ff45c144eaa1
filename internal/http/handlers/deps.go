package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/NaouresKraiem/kachabity-sub002/internal/config"
	"github.com/NaouresKraiem/kachabity-sub002/internal/repos"
	"github.com/NaouresKraiem/kachabity-sub002/internal/services"
)

type Deps struct {
	CatalogHandler   *CatalogHandler
	PromotionHandler *PromotionHandler
	TaxonomyHandler  *TaxonomyHandler
	AdminHandler     *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	discRepo := repos.NewDiscountRepo(db)
	imgRepo := repos.NewImageRepo(db)
	revRepo := repos.NewReviewRepo(db)
	promoRepo := repos.NewPromotionRepo(db)
	taxRepo := repos.NewTaxonomyRepo(db)
	varRepo := repos.NewVariantRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, catRepo, discRepo, imgRepo, revRepo, cfg.PlaceholderImage)
	promoSvc := services.NewPromotionService(promoRepo)

	return &Deps{
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc},
		PromotionHandler: &PromotionHandler{Promos: promoSvc},
		TaxonomyHandler:  &TaxonomyHandler{Cats: catRepo, Taxonomy: taxRepo, Variants: varRepo},
		AdminHandler:     &AdminHandler{Discounts: discRepo, Promos: promoRepo, Products: prodRepo},
	}
}
