package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/NaouresKraiem/kachabity-sub002/internal/config"
	"github.com/NaouresKraiem/kachabity-sub002/internal/http/handlers"
	applog "github.com/NaouresKraiem/kachabity-sub002/internal/log"
	"github.com/NaouresKraiem/kachabity-sub002/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "something went wrong, please retry",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)

	api := app.Group("/api/v1")
	api.Get("/products/best-sellers", deps.CatalogHandler.BestSellers)
	api.Get("/products/deals", deps.CatalogHandler.Deals)
	api.Get("/products", deps.CatalogHandler.ByCategory)
	api.Get("/products/:id/variants", deps.TaxonomyHandler.ProductVariants)
	api.Get("/promotions/current", deps.PromotionHandler.Current)
	api.Get("/categories", deps.TaxonomyHandler.Categories)
	api.Get("/colors", deps.TaxonomyHandler.Colors)
	api.Get("/sizes", deps.TaxonomyHandler.Sizes)

	admin := api.Group("/admin", handlers.RequireAdmin(cfg.AdminToken))
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Post("/discounts", deps.AdminHandler.CreateDiscount)
	admin.Post("/promotions", deps.AdminHandler.CreatePromotion)
	admin.Put("/promotions/:id", deps.AdminHandler.UpdatePromotion)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
