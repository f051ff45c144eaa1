package handlers

import "github.com/gofiber/fiber/v2"

// Listing endpoints answer { "products": [...] } and admin-style endpoints
// answer { "success": ..., ... }. The two shapes are a kept quirk of the
// public API, not something to unify.

func products(c *fiber.Ctx, views any) error {
	return c.JSON(fiber.Map{"products": views})
}

func emptyProducts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"products": []any{}})
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}
