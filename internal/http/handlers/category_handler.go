package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopgrid/internal/log"
	"shopgrid/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "categories.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(cats)
}

func (h *CategoryHandler) BySlug(c *fiber.Ctx) error {
	cat, ok, err := h.Catalog.CategoryBySlug(c.Params("slug"))
	if err != nil {
		applog.Error(c, "categories.get", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load category")
	}
	if !ok {
		return notFound(c, "category")
	}
	return c.JSON(cat)
}
