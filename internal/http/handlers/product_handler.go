package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	applog "shopgrid/internal/log"
	"shopgrid/internal/services"
	"shopgrid/internal/store"
	"shopgrid/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /api/products with the optional filter query params.
// Predicates AND together; an unparseable numeric filter is a 400 rather
// than a silent no-op.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := store.ProductFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   validate.Q(c.Query("search")),
		Brand:    strings.TrimSpace(c.Query("brand")),
	}

	var bad string
	f.MinPrice, bad = decimalQuery(c, "minPrice", bad)
	f.MaxPrice, bad = decimalQuery(c, "maxPrice", bad)
	f.MinRating, bad = decimalQuery(c, "rating", bad)
	if bad != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": bad})
		return jsonError(c, fiber.StatusBadRequest, "invalid "+bad)
	}

	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			applog.Security(c, "validation.fail", map[string]any{"field": "featured"})
			return jsonError(c, fiber.StatusBadRequest, "invalid featured")
		}
		f.Featured = &b
	}

	products, err := h.Catalog.ListProducts(f)
	if err != nil {
		applog.Error(c, "products.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(products)
}

func decimalQuery(c *fiber.Ctx, name, bad string) (*decimal.Decimal, string) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" || bad != "" {
		return nil, bad
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, name
	}
	return &d, bad
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "product")
	}
	p, ok, err := h.Catalog.GetProduct(id)
	if err != nil {
		applog.Error(c, "products.get", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load product")
	}
	if !ok {
		return notFound(c, "product")
	}
	return c.JSON(p)
}
