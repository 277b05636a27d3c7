package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopgrid/internal/domain"
	applog "shopgrid/internal/log"
	"shopgrid/internal/services"
	"shopgrid/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
	Cart  *services.CartService
}

type createOrderRequest struct {
	SessionID       string `json:"sessionId"`
	CustomerName    string `json:"customerName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shippingAddress"`
	City            string `json:"city"`
	ZipCode         string `json:"zipCode"`
	Total           string `json:"total"`
	Status          string `json:"status"`
}

// Create stores the order, then clears the session cart as a second,
// separate step. The two are not atomic; a crash in between leaves stale
// cart rows behind.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}

	name, ok := validate.Name(req.CustomerName)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "customerName"})
		return jsonError(c, fiber.StatusBadRequest, "invalid customer name")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return jsonError(c, fiber.StatusBadRequest, "invalid email")
	}
	zip, ok := validate.ZIP(req.ZipCode)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "zipCode"})
		return jsonError(c, fiber.StatusBadRequest, "invalid zip code")
	}

	order, err := h.Order.Place(domain.Order{
		CustomerName:    name,
		Email:           email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		ZipCode:         zip,
		Total:           req.Total,
		Status:          req.Status,
	})
	if err != nil {
		applog.Error(c, "order.create", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create order")
	}
	applog.Audit(c, "order.create", map[string]any{"order_id": order.ID, "total": order.Total})

	if sid, ok := validate.SessionID(req.SessionID); ok {
		if err := h.Cart.Clear(sid); err != nil {
			// order already exists; report success and leave the rows
			applog.Error(c, "order.cart_clear", err, map[string]any{"order_id": order.ID})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "order")
	}
	o, ok, err := h.Order.Get(id)
	if err != nil {
		applog.Error(c, "order.get", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load order")
	}
	if !ok {
		return notFound(c, "order")
	}
	return c.JSON(o)
}
