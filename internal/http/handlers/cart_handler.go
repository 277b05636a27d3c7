package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "shopgrid/internal/log"
	"shopgrid/internal/services"
	"shopgrid/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid, ok := validate.SessionID(c.Params("sessionId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "sessionId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid session id")
	}
	cv, err := h.Cart.View(sid)
	if err != nil {
		applog.Error(c, "cart.view", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load cart")
	}
	return c.JSON(cv)
}

type addToCartRequest struct {
	SessionID string `json:"sessionId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Add upserts a cart row. Clients without a session yet get a fresh uuid,
// echoed back in the created row.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.ProductID <= 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return jsonError(c, fiber.StatusBadRequest, "missing productId")
	}
	sid := req.SessionID
	if sid == "" {
		sid = uuid.NewString()
	} else if _, ok := validate.SessionID(sid); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "sessionId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid session id")
	}

	item, err := h.Cart.Add(sid, req.ProductID, validate.Qty(req.Quantity))
	if err != nil {
		applog.Error(c, "cart.add", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not add to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "cart item")
	}
	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	item, found, err := h.Cart.UpdateQuantity(id, req.Quantity)
	if err != nil {
		applog.Error(c, "cart.update", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not update cart item")
	}
	if !found {
		return notFound(c, "cart item")
	}
	if item == nil {
		// non-positive quantity deleted the row
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(item)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "cart item")
	}
	removed, err := h.Cart.Remove(id)
	if err != nil {
		applog.Error(c, "cart.remove", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not remove cart item")
	}
	if !removed {
		return notFound(c, "cart item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid, ok := validate.SessionID(c.Params("sessionId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "sessionId"})
		return jsonError(c, fiber.StatusBadRequest, "invalid session id")
	}
	if err := h.Cart.Clear(sid); err != nil {
		applog.Error(c, "cart.clear", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not clear cart")
	}
	applog.Audit(c, "cart.clear", map[string]any{"session_id": sid})
	// clearing an already-empty cart still succeeds
	return c.SendStatus(fiber.StatusNoContent)
}
