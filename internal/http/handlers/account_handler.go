package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "shopgrid/internal/log"
	"shopgrid/internal/services"
)

type AccountHandler struct {
	Accounts *services.AccountService
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		applog.Security(c, "validation.fail", map[string]any{"field": "credentials"})
		return jsonError(c, fiber.StatusBadRequest, "username and password required")
	}

	u, err := h.Accounts.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return jsonError(c, fiber.StatusConflict, "username already taken")
		}
		applog.Error(c, "account.register", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create user")
	}
	applog.Audit(c, "account.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(u)
}
