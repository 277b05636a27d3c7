package handlers

import "github.com/gofiber/fiber/v2"

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, what string) error {
	return jsonError(c, fiber.StatusNotFound, what+" not found")
}
