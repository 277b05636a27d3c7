package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shopgrid/internal/config"
	"shopgrid/internal/http/handlers"
	applog "shopgrid/internal/log"
	"shopgrid/internal/store"
	"shopgrid/internal/store/sqlstore"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	// Store selection: in-memory by default, sqlite when DB_DSN is set.
	var st store.Storage
	if cfg.DBDSN != "" {
		sq, err := sqlstore.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal(err)
		}
		defer sq.Close()
		st = sq
	} else {
		st = store.NewMemStore()
	}
	if err := store.Seed(st); err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// never leak internals to the client
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(st)
	api := app.Group("/api")

	api.Get("/categories", deps.CategoryHandler.List)
	api.Get("/categories/:slug", deps.CategoryHandler.BySlug)

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)

	api.Get("/cart/:sessionId", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Put("/cart/:id", deps.CartHandler.Update)
	api.Delete("/cart/session/:sessionId", deps.CartHandler.Clear)
	api.Delete("/cart/:id", deps.CartHandler.Remove)

	orderLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.orders.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Post("/orders", orderLimiter, deps.OrderHandler.Create)
	api.Get("/orders/:id", deps.OrderHandler.Detail)

	api.Post("/users", deps.AccountHandler.Register)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
