package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"lookdehoje/internal/config"
	"lookdehoje/internal/http/handlers"
	applog "lookdehoje/internal/log"
	"lookdehoje/internal/repos"
	"lookdehoje/internal/storage"
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

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	deps, err := handlers.NewDeps(db, cfg)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		// Enough headroom for a full image batch.
		BodyLimit: (storage.MaxBatchSize + 1) * storage.MaxFileSize,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer generically; never leak internals
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "internal server error",
			})
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// ---------- Static uploads ----------
	log.Printf("[static] /uploads -> %s", cfg.UploadDir)
	app.Static("/uploads", cfg.UploadDir)

	// ---------- Routes ----------
	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Look de Hoje API is online"})
	})

	api.Get("/categories", deps.Categories.List)
	api.Post("/categories", deps.Categories.Create)
	api.Put("/categories/:id", deps.Categories.Update)
	api.Delete("/categories/:id", deps.Categories.Delete)

	uploadLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.upload.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "rate limit exceeded, retry soon"})
		},
	})
	api.Get("/pieces", deps.Pieces.List)
	api.Post("/pieces/upload-images", uploadLimiter, deps.Uploads.UploadImages)
	api.Post("/pieces", deps.Pieces.Create)
	api.Get("/pieces/:id", deps.Pieces.Get)
	api.Put("/pieces/:id/toggle-status", deps.Pieces.ToggleStatus)
	api.Put("/pieces/:id", deps.Pieces.Update)
	api.Delete("/pieces/:id", deps.Pieces.Delete)

	api.Get("/hero", deps.Hero.Get)
	api.Put("/hero", deps.Hero.Replace)

	api.Get("/admin/settings", deps.Admin.GetSettings)
	api.Put("/admin/settings", deps.Admin.UpdateSettings)
	api.Put("/admin/password", deps.Admin.ChangePassword)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
	})

	// Drain in-flight requests on SIGINT/SIGTERM before closing the store.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("[shutdown] draining connections")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
	_ = db.Close()
}
