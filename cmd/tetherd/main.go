package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tether/config"
	"tether/server"
	"tether/storage"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func main() {
	cfg := config.Load()

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := storage.New(db)
	if err := store.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	handler := server.NewHandler(store)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Tether Rendering Service",
	})

	app.Use(recover.New())
	app.Use(server.RequestLogger())

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	app.Post("/route", handler.Route)
	app.Post("/render", handler.Render)

	app.Post("/scenes", handler.SaveScene)
	app.Get("/scenes", handler.ListScenes)
	app.Get("/scenes/:id", handler.GetScene)
	app.Delete("/scenes/:id", handler.DeleteScene)
	app.Get("/scenes/:id/render", handler.RenderScene)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Tether Rendering Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
