package main

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/RishikeshSreekumar/vibevault/internal/auth"
	"github.com/RishikeshSreekumar/vibevault/internal/config"
	"github.com/RishikeshSreekumar/vibevault/internal/database"
	"github.com/RishikeshSreekumar/vibevault/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "err", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	if cfg.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY is not set; mutating endpoints will reject all requests")
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", "err", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		log.Fatal("Failed to initialize schema", "err", err)
	}

	guard := auth.NewGuard(cfg.AdminAPIKey)
	h := handlers.New(db)

	app := fiber.New(fiber.Config{
		AppName:      "VibeVault Song Directory",
		ServerHeader: "VibeVault",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + auth.HeaderAPIKey,
	}))

	handlers.Register(app, h, guard)

	log.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", "err", err)
	}
}
