package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"greenloop/carbon"
	"greenloop/config"
	"greenloop/database"
	"greenloop/routes"
	"greenloop/store"
)

func main() {
	cfg := config.Load()
	logg := config.Logger()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logg.WithError(err).Fatal("échec connexion base de données")
	}

	app := fiber.New()

	// CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "greenloop-api",
			"status":  "ok",
			"env":     cfg.Env,
		})
	})

	emissionStore := store.NewEmissionStore(db)
	table := carbon.DefaultFactorTable()
	engine := carbon.NewEngine(emissionStore, carbon.DefaultEngineConfig())

	// Routes API (AVANT les routes statiques)
	routes.SetupAuthRoutes(app, db, cfg)
	routes.SetupEmissionRoutes(app, emissionStore, table, cfg)
	routes.SetupDashboardRoutes(app, engine, cfg)

	// Servir le front (login, calculator, dashboard) depuis le dossier public
	app.Static("/", cfg.PublicDir)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.PublicDir + "/login.html")
	})

	// Démarrage gracieux
	go func() {
		logg.Info("GreenLoop API en écoute sur " + cfg.HTTPAddr())
		if err := app.Listen(cfg.HTTPAddr()); err != nil {
			logg.WithError(err).Error("serveur arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("Arrêt du serveur GreenLoop...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logg.WithError(err).Error("arrêt forcé")
	}
}
