package routes

import (
	"github.com/gofiber/fiber/v2"

	"greenloop/carbon"
	"greenloop/config"
	"greenloop/middleware"
)

type DashboardHandler struct {
	engine *carbon.Engine
}

func SetupDashboardRoutes(app *fiber.App, engine *carbon.Engine, cfg config.Config) {
	h := &DashboardHandler{engine: engine}
	dashboard := app.Group("/api/dashboard", middleware.JWT(cfg))
	dashboard.Get("/:userId", h.Summary)
}

// GET /api/dashboard/:userId
// Synthèse des émissions : totaux par catégorie, impact SDG, conseils.
// Un utilisateur sans enregistrement obtient une synthèse à zéro (200).
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID, ok := requestedUserID(c)
	if !ok {
		return nil
	}

	summary, err := h.engine.Summarize(c.Context(), userID)
	if err != nil {
		config.Logger().WithError(err).Error("échec agrégation dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur lors du calcul de la synthèse"})
	}

	return c.JSON(carbon.BuildDashboardPayload(summary))
}
