package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenloop/carbon"
	"greenloop/config"
	"greenloop/middleware"
	"greenloop/models"
	"greenloop/store"
)

var validate = validator.New()

type EmissionsHandler struct {
	store *store.EmissionStore
	calc  *carbon.Calculator
	table *carbon.FactorTable
}

func SetupEmissionRoutes(app *fiber.App, db *store.EmissionStore, table *carbon.FactorTable, cfg config.Config) {
	h := &EmissionsHandler{
		store: db,
		calc:  carbon.NewCalculator(table),
		table: table,
	}
	emissions := app.Group("/api/emissions", middleware.JWT(cfg))
	emissions.Post("/", h.CreateEmission)
	emissions.Get("/categories", h.ListCategories)
	emissions.Get("/user/:userId", h.ListByUser)
}

type emissionPayload struct {
	Category    string  `json:"category" validate:"required"`
	Subcategory string  `json:"subcategory" validate:"required"`
	Value       float64 `json:"value" validate:"gte=0"`
	Unit        string  `json:"unit"`
}

// POST /api/emissions
// Calcule le CO2e et persiste l'enregistrement. L'utilisateur vient du token.
func (h *EmissionsHandler) CreateEmission(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var body emissionPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}
	if err := validate.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide", "details": err.Error()})
	}

	category := carbon.Category(body.Category)
	co2e, err := h.calc.Compute(category, body.Subcategory, body.Value)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	unit := body.Unit
	if unit == "" {
		unit = h.table.Unit(category)
	}

	emission := models.Emission{
		UserID:      userID,
		Category:    body.Category,
		Subcategory: body.Subcategory,
		Value:       body.Value,
		Unit:        unit,
		CO2e:        co2e,
	}

	if err := h.store.Append(c.Context(), &emission); err != nil {
		config.Logger().WithError(err).Error("échec insertion émission")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Impossible d'enregistrer l'émission"})
	}

	return c.Status(fiber.StatusCreated).JSON(emission)
}

// GET /api/emissions/user/:userId
// Retourne les émissions de l'utilisateur, les plus récentes d'abord.
func (h *EmissionsHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := requestedUserID(c)
	if !ok {
		return nil
	}

	emissions, err := h.store.ListByUser(c.Context(), userID)
	if err != nil {
		config.Logger().WithError(err).Error("échec lecture émissions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erreur lors de la récupération des émissions"})
	}

	return c.JSON(emissions)
}

type categoryInfo struct {
	Category      carbon.Category `json:"category"`
	Unit          string          `json:"unit"`
	Subcategories []string        `json:"subcategories"`
}

// GET /api/emissions/categories
// Catalogue des catégories et sous-catégories connues, pour la page calculateur.
func (h *EmissionsHandler) ListCategories(c *fiber.Ctx) error {
	catalogue := make([]categoryInfo, 0, len(carbon.Categories))
	for _, cat := range carbon.Categories {
		catalogue = append(catalogue, categoryInfo{
			Category:      cat,
			Unit:          h.table.Unit(cat),
			Subcategories: h.table.Subcategories(cat),
		})
	}
	return c.JSON(catalogue)
}

// requestedUserID lit :userId et vérifie qu'il correspond au token.
// Écrit la réponse d'erreur elle-même quand le contrôle échoue.
func requestedUserID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("userId")
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId invalide"})
		return 0, false
	}
	if uint(id) != c.Locals("user_id").(uint) {
		_ = c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Accès interdit à cet utilisateur"})
		return 0, false
	}
	return uint(id), true
}
