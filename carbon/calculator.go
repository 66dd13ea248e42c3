package carbon

import (
	"fmt"
	"math"
)

// Calculator calcule le CO2e d'une activité à partir de la table de facteurs.
// Fonction pure : pas d'état, pas d'effet de bord.
type Calculator struct {
	table *FactorTable
}

func NewCalculator(table *FactorTable) *Calculator {
	return &Calculator{table: table}
}

// Compute retourne value * facteur(category, subcategory) en kgCO2e.
// La valeur doit être finie et >= 0.
func (c *Calculator) Compute(category Category, subcategory string, value float64) (float64, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, value)
	}
	factor, err := c.table.Factor(category, subcategory)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}
