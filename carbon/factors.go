package carbon

import (
	"errors"
	"fmt"
)

// Category est l'ensemble fermé des catégories d'émission suivies par GreenLoop.
type Category string

const (
	CategoryEnergy    Category = "ENERGY"
	CategoryTransport Category = "TRANSPORT"
	CategoryDigital   Category = "DIGITAL"
	CategoryWaste     Category = "WASTE"
)

// Categories liste les catégories dans l'ordre de référence (ordre des seuils de conseils).
var Categories = []Category{CategoryEnergy, CategoryTransport, CategoryDigital, CategoryWaste}

var (
	ErrInvalidCategory    = errors.New("catégorie inconnue")
	ErrInvalidSubcategory = errors.New("sous-catégorie inconnue")
	ErrInvalidValue       = errors.New("valeur invalide")
)

// FactorTable associe (catégorie, sous-catégorie) à un facteur d'émission
// en kgCO2e par unité. La table est fermée : toute paire inconnue est une
// erreur, jamais un facteur 0.
type FactorTable struct {
	factors map[Category]map[string]float64
	units   map[Category]string
}

// NewFactorTable construit une table immuable à partir des facteurs fournis.
// Les maps sont copiées pour éviter toute mutation après construction.
func NewFactorTable(factors map[Category]map[string]float64, units map[Category]string) *FactorTable {
	t := &FactorTable{
		factors: make(map[Category]map[string]float64, len(factors)),
		units:   make(map[Category]string, len(units)),
	}
	for cat, subs := range factors {
		copied := make(map[string]float64, len(subs))
		for sub, f := range subs {
			copied[sub] = f
		}
		t.factors[cat] = copied
	}
	for cat, u := range units {
		t.units[cat] = u
	}
	return t
}

// DefaultFactorTable retourne les facteurs de référence GreenLoop (kgCO2e / unité).
func DefaultFactorTable() *FactorTable {
	return NewFactorTable(
		map[Category]map[string]float64{
			CategoryEnergy: {
				"ELECTRICITY": 0.5,  // par kWh
				"NATURAL_GAS": 0.2,  // par kWh
				"SOLAR":       0.05, // par kWh
			},
			CategoryTransport: {
				"CAR_GASOLINE": 0.12, // par km
				"CAR_ELECTRIC": 0.05,
				"BUS":          0.08,
				"TRAIN":        0.05,
				"PLANE":        0.25,
			},
			CategoryDigital: {
				"CLOUD_STORAGE": 0.0002, // par GB/mois
				"STREAMING":     0.0005, // par heure
			},
			CategoryWaste: {
				"LANDFILL":  0.5, // par kg
				"RECYCLING": 0.1,
				"COMPOST":   0.05,
			},
		},
		map[Category]string{
			CategoryEnergy:    "kWh",
			CategoryTransport: "km",
			CategoryDigital:   "GB/month",
			CategoryWaste:     "kg",
		},
	)
}

// Factor retourne le facteur pour la paire demandée, ou une erreur explicite
// si la catégorie ou la sous-catégorie est inconnue.
func (t *FactorTable) Factor(category Category, subcategory string) (float64, error) {
	subs, ok := t.factors[category]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	factor, ok := subs[subcategory]
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s", ErrInvalidSubcategory, category, subcategory)
	}
	return factor, nil
}

// Unit retourne l'unité d'affichage de la catégorie ("kWh", "km", ...).
func (t *FactorTable) Unit(category Category) string {
	return t.units[category]
}

// Subcategories retourne les sous-catégories connues d'une catégorie.
func (t *FactorTable) Subcategories(category Category) []string {
	subs := make([]string, 0, len(t.factors[category]))
	for sub := range t.factors[category] {
		subs = append(subs, sub)
	}
	return subs
}
