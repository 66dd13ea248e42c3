package carbon

import (
	"context"

	"github.com/shopspring/decimal"
)

// Record est la projection minimale d'une émission persistée dont
// l'agrégation a besoin.
type Record struct {
	Category    Category
	Subcategory string
	CO2e        float64
}

// RecordSource est le contrat du store vu par le moteur d'agrégation.
type RecordSource interface {
	RecordsByUser(ctx context.Context, userID uint) ([]Record, error)
}

// SDGWeight décrit un objectif de développement durable suivi par le dashboard.
type SDGWeight struct {
	Weight      float64
	Description string
}

// EngineConfig regroupe les constantes d'agrégation (poids SDG, seuils et
// messages de conseils). Passée à la construction, jamais modifiée ensuite.
type EngineConfig struct {
	SDGWeights    map[string]SDGWeight
	TipThresholds map[Category]float64
	Tips          map[Category]string
	DefaultTip    string
}

// SDGOrder fixe l'ordre d'affichage des objectifs sur le dashboard.
var SDGOrder = []string{"SDG7", "SDG9", "SDG12", "SDG13"}

// DefaultEngineConfig retourne les constantes de référence GreenLoop.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SDGWeights: map[string]SDGWeight{
			"SDG7":  {Weight: 0.1, Description: "Affordable & Clean Energy"},
			"SDG9":  {Weight: 0.05, Description: "Industry, Innovation & Infrastructure"},
			"SDG12": {Weight: 0.15, Description: "Responsible Consumption"},
			"SDG13": {Weight: 0.2, Description: "Climate Action"},
		},
		TipThresholds: map[Category]float64{
			CategoryEnergy:    100,
			CategoryTransport: 50,
			CategoryDigital:   10,
			CategoryWaste:     30,
		},
		Tips: map[Category]string{
			CategoryEnergy:    "Consider switching to renewable energy sources to reduce your energy emissions",
			CategoryTransport: "Try carpooling or using public transportation to reduce your transport emissions",
			CategoryDigital:   "Reduce streaming quality and clean up cloud storage to lower digital emissions",
			CategoryWaste:     "Increase recycling and composting to reduce waste emissions",
		},
		DefaultTip: "Great job! Your emissions are below average for all categories",
	}
}

// CategoryTotal est la somme de CO2e d'une catégorie pour un utilisateur.
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

// SDGImpact est la progression (0-100) d'un objectif dérivée du total d'émissions.
type SDGImpact struct {
	Progress    float64 `json:"progress"`
	Description string  `json:"description"`
}

// Summary est la sortie du moteur d'agrégation pour un utilisateur.
type Summary struct {
	CategoryTotals []CategoryTotal
	TotalEmissions float64
	SDGImpact      map[string]SDGImpact
	ReductionTips  []string
}

// Engine agrège les émissions d'un utilisateur : totaux par catégorie,
// progression SDG et conseils de réduction.
type Engine struct {
	source RecordSource
	cfg    EngineConfig
}

func NewEngine(source RecordSource, cfg EngineConfig) *Engine {
	return &Engine{source: source, cfg: cfg}
}

// Summarize recalcule la synthèse à chaque appel, sans cache. Un utilisateur
// sans enregistrement obtient une synthèse à zéro, pas une erreur.
func (e *Engine) Summarize(ctx context.Context, userID uint) (*Summary, error) {
	records, err := e.source.RecordsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return e.summarize(records), nil
}

func (e *Engine) summarize(records []Record) *Summary {
	// Regroupement par catégorie dans l'ordre de première apparition.
	// L'accumulation passe par decimal pour éviter la dérive des petits
	// facteurs (DIGITAL ~0.0002) sur de longues séries.
	index := make(map[Category]int)
	order := make([]Category, 0, len(Categories))
	sums := make([]decimal.Decimal, 0, len(Categories))
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(order)
			index[r.Category] = i
			order = append(order, r.Category)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(decimal.NewFromFloat(r.CO2e))
	}

	totals := make([]CategoryTotal, 0, len(order))
	grandTotal := decimal.Zero
	for i, cat := range order {
		totals = append(totals, CategoryTotal{Category: cat, Total: sums[i].InexactFloat64()})
		grandTotal = grandTotal.Add(sums[i])
	}
	total := grandTotal.InexactFloat64()

	impact := make(map[string]SDGImpact, len(e.cfg.SDGWeights))
	for code, w := range e.cfg.SDGWeights {
		progress := total * w.Weight
		if progress > 100 {
			progress = 100
		}
		impact[code] = SDGImpact{Progress: progress, Description: w.Description}
	}

	return &Summary{
		CategoryTotals: totals,
		TotalEmissions: total,
		SDGImpact:      impact,
		ReductionTips:  e.reductionTips(index, sums),
	}
}

// reductionTips parcourt les catégories dans l'ordre de référence et ajoute
// le conseil de chaque catégorie dont le total dépasse strictement son seuil.
func (e *Engine) reductionTips(index map[Category]int, sums []decimal.Decimal) []string {
	tips := make([]string, 0, len(Categories))
	for _, cat := range Categories {
		i, ok := index[cat]
		if !ok {
			continue
		}
		threshold, ok := e.cfg.TipThresholds[cat]
		if !ok {
			continue
		}
		if sums[i].InexactFloat64() > threshold {
			tips = append(tips, e.cfg.Tips[cat])
		}
	}
	if len(tips) == 0 {
		return []string{e.cfg.DefaultTip}
	}
	return tips
}
