package carbon

// DashboardPayload est le format attendu par la page dashboard.
type DashboardPayload struct {
	EmissionsByCategory []CategoryTotal      `json:"emissionsByCategory"`
	TotalEmissions      float64              `json:"totalEmissions"`
	SDGImpact           map[string]SDGImpact `json:"sdgImpact"`
	ReductionTips       []string             `json:"reductionTips"`
	Chart               []ChartPoint         `json:"chart"`
	SDGProgress         []SDGProgressBar     `json:"sdgProgress"`
}

// ChartPoint alimente le graphique par catégorie (une entrée par catégorie présente).
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SDGProgressBar alimente les barres de progression, dans l'ordre SDG7, SDG9, SDG12, SDG13.
type SDGProgressBar struct {
	Code     string  `json:"code"`
	Label    string  `json:"label"`
	Progress float64 `json:"progress"`
}

// BuildDashboardPayload remet en forme la synthèse pour le front.
// Pur : aucune logique métier, uniquement du reshaping.
func BuildDashboardPayload(s *Summary) DashboardPayload {
	chart := make([]ChartPoint, 0, len(s.CategoryTotals))
	for _, ct := range s.CategoryTotals {
		chart = append(chart, ChartPoint{Label: string(ct.Category), Value: ct.Total})
	}

	bars := make([]SDGProgressBar, 0, len(SDGOrder))
	for _, code := range SDGOrder {
		impact, ok := s.SDGImpact[code]
		if !ok {
			continue
		}
		bars = append(bars, SDGProgressBar{Code: code, Label: impact.Description, Progress: impact.Progress})
	}

	return DashboardPayload{
		EmissionsByCategory: s.CategoryTotals,
		TotalEmissions:      s.TotalEmissions,
		SDGImpact:           s.SDGImpact,
		ReductionTips:       s.ReductionTips,
		Chart:               chart,
		SDGProgress:         bars,
	}
}
