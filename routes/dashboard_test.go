package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardBody struct {
	EmissionsByCategory []struct {
		Category string  `json:"category"`
		Total    float64 `json:"total"`
	} `json:"emissionsByCategory"`
	TotalEmissions float64 `json:"totalEmissions"`
	SDGImpact      map[string]struct {
		Progress    float64 `json:"progress"`
		Description string  `json:"description"`
	} `json:"sdgImpact"`
	ReductionTips []string `json:"reductionTips"`
	SDGProgress   []struct {
		Code     string  `json:"code"`
		Progress float64 `json:"progress"`
	} `json:"sdgProgress"`
}

func TestDashboardEmptyUser(t *testing.T) {
	app, _ := setupTestApp(t)
	token, userID := registerTestUser(t, app, "alice@example.com")

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/dashboard/%d", userID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dashboardBody
	decodeBody(t, resp, &body)

	assert.Empty(t, body.EmissionsByCategory)
	assert.Zero(t, body.TotalEmissions)
	for _, impact := range body.SDGImpact {
		assert.Zero(t, impact.Progress)
	}
	assert.Equal(t, []string{"Great job! Your emissions are below average for all categories"}, body.ReductionTips)
}

func TestDashboardAggregatesSubmissions(t *testing.T) {
	app, _ := setupTestApp(t)
	token, userID := registerTestUser(t, app, "alice@example.com")

	// 500 km en voiture essence : 60 kgCO2e, au-dessus du seuil transport (50).
	resp := submitEmission(t, app, token, "TRANSPORT", "CAR_GASOLINE", 500)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/dashboard/%d", userID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dashboardBody
	decodeBody(t, resp, &body)

	require.Len(t, body.EmissionsByCategory, 1)
	assert.Equal(t, "TRANSPORT", body.EmissionsByCategory[0].Category)
	assert.Equal(t, 60.0, body.EmissionsByCategory[0].Total)
	assert.Equal(t, 60.0, body.TotalEmissions)
	assert.Equal(t, 6.0, body.SDGImpact["SDG7"].Progress)
	assert.Equal(t, 12.0, body.SDGImpact["SDG13"].Progress)
	assert.Equal(t, []string{"Try carpooling or using public transportation to reduce your transport emissions"}, body.ReductionTips)

	require.Len(t, body.SDGProgress, 4)
	assert.Equal(t, "SDG7", body.SDGProgress[0].Code)
	assert.Equal(t, "SDG13", body.SDGProgress[3].Code)
}

func TestDashboardForbiddenForOtherUser(t *testing.T) {
	app, _ := setupTestApp(t)
	token, userID := registerTestUser(t, app, "alice@example.com")

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/dashboard/%d", userID+1), token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
