package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorTableLookup(t *testing.T) {
	table := DefaultFactorTable()

	factor, err := table.Factor(CategoryDigital, "CLOUD_STORAGE")
	require.NoError(t, err)
	assert.Equal(t, 0.0002, factor)

	assert.Equal(t, "kWh", table.Unit(CategoryEnergy))
	assert.Equal(t, "GB/month", table.Unit(CategoryDigital))
	assert.ElementsMatch(t, []string{"LANDFILL", "RECYCLING", "COMPOST"}, table.Subcategories(CategoryWaste))
}

func TestFactorTableImmutable(t *testing.T) {
	source := map[Category]map[string]float64{
		CategoryEnergy: {"ELECTRICITY": 0.5},
	}
	table := NewFactorTable(source, map[Category]string{CategoryEnergy: "kWh"})

	// Muter la map d'origine ne doit pas affecter la table construite.
	source[CategoryEnergy]["ELECTRICITY"] = 99

	factor, err := table.Factor(CategoryEnergy, "ELECTRICITY")
	require.NoError(t, err)
	assert.Equal(t, 0.5, factor)
}
