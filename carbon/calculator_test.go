package carbon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeExactProduct(t *testing.T) {
	calc := NewCalculator(DefaultFactorTable())

	cases := []struct {
		name        string
		category    Category
		subcategory string
		value       float64
		expected    float64
	}{
		{"electricity", CategoryEnergy, "ELECTRICITY", 200, 100},
		{"gasoline car", CategoryTransport, "CAR_GASOLINE", 500, 60},
		{"streaming", CategoryDigital, "STREAMING", 10, 0.005},
		{"compost", CategoryWaste, "COMPOST", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Compute(tc.category, tc.subcategory, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	calc := NewCalculator(DefaultFactorTable())
	first, err := calc.Compute(CategoryEnergy, "NATURAL_GAS", 123.45)
	require.NoError(t, err)
	second, err := calc.Compute(CategoryEnergy, "NATURAL_GAS", 123.45)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeUnknownPairFails(t *testing.T) {
	calc := NewCalculator(DefaultFactorTable())

	_, err := calc.Compute("ROCKETS", "FALCON", 10)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = calc.Compute(CategoryEnergy, "COAL", 10)
	assert.ErrorIs(t, err, ErrInvalidSubcategory)
}

func TestComputeRejectsBadValues(t *testing.T) {
	calc := NewCalculator(DefaultFactorTable())

	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := calc.Compute(CategoryEnergy, "ELECTRICITY", v)
		assert.ErrorIs(t, err, ErrInvalidValue)
	}
}
