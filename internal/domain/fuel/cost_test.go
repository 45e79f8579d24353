//go:build unit

package fuel_test

import (
	"math"
	"testing"

	"travel-cost-service/internal/domain/fuel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCost(t *testing.T) {
	t.Run("reference values", func(t *testing.T) {
		got, err := fuel.CalculateCost(100, 1.5, 10)
		require.NoError(t, err)

		assert.InDelta(t, 15.00, got.FuelCost, 1e-9)
		assert.Equal(t, 100.0, got.Distance)
		assert.Equal(t, 1.5, got.FuelPrice)
		assert.Equal(t, 10.0, got.FuelEfficiency)
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		got, err := fuel.CalculateCost(100, 1.499, 7)
		require.NoError(t, err)

		// 100/7*1.499 = 21.4142..., rounds to 21.41
		assert.InDelta(t, 21.41, got.FuelCost, 1e-9)
	})

	t.Run("zero efficiency is a defined error", func(t *testing.T) {
		_, err := fuel.CalculateCost(100, 1.5, 0)
		assert.ErrorIs(t, err, fuel.ErrZeroEfficiency)
	})

	t.Run("tiny efficiency stays finite", func(t *testing.T) {
		got, err := fuel.CalculateCost(1000, 2, 0.001)
		require.NoError(t, err)
		assert.False(t, math.IsInf(got.FuelCost, 0))
		assert.InDelta(t, 2_000_000.0, got.FuelCost, 1e-6)
	})

	t.Run("zero distance costs nothing", func(t *testing.T) {
		got, err := fuel.CalculateCost(0, 1.5, 10)
		require.NoError(t, err)
		assert.Zero(t, got.FuelCost)
	})
}
