//go:build unit

package travel_test

import (
	"testing"
	"time"

	"travel-cost-service/internal/domain/postcode"
	"travel-cost-service/internal/domain/travel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCost(t *testing.T) {
	t.Run("reference values", func(t *testing.T) {
		got := travel.CalculateCost(600, 30)

		assert.InDelta(t, 10.0, got.Minutes, 1e-9)
		assert.InDelta(t, 0.5, got.CostPerMinute, 1e-9)
		assert.InDelta(t, 5.0, got.TimeBasedCost, 1e-9)
		assert.InDelta(t, 35.0, got.TotalCost, 1e-9)
	})

	t.Run("zero travel time charges only the base rate", func(t *testing.T) {
		got := travel.CalculateCost(0, 30)

		assert.Zero(t, got.Minutes)
		assert.Zero(t, got.TimeBasedCost)
		assert.InDelta(t, 30.0, got.TotalCost, 1e-9)
	})

	t.Run("zero base rate prices to zero", func(t *testing.T) {
		got := travel.CalculateCost(3600, 0)

		assert.InDelta(t, 60.0, got.Minutes, 1e-9)
		assert.Zero(t, got.CostPerMinute)
		assert.Zero(t, got.TimeBasedCost)
		assert.Zero(t, got.TotalCost)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := travel.CalculateCost(1234, 17.5)
		second := travel.CalculateCost(1234, 17.5)
		assert.Equal(t, first, second)
	})
}

func TestNewRecord(t *testing.T) {
	start, err := postcode.New("SW1A 1AA")
	require.NoError(t, err)
	end, err := postcode.New("EC1A 1BB")
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("assigns a fresh id and keeps fields", func(t *testing.T) {
		rec, err := travel.NewRecord(start, end, 30, 600, 35, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, rec.ID())
		assert.Equal(t, "SW1A 1AA", rec.StartPostcode().String())
		assert.Equal(t, "EC1A 1BB", rec.EndPostcode().String())
		assert.Equal(t, 600, rec.TravelTime())
		assert.InDelta(t, 35.0, rec.TotalCost(), 1e-9)
		assert.Equal(t, now, rec.CreatedAt())
	})

	t.Run("ids are unique per record", func(t *testing.T) {
		a, err := travel.NewRecord(start, end, 30, 600, 35, now)
		require.NoError(t, err)
		b, err := travel.NewRecord(start, end, 30, 600, 35, now)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("zero base rate is a legitimate record", func(t *testing.T) {
		rec, err := travel.NewRecord(start, end, 0, 600, 0, now)
		require.NoError(t, err)
		assert.Zero(t, rec.BaseRate())
	})

	t.Run("negative base rate rejected", func(t *testing.T) {
		_, err := travel.NewRecord(start, end, -1, 600, 35, now)
		assert.ErrorIs(t, err, travel.ErrNegativeBaseRate)
	})

	t.Run("negative travel time rejected", func(t *testing.T) {
		_, err := travel.NewRecord(start, end, 30, -1, 35, now)
		assert.ErrorIs(t, err, travel.ErrNegativeTravelTime)
	})
}
