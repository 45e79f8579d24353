package fuel

import "math"

// Cost echoes the inputs alongside the result so clients can render the
// calculation without re-sending the request.
type Cost struct {
	FuelCost       float64
	Distance       float64
	FuelPrice      float64
	FuelEfficiency float64
}

// CalculateCost computes (distance / fuelEfficiency) * fuelPrice, rounded to
// two decimal places. A zero efficiency is a defined error, never an Inf result.
func CalculateCost(distance, fuelPrice, fuelEfficiency float64) (Cost, error) {
	if fuelEfficiency == 0 {
		return Cost{}, ErrZeroEfficiency
	}

	raw := (distance / fuelEfficiency) * fuelPrice

	return Cost{
		FuelCost:       math.Round(raw*100) / 100,
		Distance:       distance,
		FuelPrice:      fuelPrice,
		FuelEfficiency: fuelEfficiency,
	}, nil
}
