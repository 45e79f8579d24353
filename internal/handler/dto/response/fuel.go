package response

import (
	"travel-cost-service/internal/domain/fuel"
)

type FuelCostResponse struct {
	FuelCost       float64 `json:"fuelCost"`
	Distance       float64 `json:"distance"`
	FuelPrice      float64 `json:"fuelPrice"`
	FuelEfficiency float64 `json:"fuelEfficiency"`
}

func FromFuelCost(c fuel.Cost) *FuelCostResponse {
	return &FuelCostResponse{
		FuelCost:       c.FuelCost,
		Distance:       c.Distance,
		FuelPrice:      c.FuelPrice,
		FuelEfficiency: c.FuelEfficiency,
	}
}
