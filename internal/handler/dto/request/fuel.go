package request

// All fields are pointers for the same reason as the travel request:
// zero values are legitimate inputs, absent fields are not.
type CalculateFuelCostRequest struct {
	Distance       *float64 `json:"distance" binding:"required,gte=0"`
	FuelPrice      *float64 `json:"fuelPrice" binding:"required,gte=0"`
	FuelEfficiency *float64 `json:"fuelEfficiency" binding:"required,gte=0"`
}
