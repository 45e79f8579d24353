package travel

// CostBreakdown is the full pricing result for one journey. All four values
// are part of the API response, not just the total.
type CostBreakdown struct {
	Minutes       float64
	CostPerMinute float64
	TimeBasedCost float64
	TotalCost     float64
}

// CalculateCost prices a journey from its travel time in seconds and a flat
// hourly base rate. The base rate is charged on top of the time-based cost;
// that is the business rule, deliberately not simplified.
func CalculateCost(travelTimeSeconds int, baseRate float64) CostBreakdown {
	minutes := float64(travelTimeSeconds) / 60.0
	costPerMinute := baseRate / 60.0
	timeBasedCost := minutes * costPerMinute

	return CostBreakdown{
		Minutes:       minutes,
		CostPerMinute: costPerMinute,
		TimeBasedCost: timeBasedCost,
		TotalCost:     timeBasedCost + baseRate,
	}
}
