package request

import (
	"travel-cost-service/internal/usecase/commands"
)

// BaseRate is a pointer so an explicit zero rate binds successfully;
// only an absent field fails the required check.
type CalculateTravelCostRequest struct {
	StartPostcode string   `json:"startPostcode" binding:"required"`
	EndPostcode   string   `json:"endPostcode" binding:"required"`
	BaseRate      *float64 `json:"baseRate" binding:"required,gte=0"`
}

func (r *CalculateTravelCostRequest) ToCommand() commands.CalculateTravelRequest {
	return commands.CalculateTravelRequest{
		StartPostcode: r.StartPostcode,
		EndPostcode:   r.EndPostcode,
		BaseRate:      *r.BaseRate,
	}
}
