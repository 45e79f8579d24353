package response

import (
	"travel-cost-service/internal/usecase/commands"
	"travel-cost-service/internal/usecase/queries"
)

type TravelCostResponse struct {
	TravelTime    int     `json:"travelTime"`
	TotalCost     float64 `json:"totalCost"`
	TimeBasedCost float64 `json:"timeBasedCost"`
	CostPerMinute float64 `json:"costPerMinute"`
}

func FromCalculateResult(r *commands.CalculateTravelResult) *TravelCostResponse {
	return &TravelCostResponse{
		TravelTime:    r.TravelTime,
		TotalCost:     r.TotalCost,
		TimeBasedCost: r.TimeBasedCost,
		CostPerMinute: r.CostPerMinute,
	}
}

type TravelRecordResponse struct {
	ID            string  `json:"id"`
	StartPostcode string  `json:"startPostcode"`
	EndPostcode   string  `json:"endPostcode"`
	BaseRate      float64 `json:"baseRate"`
	TravelTime    int     `json:"travelTime"`
	TotalCost     float64 `json:"totalCost"`
	CreatedAt     int64   `json:"createdAt"`
}

func FromTravelRecordView(it *queries.TravelRecordView) *TravelRecordResponse {
	return &TravelRecordResponse{
		ID:            it.ID.String(),
		StartPostcode: it.StartPostcode,
		EndPostcode:   it.EndPostcode,
		BaseRate:      it.BaseRate,
		TravelTime:    it.TravelTime,
		TotalCost:     it.TotalCost,
		CreatedAt:     it.CreatedAt.Unix(),
	}
}

func FromTravelRecordList(items []*queries.TravelRecordView) []*TravelRecordResponse {
	res := make([]*TravelRecordResponse, len(items))
	for i, it := range items {
		res[i] = FromTravelRecordView(it)
	}
	return res
}
