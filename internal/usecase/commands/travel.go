package commands

import (
	"context"

	"travel-cost-service/internal/domain/postcode"
	"travel-cost-service/internal/domain/travel"
	"travel-cost-service/internal/pkg/clock"
	"travel-cost-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStartPostcode = errs.New("invalid start postcode format")
	ErrInvalidEndPostcode   = errs.New("invalid end postcode format")
)

type CalculateTravelRequest struct {
	StartPostcode string
	EndPostcode   string
	BaseRate      float64
}

type CalculateTravelResult struct {
	RecordID      uuid.UUID
	TravelTime    int
	TotalCost     float64
	TimeBasedCost float64
	CostPerMinute float64
}

type TravelCommands interface {
	Calculate(ctx context.Context, req CalculateTravelRequest) (*CalculateTravelResult, error)
}

// TravelTimeProvider is the external duration lookup, satisfied by maps.Client.
type TravelTimeProvider interface {
	TravelTime(ctx context.Context, origin, destination string) (int, error)
}

type TravelRecordRepository interface {
	Create(ctx context.Context, rec *travel.Record) error
}

type travelUseCaseImpl struct {
	provider TravelTimeProvider
	records  TravelRecordRepository
	clock    clock.Clock
}

func NewTravelCommands(provider TravelTimeProvider, records TravelRecordRepository, clk clock.Clock) TravelCommands {
	return &travelUseCaseImpl{provider: provider, records: records, clock: clk}
}

// Calculate runs the full pipeline: normalize and validate both postcodes,
// look up the driving duration, price the journey, and persist one record.
// Validation fails before the external call; a failed call or failed insert
// leaves no record behind.
func (uc *travelUseCaseImpl) Calculate(ctx context.Context, req CalculateTravelRequest) (*CalculateTravelResult, error) {
	start, err := postcode.New(req.StartPostcode)
	if err != nil {
		// Wrap as well as Mark: the response body must say which postcode
		// was rejected, not just carry the identity for errors.Is.
		return nil, errs.Wrap(errs.Mark(err, ErrInvalidStartPostcode), "invalid start postcode format")
	}
	end, err := postcode.New(req.EndPostcode)
	if err != nil {
		return nil, errs.Wrap(errs.Mark(err, ErrInvalidEndPostcode), "invalid end postcode format")
	}

	seconds, err := uc.provider.TravelTime(ctx, start.String(), end.String())
	if err != nil {
		return nil, err
	}

	breakdown := travel.CalculateCost(seconds, req.BaseRate)

	rec, err := travel.NewRecord(start, end, req.BaseRate, seconds, breakdown.TotalCost, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.records.Create(ctx, rec); err != nil {
		return nil, err
	}

	return &CalculateTravelResult{
		RecordID:      rec.ID(),
		TravelTime:    seconds,
		TotalCost:     breakdown.TotalCost,
		TimeBasedCost: breakdown.TimeBasedCost,
		CostPerMinute: breakdown.CostPerMinute,
	}, nil
}
