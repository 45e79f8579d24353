package travel

import (
	"time"

	"travel-cost-service/internal/domain/postcode"

	"github.com/google/uuid"
)

// Record is one successfully priced journey. Records are append-only:
// created after the external lookup and cost calculation both succeed,
// never updated, never deleted.
type Record struct {
	id            uuid.UUID
	startPostcode postcode.Postcode
	endPostcode   postcode.Postcode
	baseRate      float64
	travelTime    int
	totalCost     float64
	createdAt     time.Time
}

func NewRecord(start, end postcode.Postcode, baseRate float64, travelTimeSeconds int, totalCost float64, now time.Time) (*Record, error) {
	if baseRate < 0 {
		return nil, ErrNegativeBaseRate
	}
	if travelTimeSeconds < 0 {
		return nil, ErrNegativeTravelTime
	}

	return &Record{
		id:            uuid.New(),
		startPostcode: start,
		endPostcode:   end,
		baseRate:      baseRate,
		travelTime:    travelTimeSeconds,
		totalCost:     totalCost,
		createdAt:     now,
	}, nil
}

func (r *Record) ID() uuid.UUID                    { return r.id }
func (r *Record) StartPostcode() postcode.Postcode { return r.startPostcode }
func (r *Record) EndPostcode() postcode.Postcode   { return r.endPostcode }
func (r *Record) BaseRate() float64                { return r.baseRate }
func (r *Record) TravelTime() int                  { return r.travelTime }
func (r *Record) TotalCost() float64               { return r.totalCost }
func (r *Record) CreatedAt() time.Time             { return r.createdAt }
