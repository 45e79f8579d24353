package queries

import (
	"context"
	"time"

	"travel-cost-service/internal/infra"
	"travel-cost-service/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var ErrRecordNotFound = errs.New("travel record not found")

// TravelRecordView is the read-side shape of a persisted journey.
type TravelRecordView struct {
	ID            uuid.UUID
	StartPostcode string
	EndPostcode   string
	BaseRate      float64
	TravelTime    int
	TotalCost     float64
	CreatedAt     time.Time
}

type TravelRecordReadStore interface {
	Recent(ctx context.Context, limit int32) ([]*TravelRecordView, error)
	ByID(ctx context.Context, id uuid.UUID) (*TravelRecordView, error)
}

type TravelQueries interface {
	RecentRecords(ctx context.Context, limit int) ([]*TravelRecordView, error)
	RecordByID(ctx context.Context, id uuid.UUID) (*TravelRecordView, error)
}

type travelQueriesImpl struct {
	store TravelRecordReadStore
}

func NewTravelQueries(store TravelRecordReadStore) TravelQueries {
	return &travelQueriesImpl{store: store}
}

func (q *travelQueriesImpl) RecentRecords(ctx context.Context, limit int) ([]*TravelRecordView, error) {
	return q.store.Recent(ctx, int32(ValidateLimit(limit)))
}

func (q *travelQueriesImpl) RecordByID(ctx context.Context, id uuid.UUID) (*TravelRecordView, error) {
	view, err := q.store.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return view, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
