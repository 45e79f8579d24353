package repository

import (
	"context"

	"travel-cost-service/internal/domain/travel"
	"travel-cost-service/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TravelRecordRepository struct {
	pool *pgxpool.Pool
}

func NewTravelRecordRepository(pool *pgxpool.Pool) *TravelRecordRepository {
	return &TravelRecordRepository{pool: pool}
}

// Create inserts one record in a single statement. Records are append-only,
// so there is no read-modify-write to guard against.
func (r *TravelRecordRepository) Create(ctx context.Context, rec *travel.Record) error {
	const query = `
		INSERT INTO travel_records
			(id, start_postcode, end_postcode, base_rate, travel_time, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID(),
		rec.StartPostcode().String(),
		rec.EndPostcode().String(),
		rec.BaseRate(),
		rec.TravelTime(),
		rec.TotalCost(),
		rec.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create travel record", err)
	}
	return nil
}
