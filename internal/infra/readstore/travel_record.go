package readstore

import (
	"context"
	"errors"

	"travel-cost-service/internal/infra"
	"travel-cost-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TravelRecordReadStore struct {
	pool *pgxpool.Pool
}

func NewTravelRecordReadStore(pool *pgxpool.Pool) *TravelRecordReadStore {
	return &TravelRecordReadStore{pool: pool}
}

func (s *TravelRecordReadStore) Recent(ctx context.Context, limit int32) ([]*queries.TravelRecordView, error) {
	const query = `
		SELECT id, start_postcode, end_postcode, base_rate, travel_time, total_cost, created_at
		FROM travel_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list travel records", err)
	}
	defer rows.Close()

	views := make([]*queries.TravelRecordView, 0, limit)
	for rows.Next() {
		var v queries.TravelRecordView
		if err := rows.Scan(&v.ID, &v.StartPostcode, &v.EndPostcode, &v.BaseRate, &v.TravelTime, &v.TotalCost, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan travel record", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate travel records", err)
	}

	return views, nil
}

func (s *TravelRecordReadStore) ByID(ctx context.Context, id uuid.UUID) (*queries.TravelRecordView, error) {
	const query = `
		SELECT id, start_postcode, end_postcode, base_rate, travel_time, total_cost, created_at
		FROM travel_records
		WHERE id = $1`

	var v queries.TravelRecordView
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.StartPostcode, &v.EndPostcode, &v.BaseRate, &v.TravelTime, &v.TotalCost, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("travel record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get travel record", err)
	}

	return &v, nil
}
