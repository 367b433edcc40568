package postgres

import (
	"context"
	"errors"
	"fmt"
	"ratesvc/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func (r *SnapshotRepository) Insert(ctx context.Context, snapshot domain.StoredSnapshot) error {
	const q = `
        insert into rate_snapshots (id, ars_to_usd, eur_to_usd, source, captured_at)
        values ($1, $2, $3, $4, $5);
    `

	if _, err := r.pool.Exec(ctx, q,
		snapshot.ID,
		snapshot.ArsToUsd,
		snapshot.EurToUsd,
		snapshot.Source,
		snapshot.CapturedAt,
	); err != nil {
		return fmt.Errorf("failed to insert snapshot %q: %w", snapshot.ID, err)
	}
	return nil
}

func (r *SnapshotRepository) ListRecent(ctx context.Context, limit int) ([]domain.StoredSnapshot, error) {
	const q = `
        select id, ars_to_usd, eur_to_usd, source, captured_at
        from rate_snapshots
        order by captured_at desc
        limit $1;
    `

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select recent snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.StoredSnapshot
	for rows.Next() {
		var s domain.StoredSnapshot
		if err = rows.Scan(&s.ID, &s.ArsToUsd, &s.EurToUsd, &s.Source, &s.CapturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *SnapshotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredSnapshot, error) {
	const q = `
        select id, ars_to_usd, eur_to_usd, source, captured_at
        from rate_snapshots
        where id = $1;
    `

	var s domain.StoredSnapshot
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&s.ID,
		&s.ArsToUsd,
		&s.EurToUsd,
		&s.Source,
		&s.CapturedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to select snapshot %q: %w", id, err)
	}
	return &s, nil
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}
