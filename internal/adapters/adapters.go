package adapters

import (
	"context"
	"ratesvc/internal/domain"

	"github.com/google/uuid"
)

// RateSource is one upstream quote provider. Fetch never panics; every
// network, status or decoding problem comes back as an error so the
// aggregator can treat all sources uniformly.
type RateSource interface {
	Name() string
	Fetch(ctx context.Context) (domain.PartialRate, error)
}

// SnapshotAggregator turns the configured sources into one snapshot, or
// reports total failure with domain.ErrAllSourcesFailed.
type SnapshotAggregator interface {
	Aggregate(ctx context.Context) (domain.RateSnapshot, error)
}

type SnapshotStore interface {
	Insert(ctx context.Context, snapshot domain.StoredSnapshot) error
	ListRecent(ctx context.Context, limit int) ([]domain.StoredSnapshot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredSnapshot, error)
}

type SnapshotCache interface {
	Get(id uuid.UUID) (*domain.StoredSnapshot, bool)
	Set(id uuid.UUID, snapshot *domain.StoredSnapshot)
	Close()
}
