package domain

import (
	"time"

	"github.com/google/uuid"
)

// RateSnapshot is one complete, internally consistent set of exchange rates
// captured at a point in time. Both rates follow the "USD value of one unit
// of foreign currency" convention. Immutable once constructed.
type RateSnapshot struct {
	ArsToUsd   float64
	EurToUsd   float64
	Source     string
	CapturedAt time.Time
}

// PartialRate is what a single quote source publishes. A zero field means the
// source does not publish that side.
type PartialRate struct {
	ArsToUsd float64
	EurToUsd float64
}

// StoredSnapshot is a snapshot persisted to the history table.
type StoredSnapshot struct {
	ID uuid.UUID
	RateSnapshot
}
