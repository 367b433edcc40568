package rates

import (
	"context"
	"fmt"
	"ratesvc/internal/adapters"
	"ratesvc/internal/domain"
	"ratesvc/internal/metrics"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultFreshnessWindow = 60 * time.Second

// Approximate rates served when every live source fails. Never cached.
const (
	DefaultArsToUsd = 0.001
	DefaultEurToUsd = 1.1
)

// QueryResult is the facade's response envelope. Snapshot is always
// populated, defaulted when OK is false, so callers always have usable
// numbers.
type QueryResult struct {
	OK           bool
	Snapshot     domain.RateSnapshot
	ErrorMessage string
}

// Service owns the single cached snapshot and exposes rate lookup with
// caching, degradation and conversion helpers. It never returns an error to
// its callers; every failure mode degrades to default values plus an
// explicit OK=false status.
type Service struct {
	agg          adapters.SnapshotAggregator
	store        adapters.SnapshotStore
	historyCache adapters.SnapshotCache
	metrics      *metrics.RateMetrics
	freshFor     time.Duration

	mu     sync.RWMutex
	cached *domain.RateSnapshot
	// fetchMu serializes aggregation attempts so concurrent stale callers
	// coalesce onto one in-flight fetch.
	fetchMu sync.Mutex

	now func() time.Time
}

func (s *Service) GetExchangeRates(ctx context.Context) QueryResult {
	if snap, ok := s.freshSnapshot(); ok {
		if s.metrics != nil {
			s.metrics.RecordCacheHit()
		}
		return QueryResult{OK: true, Snapshot: snap}
	}
	if s.metrics != nil {
		s.metrics.RecordCacheMiss()
	}

	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()
	// Another caller may have refreshed the cache while we waited.
	if snap, ok := s.freshSnapshot(); ok {
		return QueryResult{OK: true, Snapshot: snap}
	}

	snap, err := s.agg.Aggregate(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordDegraded()
		}
		logrus.WithError(err).Warn("Serving default exchange rates")
		// An existing cache entry is kept; the default is never cached.
		return QueryResult{
			OK:           false,
			Snapshot:     s.defaultSnapshot(),
			ErrorMessage: fmt.Sprintf("exchange rates unavailable: %v", err),
		}
	}

	s.mu.Lock()
	s.cached = &snap
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"source":      snap.Source,
		"usd_per_ars": snap.ArsToUsd,
		"ars_per_usd": 1 / snap.ArsToUsd,
		"usd_per_eur": snap.EurToUsd,
	}).Info("Exchange rates refreshed")

	s.persist(ctx, snap)

	return QueryResult{OK: true, Snapshot: snap}
}

// ConvertPrice converts amount to USD using the cached snapshot. It never
// triggers a fetch: with no snapshot available the amount comes back
// unchanged, as it does for USD and unknown currency codes. toCurrency is
// accepted for compatibility with the storefront client, but conversion
// always targets USD.
func (s *Service) ConvertPrice(amount float64, fromCurrency, toCurrency string) float64 {
	if fromCurrency == toCurrency {
		return amount
	}

	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached == nil {
		return amount
	}

	switch fromCurrency {
	case "ARS":
		return amount * cached.ArsToUsd
	case "EUR":
		return amount * cached.EurToUsd
	default:
		return amount
	}
}

// GetHistory returns the most recently persisted snapshots, newest first.
func (s *Service) GetHistory(ctx context.Context, limit int) ([]domain.StoredSnapshot, error) {
	return s.store.ListRecent(ctx, limit)
}

// GetSnapshotByID serves a persisted snapshot, consulting the history cache
// first. Snapshots are immutable, so a cached entry is always valid.
func (s *Service) GetSnapshotByID(ctx context.Context, id uuid.UUID) (*domain.StoredSnapshot, error) {
	if s.historyCache != nil {
		if snap, ok := s.historyCache.Get(id); ok {
			return snap, nil
		}
	}

	snap, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.historyCache != nil {
		s.historyCache.Set(id, snap)
	}
	return snap, nil
}

func (s *Service) freshSnapshot() (domain.RateSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil {
		return domain.RateSnapshot{}, false
	}
	if s.now().Sub(s.cached.CapturedAt) >= s.freshFor {
		return domain.RateSnapshot{}, false
	}
	return *s.cached, true
}

func (s *Service) defaultSnapshot() domain.RateSnapshot {
	return domain.RateSnapshot{
		ArsToUsd:   DefaultArsToUsd,
		EurToUsd:   DefaultEurToUsd,
		Source:     "default",
		CapturedAt: s.now(),
	}
}

// persist records the snapshot in the history table. Best effort: a failed
// insert is logged and never blocks rate serving.
func (s *Service) persist(ctx context.Context, snap domain.RateSnapshot) {
	if s.store == nil {
		return
	}
	stored := domain.StoredSnapshot{ID: uuid.New(), RateSnapshot: snap}
	if err := s.store.Insert(ctx, stored); err != nil {
		logrus.WithError(err).Warn("Failed to persist rate snapshot")
		return
	}
	if s.historyCache != nil {
		s.historyCache.Set(stored.ID, &stored)
	}
}

func NewService(agg adapters.SnapshotAggregator, store adapters.SnapshotStore, historyCache adapters.SnapshotCache, m *metrics.RateMetrics, freshFor time.Duration) *Service {
	if freshFor <= 0 {
		freshFor = defaultFreshnessWindow
	}
	return &Service{
		agg:          agg,
		store:        store,
		historyCache: historyCache,
		metrics:      m,
		freshFor:     freshFor,
		now:          time.Now,
	}
}
