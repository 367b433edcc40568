package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"ratesvc/internal/adapters"
	"ratesvc/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateSource struct {
	mock.Mock
	name string
}

func (m *MockRateSource) Name() string { return m.name }

func (m *MockRateSource) Fetch(ctx context.Context) (domain.PartialRate, error) {
	args := m.Called(ctx)
	part, _ := args.Get(0).(domain.PartialRate)
	return part, args.Error(1)
}

func newMockSource(name string) *MockRateSource {
	return &MockRateSource{name: name}
}

func newTestAggregator(ars, eur adapters.RateSource, fallbacks ...adapters.RateSource) *Aggregator {
	return NewAggregator(ars, eur, fallbacks, time.Second, nil)
}

func TestAggregator_PreferredPathSuccess(t *testing.T) {
	ars := newMockSource("ars-src")
	eur := newMockSource("eur-src")
	fbA := newMockSource("fallback-a")

	ars.On("Fetch", mock.Anything).Return(domain.PartialRate{ArsToUsd: 0.001}, nil).Once()
	eur.On("Fetch", mock.Anything).Return(domain.PartialRate{EurToUsd: 1.1}, nil).Once()

	agg := newTestAggregator(ars, eur, fbA)
	snap, err := agg.Aggregate(context.Background())

	require.NoError(t, err)
	require.InDelta(t, 0.001, snap.ArsToUsd, 1e-12)
	require.InDelta(t, 1.1, snap.EurToUsd, 1e-9)
	require.Equal(t, "ars-src+eur-src", snap.Source)
	require.False(t, snap.CapturedAt.IsZero())

	// The preferred path wins; fallbacks are never consulted.
	fbA.AssertNotCalled(t, "Fetch", mock.Anything)
	ars.AssertExpectations(t)
	eur.AssertExpectations(t)
}

func TestAggregator_FallbackOrdering_StopsAtFirstSuccess(t *testing.T) {
	ars := newMockSource("ars-src")
	eur := newMockSource("eur-src")
	fbA := newMockSource("fallback-a")
	fbB := newMockSource("fallback-b")
	fbC := newMockSource("fallback-c")

	ars.On("Fetch", mock.Anything).Return(domain.PartialRate{}, errors.New("timeout")).Once()
	eur.On("Fetch", mock.Anything).Return(domain.PartialRate{EurToUsd: 1.1}, nil).Once()
	fbA.On("Fetch", mock.Anything).Return(domain.PartialRate{ArsToUsd: 0.0008, EurToUsd: 1.08}, nil).Once()

	agg := newTestAggregator(ars, eur, fbA, fbB, fbC)
	snap, err := agg.Aggregate(context.Background())

	require.NoError(t, err)
	require.Equal(t, "fallback-a", snap.Source)
	require.InDelta(t, 0.0008, snap.ArsToUsd, 1e-12)
	require.InDelta(t, 1.08, snap.EurToUsd, 1e-9)

	fbB.AssertNotCalled(t, "Fetch", mock.Anything)
	fbC.AssertNotCalled(t, "Fetch", mock.Anything)
	fbA.AssertExpectations(t)
}

func TestAggregator_FallbackCascade_SkipsFailedAndIncomplete(t *testing.T) {
	ars := newMockSource("ars-src")
	eur := newMockSource("eur-src")
	fbA := newMockSource("fallback-a")
	fbB := newMockSource("fallback-b")
	fbC := newMockSource("fallback-c")

	ars.On("Fetch", mock.Anything).Return(domain.PartialRate{}, errors.New("down")).Once()
	eur.On("Fetch", mock.Anything).Return(domain.PartialRate{}, errors.New("down")).Once()
	fbA.On("Fetch", mock.Anything).Return(domain.PartialRate{}, errors.New("down")).Once()
	// succeeds but publishes only one side; must be skipped
	fbB.On("Fetch", mock.Anything).Return(domain.PartialRate{ArsToUsd: 0.001}, nil).Once()
	fbC.On("Fetch", mock.Anything).Return(domain.PartialRate{ArsToUsd: 0.001, EurToUsd: 1.09}, nil).Once()

	agg := newTestAggregator(ars, eur, fbA, fbB, fbC)
	snap, err := agg.Aggregate(context.Background())

	require.NoError(t, err)
	require.Equal(t, "fallback-c", snap.Source)
	fbA.AssertExpectations(t)
	fbB.AssertExpectations(t)
	fbC.AssertExpectations(t)
}

func TestAggregator_TotalFailure(t *testing.T) {
	ars := newMockSource("ars-src")
	eur := newMockSource("eur-src")
	fbA := newMockSource("fallback-a")
	fbB := newMockSource("fallback-b")
	fbC := newMockSource("fallback-c")

	for _, src := range []*MockRateSource{ars, eur, fbA, fbB, fbC} {
		src.On("Fetch", mock.Anything).Return(domain.PartialRate{}, errors.New("down")).Once()
	}

	agg := newTestAggregator(ars, eur, fbA, fbB, fbC)
	_, err := agg.Aggregate(context.Background())

	require.ErrorIs(t, err, domain.ErrAllSourcesFailed)
	for _, src := range []*MockRateSource{ars, eur, fbA, fbB, fbC} {
		src.AssertExpectations(t)
	}
}

func TestAggregator_PartialPreferredSuccess_FallsBack(t *testing.T) {
	ars := newMockSource("ars-src")
	eur := newMockSource("eur-src")
	fbA := newMockSource("fallback-a")

	// The ARS side succeeds, the EUR side fails: the preferred round needs
	// both, so the partial result is discarded.
	ars.On("Fetch", mock.Anything).Return(domain.PartialRate{ArsToUsd: 0.001}, nil).Once()
	eur.On("Fetch", mock.Anything).Return(domain.PartialRate{}, errors.New("timeout")).Once()
	fbA.On("Fetch", mock.Anything).Return(domain.PartialRate{ArsToUsd: 0.0009, EurToUsd: 1.07}, nil).Once()

	agg := newTestAggregator(ars, eur, fbA)
	snap, err := agg.Aggregate(context.Background())

	require.NoError(t, err)
	require.Equal(t, "fallback-a", snap.Source)
	require.InDelta(t, 0.0009, snap.ArsToUsd, 1e-12)
}
