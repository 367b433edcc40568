package rates

import (
	"context"
	"ratesvc/internal/adapters"
	"ratesvc/internal/domain"
	"ratesvc/internal/metrics"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultSourceTimeout = 5 * time.Second

// Aggregator produces one RateSnapshot from the configured sources using a
// fixed preference order: the two preferred single-pair sources are fetched
// concurrently, and only when that round fails are the combined fallbacks
// tried, strictly one after another. Worst-case latency is one preferred
// round plus one sequential round per fallback.
type Aggregator struct {
	ars       adapters.RateSource
	eur       adapters.RateSource
	fallbacks []adapters.RateSource
	// -----
	sourceTimeout time.Duration
	metrics       *metrics.RateMetrics
	now           func() time.Time
}

func (a *Aggregator) Aggregate(ctx context.Context) (domain.RateSnapshot, error) {
	var (
		arsPart, eurPart domain.PartialRate
		arsErr, eurErr   error
	)

	// Both preferred outcomes are awaited before any decision is made.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		arsPart, arsErr = a.fetch(ctx, a.ars)
	}()
	go func() {
		defer wg.Done()
		eurPart, eurErr = a.fetch(ctx, a.eur)
	}()
	wg.Wait()

	if arsErr == nil && eurErr == nil && arsPart.ArsToUsd > 0 && eurPart.EurToUsd > 0 {
		source := a.ars.Name() + "+" + a.eur.Name()
		if a.metrics != nil {
			a.metrics.RecordAggregation(source)
		}
		return domain.RateSnapshot{
			ArsToUsd:   arsPart.ArsToUsd,
			EurToUsd:   eurPart.EurToUsd,
			Source:     source,
			CapturedAt: a.now(),
		}, nil
	}

	// No retries within a step; a failed source is not revisited.
	for _, fb := range a.fallbacks {
		part, err := a.fetch(ctx, fb)
		if err != nil {
			continue
		}
		if part.ArsToUsd <= 0 || part.EurToUsd <= 0 {
			logrus.Warnf("Source '%s' returned an incomplete rate, trying next", fb.Name())
			continue
		}
		if a.metrics != nil {
			a.metrics.RecordAggregation(fb.Name())
		}
		return domain.RateSnapshot{
			ArsToUsd:   part.ArsToUsd,
			EurToUsd:   part.EurToUsd,
			Source:     fb.Name(),
			CapturedAt: a.now(),
		}, nil
	}

	return domain.RateSnapshot{}, domain.ErrAllSourcesFailed
}

// fetch bounds one source call so a hung upstream cannot stall the cascade.
func (a *Aggregator) fetch(ctx context.Context, src adapters.RateSource) (domain.PartialRate, error) {
	reqCtx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	part, err := src.Fetch(reqCtx)
	if a.metrics != nil {
		a.metrics.RecordSourceFetch(src.Name(), err == nil)
	}
	if err != nil {
		logrus.Warnf("Source '%s' failed: %v", src.Name(), err)
	}
	return part, err
}

func NewAggregator(ars, eur adapters.RateSource, fallbacks []adapters.RateSource, sourceTimeout time.Duration, m *metrics.RateMetrics) *Aggregator {
	if sourceTimeout <= 0 {
		sourceTimeout = defaultSourceTimeout
	}
	return &Aggregator{
		ars:           ars,
		eur:           eur,
		fallbacks:     fallbacks,
		sourceTimeout: sourceTimeout,
		metrics:       m,
		now:           time.Now,
	}
}
