// Package weather supplies the snapshot shown in the weather panel.
// Only static data ships today, GuardedProvider is what keeps the panel
// rendering once a real source sits behind the interface.
package weather

import (
	"context"
	"farm-advisor/domain"
	"farm-advisor/errors"
	"farm-advisor/observability"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

// StaticProvider answers every location with the same snapshot.
type StaticProvider struct {
	Snapshot domain.WeatherSnapshot
}

func NewStaticProvider(snapshot domain.WeatherSnapshot) StaticProvider {
	return StaticProvider{Snapshot: snapshot}
}

func (s StaticProvider) Current(ctx context.Context, _ string) (domain.WeatherSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.WeatherSnapshot{}, err
	}
	return s.Snapshot, nil
}

type GuardConfig struct {
	Retries         uint64
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerOpenFor  time.Duration
}

// Provider is the subset of contract.IWeatherProvider used here.
type Provider interface {
	Current(ctx context.Context, location string) (domain.WeatherSnapshot, error)
}

// GuardedProvider retries the upstream with exponential backoff inside a
// circuit breaker. On failure it returns the fallback snapshot together with
// an error wrapping errors.ErrWeatherUnavailable.
type GuardedProvider struct {
	log      *slog.Logger
	upstream Provider
	fallback domain.WeatherSnapshot
	cfg      GuardConfig
	breaker  *gobreaker.CircuitBreaker
	metrics  *observability.Metrics
}

func NewGuardedProvider(log *slog.Logger, upstream Provider, fallback domain.WeatherSnapshot,
	cfg GuardConfig, metrics *observability.Metrics) *GuardedProvider {
	failures := cfg.BreakerFailures
	if failures < 1 {
		failures = 1
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return &GuardedProvider{
		log:      log,
		upstream: upstream,
		fallback: fallback,
		cfg:      cfg,
		breaker:  breaker,
		metrics:  metrics,
	}
}

func (g *GuardedProvider) Current(ctx context.Context, location string) (domain.WeatherSnapshot, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.fetchWithRetry(ctx, location)
	})
	if err != nil {
		g.metrics.WeatherFallbacksTotal.Inc()
		g.log.Warn("Weather lookup failed, using fallback", "location", location, "error", err)
		return g.fallback, fmt.Errorf("%w: %v", errors.ErrWeatherUnavailable, err)
	}
	return result.(domain.WeatherSnapshot), nil
}

func (g *GuardedProvider) State() gobreaker.State {
	return g.breaker.State()
}

func (g *GuardedProvider) fetchWithRetry(ctx context.Context, location string) (domain.WeatherSnapshot, error) {
	var snapshot domain.WeatherSnapshot
	attempt := 0
	operation := func() error {
		attempt++
		callCtx := ctx
		if g.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
			defer cancel()
		}
		s, err := g.upstream.Current(callCtx, location)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			g.log.Debug("Weather attempt failed", "attempt", attempt, "error", err)
			return err
		}
		snapshot = s
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxInterval = time.Second
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, g.cfg.Retries), ctx))
	return snapshot, err
}
