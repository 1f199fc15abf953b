package main

import (
	"farm-advisor/advisor"
	"farm-advisor/contract"
	"farm-advisor/observability"
	"farm-advisor/panels"
	"farm-advisor/repositories"
	"farm-advisor/runtime"
	"farm-advisor/session"
	"farm-advisor/weather"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// app is one process worth of wiring around a single session.
type app struct {
	log        *slog.Logger
	db         *badger.DB
	registry   *prometheus.Registry
	metrics    *observability.Metrics
	scheduler  *runtime.ReplyScheduler
	fanout     *runtime.EventFanout
	controller *session.Controller
	weather    *weather.GuardedProvider
}

func newApp(log *slog.Logger, config Config, sinks ...contract.EventSink) (*app, error) {
	db, err := repositories.OpenInMemory(log)
	if err != nil {
		return nil, fmt.Errorf("transcript store opening failed: %w", err)
	}

	responder, err := advisor.NewResponder(advisor.DefaultRules())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("responder setup failed: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	scheduler := runtime.NewReplyScheduler(log)
	fanout := runtime.NewEventFanout(log, sinks...)

	controller := session.NewController(log,
		session.Config{ReplyDelay: config.ReplyDelay, MaxPendingReplies: config.MaxPendingReplies},
		responder, scheduler,
		repositories.NewTranscriptRepository(db, log),
		fanout, metrics,
	)

	provider := newWeatherProvider(log, config, weather.NewStaticProvider(panels.DefaultWeather), metrics)

	return &app{
		log:        log,
		db:         db,
		registry:   registry,
		metrics:    metrics,
		scheduler:  scheduler,
		fanout:     fanout,
		controller: controller,
		weather:    provider,
	}, nil
}

func newWeatherProvider(log *slog.Logger, config Config, upstream weather.Provider,
	metrics *observability.Metrics) *weather.GuardedProvider {
	return weather.NewGuardedProvider(log, upstream, panels.DefaultWeather, weather.GuardConfig{
		Retries:         uint64(max(config.WeatherRetries, 0)),
		Timeout:         config.WeatherTimeout,
		BreakerFailures: uint32(max(config.BreakerFailures, 1)),
		BreakerOpenFor:  config.BreakerOpenFor,
	}, metrics)
}

// close ends the session, stops outstanding timers and reports what happened.
func (a *app) close() {
	a.controller.Logout()
	a.scheduler.Stop()
	if summary, err := observability.Summary(a.registry); err == nil {
		a.log.Info("Session metrics", "summary", summary)
	}
	a.log.Info("Closing transcript store...")
	_ = a.db.Close()
}
