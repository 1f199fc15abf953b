// Package observability exposes counters describing the advisory flow.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "farm_advisor"

type Metrics struct {
	MessagesTotal          *prometheus.CounterVec
	RuleMatchesTotal       *prometheus.CounterVec
	RepliesDiscardedTotal  prometheus.Counter
	PendingReplies         prometheus.Gauge
	WeatherFallbacksTotal  prometheus.Counter
	SessionsStartedTotal   prometheus.Counter
	ProfileRejectionsTotal prometheus.Counter
}

// NewMetrics registers every collector on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Messages appended to transcripts, by sender.",
		}, []string{"sender"}),
		RuleMatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_matches_total",
			Help:      "Advice rules selected for user messages.",
		}, []string{"rule"}),
		RepliesDiscardedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_discarded_total",
			Help:      "Bot replies dropped because their session ended.",
		}),
		PendingReplies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_replies",
			Help:      "Bot replies scheduled and not yet delivered.",
		}),
		WeatherFallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_fallbacks_total",
			Help:      "Weather lookups answered with the fallback snapshot.",
		}),
		SessionsStartedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Successful logins.",
		}),
		ProfileRejectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_rejections_total",
			Help:      "Farm profile submissions refused by validation or session state.",
		}),
	}
	reg.MustRegister(
		m.MessagesTotal,
		m.RuleMatchesTotal,
		m.RepliesDiscardedTotal,
		m.PendingReplies,
		m.WeatherFallbacksTotal,
		m.SessionsStartedTotal,
		m.ProfileRejectionsTotal,
	)
	return m
}

// NewUnregistered is used where nobody collects the numbers.
func NewUnregistered() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// Summary flattens the gathered counters and gauges into name{labels} -> value.
func Summary(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			name := family.GetName()
			for _, label := range metric.GetLabel() {
				name += "{" + label.GetName() + "=" + label.GetValue() + "}"
			}
			switch {
			case metric.GetCounter() != nil:
				out[name] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				out[name] = metric.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
