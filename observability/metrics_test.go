package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Summary(t *testing.T) {
	req := require.New(t)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.MessagesTotal.WithLabelValues("user").Add(2)
	m.MessagesTotal.WithLabelValues("bot").Inc()
	m.RuleMatchesTotal.WithLabelValues("irrigation").Inc()
	m.PendingReplies.Set(1)

	req.Equal(float64(2), testutil.ToFloat64(m.MessagesTotal.WithLabelValues("user")))

	summary, err := Summary(reg)
	req.NoError(err)
	req.Equal(float64(2), summary["farm_advisor_messages_total{sender=user}"])
	req.Equal(float64(1), summary["farm_advisor_messages_total{sender=bot}"])
	req.Equal(float64(1), summary["farm_advisor_rule_matches_total{rule=irrigation}"])
	req.Equal(float64(1), summary["farm_advisor_pending_replies"])
	req.Equal(float64(0), summary["farm_advisor_replies_discarded_total"])
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	require.Panics(t, func() { NewMetrics(reg) })
}
