package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRuleDecision(t *testing.T) {
	m := NewWithRegistry("holiday-service", prometheus.NewRegistry())

	m.RecordRuleDecision("create", "accepted")
	m.RecordRuleDecision("create", "accepted")
	m.RecordRuleDecision("delete", "cancellation_notice")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RuleDecisionsTotal.WithLabelValues("create", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleDecisionsTotal.WithLabelValues("delete", "cancellation_notice")))
}

func TestRecordRuleDecision_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.RecordRuleDecision("create", "accepted") })
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "smc_holiday_service", sanitizeName("smc-holiday.service"))
}
