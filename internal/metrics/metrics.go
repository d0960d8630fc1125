package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DepositsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDepositsConfirmed,
			Help: HelpTextDepositsConfirmed,
		},
	)

	Withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWithdrawals,
			Help: HelpTextWithdrawals,
		},
		[]string{LabelOutcome},
	)

	CluesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCluesGenerated,
			Help: HelpTextCluesGenerated,
		},
		[]string{LabelDifficulty},
	)

	AnswersGraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnswersGraded,
			Help: HelpTextAnswersGraded,
		},
		[]string{LabelResult},
	)

	OracleFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOracleFallbacks,
			Help: HelpTextOracleFallbacks,
		},
		[]string{LabelOperation},
	)
)
