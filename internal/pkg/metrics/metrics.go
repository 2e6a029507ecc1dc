// Package metrics registers the service's prometheus collectors, exposed on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PurchasesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_purchases_total",
		Help: "Advice purchases by feature and outcome.",
	}, []string{"feature", "outcome"})

	DepositsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "advisor_deposits_total",
		Help: "Successful balance deposits.",
	})

	LoginCodesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "advisor_login_codes_issued_total",
		Help: "Verification codes generated for the mock login flow.",
	})

	ProcessingSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "advisor_processing_seconds",
		Help:    "Simulated advice processing latency.",
		Buckets: prometheus.DefBuckets,
	})
)

// Purchase outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeRejected  = "rejected"
)

// FeatureUnknown replaces the feature label when the requested id has no
// catalog entry. Raw request input must never become a label value: label
// cardinality has to stay bounded by the catalog.
const FeatureUnknown = "unknown"
