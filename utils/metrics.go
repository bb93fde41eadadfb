package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricCasesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maystorfix",
		Name:      "cases_created_total",
		Help:      "Number of cases created, by assignment type.",
	}, []string{"assignment_type"})

	MetricCasesAssigned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maystorfix",
		Name:      "cases_assigned_total",
		Help:      "Number of successful case acceptances, by origin (manual or auto).",
	}, []string{"origin"})

	MetricAssignConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "maystorfix",
		Name:      "case_assign_conflicts_total",
		Help:      "Number of acceptances lost to the conditioned update.",
	})

	MetricCasesDeclined = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "maystorfix",
		Name:      "cases_declined_total",
		Help:      "Number of decline ledger entries created.",
	})

	MetricNotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "maystorfix",
		Name:      "notification_delivery_failures_total",
		Help:      "Number of notification deliveries abandoned after retries.",
	})

	MetricMatchingLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "maystorfix",
		Name:      "matching_duration_seconds",
		Help:      "Latency of one full provider ranking pass.",
		Buckets:   prometheus.DefBuckets,
	})
)
