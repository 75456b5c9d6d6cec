package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalyzeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analyzer_requests_total",
		Help: "Total number of analyze API requests",
	}, []string{"route", "status"})

	AnalyzeRequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analyzer_request_latency_seconds",
		Help:    "Latency of analyze API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	EnrichmentRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analyzer_enrichment_requests_total",
		Help: "Total number of profile enrichment attempts by result",
	}, []string{"result"})

	EnrichmentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyzer_enrichment_duration_seconds",
		Help:    "Duration of profile page fetch and name extraction",
		Buckets: prometheus.DefBuckets,
	})
)
