package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var labels = []string{"dal", "query", "database", "collection"}

var (
	// MongoLatency is the duration of Mongo queries.
	MongoLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "foxfire",
			Subsystem: "dataaccess",
			Name:      "mongo_latency",
			Help:      "Duration of Mongo queries",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		labels,
	)

	// MongoTotalRequests is the total number of Mongo requests.
	MongoTotalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foxfire",
			Subsystem: "dataaccess",
			Name:      "mongo_total_requests",
			Help:      "Total number of Mongo requests",
		},
		labels,
	)
)
