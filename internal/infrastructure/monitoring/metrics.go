package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ConflictStagePrecheck = "precheck"
	ConflictStageIndex    = "index"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersCreatedTotal     prometheus.Counter
	CustomersDeactivatedTotal prometheus.Counter
	ConflictsTotal            *prometheus.CounterVec
	DuplicateActiveDocuments  prometheus.Gauge
}

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customers_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customers_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customers_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customers_created_total",
				Help: "Total number of customers successfully created.",
			},
		),
		CustomersDeactivatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customers_deactivated_total",
				Help: "Total number of customers soft-deleted.",
			},
		),
		ConflictsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customers_conflicts_total",
				Help: "Active-document uniqueness conflicts, by the stage that detected them.",
			},
			[]string{"stage"},
		),
		DuplicateActiveDocuments: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "customers_duplicate_active_documents",
				Help: "Documents currently held by more than one active customer, as of the last integrity check.",
			},
		),
	}
)

func RecordHTTPRequest(method, path, code string, duration time.Duration) {
	HTTP.RequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordCustomerCreated() {
	Business.CustomersCreatedTotal.Inc()
}

func RecordCustomerDeactivated() {
	Business.CustomersDeactivatedTotal.Inc()
}

func RecordConflict(stage string) {
	Business.ConflictsTotal.WithLabelValues(stage).Inc()
}

func SetDuplicateActiveDocuments(n int) {
	Business.DuplicateActiveDocuments.Set(float64(n))
}
