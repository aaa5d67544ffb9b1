package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database Metrics
var DBConnectionsOpen = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "db_connections_open",
	Help: "Number of open database connections.",
}, []string{"db_name"})

var DBConnectionsInUse = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "db_connections_in_use",
	Help: "Number of in-use database connections.",
}, []string{"db_name"})

var DBQueryDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "db_query_duration_seconds",
	Help:    "Duration of database queries in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"query_type", "repository", "status"})

var DBQueryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "db_query_errors_total",
	Help: "Total number of failed database queries.",
}, []string{"query_type", "repository"})
