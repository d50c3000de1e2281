package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	PipelineStageProjects = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "solartech_pipeline_stage_projects",
		Help: "Number of projects currently in each pipeline stage",
	}, []string{"stage"})

	ActiveAlerts = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "solartech_active_alerts",
		Help: "Number of unresolved alerts by severity",
	}, []string{"severity"})

	GenerationRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solartech_generation_recorded_kwh_total",
		Help: "Total generation recorded in kWh",
	})

	ProductionReadingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "solartech_production_readings_total",
		Help: "Total production readings ingested",
	}, []string{"system_status"})

	// Infrastructure metrics
	IngestConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "solartech_ingest_connections",
		Help: "Open gateway websocket connections",
	})

	DatabaseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "solartech_database_latency_seconds",
		Help:    "Database query latency",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "solartech_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
