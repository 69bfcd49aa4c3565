// Package metrics expõe as métricas Prometheus da API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inpulse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inpulse_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
	DashboardComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inpulse_dashboard_computations_total",
			Help: "Total number of dashboard metric computations by outcome",
		},
		[]string{"status"},
	)
	DashboardComputationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inpulse_dashboard_computation_duration_seconds",
			Help:    "Dashboard metric computation duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"status"},
	)
	CampaignSyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inpulse_campaign_sync_runs_total",
			Help: "Total number of campaign sync runs per tenant by outcome",
		},
		[]string{"platform", "status"},
	)
	CampaignsSynced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inpulse_campaigns_synced_total",
			Help: "Total number of campaigns upserted by the sync job",
		},
		[]string{"platform"},
	)
)

func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordDashboardComputation(err error, duration time.Duration) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}

	DashboardComputations.WithLabelValues(status).Inc()
	DashboardComputationDuration.WithLabelValues(status).Observe(duration.Seconds())
}

func RecordCampaignSync(platform string, synced int, err error) {
	if err != nil {
		CampaignSyncRuns.WithLabelValues(platform, StatusError).Inc()
		return
	}

	CampaignSyncRuns.WithLabelValues(platform, StatusSuccess).Inc()
	CampaignsSynced.WithLabelValues(platform).Add(float64(synced))
}
