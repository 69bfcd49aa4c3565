package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/dashboard/stats", "200", 250*time.Millisecond)
	RecordHTTPRequest("GET", "/api/dashboard/stats", "200", 250*time.Millisecond)

	assert.Equal(t, 2.0, getCounterValue(t, HTTPRequestsTotal, "GET", "/api/dashboard/stats", "200"))
	assert.Equal(t, 0.5, getHistogramSum(t, HTTPRequestDuration, "GET", "/api/dashboard/stats"))
}

func TestRecordDashboardComputation(t *testing.T) {
	DashboardComputations.Reset()
	DashboardComputationDuration.Reset()

	RecordDashboardComputation(nil, time.Second)
	RecordDashboardComputation(errors.New("db down"), 2*time.Second)

	assert.Equal(t, 1.0, getCounterValue(t, DashboardComputations, StatusSuccess))
	assert.Equal(t, 1.0, getCounterValue(t, DashboardComputations, StatusError))
	assert.Equal(t, 2.0, getHistogramSum(t, DashboardComputationDuration, StatusError))
}

func TestRecordCampaignSync(t *testing.T) {
	CampaignSyncRuns.Reset()
	CampaignsSynced.Reset()

	RecordCampaignSync("Facebook", 12, nil)
	RecordCampaignSync("Facebook", 0, errors.New("token expirado"))

	assert.Equal(t, 1.0, getCounterValue(t, CampaignSyncRuns, "Facebook", StatusSuccess))
	assert.Equal(t, 1.0, getCounterValue(t, CampaignSyncRuns, "Facebook", StatusError))
	assert.Equal(t, 12.0, getCounterValue(t, CampaignsSynced, "Facebook"))
}

func getCounterValue(t *testing.T, counter *prometheus.CounterVec, labels ...string) float64 {
	metric := &dto.Metric{}
	c, err := counter.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)

	require.NoError(t, c.Write(metric))
	return metric.Counter.GetValue()
}

func getHistogramSum(t *testing.T, histogram *prometheus.HistogramVec, labels ...string) float64 {
	metric := &dto.Metric{}
	observer, err := histogram.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)

	h := observer.(prometheus.Histogram)
	require.NoError(t, h.Write(metric))
	return metric.Histogram.GetSampleSum()
}
