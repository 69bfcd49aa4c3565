package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/inpulse/inpulse-api/infrastructure/integrator/meta/domain"
	"github.com/inpulse/inpulse-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/inpulse/inpulse-api/internal/domain"
)

func TestMetaIntegrator_FetchCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	client.EXPECT().GetCampaignInsights(gomock.Any(), "123", since, until).Return([]metadomain.CampaignInsight{
		{CampaignName: "Verão", Reach: "1000", Clicks: "80", Spend: "99.90", Objective: "LINK_CLICKS",
			Actions: []metadomain.Action{{ActionType: "link_click", Value: "42"}}},
		{CampaignName: " Verão ", Reach: "10", Clicks: "2", Spend: "0.10", Objective: "LINK_CLICKS"},
		{CampaignName: "", Reach: "5"},
		{CampaignName: "Leads", Reach: "300", Clicks: "abc", Spend: "20", Objective: "UNKNOWN"},
	}, nil)

	campaigns, err := integrator.FetchCampaigns(context.Background(), "tenant-1", "123", since, until)

	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	summer := campaigns[0]
	assert.Equal(t, "Verão", summer.CampaignName)
	assert.Equal(t, "tenant-1", summer.TenantID)
	assert.Equal(t, domain.PlatformFacebook, summer.Platform)
	assert.Equal(t, int64(1010), summer.Reach)
	assert.Equal(t, int64(82), summer.Clicks)
	assert.Equal(t, int64(42), summer.Conversions)
	assert.Equal(t, 100.0, summer.Spend)
	assert.NotEmpty(t, summer.ID)

	leads := campaigns[1]
	assert.Equal(t, int64(0), leads.Clicks)
	assert.Equal(t, int64(0), leads.Conversions)
}

func TestMetaIntegrator_FetchCampaignsClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(client)

	client.EXPECT().GetCampaignInsights(gomock.Any(), "123", gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := integrator.FetchCampaigns(context.Background(), "tenant-1", "123", time.Now(), time.Now())
	assert.EqualError(t, err, "timeout")
}
