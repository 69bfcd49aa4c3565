package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metamocks "github.com/inpulse/inpulse-api/infrastructure/integrator/meta/mocks"
	"github.com/inpulse/inpulse-api/infrastructure/repository/mocks"
	"github.com/inpulse/inpulse-api/internal/config"
	"github.com/inpulse/inpulse-api/internal/domain"
)

var syncNow = time.Date(2025, 6, 30, 3, 0, 0, 0, time.UTC)

type syncFixture struct {
	integrationRepo *mocks.MockIntegrationRepository
	campaignRepo    *mocks.MockCampaignRepository
	integrator      *metamocks.MockIntegrator
	service         *CampaignSyncService
}

func newSyncFixture(t *testing.T) *syncFixture {
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		integrationRepo: mocks.NewMockIntegrationRepository(ctrl),
		campaignRepo:    mocks.NewMockCampaignRepository(ctrl),
		integrator:      metamocks.NewMockIntegrator(ctrl),
	}

	f.service = NewCampaignSyncService(f.integrationRepo, f.campaignRepo, f.integrator, config.CampaignSync{
		CronSchedule:      "0 3 * * *",
		LookbackDays:      30,
		MaxConcurrentJobs: 2,
		Enabled:           true,
	})
	f.service.now = func() time.Time { return syncNow }
	f.service.sleep = func(time.Duration) {}

	return f
}

func TestCampaignSyncService_RunAll(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()
	since := syncNow.AddDate(0, 0, -30)

	f.integrationRepo.EXPECT().ListIntegrations(ctx, domain.PlatformFacebook).Return([]*domain.Integration{
		{ID: "i-1", TenantID: "tenant-1", ExternalAccountID: "111"},
		{ID: "i-2", TenantID: "tenant-2", ExternalAccountID: "222"},
		{ID: "i-3", TenantID: "tenant-3"},
	}, nil)

	tenantOne := []*domain.Campaign{{CampaignName: "A"}, {CampaignName: "B"}}
	f.integrator.EXPECT().FetchCampaigns(ctx, "tenant-1", "111", since, syncNow).Return(tenantOne, nil)
	f.campaignRepo.EXPECT().UpsertCampaigns(ctx, tenantOne).Return(nil)

	f.integrator.EXPECT().FetchCampaigns(ctx, "tenant-2", "222", since, syncNow).Return(nil, errors.New("token expirado"))

	require.True(t, f.service.acquire())
	f.service.runAll(ctx)

	status := f.service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 2, status["last_synced_campaigns"])
	assert.Equal(t, syncNow, status["last_sync_completed_at"])
}

func TestCampaignSyncService_RunAllListError(t *testing.T) {
	f := newSyncFixture(t)

	f.integrationRepo.EXPECT().ListIntegrations(gomock.Any(), domain.PlatformFacebook).Return(nil, errors.New("conexão recusada"))

	require.True(t, f.service.acquire())
	f.service.runAll(context.Background())

	assert.Equal(t, false, f.service.GetStatus()["sync_running"])
}

func TestCampaignSyncService_RunAllStopsWhenCancelled(t *testing.T) {
	t.Run("contexto já cancelado não busca nenhuma conta", func(t *testing.T) {
		f := newSyncFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f.integrationRepo.EXPECT().ListIntegrations(gomock.Any(), domain.PlatformFacebook).Return([]*domain.Integration{
			{ID: "i-1", TenantID: "tenant-1", ExternalAccountID: "111"},
			{ID: "i-2", TenantID: "tenant-2", ExternalAccountID: "222"},
		}, nil)

		require.True(t, f.service.acquire())
		f.service.runAll(ctx)

		assert.Equal(t, false, f.service.GetStatus()["sync_running"])
	})

	t.Run("cancelamento durante a execução interrompe as contas restantes", func(t *testing.T) {
		f := newSyncFixture(t)
		f.service.config.MaxConcurrentJobs = 1
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.integrationRepo.EXPECT().ListIntegrations(gomock.Any(), domain.PlatformFacebook).Return([]*domain.Integration{
			{ID: "i-1", TenantID: "tenant-1", ExternalAccountID: "111"},
			{ID: "i-2", TenantID: "tenant-2", ExternalAccountID: "222"},
			{ID: "i-3", TenantID: "tenant-3", ExternalAccountID: "333"},
		}, nil)
		f.integrator.EXPECT().FetchCampaigns(gomock.Any(), "tenant-1", "111", gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, string, time.Time, time.Time) ([]*domain.Campaign, error) {
				cancel()
				return nil, context.Canceled
			})

		require.True(t, f.service.acquire())
		f.service.runAll(ctx)

		assert.Equal(t, 0, f.service.GetStatus()["last_synced_campaigns"])
	})
}

func TestCampaignSyncService_SyncTenant(t *testing.T) {
	t.Run("sincroniza a conta do tenant", func(t *testing.T) {
		f := newSyncFixture(t)
		campaigns := []*domain.Campaign{{CampaignName: "Verão"}}

		f.integrationRepo.EXPECT().GetIntegration(gomock.Any(), "tenant-1", domain.PlatformFacebook).
			Return(&domain.Integration{TenantID: "tenant-1", ExternalAccountID: "111"}, nil)
		f.integrator.EXPECT().FetchCampaigns(gomock.Any(), "tenant-1", "111", gomock.Any(), syncNow).Return(campaigns, nil)
		f.campaignRepo.EXPECT().UpsertCampaigns(gomock.Any(), campaigns).Return(nil)

		synced, err := f.service.SyncTenant(context.Background(), "tenant-1")

		require.NoError(t, err)
		assert.Equal(t, 1, synced)
	})

	t.Run("sem integração", func(t *testing.T) {
		f := newSyncFixture(t)

		f.integrationRepo.EXPECT().GetIntegration(gomock.Any(), "tenant-1", domain.PlatformFacebook).Return(nil, nil)

		_, err := f.service.SyncTenant(context.Background(), "tenant-1")
		assert.ErrorIs(t, err, ErrIntegrationNotFound)
	})

	t.Run("falha ao salvar", func(t *testing.T) {
		f := newSyncFixture(t)

		f.integrationRepo.EXPECT().GetIntegration(gomock.Any(), "tenant-1", domain.PlatformFacebook).
			Return(&domain.Integration{TenantID: "tenant-1", ExternalAccountID: "111"}, nil)
		f.integrator.EXPECT().FetchCampaigns(gomock.Any(), "tenant-1", "111", gomock.Any(), gomock.Any()).
			Return([]*domain.Campaign{{CampaignName: "X"}}, nil)
		f.campaignRepo.EXPECT().UpsertCampaigns(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		_, err := f.service.SyncTenant(context.Background(), "tenant-1")
		assert.EqualError(t, err, "deadlock")
	})
}

func TestCampaignSyncService_TriggerManualSyncWhileRunning(t *testing.T) {
	f := newSyncFixture(t)

	require.True(t, f.service.acquire())
	assert.False(t, f.service.TriggerManualSync())

	f.service.release(0)
	assert.Equal(t, false, f.service.GetStatus()["sync_running"])
}

func TestCampaignSyncService_StartDisabled(t *testing.T) {
	f := newSyncFixture(t)
	f.service.config.SyncEnabled = false

	assert.NoError(t, f.service.Start(context.Background()))
}

func TestCampaignSyncService_StartInvalidCron(t *testing.T) {
	f := newSyncFixture(t)
	f.service.config.CronSchedule = "not a cron"

	assert.Error(t, f.service.Start(context.Background()))
}
