package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/inpulse/inpulse-api/internal/scheduler"
	"github.com/inpulse/inpulse-api/internal/scheduler/mocks"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
)

func newCronRoutes(t *testing.T) (*mocks.MockCampaignSyncer, *scheduler.Registry) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockCampaignSyncer(ctrl)

	registry := scheduler.NewRegistry()
	registry.Register(scheduler.JobCampaignSync, syncer)

	return syncer, registry
}

func TestSyncFacebook(t *testing.T) {
	t.Run("sincroniza", func(t *testing.T) {
		syncer, registry := newCronRoutes(t)
		syncer.EXPECT().SyncTenant(gomock.Any(), "user-2").Return(4, nil)

		rec := serve(CronJobs(syncer, registry), newRequest(http.MethodPost, "/api/sync/facebook", "", memberClaims))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Facebook campaigns synced","synced":4}`, rec.Body.String())
	})

	t.Run("sem integração", func(t *testing.T) {
		syncer, registry := newCronRoutes(t)
		syncer.EXPECT().SyncTenant(gomock.Any(), "user-2").Return(0, scheduler.ErrIntegrationNotFound)

		rec := serve(CronJobs(syncer, registry), newRequest(http.MethodPost, "/api/sync/facebook", "", memberClaims))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("falha na api do meta", func(t *testing.T) {
		syncer, registry := newCronRoutes(t)
		syncer.EXPECT().SyncTenant(gomock.Any(), "user-2").Return(0, errors.New("token expirado"))

		rec := serve(CronJobs(syncer, registry), newRequest(http.MethodPost, "/api/sync/facebook", "", memberClaims))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decode[apiErrors.APIError](t, rec).Code)
	})
}

func TestRunCronJob(t *testing.T) {
	t.Run("dispara", func(t *testing.T) {
		syncer, registry := newCronRoutes(t)
		syncer.EXPECT().TriggerManualSync().Return(true)

		rec := serve(CronJobs(syncer, registry), newRequest(http.MethodPost, "/api/cron/campaign-sync/run", "", ownerClaims))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("já em andamento", func(t *testing.T) {
		syncer, registry := newCronRoutes(t)
		syncer.EXPECT().TriggerManualSync().Return(false)

		rec := serve(CronJobs(syncer, registry), newRequest(http.MethodPost, "/api/cron/campaign-sync/run", "", ownerClaims))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		syncer, registry := newCronRoutes(t)

		rec := serve(CronJobs(syncer, registry), newRequest(http.MethodPost, "/api/cron/ssotica/run", "", ownerClaims))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("apenas owner ou admin", func(t *testing.T) {
		syncer, registry := newCronRoutes(t)

		rec := serve(CronJobs(syncer, registry), newRequest(http.MethodPost, "/api/cron/campaign-sync/run", "", memberClaims))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	syncer, registry := newCronRoutes(t)
	syncer.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": true})

	rec := serve(CronJobs(syncer, registry), newRequest(http.MethodGet, "/api/cron/status", "", ownerClaims))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaign-sync":{"sync_enabled":true}}`, rec.Body.String())
}
