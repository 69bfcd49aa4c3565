package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/integrating"
	"github.com/inpulse/inpulse-api/internal/usecases/integrating/mocks"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
)

func TestListIntegrations(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIntegrationManager(ctrl)

	service.EXPECT().ListIntegrations(gomock.Any(), "user-1").Return([]*domain.Integration{
		{ID: "int-1", TenantID: "user-1", Platform: domain.PlatformFacebook, ExternalAccountID: "act_1"},
	}, nil)

	rec := serve(Integrations(service), newRequest(http.MethodGet, "/api/integrations", "", ownerClaims))

	assert.Equal(t, http.StatusOK, rec.Code)
	integrations := decode[[]domain.Integration](t, rec)
	assert.Len(t, integrations, 1)
	assert.Equal(t, "act_1", integrations[0].ExternalAccountID)
}

func TestConnectIntegration(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "vincula conta", wantStatus: http.StatusCreated},
		{name: "sem conta externa", err: integrating.ErrMissingAccount, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "plataforma não suportada", err: integrating.ErrUnsupportedPlatform, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidFormat},
		{name: "erro no banco", err: errors.New("timeout"), wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockIntegrationManager(ctrl)

			var integration *domain.Integration
			if tt.err == nil {
				integration = &domain.Integration{ID: "int-1", Platform: domain.PlatformFacebook, ExternalAccountID: "act_1"}
			}
			service.EXPECT().ConnectIntegration(gomock.Any(), "user-1", &domain.ConnectIntegrationRequest{
				Platform: "Facebook", ExternalAccountID: "act_1",
			}).Return(integration, tt.err)

			rec := serve(Integrations(service), newRequest(http.MethodPost, "/api/integrations",
				`{"platform":"Facebook","externalAccountId":"act_1"}`, ownerClaims))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[apiErrors.APIError](t, rec).Code)
			}
		})
	}
}

func TestDisconnectIntegration(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "remove integração", wantStatus: http.StatusNoContent},
		{name: "integração inexistente", err: integrating.ErrIntegrationNotFound, wantStatus: http.StatusNotFound},
		{name: "erro no banco", err: errors.New("timeout"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockIntegrationManager(ctrl)

			service.EXPECT().DisconnectIntegration(gomock.Any(), "user-2", "int-1").Return(tt.err)

			rec := serve(Integrations(service), newRequest(http.MethodDelete, "/api/integrations/int-1", "", memberClaims))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
