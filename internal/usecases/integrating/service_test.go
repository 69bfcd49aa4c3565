package integrating

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inpulse/inpulse-api/infrastructure/repository/mocks"
	"github.com/inpulse/inpulse-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockIntegrationRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIntegrationRepository(ctrl)

	svc := NewService(repo).(*Service)
	svc.generateID = func() (string, error) { return "int-1", nil }

	return svc, repo
}

func TestService_ListIntegrations(t *testing.T) {
	svc, repo := newTestService(t)
	repo.EXPECT().ListTenantIntegrations(gomock.Any(), "user-1").Return(nil, nil)

	integrations, err := svc.ListIntegrations(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, integrations)
	assert.Empty(t, integrations)
}

func TestService_ConnectIntegration(t *testing.T) {
	t.Run("vincula conta do facebook", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().UpsertIntegration(gomock.Any(), &domain.Integration{
			ID:                "int-1",
			TenantID:          "user-1",
			Platform:          domain.PlatformFacebook,
			ExternalAccountID: "act_123",
		}).Return(nil)

		integration, err := svc.ConnectIntegration(context.Background(), "user-1", &domain.ConnectIntegrationRequest{
			Platform:          "facebook",
			ExternalAccountID: " act_123 ",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.PlatformFacebook, integration.Platform)
		assert.Equal(t, "act_123", integration.ExternalAccountID)
	})

	t.Run("plataforma sem sincronização", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.ConnectIntegration(context.Background(), "user-1", &domain.ConnectIntegrationRequest{
			Platform:          "TikTok",
			ExternalAccountID: "123",
		})

		assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	})

	t.Run("sem conta externa", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.ConnectIntegration(context.Background(), "user-1", &domain.ConnectIntegrationRequest{Platform: "Facebook"})

		assert.ErrorIs(t, err, ErrMissingAccount)
	})
}

func TestService_DisconnectIntegration(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
		repoErr error
		wantErr error
	}{
		{name: "remove integração do tenant", deleted: true},
		{name: "integração de outro tenant", deleted: false, wantErr: ErrIntegrationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			repo.EXPECT().DeleteIntegration(gomock.Any(), "user-1", "int-9").Return(tt.deleted, tt.repoErr)

			err := svc.DisconnectIntegration(context.Background(), "user-1", "int-9")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("erro no banco", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().DeleteIntegration(gomock.Any(), "user-1", "int-9").Return(false, errors.New("timeout"))

		err := svc.DisconnectIntegration(context.Background(), "user-1", "int-9")

		assert.ErrorContains(t, err, "erro ao remover integração")
	})
}
