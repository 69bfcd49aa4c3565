package teaming

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inpulse/inpulse-api/infrastructure/repository/mocks"
	"github.com/inpulse/inpulse-api/internal/domain"
)

func TestService_ListMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	teamRepo := mocks.NewMockTeamRepository(ctrl)
	teamRepo.EXPECT().ListTeamMembers(gomock.Any(), "user-1").Return(nil, nil)

	members, err := NewService(teamRepo).ListMembers(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestService_RemoveMember(t *testing.T) {
	admin := &domain.Claims{UserID: "user-1", UserRole: domain.RoleAdmin}

	tests := []struct {
		name      string
		requester *domain.Claims
		memberID  string
		setup     func(repo *mocks.MockTeamRepository)
		wantErr   error
	}{
		{
			name:      "usuário comum não remove membros",
			requester: &domain.Claims{UserID: "user-1", UserRole: domain.RoleUser},
			memberID:  "user-2",
			wantErr:   ErrInsufficientPrivilege,
		},
		{
			name:      "não remove a si mesmo",
			requester: admin,
			memberID:  "user-1",
			wantErr:   ErrCannotDeleteSelf,
		},
		{
			name:      "membro inexistente",
			requester: admin,
			memberID:  "user-9",
			setup: func(repo *mocks.MockTeamRepository) {
				repo.EXPECT().DeleteTeamMember(gomock.Any(), "user-1", "user-9").Return(false, nil)
			},
			wantErr: ErrMemberNotFound,
		},
		{
			name:      "remove membro do time",
			requester: &domain.Claims{UserID: "user-1", UserRole: domain.RoleOwner},
			memberID:  "user-2",
			setup: func(repo *mocks.MockTeamRepository) {
				repo.EXPECT().DeleteTeamMember(gomock.Any(), "user-1", "user-2").Return(true, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			teamRepo := mocks.NewMockTeamRepository(ctrl)
			if tt.setup != nil {
				tt.setup(teamRepo)
			}

			err := NewService(teamRepo).RemoveMember(context.Background(), tt.requester, tt.memberID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
