package teaming

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/internal/domain"
)

var (
	ErrMemberNotFound        = errors.New("membro não encontrado")
	ErrCannotDeleteSelf      = errors.New("não é possível remover a própria conta")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

type TeamManager interface {
	ListMembers(ctx context.Context, userID string) ([]*domain.User, error)
	RemoveMember(ctx context.Context, requester *domain.Claims, memberID string) error
}

type Service struct {
	teamRepo repository.TeamRepository
}

func NewService(teamRepo repository.TeamRepository) TeamManager {
	return &Service{
		teamRepo: teamRepo,
	}
}

// ListMembers retorna os membros do primeiro time do usuário, ou lista vazia
func (s *Service) ListMembers(ctx context.Context, userID string) ([]*domain.User, error) {
	members, err := s.teamRepo.ListTeamMembers(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar membros do time")
	}

	if members == nil {
		members = make([]*domain.User, 0)
	}

	return members, nil
}

func (s *Service) RemoveMember(ctx context.Context, requester *domain.Claims, memberID string) error {
	if requester == nil || (requester.UserRole != domain.RoleOwner && requester.UserRole != domain.RoleAdmin) {
		return ErrInsufficientPrivilege
	}

	if memberID == requester.UserID {
		return ErrCannotDeleteSelf
	}

	deleted, err := s.teamRepo.DeleteTeamMember(ctx, requester.UserID, memberID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao remover membro")
	}

	if !deleted {
		return ErrMemberNotFound
	}

	return nil
}
