package integrating

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/log"
	"github.com/inpulse/inpulse-api/pkg/utils"
)

var (
	ErrIntegrationNotFound = errors.New("integração não encontrada")
	ErrUnsupportedPlatform = errors.New("plataforma não suportada")
	ErrMissingAccount      = errors.New("conta externa é obrigatória")
)

// plataformas com sincronização de campanhas
var supportedPlatforms = []string{domain.PlatformFacebook}

type IntegrationManager interface {
	ListIntegrations(ctx context.Context, tenantID string) ([]*domain.Integration, error)
	ConnectIntegration(ctx context.Context, tenantID string, req *domain.ConnectIntegrationRequest) (*domain.Integration, error)
	DisconnectIntegration(ctx context.Context, tenantID, integrationID string) error
}

type Service struct {
	integrationRepo repository.IntegrationRepository
	generateID      func() (string, error)
}

func NewService(integrationRepo repository.IntegrationRepository) IntegrationManager {
	return &Service{
		integrationRepo: integrationRepo,
		generateID:      utils.GenerateID,
	}
}

func (s *Service) ListIntegrations(ctx context.Context, tenantID string) ([]*domain.Integration, error) {
	integrations, err := s.integrationRepo.ListTenantIntegrations(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar integrações")
	}

	if integrations == nil {
		integrations = make([]*domain.Integration, 0)
	}

	return integrations, nil
}

// ConnectIntegration vincula (ou troca) a conta de anúncios do tenant na plataforma
func (s *Service) ConnectIntegration(ctx context.Context, tenantID string, req *domain.ConnectIntegrationRequest) (*domain.Integration, error) {
	if req == nil || strings.TrimSpace(req.ExternalAccountID) == "" {
		return nil, ErrMissingAccount
	}

	platform, ok := normalizePlatform(req.Platform)
	if !ok {
		return nil, ErrUnsupportedPlatform
	}

	id, err := s.generateID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar id da integração")
	}

	integration := &domain.Integration{
		ID:                id,
		TenantID:          tenantID,
		Platform:          platform,
		ExternalAccountID: strings.TrimSpace(req.ExternalAccountID),
	}
	if err := s.integrationRepo.UpsertIntegration(ctx, integration); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao salvar integração")
	}

	log.ForContext(ctx).WithField("platform", platform).Info("integração vinculada")
	return integration, nil
}

func (s *Service) DisconnectIntegration(ctx context.Context, tenantID, integrationID string) error {
	deleted, err := s.integrationRepo.DeleteIntegration(ctx, tenantID, integrationID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao remover integração")
	}

	if !deleted {
		return ErrIntegrationNotFound
	}

	return nil
}

func normalizePlatform(platform string) (string, bool) {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return domain.PlatformFacebook, true
	}

	for _, supported := range supportedPlatforms {
		if strings.EqualFold(platform, supported) {
			return supported, true
		}
	}

	return "", false
}
