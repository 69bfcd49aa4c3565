package selling

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/internal/domain"
)

type Catalog interface {
	ListSales(ctx context.Context, tenantID string) ([]*domain.Sale, error)
	ListCampaigns(ctx context.Context, tenantID string) ([]*domain.Campaign, error)
	ListProducts(ctx context.Context, tenantID string) ([]*domain.ProductSummary, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	campaignRepo repository.CampaignRepository
	productRepo  repository.ProductRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	campaignRepo repository.CampaignRepository,
	productRepo repository.ProductRepository,
) Catalog {
	return &Service{
		saleRepo:     saleRepo,
		campaignRepo: campaignRepo,
		productRepo:  productRepo,
	}
}

func (s *Service) ListSales(ctx context.Context, tenantID string) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar vendas")
	}

	return sales, nil
}

func (s *Service) ListCampaigns(ctx context.Context, tenantID string) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar campanhas")
	}

	return campaigns, nil
}

// ListProducts preenche a margem de lucro calculada de cada produto
func (s *Service) ListProducts(ctx context.Context, tenantID string) ([]*domain.ProductSummary, error) {
	products, err := s.productRepo.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar produtos")
	}

	for _, p := range products {
		p.ProfitMargin = p.CalculateProfitMargin()
	}

	return products, nil
}
