package meta

import (
	"context"
	"fmt"
	"strings"
	"time"

	metadomain "github.com/inpulse/inpulse-api/infrastructure/integrator/meta/domain"
	"github.com/inpulse/inpulse-api/infrastructure/integrator/meta/metaclient"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/log"
	"github.com/inpulse/inpulse-api/pkg/utils"
)

const statusActive = "Active"

type Integrator interface {
	FetchCampaigns(ctx context.Context, tenantID, accountID string, since, until time.Time) ([]*domain.Campaign, error)
}

type MetaIntegrator struct {
	Client     metaclient.Client
	generateID func() (string, error)
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client:     client,
		generateID: utils.GenerateID,
	}
}

// FetchCampaigns converte os insights de uma conta em campanhas do tenant.
// Linhas com o mesmo nome de campanha são somadas, já que o upsert usa o nome como chave.
func (s *MetaIntegrator) FetchCampaigns(ctx context.Context, tenantID, accountID string, since, until time.Time) ([]*domain.Campaign, error) {
	insights, err := s.Client.GetCampaignInsights(ctx, accountID, since, until)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	byName := make(map[string]*domain.Campaign, len(insights))
	campaigns := make([]*domain.Campaign, 0, len(insights))

	for i := range insights {
		insight := &insights[i]

		name := strings.TrimSpace(insight.CampaignName)
		if name == "" {
			continue
		}

		if existing, ok := byName[name]; ok {
			mergeInsight(existing, insight)
			continue
		}

		campaign, err := s.FactoryCampaign(tenantID, insight)
		if err != nil {
			return nil, err
		}

		byName[name] = campaign
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func (s *MetaIntegrator) FactoryCampaign(tenantID string, insight *metadomain.CampaignInsight) (*domain.Campaign, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da campanha: %w", err)
	}

	return &domain.Campaign{
		ID:           id,
		TenantID:     tenantID,
		CampaignName: strings.TrimSpace(insight.CampaignName),
		Platform:     domain.PlatformFacebook,
		Status:       statusActive,
		Reach:        insight.GetReach(),
		Clicks:       insight.GetClicks(),
		Conversions:  insight.GetResult(),
		Spend:        utils.RoundWithTwoDecimalPlace(insight.GetSpend()),
	}, nil
}

func mergeInsight(c *domain.Campaign, insight *metadomain.CampaignInsight) {
	c.Reach += insight.GetReach()
	c.Clicks += insight.GetClicks()
	c.Conversions += insight.GetResult()
	c.Spend = utils.RoundWithTwoDecimalPlace(c.Spend + insight.GetSpend())
}
