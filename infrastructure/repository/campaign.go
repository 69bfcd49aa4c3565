package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/lib/pq"
)

const campaignsTable = "campaigns"

type CampaignRepository interface {
	SumCampaignTotals(ctx context.Context, tenantID string, window domain.Window) (domain.CampaignTotals, error)
	ListCampaigns(ctx context.Context, tenantID string) ([]*domain.Campaign, error)
	UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) SumCampaignTotals(ctx context.Context, tenantID string, window domain.Window) (domain.CampaignTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(reach), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(conversions), 0)",
			"COALESCE(SUM(spend), 0)",
		).
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": tenantID}).
		Where(windowClause("created_at", window)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.CampaignTotals{}, fmt.Errorf("failed to build query: %w", err)
	}

	var totals domain.CampaignTotals
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.Reach,
		&totals.Clicks,
		&totals.Conversions,
		&totals.Spend,
	); err != nil {
		return domain.CampaignTotals{}, fmt.Errorf("erro ao somar campanhas: %w", err)
	}

	return totals, nil
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, tenantID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "campaign_name", "platform", "status", "reach", "clicks",
			"conversions", "spend", "sales", "created_at", "updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": tenantID}).
		OrderBy("campaign_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar campanhas: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(
			&c.ID,
			&c.TenantID,
			&c.CampaignName,
			&c.Platform,
			&c.Status,
			&c.Reach,
			&c.Clicks,
			&c.Conversions,
			&c.Spend,
			&c.Sales,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar campanha: %w", err)
		}
		campaigns = append(campaigns, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return campaigns, nil
}

// UpsertCampaigns grava em lote, atualizando métricas das campanhas já existentes
func (r *campaignRepository) UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns("id", "user_id", "campaign_name", "platform", "status", "reach", "clicks", "conversions", "spend").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range campaigns {
		query = query.Values(
			c.ID,
			c.TenantID,
			c.CampaignName,
			c.Platform,
			c.Status,
			c.Reach,
			c.Clicks,
			c.Conversions,
			c.Spend,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (campaign_name, platform, user_id) DO UPDATE SET
				status = EXCLUDED.status,
				reach = EXCLUDED.reach,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				spend = EXCLUDED.spend,
				updated_at = NOW()
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
