package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

const integrationsTable = "integrations"

type IntegrationRepository interface {
	ListIntegrations(ctx context.Context, platform string) ([]*domain.Integration, error)
	GetIntegration(ctx context.Context, tenantID, platform string) (*domain.Integration, error)
	ListTenantIntegrations(ctx context.Context, tenantID string) ([]*domain.Integration, error)
	UpsertIntegration(ctx context.Context, integration *domain.Integration) error
	DeleteIntegration(ctx context.Context, tenantID, integrationID string) (bool, error)
}

type integrationRepository struct {
	conn postgres.Queryer
}

func NewIntegrationRepository(conn postgres.Queryer) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) ListIntegrations(ctx context.Context, platform string) ([]*domain.Integration, error) {
	return r.listIntegrations(ctx, squirrel.Eq{"platform": platform})
}

// ListTenantIntegrations lista as integrações de um único tenant
func (r *integrationRepository) ListTenantIntegrations(ctx context.Context, tenantID string) ([]*domain.Integration, error) {
	return r.listIntegrations(ctx, squirrel.Eq{"user_id": tenantID})
}

func (r *integrationRepository) listIntegrations(ctx context.Context, where squirrel.Eq) ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "platform", "external_account_id", "created_at").
		From(integrationsTable).
		Where(where).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar integrações: %w", err)
	}
	defer rows.Close()

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		var i domain.Integration
		if err := rows.Scan(&i.ID, &i.TenantID, &i.Platform, &i.ExternalAccountID, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao processar integração: %w", err)
		}
		integrations = append(integrations, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return integrations, nil
}

func (r *integrationRepository) GetIntegration(ctx context.Context, tenantID, platform string) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "platform", "external_account_id", "created_at").
		From(integrationsTable).
		Where(squirrel.Eq{"user_id": tenantID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var i domain.Integration
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&i.ID, &i.TenantID, &i.Platform, &i.ExternalAccountID, &i.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar integração: %w", err)
	}

	return &i, nil
}

// UpsertIntegration grava a conta externa do tenant. Uma por plataforma.
func (r *integrationRepository) UpsertIntegration(ctx context.Context, i *domain.Integration) error {
	query, args, err := squirrel.
		Insert(integrationsTable).
		Columns("id", "user_id", "platform", "external_account_id").
		Values(i.ID, i.TenantID, i.Platform, i.ExternalAccountID).
		Suffix("ON CONFLICT (user_id, platform) DO UPDATE SET external_account_id = EXCLUDED.external_account_id RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&i.ID, &i.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar integração: %w", err)
	}

	return nil
}

func (r *integrationRepository) DeleteIntegration(ctx context.Context, tenantID, integrationID string) (bool, error) {
	query, args, err := squirrel.
		Delete(integrationsTable).
		Where(squirrel.Eq{"id": integrationID, "user_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover integração: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
