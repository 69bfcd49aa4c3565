package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

const salesTable = "sales"

type SaleRepository interface {
	SumSaleRevenue(ctx context.Context, tenantID string, window domain.Window) (float64, error)
	ListSalesInWindow(ctx context.Context, tenantID string, window domain.Window) ([]*domain.Sale, error)
	ListSales(ctx context.Context, tenantID string) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// windowClause restringe created_at ao intervalo semiaberto [Start, End)
func windowClause(column string, window domain.Window) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{column: window.Start},
		squirrel.Lt{column: window.End},
	}
}

func (r *saleRepository) SumSaleRevenue(ctx context.Context, tenantID string, window domain.Window) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(revenue), 0)").
		From(salesTable).
		Where(squirrel.Eq{"user_id": tenantID}).
		Where(windowClause("created_at", window)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar receita: %w", err)
	}

	return total, nil
}

func (r *saleRepository) ListSalesInWindow(ctx context.Context, tenantID string, window domain.Window) ([]*domain.Sale, error) {
	return r.listSales(ctx, squirrel.And{
		squirrel.Eq{"user_id": tenantID},
		windowClause("created_at", window),
	}, "created_at ASC")
}

func (r *saleRepository) ListSales(ctx context.Context, tenantID string) ([]*domain.Sale, error) {
	return r.listSales(ctx, squirrel.Eq{"user_id": tenantID}, "created_at DESC")
}

func (r *saleRepository) listSales(ctx context.Context, where squirrel.Sqlizer, orderBy string) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "product_id", "revenue", "created_at").
		From(salesTable).
		Where(where).
		OrderBy(orderBy).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.TenantID,
			&sale.ProductID,
			&sale.Revenue,
			&sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar venda: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sales, nil
}
