package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, tenantID string) ([]*domain.ProductSummary, error)
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// ListProducts retorna os produtos do tenant com a contagem de vendas de cada um
func (r *productRepository) ListProducts(ctx context.Context, tenantID string) ([]*domain.ProductSummary, error) {
	query, args, err := squirrel.
		Select("p.id", "p.user_id", "p.name", "p.sale_price", "p.cost_per_unit", "p.inventory_level", "COUNT(s.id)").
		From("products p").
		LeftJoin("sales s ON s.product_id = p.id").
		Where(squirrel.Eq{"p.user_id": tenantID}).
		GroupBy("p.id").
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.ProductSummary, 0)
	for rows.Next() {
		var p domain.ProductSummary
		if err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.Name,
			&p.SalePrice,
			&p.CostPerUnit,
			&p.InventoryLevel,
			&p.TotalSalesCount,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar produto: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return products, nil
}
