package dashboarding

import (
	"context"
	"time"

	"github.com/inpulse/inpulse-api/internal/domain"
)

// RecordStore define as consultas filtradas por tenant usadas no cálculo das métricas
type RecordStore interface {
	SumSaleRevenue(ctx context.Context, tenantID string, window domain.Window) (float64, error)
	SumCampaignTotals(ctx context.Context, tenantID string, window domain.Window) (domain.CampaignTotals, error)
	CountTasks(ctx context.Context, tenantID string, filter domain.TaskFilter) (int64, error)
	ListTasks(ctx context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error)
	CountTeamMembers(ctx context.Context, tenantID string) (int64, error)
	ListSalesInWindow(ctx context.Context, tenantID string, window domain.Window) ([]*domain.Sale, error)
}

type Dashboarder interface {
	// ComputeDashboardMetrics calcula os KPIs da janela atual comparados à janela anterior.
	// now nil usa o relógio do serviço.
	ComputeDashboardMetrics(ctx context.Context, tenantID string, now *time.Time) (*domain.DashboardMetrics, error)

	// RevenueChart agrupa a receita da janela atual por dia (UTC)
	RevenueChart(ctx context.Context, tenantID string, now *time.Time) ([]domain.RevenuePoint, error)
}
