package dashboarding

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inpulse/inpulse-api/internal/domain"
)

const day = 24 * time.Hour

var referenceNow = time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// memoryStore aplica os mesmos filtros do repositório sobre registros em memória
type memoryStore struct {
	sales       []*domain.Sale
	campaigns   []*domain.Campaign
	tasks       []*domain.Task
	teamMembers int64
	failOn      string
}

func (m *memoryStore) fail(op string) error {
	if m.failOn == op {
		return errors.New("connection refused")
	}
	return nil
}

func (m *memoryStore) SumSaleRevenue(_ context.Context, tenantID string, window domain.Window) (float64, error) {
	if err := m.fail("SumSaleRevenue"); err != nil {
		return 0, err
	}

	var total float64
	for _, s := range m.sales {
		if s.TenantID == tenantID && window.Contains(s.CreatedAt) {
			total += s.Revenue
		}
	}
	return total, nil
}

func (m *memoryStore) SumCampaignTotals(_ context.Context, tenantID string, window domain.Window) (domain.CampaignTotals, error) {
	if err := m.fail("SumCampaignTotals"); err != nil {
		return domain.CampaignTotals{}, err
	}

	var totals domain.CampaignTotals
	for _, c := range m.campaigns {
		if c.TenantID == tenantID && window.Contains(c.CreatedAt) {
			totals.Reach += c.Reach
			totals.Clicks += c.Clicks
			totals.Conversions += c.Conversions
			totals.Spend += c.Spend
		}
	}
	return totals, nil
}

func (m *memoryStore) matchTasks(tenantID string, filter domain.TaskFilter) []*domain.Task {
	matched := make([]*domain.Task, 0)
	for _, t := range m.tasks {
		if t.TenantID != tenantID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.NotStatus != nil && t.Status == *filter.NotStatus {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func (m *memoryStore) CountTasks(_ context.Context, tenantID string, filter domain.TaskFilter) (int64, error) {
	if err := m.fail("CountTasks"); err != nil {
		return 0, err
	}
	return int64(len(m.matchTasks(tenantID, filter))), nil
}

func (m *memoryStore) ListTasks(_ context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	if err := m.fail("ListTasks"); err != nil {
		return nil, err
	}
	return m.matchTasks(tenantID, filter), nil
}

func (m *memoryStore) CountTeamMembers(_ context.Context, _ string) (int64, error) {
	if err := m.fail("CountTeamMembers"); err != nil {
		return 0, err
	}
	return m.teamMembers, nil
}

func (m *memoryStore) ListSalesInWindow(_ context.Context, tenantID string, window domain.Window) ([]*domain.Sale, error) {
	if err := m.fail("ListSalesInWindow"); err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, 0)
	for _, s := range m.sales {
		if s.TenantID == tenantID && window.Contains(s.CreatedAt) {
			sales = append(sales, s)
		}
	}
	return sales, nil
}

func sale(tenantID string, revenue float64, at time.Time) *domain.Sale {
	return &domain.Sale{ID: at.String(), TenantID: tenantID, Revenue: revenue, CreatedAt: at}
}

func task(status domain.TaskStatus, priority domain.TaskPriority, due *time.Time) *domain.Task {
	return &domain.Task{TenantID: "tenant-1", Status: status, Priority: priority, DueDate: due}
}

func newTestService(store RecordStore) Dashboarder {
	return NewService(store, fixedClock{now: referenceNow}, DefaultWindowDays)
}

func TestService_ComputeDashboardMetrics_ZeroData(t *testing.T) {
	svc := newTestService(&memoryStore{})

	result, err := svc.ComputeDashboardMetrics(context.Background(), "tenant-1", nil)

	require.NoError(t, err)
	assert.Equal(t, &domain.DashboardMetrics{
		TeamPerformance: domain.TeamPerformance{BurnoutRisk: domain.BurnoutRiskLow},
	}, result)
}

func TestService_ComputeDashboardMetrics_WindowPartition(t *testing.T) {
	now := referenceNow
	store := &memoryStore{
		sales: []*domain.Sale{
			sale("tenant-1", 10, now.Add(-30*day)),
			sale("tenant-1", 1000, now),
			sale("tenant-1", 5, now.Add(-30*day).Add(-time.Nanosecond)),
			sale("tenant-1", 7, now.Add(-60*day)),
			sale("tenant-1", 3000, now.Add(-60*day).Add(-time.Nanosecond)),
			sale("tenant-2", 999, now.Add(-day)),
		},
	}

	result, err := newTestService(store).ComputeDashboardMetrics(context.Background(), "tenant-1", &now)

	require.NoError(t, err)
	assert.Equal(t, 10.0, result.TotalRevenue)
	// anterior = 5 + 7
	assert.InDelta(t, changePct(10, 12), result.RevenueChange, 1e-9)
}

func TestService_ComputeDashboardMetrics_RevenueScenario(t *testing.T) {
	store := &memoryStore{
		sales: []*domain.Sale{
			sale("tenant-1", 100, referenceNow.Add(-25*day)),
			sale("tenant-1", 50, referenceNow.Add(-40*day)),
		},
	}

	result, err := newTestService(store).ComputeDashboardMetrics(context.Background(), "tenant-1", nil)

	require.NoError(t, err)
	assert.Equal(t, 100.0, result.TotalRevenue)
	assert.Equal(t, 100.0, result.RevenueChange)
	assert.Equal(t, 100.0, result.Financials.NetProfitMargin)
}

func TestService_ComputeDashboardMetrics_BurnoutScenario(t *testing.T) {
	overdue := referenceNow.Add(-2 * day)
	store := &memoryStore{
		tasks: []*domain.Task{
			task(domain.TaskStatusTodo, domain.TaskPriorityHigh, nil),
			task(domain.TaskStatusInProgress, domain.TaskPriorityHigh, nil),
			task(domain.TaskStatusTodo, domain.TaskPriorityLow, &overdue),
			task(domain.TaskStatusDone, domain.TaskPriorityMedium, nil),
		},
		teamMembers: 1,
	}

	result, err := newTestService(store).ComputeDashboardMetrics(context.Background(), "tenant-1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.BurnoutRiskMedium, result.TeamPerformance.BurnoutRisk)
	assert.Equal(t, 25, result.TeamPerformance.CompletionRate)
}

func TestService_ComputeDashboardMetrics_CampaignMetrics(t *testing.T) {
	store := &memoryStore{
		sales: []*domain.Sale{sale("tenant-1", 1000, referenceNow.Add(-day))},
		campaigns: []*domain.Campaign{
			{TenantID: "tenant-1", Reach: 8000, Clicks: 400, Conversions: 20, Spend: 200, CreatedAt: referenceNow.Add(-5 * day)},
			{TenantID: "tenant-1", Reach: 2000, Clicks: 100, Conversions: 5, Spend: 100, CreatedAt: referenceNow.Add(-10 * day)},
			{TenantID: "tenant-1", Reach: 5000, Clicks: 1000, Conversions: 25, Spend: 500, CreatedAt: referenceNow.Add(-45 * day)},
		},
	}

	result, err := newTestService(store).ComputeDashboardMetrics(context.Background(), "tenant-1", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(10000), result.TotalReach)
	assert.Equal(t, 100.0, result.ReachChange)
	assert.InDelta(t, 5.0, result.EngagementRate, 1e-9)
	// variação calculada sobre cliques brutos: 500 contra 1000
	assert.InDelta(t, -50.0, result.EngagementRateChange, 1e-9)
	assert.Equal(t, int64(25), result.TotalConversions)
	assert.InDelta(t, 0.0, result.TotalConversionsChange, 1e-9)
	assert.InDelta(t, 70.0, result.Financials.NetProfitMargin, 1e-9)
}

func TestService_ComputeDashboardMetrics_EngagementWithoutReach(t *testing.T) {
	store := &memoryStore{
		campaigns: []*domain.Campaign{
			{TenantID: "tenant-1", Reach: 0, Clicks: 300, CreatedAt: referenceNow.Add(-day)},
		},
	}

	result, err := newTestService(store).ComputeDashboardMetrics(context.Background(), "tenant-1", nil)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.EngagementRate)
	assert.Equal(t, 100.0, result.EngagementRateChange)
}

func TestService_ComputeDashboardMetrics_InvalidTenant(t *testing.T) {
	svc := newTestService(&memoryStore{})

	for _, tenantID := range []string{"", "   ", "\t\n"} {
		result, err := svc.ComputeDashboardMetrics(context.Background(), tenantID, nil)

		assert.ErrorIs(t, err, ErrInvalidTenant)
		assert.Nil(t, result)
	}
}

func TestService_ComputeDashboardMetrics_StoreFailure(t *testing.T) {
	ops := []string{"SumSaleRevenue", "SumCampaignTotals", "CountTasks", "ListTasks", "CountTeamMembers"}

	for _, op := range ops {
		t.Run(op, func(t *testing.T) {
			store := &memoryStore{
				sales:  []*domain.Sale{sale("tenant-1", 100, referenceNow.Add(-day))},
				failOn: op,
			}

			result, err := newTestService(store).ComputeDashboardMetrics(context.Background(), "tenant-1", nil)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrStoreUnavailable)

			var storeErr *StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.EqualError(t, storeErr.Err, "connection refused")
		})
	}
}

func TestService_ComputeDashboardMetrics_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	store := &memoryStore{teamMembers: 3}
	for i := 0; i < 200; i++ {
		at := referenceNow.Add(-time.Duration(rng.Int63n(int64(90 * day))))
		store.sales = append(store.sales, sale("tenant-1", float64(rng.Intn(500)), at))
	}

	svc := newTestService(store)

	first, err := svc.ComputeDashboardMetrics(context.Background(), "tenant-1", nil)
	require.NoError(t, err)

	second, err := svc.ComputeDashboardMetrics(context.Background(), "tenant-1", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTrailingWindows_Partition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		now := referenceNow.Add(time.Duration(rng.Int63n(int64(365 * day))))
		current, previous := domain.TrailingWindows(now, DefaultWindowDays)
		at := now.Add(-time.Duration(rng.Int63n(int64(70 * day))))

		inRange := !at.Before(now.Add(-60*day)) && at.Before(now)
		inCurrent := current.Contains(at)
		inPrevious := previous.Contains(at)

		assert.False(t, inCurrent && inPrevious, "janelas não podem se sobrepor")
		assert.Equal(t, inRange, inCurrent || inPrevious)
		assert.Equal(t, current.Start, previous.End)
	}
}

func TestService_RevenueChart(t *testing.T) {
	store := &memoryStore{
		sales: []*domain.Sale{
			sale("tenant-1", 10.01, time.Date(2025, 6, 20, 23, 0, 0, 0, time.UTC)),
			sale("tenant-1", 20.10, time.Date(2025, 6, 20, 1, 0, 0, 0, time.UTC)),
			sale("tenant-1", 5, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)),
			sale("tenant-1", 99, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)),
		},
	}

	points, err := newTestService(store).RevenueChart(context.Background(), "tenant-1", nil)

	require.NoError(t, err)
	assert.Equal(t, []domain.RevenuePoint{
		{Date: "Jun 2", Revenue: 5},
		{Date: "Jun 20", Revenue: 30.11},
	}, points)
}

func TestService_RevenueChart_Errors(t *testing.T) {
	_, err := newTestService(&memoryStore{}).RevenueChart(context.Background(), " ", nil)
	assert.ErrorIs(t, err, ErrInvalidTenant)

	_, err = newTestService(&memoryStore{failOn: "ListSalesInWindow"}).RevenueChart(context.Background(), "tenant-1", nil)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
