package dashboarding

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/log"
	"github.com/inpulse/inpulse-api/pkg/metrics"
	"github.com/inpulse/inpulse-api/pkg/utils"
)

const (
	DefaultWindowDays = 30
	chartDateLayout   = "Jan 2"
)

type Service struct {
	store      RecordStore
	clock      Clock
	windowDays int
}

func NewService(store RecordStore, clock Clock, windowDays int) Dashboarder {
	if clock == nil {
		clock = SystemClock{}
	}

	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	return &Service{
		store:      store,
		clock:      clock,
		windowDays: windowDays,
	}
}

// snapshot guarda os resultados brutos das consultas de uma execução
type snapshot struct {
	revenueCurrent   float64
	revenuePrevious  float64
	campaignCurrent  domain.CampaignTotals
	campaignPrevious domain.CampaignTotals
	totalTasks       int64
	doneTasks        int64
	openTasks        []*domain.Task
	teamMembers      int64
}

func (s *Service) ComputeDashboardMetrics(ctx context.Context, tenantID string, now *time.Time) (result *domain.DashboardMetrics, err error) {
	tenantID, err = validateTenant(tenantID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.RecordDashboardComputation(err, time.Since(start))
	}()

	reference := s.resolveNow(now)
	current, previous := domain.TrailingWindows(reference, s.windowDays)

	snap, err := s.collect(ctx, tenantID, current, previous)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("dashboard: falha ao consultar registros do tenant %s", tenantID)
		return nil, err
	}

	return buildMetrics(snap, reference), nil
}

func (s *Service) collect(ctx context.Context, tenantID string, current, previous domain.Window) (*snapshot, error) {
	var snap snapshot
	done := domain.TaskStatusDone

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.revenueCurrent, err = s.store.SumSaleRevenue(gCtx, tenantID, current)
		return wrapStore("receita atual", err)
	})

	g.Go(func() (err error) {
		snap.revenuePrevious, err = s.store.SumSaleRevenue(gCtx, tenantID, previous)
		return wrapStore("receita anterior", err)
	})

	g.Go(func() (err error) {
		snap.campaignCurrent, err = s.store.SumCampaignTotals(gCtx, tenantID, current)
		return wrapStore("campanhas atuais", err)
	})

	g.Go(func() (err error) {
		snap.campaignPrevious, err = s.store.SumCampaignTotals(gCtx, tenantID, previous)
		return wrapStore("campanhas anteriores", err)
	})

	g.Go(func() (err error) {
		snap.totalTasks, err = s.store.CountTasks(gCtx, tenantID, domain.TaskFilter{})
		return wrapStore("total de tarefas", err)
	})

	g.Go(func() (err error) {
		snap.doneTasks, err = s.store.CountTasks(gCtx, tenantID, domain.TaskFilter{Status: &done})
		return wrapStore("tarefas concluídas", err)
	})

	g.Go(func() (err error) {
		snap.openTasks, err = s.store.ListTasks(gCtx, tenantID, domain.TaskFilter{NotStatus: &done})
		return wrapStore("tarefas abertas", err)
	})

	g.Go(func() (err error) {
		snap.teamMembers, err = s.store.CountTeamMembers(gCtx, tenantID)
		return wrapStore("membros do time", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

func buildMetrics(snap *snapshot, now time.Time) *domain.DashboardMetrics {
	cur, prev := snap.campaignCurrent, snap.campaignPrevious
	stressful := stressfulTaskCount(snap.openTasks, now)

	return &domain.DashboardMetrics{
		TotalRevenue:           snap.revenueCurrent,
		RevenueChange:          changePct(snap.revenueCurrent, snap.revenuePrevious),
		TotalReach:             cur.Reach,
		ReachChange:            changePct(float64(cur.Reach), float64(prev.Reach)),
		EngagementRate:         engagementRate(cur.Clicks, cur.Reach),
		EngagementRateChange:   changePct(float64(cur.Clicks), float64(prev.Clicks)),
		TotalConversions:       cur.Conversions,
		TotalConversionsChange: changePct(float64(cur.Conversions), float64(prev.Conversions)),
		TeamPerformance: domain.TeamPerformance{
			CompletionRate: completionRate(snap.doneTasks, snap.totalTasks),
			BurnoutRisk:    classifyBurnout(stressful, snap.teamMembers),
		},
		Financials: domain.Financials{
			NetProfitMargin: netProfitMargin(snap.revenueCurrent, cur.Spend),
		},
	}
}

func (s *Service) RevenueChart(ctx context.Context, tenantID string, now *time.Time) ([]domain.RevenuePoint, error) {
	tenantID, err := validateTenant(tenantID)
	if err != nil {
		return nil, err
	}

	current, _ := domain.TrailingWindows(s.resolveNow(now), s.windowDays)

	sales, err := s.store.ListSalesInWindow(ctx, tenantID, current)
	if err != nil {
		return nil, storeError("vendas do gráfico", err)
	}

	totals := make(map[time.Time]float64)
	for _, sale := range sales {
		created := sale.CreatedAt.UTC()
		day := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC)
		totals[day] += sale.Revenue
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	points := make([]domain.RevenuePoint, 0, len(days))
	for _, day := range days {
		points = append(points, domain.RevenuePoint{
			Date:    day.Format(chartDateLayout),
			Revenue: utils.RoundWithTwoDecimalPlace(totals[day]),
		})
	}

	return points, nil
}

func (s *Service) resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return s.clock.Now()
}

func validateTenant(tenantID string) (string, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return "", ErrInvalidTenant
	}
	return tenantID, nil
}

func wrapStore(op string, err error) error {
	if err != nil {
		return storeError(op, err)
	}
	return nil
}
