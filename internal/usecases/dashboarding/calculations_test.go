package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inpulse/inpulse-api/internal/domain"
)

func TestChangePct(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{name: "sem dados nos dois períodos", current: 0, previous: 0, want: 0},
		{name: "base zero com valor atual", current: 5, previous: 0, want: 100},
		{name: "queda total", current: 0, previous: 5, want: -100},
		{name: "dobrou", current: 100, previous: 50, want: 100},
		{name: "sem limite superior", current: 1000, previous: 10, want: 9900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, changePct(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestEngagementRate(t *testing.T) {
	assert.Equal(t, 0.0, engagementRate(500, 0))
	assert.Equal(t, 0.0, engagementRate(0, 0))
	assert.InDelta(t, 5.0, engagementRate(50, 1000), 1e-9)
}

func TestNetProfitMargin(t *testing.T) {
	assert.Equal(t, 0.0, netProfitMargin(0, 300))
	assert.InDelta(t, 70.0, netProfitMargin(1000, 300), 1e-9)
	assert.InDelta(t, -50.0, netProfitMargin(200, 300), 1e-9)
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, completionRate(0, 0))
	assert.Equal(t, 33, completionRate(1, 3))
	assert.Equal(t, 67, completionRate(2, 3))
	assert.Equal(t, 100, completionRate(4, 4))
}

func TestClassifyBurnout(t *testing.T) {
	tests := []struct {
		name      string
		stressful int
		teamSize  int64
		want      domain.BurnoutRisk
	}{
		{name: "razão 5 fica em Medium", stressful: 5, teamSize: 1, want: domain.BurnoutRiskMedium},
		{name: "razão acima de 5 é High", stressful: 50001, teamSize: 10000, want: domain.BurnoutRiskHigh},
		{name: "razão 2 fica em Low", stressful: 2, teamSize: 1, want: domain.BurnoutRiskLow},
		{name: "razão acima de 2 é Medium", stressful: 20001, teamSize: 10000, want: domain.BurnoutRiskMedium},
		{name: "sem tarefas estressantes", stressful: 0, teamSize: 3, want: domain.BurnoutRiskLow},
		{name: "time vazio conta como 1", stressful: 6, teamSize: 0, want: domain.BurnoutRiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyBurnout(tt.stressful, tt.teamSize))
		})
	}
}

func TestStressfulTaskCount(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tasks := []*domain.Task{
		{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusTodo},
		{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusInProgress, DueDate: &yesterday},
		{Priority: domain.TaskPriorityLow, Status: domain.TaskStatusTodo, DueDate: &yesterday},
		{Priority: domain.TaskPriorityMedium, Status: domain.TaskStatusTodo, DueDate: &tomorrow},
		{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusDone, DueDate: &yesterday},
		{Priority: domain.TaskPriorityLow, Status: domain.TaskStatusTodo, DueDate: &now},
	}

	// alta prioridade em atraso conta duas vezes
	assert.Equal(t, 4, stressfulTaskCount(tasks, now))
}
