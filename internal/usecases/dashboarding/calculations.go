package dashboarding

import (
	"math"
	"time"

	"github.com/inpulse/inpulse-api/internal/domain"
)

const (
	highBurnoutRatio   = 5.0
	mediumBurnoutRatio = 2.0
)

// changePct retorna a variação percentual entre os períodos.
// Sem base anterior, qualquer valor positivo conta como 100%.
func changePct(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}

	return (current - previous) / previous * 100
}

func engagementRate(clicks, reach int64) float64 {
	if reach <= 0 {
		return 0
	}

	return float64(clicks) / float64(reach) * 100
}

func netProfitMargin(revenue, spend float64) float64 {
	if revenue == 0 {
		return 0
	}

	return (revenue - spend) / revenue * 100
}

func completionRate(done, total int64) int {
	if total <= 0 {
		return 0
	}

	return int(math.Round(float64(done) / float64(total) * 100))
}

// stressfulTaskCount soma tarefas abertas de alta prioridade e tarefas abertas em atraso.
// Uma tarefa nas duas situações conta duas vezes.
func stressfulTaskCount(tasks []*domain.Task, now time.Time) int {
	count := 0
	for _, task := range tasks {
		if task.IsHighPriorityOpen() {
			count++
		}
		if task.IsOverdue(now) {
			count++
		}
	}

	return count
}

func classifyBurnout(stressful int, teamSize int64) domain.BurnoutRisk {
	if teamSize < 1 {
		teamSize = 1
	}

	ratio := float64(stressful) / float64(teamSize)

	switch {
	case ratio > highBurnoutRatio:
		return domain.BurnoutRiskHigh
	case ratio > mediumBurnoutRatio:
		return domain.BurnoutRiskMedium
	default:
		return domain.BurnoutRiskLow
	}
}
