package domain

import "time"

// BurnoutRisk classifica a carga de trabalho da equipe
type BurnoutRisk string

const (
	BurnoutRiskLow    BurnoutRisk = "Low"
	BurnoutRiskMedium BurnoutRisk = "Medium"
	BurnoutRiskHigh   BurnoutRisk = "High"
)

// Window é um intervalo semiaberto [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains indica se t pertence ao intervalo [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// TrailingWindows retorna a janela atual [now-days, now) e a anterior
// [now-2*days, now-days), contíguas e de mesmo tamanho
func TrailingWindows(now time.Time, days int) (current Window, previous Window) {
	length := time.Duration(days) * 24 * time.Hour
	boundary := now.Add(-length)

	current = Window{Start: boundary, End: now}
	previous = Window{Start: boundary.Add(-length), End: boundary}
	return current, previous
}

// CampaignTotals agrega as métricas de campanhas em uma janela
type CampaignTotals struct {
	Reach       int64
	Clicks      int64
	Conversions int64
	Spend       float64
}

type TeamPerformance struct {
	CompletionRate int         `json:"completionRate"`
	BurnoutRisk    BurnoutRisk `json:"burnoutRisk"`
}

type Financials struct {
	NetProfitMargin float64 `json:"netProfitMargin"`
}

// DashboardMetrics é o resultado calculado por requisição, nunca persistido
type DashboardMetrics struct {
	TotalRevenue           float64         `json:"totalRevenue"`
	RevenueChange          float64         `json:"revenueChange"`
	TotalReach             int64           `json:"totalReach"`
	ReachChange            float64         `json:"reachChange"`
	EngagementRate         float64         `json:"engagementRate"`
	EngagementRateChange   float64         `json:"engagementRateChange"`
	TotalConversions       int64           `json:"totalConversions"`
	TotalConversionsChange float64         `json:"totalConversionsChange"`
	TeamPerformance        TeamPerformance `json:"teamPerformance"`
	Financials             Financials      `json:"financials"`
}

// RevenuePoint é um ponto do gráfico de receita diária
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}
