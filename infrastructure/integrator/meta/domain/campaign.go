package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// CampaignInsight é uma linha de /insights com level=campaign. A Graph API
// devolve os números como string.
type CampaignInsight struct {
	AccountID    string   `json:"account_id"`
	Actions      []Action `json:"actions"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Clicks       string   `json:"clicks"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Objective    string   `json:"objective"`
	Reach        string   `json:"reach"`
	Spend        string   `json:"spend"`
}

// GetResult retorna a quantidade de ações que correspondem ao objetivo da campanha
func (c *CampaignInsight) GetResult() int64 {
	actionType, ok := MetaObjectiveToActionType[c.Objective]
	if !ok {
		logrus.WithField("objective", c.Objective).Debug("Objective not mapped")
		return 0
	}

	for _, action := range c.Actions {
		if action.ActionType != actionType {
			continue
		}

		value, err := strconv.ParseInt(action.Value, 10, 64)
		if err != nil {
			logrus.WithError(err).Error("Erro ao converter valor da ação")
			return 0
		}

		return value
	}

	return 0
}

func (c *CampaignInsight) GetReach() int64 {
	return parseCount(c.Reach)
}

func (c *CampaignInsight) GetClicks() int64 {
	return parseCount(c.Clicks)
}

func (c *CampaignInsight) GetSpend() float64 {
	if c.Spend == "" {
		return 0
	}

	spend, err := strconv.ParseFloat(c.Spend, 64)
	if err != nil {
		logrus.WithError(err).WithField("spend", c.Spend).Error("Erro ao converter gasto")
		return 0
	}

	return spend
}

func parseCount(raw string) int64 {
	if raw == "" {
		return 0
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithError(err).WithField("value", raw).Error("Erro ao converter métrica")
		return 0
	}

	return n
}
