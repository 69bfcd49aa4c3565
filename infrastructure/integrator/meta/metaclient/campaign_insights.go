package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	metadomain "github.com/inpulse/inpulse-api/infrastructure/integrator/meta/domain"
	"github.com/inpulse/inpulse-api/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

// limite de páginas seguidas por chamada
const maxPages = 50

type ResponseCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetCampaignInsights busca os insights por campanha de uma conta de anúncios,
// seguindo a paginação da Graph API
func (c *MetaClient) GetCampaignInsights(ctx context.Context, accountID string, since, until time.Time) ([]metadomain.CampaignInsight, error) {
	if accountID == "" {
		return nil, fmt.Errorf("meta: account id vazio")
	}

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("level", "campaign")
	params.Add("fields", "campaign_id,campaign_name,reach,clicks,spend,actions,objective")
	params.Add("time_range", timeRange)
	params.Add("access_token", c.accessToken)

	next := fmt.Sprintf("%s/%s/insights?%s", c.baseURL, actPrefix(accountID), params.Encode())

	insights := make([]metadomain.CampaignInsight, 0)
	for page := 0; next != "" && page < maxPages; page++ {
		response, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		insights = append(insights, response.Data...)
		next = response.Paging.Next
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"account_id": accountID,
		"campaigns":  len(insights),
	}).Debug("meta: insights de campanhas obtidos")

	return insights, nil
}

func (c *MetaClient) get(ctx context.Context, rawURL string) (*ResponseCampaignInsights, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("meta: erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meta: erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("meta: erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp metadomain.ErrorResponse
		if err := jsoniter.Unmarshal(body, &errResp); err != nil {
			errResp.Error.Message = http.StatusText(resp.StatusCode)
		}

		apiErr := &metadomain.APIError{StatusCode: resp.StatusCode, Details: errResp.Error}
		if apiErr.TokenExpired() {
			log.ForContext(ctx).WithError(apiErr).Warn("meta: access token expirado, renove META_ACCESS_TOKEN")
		}

		return nil, apiErr
	}

	var response ResponseCampaignInsights
	if err := jsoniter.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("meta: erro ao decodificar JSON: %w", err)
	}

	return &response, nil
}

func actPrefix(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
