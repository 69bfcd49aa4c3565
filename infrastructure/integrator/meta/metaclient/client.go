package metaclient

import (
	"context"
	"net/http"
	"time"

	metadomain "github.com/inpulse/inpulse-api/infrastructure/integrator/meta/domain"
	"github.com/inpulse/inpulse-api/internal/config"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	GetCampaignInsights(ctx context.Context, accountID string, since, until time.Time) ([]metadomain.CampaignInsight, error)
}

type MetaClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg config.Meta) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &MetaClient{
		baseURL:     cfg.URL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}
