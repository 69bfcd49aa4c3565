package domain

import "time"

const (
	PlatformFacebook  = "Facebook"
	PlatformInstagram = "Instagram"
)

type Campaign struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"userId"`
	CampaignName string    `json:"campaignName"`
	Platform     string    `json:"platform"`
	Status       string    `json:"status"`
	Reach        int64     `json:"reach"`
	Clicks       int64     `json:"clicks"`
	Conversions  int64     `json:"conversions"`
	Spend        float64   `json:"spend"`
	Sales        float64   `json:"sales"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Integration vincula um tenant a uma conta de anúncios externa
type Integration struct {
	ID                string    `json:"id"`
	TenantID          string    `json:"userId"`
	Platform          string    `json:"platform"`
	ExternalAccountID string    `json:"externalAccountId"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ConnectIntegrationRequest struct {
	Platform          string `json:"platform"`
	ExternalAccountID string `json:"externalAccountId"`
}
