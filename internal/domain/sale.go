package domain

import "time"

type Sale struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"userId"`
	ProductID *string   `json:"productId"`
	Revenue   float64   `json:"revenue"`
	CreatedAt time.Time `json:"createdAt"`
}
