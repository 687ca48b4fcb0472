package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCampaignRequest body para POST /api/campaigns.
type CreateCampaignRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type" validate:"required,oneof=promotion launch seasonal"`
	DiscountPct decimal.Decimal `json:"discount_pct,omitempty"` // solo promotion, 0..100
	Budget      decimal.Decimal `json:"budget,omitempty"`
	StartsAt    time.Time       `json:"starts_at" validate:"required"`
	EndsAt      time.Time       `json:"ends_at" validate:"required"`
}

// UpdateCampaignRequest entrada parcial (solo en estado draft).
type UpdateCampaignRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	DiscountPct *decimal.Decimal `json:"discount_pct,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	StartsAt    *time.Time       `json:"starts_at,omitempty"`
	EndsAt      *time.Time       `json:"ends_at,omitempty"`
}

// CampaignResponse campaña en respuestas.
type CampaignResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Budget      decimal.Decimal `json:"budget"`
	StartsAt    time.Time       `json:"starts_at"`
	EndsAt      time.Time       `json:"ends_at"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CampaignListResponse listado paginado de campañas.
type CampaignListResponse struct {
	Items []CampaignResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
