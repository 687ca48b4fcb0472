package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de campaña.
const (
	CampaignTypePromotion = "promotion" // descuento aplicable a pedidos
	CampaignTypeLaunch    = "launch"
	CampaignTypeSeasonal  = "seasonal"
)

// KnownCampaignType valida el tipo de campaña.
func KnownCampaignType(t string) bool {
	switch t {
	case CampaignTypePromotion, CampaignTypeLaunch, CampaignTypeSeasonal:
		return true
	}
	return false
}

// Estados de una campaña. Transiciones válidas:
// draft -> active -> completed
// draft|active -> cancelled
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// Campaign representa una campaña de marketing o promoción de la empresa.
// Solo las de tipo promotion llevan DiscountPct > 0.
type Campaign struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Type        string          // ver constantes CampaignType*
	DiscountPct decimal.Decimal // 0..100; solo promotion
	Budget      decimal.Decimal
	StartsAt    time.Time
	EndsAt      time.Time
	Status      string // ver constantes CampaignStatus*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppliesAt indica si la campaña puede aplicarse a un pedido en el instante t:
// debe estar activa y dentro de su ventana de fechas.
func (c *Campaign) AppliesAt(t time.Time) bool {
	if c.Status != CampaignStatusActive {
		return false
	}
	return !t.Before(c.StartsAt) && !t.After(c.EndsAt)
}

// CanActivate indica si la campaña admite activación.
func (c *Campaign) CanActivate() bool { return c.Status == CampaignStatusDraft }

// CanComplete indica si la campaña admite cierre.
func (c *Campaign) CanComplete() bool { return c.Status == CampaignStatusActive }

// CanCancel indica si la campaña admite cancelación.
func (c *Campaign) CanCancel() bool {
	return c.Status == CampaignStatusDraft || c.Status == CampaignStatusActive
}
