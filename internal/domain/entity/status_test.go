package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

func TestVisit_Transiciones(t *testing.T) {
	v := &entity.Visit{Status: entity.VisitStatusScheduled}
	assert.True(t, v.CanCheckIn())
	assert.True(t, v.CanCancel())
	assert.False(t, v.CanCheckOut())

	v.Status = entity.VisitStatusInProgress
	assert.False(t, v.CanCheckIn(), "no se admite doble check-in")
	assert.False(t, v.CanCancel(), "una visita en curso no se cancela")
	assert.True(t, v.CanCheckOut())

	v.Status = entity.VisitStatusCompleted
	assert.False(t, v.CanCheckIn())
	assert.False(t, v.CanCheckOut())
	assert.False(t, v.CanCancel())
}

func TestOrder_Transiciones(t *testing.T) {
	o := &entity.Order{Status: entity.OrderStatusPlaced}
	assert.True(t, o.CanConfirm())
	assert.True(t, o.CanCancel())
	assert.False(t, o.CanDeliver())

	o.Status = entity.OrderStatusConfirmed
	assert.False(t, o.CanConfirm())
	assert.True(t, o.CanDeliver())
	assert.True(t, o.CanCancel())

	o.Status = entity.OrderStatusDelivered
	assert.False(t, o.CanCancel(), "un pedido entregado no se cancela")

	o.Status = entity.OrderStatusCancelled
	assert.False(t, o.CanConfirm())
	assert.False(t, o.CanDeliver())
}

func TestCampaign_AppliesAt(t *testing.T) {
	now := time.Now()
	c := &entity.Campaign{
		Type:        entity.CampaignTypePromotion,
		DiscountPct: decimal.NewFromInt(10),
		StartsAt:    now.Add(-24 * time.Hour),
		EndsAt:      now.Add(24 * time.Hour),
		Status:      entity.CampaignStatusActive,
	}
	assert.True(t, c.AppliesAt(now))
	assert.False(t, c.AppliesAt(now.Add(48*time.Hour)), "fuera de la ventana de fechas")

	c.Status = entity.CampaignStatusDraft
	assert.False(t, c.AppliesAt(now), "una campaña en borrador no aplica descuentos")
}

func TestKnownRole(t *testing.T) {
	assert.True(t, entity.KnownRole(entity.RoleSuperAdmin))
	assert.True(t, entity.KnownRole(entity.RoleFieldAgent))
	assert.False(t, entity.KnownRole("admin"))
	assert.False(t, entity.KnownRole(""))
}

func TestKnownModule(t *testing.T) {
	assert.True(t, entity.KnownModule(entity.ModulePromotions))
	assert.False(t, entity.KnownModule("billing"))
}
