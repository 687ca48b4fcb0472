package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. Transiciones válidas:
// placed -> confirmed -> delivered
// placed|confirmed -> cancelled
const (
	OrderStatusPlaced    = "placed"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order representa un pedido levantado en campo. Los montos se congelan al
// crear el pedido: UnitPrice se copia del producto y el descuento de la
// campaña (si aplica) se calcula una sola vez.
type Order struct {
	ID         string
	CompanyID  string
	CustomerID string
	UserID     string  // agente que levantó el pedido
	VisitID    *string // visita de origen, si el pedido nació en una visita
	CampaignID *string // campaña/promoción aplicada, si alguna
	Number     string  // consecutivo por empresa: ORD-<n>
	Status     string  // ver constantes OrderStatus*
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal // monto descontado (no porcentaje)
	Total      decimal.Decimal
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem línea de pedido con precio capturado al momento de la venta.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// CanConfirm indica si el pedido admite confirmación.
func (o *Order) CanConfirm() bool { return o.Status == OrderStatusPlaced }

// CanDeliver indica si el pedido admite entrega.
func (o *Order) CanDeliver() bool { return o.Status == OrderStatusConfirmed }

// CanCancel indica si el pedido admite cancelación.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPlaced || o.Status == OrderStatusConfirmed
}
