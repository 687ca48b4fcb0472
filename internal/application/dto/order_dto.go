package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/orders.
// Los precios NO vienen del cliente: se capturan del catálogo al crear el pedido.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	VisitID    *string            `json:"visit_id,omitempty" validate:"omitempty,uuid"`
	CampaignID *string            `json:"campaign_id,omitempty" validate:"omitempty,uuid"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// OrderItemRequest línea de pedido (producto + cantidad).
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// OrderResponse pedido con detalle.
type OrderResponse struct {
	ID         string              `json:"id"`
	CompanyID  string              `json:"company_id"`
	CustomerID string              `json:"customer_id"`
	UserID     string              `json:"user_id"`
	VisitID    *string             `json:"visit_id,omitempty"`
	CampaignID *string             `json:"campaign_id,omitempty"`
	Number     string              `json:"number"`
	Status     string              `json:"status"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
	Discount   decimal.Decimal     `json:"discount"`
	Total      decimal.Decimal     `json:"total"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderListResponse listado paginado de pedidos (sin items, para aligerar).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
