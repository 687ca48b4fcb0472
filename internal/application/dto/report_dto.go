package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse respuesta de GET /api/reports/dashboard.
// KPIs del período consultado para la empresa del token.
type DashboardResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	// Visitas agrupadas por estado
	Visits VisitSummaryDTO `json:"visits"`

	// Pedidos (cancelados excluidos de los montos)
	Orders OrderSummaryDTO `json:"orders"`

	// Serie diaria de ventas para gráficas
	SalesByDay []DailySalesDTO `json:"sales_by_day"`

	// Top productos por ingreso
	TopProducts []TopProductDTO `json:"top_products"`

	// Desempeño por agente
	Agents []AgentPerformanceDTO `json:"agents"`
}

// VisitSummaryDTO conteo de visitas por estado.
type VisitSummaryDTO struct {
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Total      int `json:"total"`
}

// OrderSummaryDTO métricas agregadas de pedidos.
type OrderSummaryDTO struct {
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// DailySalesDTO punto de la serie diaria.
type DailySalesDTO struct {
	Day    string          `json:"day"` // YYYY-MM-DD
	Orders int             `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

// TopProductDTO producto del ranking por ingreso.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// AgentPerformanceDTO desempeño de un agente en el período.
type AgentPerformanceDTO struct {
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	VisitsCompleted int             `json:"visits_completed"`
	Orders          int             `json:"orders"`
	Revenue         decimal.Decimal `json:"revenue"`
}
