package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VisitStatusCount visitas agrupadas por estado en un período.
type VisitStatusCount struct {
	Status string
	Count  int
}

// OrderTotals métricas agregadas de pedidos en un período (pedidos cancelados excluidos).
type OrderTotals struct {
	Count    int
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// DailySales ventas de un día (serie para gráficas).
type DailySales struct {
	Day    time.Time
	Orders int
	Total  decimal.Decimal
}

// TopProductResult producto ordenado por ingreso en el período.
type TopProductResult struct {
	ProductID string
	SKU       string
	Name      string
	Quantity  int
	Revenue   decimal.Decimal
}

// AgentPerformanceResult desempeño de un agente en el período.
type AgentPerformanceResult struct {
	UserID          string
	Name            string
	VisitsCompleted int
	Orders          int
	Revenue         decimal.Decimal
}

// ReportRepository define las consultas read-only del módulo de reportes.
// Todas las consultas filtran por company_id; llevan ctx porque son las
// consultas más pesadas del sistema y deben poder cancelarse.
type ReportRepository interface {
	GetVisitStatusCounts(ctx context.Context, companyID string, from, to time.Time) ([]VisitStatusCount, error)
	GetOrderTotals(ctx context.Context, companyID string, from, to time.Time) (OrderTotals, error)
	GetDailySales(ctx context.Context, companyID string, from, to time.Time) ([]DailySales, error)
	GetTopProducts(ctx context.Context, companyID string, from, to time.Time, limit int) ([]TopProductResult, error)
	GetAgentPerformance(ctx context.Context, companyID string, from, to time.Time) ([]AgentPerformanceResult, error)
}
