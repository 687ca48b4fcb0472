// Package report contiene los casos de uso del módulo de reportes: el
// dashboard operativo por empresa y el comprobante PDF de pedidos.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el ranking del dashboard

// DashboardUseCase arma el resumen operativo de la empresa en un período:
// visitas por estado, métricas de pedidos, serie diaria de ventas, top de
// productos y desempeño por agente.
//
// Fuente de datos: ReportRepository (consultas read-only). No toca las tablas
// transaccionales directamente.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetDashboard construye el DashboardResponse para la empresa del actor.
// Si el rango viene vacío se usa el mes en curso (día 1 a hoy 23:59:59).
//
// Cinco consultas en paralelo:
//  1. GetVisitStatusCounts  → Visits
//  2. GetOrderTotals        → Orders
//  3. GetDailySales         → SalesByDay
//  4. GetTopProducts        → TopProducts
//  5. GetAgentPerformance   → Agents
func (uc *DashboardUseCase) GetDashboard(
	ctx context.Context,
	actor dto.Actor,
	from, to time.Time,
) (*dto.DashboardResponse, error) {
	now := time.Now()
	if from.IsZero() {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	if to.IsZero() {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		to = dayStart.Add(24*time.Hour - time.Nanosecond)
	}

	type visitsResult struct {
		counts []repository.VisitStatusCount
		err    error
	}
	type ordersResult struct {
		totals repository.OrderTotals
		err    error
	}
	type dailyResult struct {
		days []repository.DailySales
		err  error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}
	type agentsResult struct {
		agents []repository.AgentPerformanceResult
		err    error
	}

	visitsCh := make(chan visitsResult, 1)
	ordersCh := make(chan ordersResult, 1)
	dailyCh := make(chan dailyResult, 1)
	topCh := make(chan topResult, 1)
	agentsCh := make(chan agentsResult, 1)

	companyID := actor.CompanyID
	go func() {
		counts, err := uc.reportRepo.GetVisitStatusCounts(ctx, companyID, from, to)
		visitsCh <- visitsResult{counts, err}
	}()
	go func() {
		totals, err := uc.reportRepo.GetOrderTotals(ctx, companyID, from, to)
		ordersCh <- ordersResult{totals, err}
	}()
	go func() {
		days, err := uc.reportRepo.GetDailySales(ctx, companyID, from, to)
		dailyCh <- dailyResult{days, err}
	}()
	go func() {
		products, err := uc.reportRepo.GetTopProducts(ctx, companyID, from, to, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()
	go func() {
		agents, err := uc.reportRepo.GetAgentPerformance(ctx, companyID, from, to)
		agentsCh <- agentsResult{agents, err}
	}()

	visits := <-visitsCh
	orders := <-ordersCh
	daily := <-dailyCh
	top := <-topCh
	agents := <-agentsCh

	if visits.err != nil {
		return nil, fmt.Errorf("dashboard: visitas por estado: %w", visits.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: totales de pedidos: %w", orders.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", daily.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if agents.err != nil {
		return nil, fmt.Errorf("dashboard: desempeño de agentes: %w", agents.err)
	}

	resp := &dto.DashboardResponse{
		From:   from,
		To:     to,
		Visits: toVisitSummary(visits.counts),
		Orders: dto.OrderSummaryDTO{
			Count:    orders.totals.Count,
			Subtotal: orders.totals.Subtotal.Round(2),
			Discount: orders.totals.Discount.Round(2),
			Total:    orders.totals.Total.Round(2),
		},
		SalesByDay:  make([]dto.DailySalesDTO, 0, len(daily.days)),
		TopProducts: make([]dto.TopProductDTO, 0, len(top.products)),
		Agents:      make([]dto.AgentPerformanceDTO, 0, len(agents.agents)),
	}
	for _, d := range daily.days {
		resp.SalesByDay = append(resp.SalesByDay, dto.DailySalesDTO{
			Day:    d.Day.Format("2006-01-02"),
			Orders: d.Orders,
			Total:  d.Total.Round(2),
		})
	}
	for _, p := range top.products {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			SKU:       p.SKU,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue.Round(2),
		})
	}
	for _, a := range agents.agents {
		resp.Agents = append(resp.Agents, dto.AgentPerformanceDTO{
			UserID:          a.UserID,
			Name:            a.Name,
			VisitsCompleted: a.VisitsCompleted,
			Orders:          a.Orders,
			Revenue:         a.Revenue.Round(2),
		})
	}
	return resp, nil
}

func toVisitSummary(counts []repository.VisitStatusCount) dto.VisitSummaryDTO {
	var s dto.VisitSummaryDTO
	for _, c := range counts {
		switch c.Status {
		case entity.VisitStatusScheduled:
			s.Scheduled = c.Count
		case entity.VisitStatusInProgress:
			s.InProgress = c.Count
		case entity.VisitStatusCompleted:
			s.Completed = c.Count
		case entity.VisitStatusCancelled:
			s.Cancelled = c.Count
		}
		s.Total += c.Count
	}
	return s
}
