package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard operativo.
// Los pedidos cancelados se excluyen de todos los montos.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetVisitStatusCounts agrupa visitas por estado en el período (sobre scheduled_at).
func (r *ReportRepo) GetVisitStatusCounts(
	ctx context.Context,
	companyID string,
	from, to time.Time,
) ([]repository.VisitStatusCount, error) {
	const query = `
	SELECT status, COUNT(*)
	FROM visits
	WHERE company_id = $1
	  AND scheduled_at BETWEEN $2 AND $3
	GROUP BY status`

	rows, err := r.pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.GetVisitStatusCounts: %w", err)
	}
	defer rows.Close()

	var results []repository.VisitStatusCount
	for rows.Next() {
		var row repository.VisitStatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("report.GetVisitStatusCounts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetOrderTotals devuelve conteo y montos agregados de pedidos del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *ReportRepo) GetOrderTotals(
	ctx context.Context,
	companyID string,
	from, to time.Time,
) (repository.OrderTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                    AS order_count,
	    COALESCE(SUM(subtotal), 0)  AS subtotal,
	    COALESCE(SUM(discount), 0)  AS discount,
	    COALESCE(SUM(total),    0)  AS total
	FROM orders
	WHERE company_id = $1
	  AND created_at BETWEEN $2 AND $3
	  AND status <> 'cancelled'`

	var t repository.OrderTotals
	err := r.pool.QueryRow(ctx, query, companyID, from, to).
		Scan(&t.Count, &t.Subtotal, &t.Discount, &t.Total)
	if err != nil {
		return repository.OrderTotals{}, fmt.Errorf("report.GetOrderTotals: %w", err)
	}
	return t, nil
}

// GetDailySales devuelve la serie diaria de ventas del período.
func (r *ReportRepo) GetDailySales(
	ctx context.Context,
	companyID string,
	from, to time.Time,
) ([]repository.DailySales, error) {
	const query = `
	SELECT
	    date_trunc('day', created_at) AS day,
	    COUNT(*)                      AS orders,
	    COALESCE(SUM(total), 0)       AS total
	FROM orders
	WHERE company_id = $1
	  AND created_at BETWEEN $2 AND $3
	  AND status <> 'cancelled'
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.GetDailySales: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySales
	for rows.Next() {
		var row repository.DailySales
		if err := rows.Scan(&row.Day, &row.Orders, &row.Total); err != nil {
			return nil, fmt.Errorf("report.GetDailySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los `limit` productos con mayor ingreso en el período.
func (r *ReportRepo) GetTopProducts(
	ctx context.Context,
	companyID string,
	from, to time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.id                          AS product_id,
	    p.sku,
	    p.name,
	    SUM(i.quantity)               AS quantity,
	    COALESCE(SUM(i.line_total),0) AS revenue
	FROM order_items i
	JOIN orders   o ON o.id = i.order_id
	JOIN products p ON p.id = i.product_id
	WHERE o.company_id = $1
	  AND o.created_at BETWEEN $2 AND $3
	  AND o.status <> 'cancelled'
	GROUP BY p.id, p.sku, p.name
	ORDER BY revenue DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, companyID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("report.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("report.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetAgentPerformance devuelve, por agente, visitas completadas y ventas del
// período, ordenado por ingreso. Los agentes sin actividad no aparecen.
func (r *ReportRepo) GetAgentPerformance(
	ctx context.Context,
	companyID string,
	from, to time.Time,
) ([]repository.AgentPerformanceResult, error) {
	const query = `
	SELECT
	    u.id   AS user_id,
	    u.name,
	    COALESCE(v.visits_completed, 0) AS visits_completed,
	    COALESCE(o.orders,           0) AS orders,
	    COALESCE(o.revenue,          0) AS revenue
	FROM users u
	LEFT JOIN (
	    SELECT user_id, COUNT(*) AS visits_completed
	    FROM visits
	    WHERE company_id = $1
	      AND status = 'completed'
	      AND scheduled_at BETWEEN $2 AND $3
	    GROUP BY user_id
	) v ON v.user_id = u.id
	LEFT JOIN (
	    SELECT user_id, COUNT(*) AS orders, SUM(total) AS revenue
	    FROM orders
	    WHERE company_id = $1
	      AND created_at BETWEEN $2 AND $3
	      AND status <> 'cancelled'
	    GROUP BY user_id
	) o ON o.user_id = u.id
	WHERE u.company_id = $1
	  AND u.role = 'field_agent'
	  AND (v.visits_completed IS NOT NULL OR o.orders IS NOT NULL)
	ORDER BY revenue DESC`

	rows, err := r.pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.GetAgentPerformance: %w", err)
	}
	defer rows.Close()

	var results []repository.AgentPerformanceResult
	for rows.Next() {
		var row repository.AgentPerformanceResult
		if err := rows.Scan(&row.UserID, &row.Name, &row.VisitsCompleted, &row.Orders, &row.Revenue); err != nil {
			return nil, fmt.Errorf("report.GetAgentPerformance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
