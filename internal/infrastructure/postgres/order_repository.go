package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Create y NextNumber deben correr dentro de la misma transacción; el resto
// puede ir directo al pool.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// NextNumber reserva el siguiente consecutivo de pedido de la empresa.
// El upsert sobre order_counters serializa a los escritores concurrentes de la
// misma empresa vía el row lock de la fila del contador.
func (r *OrderRepo) NextNumber(companyID string) (int64, error) {
	const query = `
		INSERT INTO order_counters (company_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE
		SET last_number = order_counters.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}

// Create persiste el pedido con sus items.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, customer_id, user_id, visit_id, campaign_id, number, status, subtotal, discount, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.CustomerID, order.UserID,
		order.VisitID, order.CampaignID, order.Number, order.Status,
		order.Subtotal, order.Discount, order.Total,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	const itemQuery = `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range order.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByCompanyAndID obtiene un pedido completo con sus items.
func (r *OrderRepo) GetByCompanyAndID(companyID, id string) (*entity.Order, error) {
	query := `
		SELECT id, company_id, customer_id, user_id, visit_id, campaign_id, number, status, subtotal, discount, total, created_at, updated_at
		FROM orders WHERE company_id = $1 AND id = $2`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, companyID, id).Scan(
		&o.ID, &o.CompanyID, &o.CustomerID, &o.UserID,
		&o.VisitID, &o.CampaignID, &o.Number, &o.Status,
		&o.Subtotal, &o.Discount, &o.Total,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.itemsByOrderID(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) itemsByOrderID(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, line_total
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByCompany lista pedidos sin items (listado liviano) con filtros opcionales.
// From/To filtran sobre created_at.
func (r *OrderRepo) ListByCompany(companyID string, f repository.OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT id, company_id, customer_id, user_id, visit_id, campaign_id, number, status, subtotal, discount, total, created_at, updated_at
		FROM orders WHERE company_id = $1`
	args := []any{companyID}
	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.CustomerID, &o.UserID, &o.VisitID, &o.CampaignID, &o.Number, &o.Status, &o.Subtotal, &o.Discount, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del pedido; la validación de la transición es
// del caso de uso.
func (r *OrderRepo) UpdateStatus(companyID, id, status string, updatedAt time.Time) error {
	query := `
		UPDATE orders SET status = $3, updated_at = $4
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query, companyID, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
