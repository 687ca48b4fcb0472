package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo implementación del puerto VisitRepository sobre PostgreSQL.
// No hay Delete: las visitas se cancelan, nunca se borran (histórico de campo).
type VisitRepo struct {
	pool *pgxpool.Pool
}

// NewVisitRepository construye el adaptador de persistencia para visitas.
func NewVisitRepository(pool *pgxpool.Pool) *VisitRepo {
	return &VisitRepo{pool: pool}
}

const visitColumns = `id, company_id, customer_id, user_id, territory_id, scheduled_at, check_in_at, check_out_at, status, outcome, notes, created_at, updated_at`

// Create persiste una nueva visita.
func (r *VisitRepo) Create(visit *entity.Visit) error {
	query := `
		INSERT INTO visits (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		visit.ID, visit.CompanyID, visit.CustomerID, visit.UserID, visit.TerritoryID,
		visit.ScheduledAt, visit.CheckInAt, visit.CheckOutAt,
		visit.Status, nullIfEmpty(visit.Outcome), visit.Notes,
		visit.CreatedAt, visit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// GetByCompanyAndID obtiene una visita de la empresa.
func (r *VisitRepo) GetByCompanyAndID(companyID, id string) (*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE company_id = $1 AND id = $2`
	var v entity.Visit
	var outcome *string
	err := r.pool.QueryRow(context.Background(), query, companyID, id).Scan(
		&v.ID, &v.CompanyID, &v.CustomerID, &v.UserID, &v.TerritoryID,
		&v.ScheduledAt, &v.CheckInAt, &v.CheckOutAt,
		&v.Status, &outcome, &v.Notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	v.Outcome = derefStr(outcome)
	return &v, nil
}

// ListByCompany lista visitas de la empresa con filtros opcionales.
// From/To filtran sobre scheduled_at.
func (r *VisitRepo) ListByCompany(companyID string, f repository.VisitFilter) ([]*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE company_id = $1`
	args := []any{companyID}
	if f.UserID != "" {
		args = append(args, f.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND scheduled_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND scheduled_at <= $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY scheduled_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	var list []*entity.Visit
	for rows.Next() {
		var v entity.Visit
		var outcome *string
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.CustomerID, &v.UserID, &v.TerritoryID, &v.ScheduledAt, &v.CheckInAt, &v.CheckOutAt, &v.Status, &outcome, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Outcome = derefStr(outcome)
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza el estado y los campos de cierre de una visita.
func (r *VisitRepo) Update(visit *entity.Visit) error {
	query := `
		UPDATE visits SET user_id = $3, scheduled_at = $4, check_in_at = $5, check_out_at = $6, status = $7, outcome = $8, notes = $9, updated_at = $10
		WHERE company_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		visit.CompanyID, visit.ID, visit.UserID, visit.ScheduledAt,
		visit.CheckInAt, visit.CheckOutAt, visit.Status,
		nullIfEmpty(visit.Outcome), visit.Notes, visit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	return nil
}
