package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.TerritoryRepository = (*TerritoryRepo)(nil)

// TerritoryRepo implementación del puerto TerritoryRepository sobre PostgreSQL.
type TerritoryRepo struct {
	pool *pgxpool.Pool
}

// NewTerritoryRepository construye el adaptador de persistencia para territorios.
func NewTerritoryRepository(pool *pgxpool.Pool) *TerritoryRepo {
	return &TerritoryRepo{pool: pool}
}

// Create persiste un nuevo territorio.
func (r *TerritoryRepo) Create(t *entity.Territory) error {
	query := `
		INSERT INTO territories (id, company_id, name, region, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.CompanyID, t.Name, t.Region, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert territory: %w", err)
	}
	return nil
}

// GetByCompanyAndID obtiene un territorio de la empresa.
func (r *TerritoryRepo) GetByCompanyAndID(companyID, id string) (*entity.Territory, error) {
	query := `
		SELECT id, company_id, name, region, created_at, updated_at
		FROM territories WHERE company_id = $1 AND id = $2`
	var t entity.Territory
	err := r.pool.QueryRow(context.Background(), query, companyID, id).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.Region, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get territory: %w", err)
	}
	return &t, nil
}

// ListByCompany lista territorios de la empresa con paginación.
func (r *TerritoryRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Territory, error) {
	query := `
		SELECT id, company_id, name, region, created_at, updated_at
		FROM territories WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list territories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Territory
	for rows.Next() {
		var t entity.Territory
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Region, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan territory: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza un territorio.
func (r *TerritoryRepo) Update(t *entity.Territory) error {
	query := `
		UPDATE territories SET name = $3, region = $4, updated_at = $5
		WHERE company_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		t.CompanyID, t.ID, t.Name, t.Region, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update territory: %w", err)
	}
	return nil
}

// Delete elimina un territorio de la empresa.
func (r *TerritoryRepo) Delete(companyID, id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM territories WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete territory: %w", err)
	}
	return nil
}
