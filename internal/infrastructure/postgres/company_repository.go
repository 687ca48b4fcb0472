package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, email, phone, address, status, plan, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Email,
		company.Phone, company.Address, company.Status, company.Plan,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, email, phone, address, status, plan, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.Status, &c.Plan,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByTaxID obtiene una empresa por su identificación tributaria.
func (r *CompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, email, phone, address, status, plan, created_at, updated_at
		FROM companies WHERE tax_id = $1`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, taxID).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.Status, &c.Plan,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by tax_id: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, tax_id = $3, email = $4, phone = $5, address = $6, status = $7, plan = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Email,
		company.Phone, company.Address, company.Status, company.Plan, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, email, phone, address, status, plan, created_at, updated_at
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.Status, &c.Plan, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID (cascada sobre sus datos vía FK).
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// ListModules devuelve los módulos contratados por la empresa.
func (r *CompanyRepo) ListModules(companyID string) ([]*entity.CompanyModule, error) {
	query := `
		SELECT id, company_id, module_name, is_active, activated_at, expires_at, created_at, updated_at
		FROM company_modules WHERE company_id = $1 ORDER BY module_name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company modules: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompanyModule
	for rows.Next() {
		var m entity.CompanyModule
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ModuleName, &m.IsActive, &m.ActivatedAt, &m.ExpiresAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// UpsertModule activa o actualiza un módulo de la empresa.
func (r *CompanyRepo) UpsertModule(m *entity.CompanyModule) error {
	query := `
		INSERT INTO company_modules (id, company_id, module_name, is_active, activated_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, module_name) DO UPDATE
		SET is_active = EXCLUDED.is_active,
		    activated_at = EXCLUDED.activated_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.CompanyID, m.ModuleName, m.IsActive, m.ActivatedAt, m.ExpiresAt,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company module: %w", err)
	}
	return nil
}

// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
// Consulta directamente company_modules para una respuesta O(1) vía índice.
func (r *CompanyRepo) HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM company_modules
			 WHERE company_id  = $1
			   AND module_name = $2
			   AND is_active   = true
			   AND (expires_at IS NULL OR expires_at > now())
		)`
	var active bool
	if err := r.pool.QueryRow(ctx, query, companyID, moduleName).Scan(&active); err != nil {
		return false, fmt.Errorf("check module %s: %w", moduleName, err)
	}
	return active, nil
}
