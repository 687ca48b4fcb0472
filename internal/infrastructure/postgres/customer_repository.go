package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `id, company_id, name, tax_id, email, phone, address, city, territory_id, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.CompanyID, customer.Name, customer.TaxID,
		customer.Email, customer.Phone, customer.Address, customer.City,
		customer.TerritoryID, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByCompanyAndID obtiene un cliente de la empresa.
func (r *CustomerRepo) GetByCompanyAndID(companyID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE company_id = $1 AND id = $2`
	return r.scanOne(query, companyID, id)
}

// GetByCompanyAndTaxID obtiene un cliente por su identificación tributaria.
func (r *CustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE company_id = $1 AND tax_id = $2`
	return r.scanOne(query, companyID, taxID)
}

func (r *CustomerRepo) scanOne(query string, args ...any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.TaxID, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.TerritoryID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByCompany lista clientes de la empresa con filtros opcionales.
// Query busca por nombre con ILIKE.
func (r *CustomerRepo) ListByCompany(companyID string, f repository.CustomerFilter) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE company_id = $1`
	args := []any{companyID}
	if f.TerritoryID != "" {
		args = append(args, f.TerritoryID)
		query += fmt.Sprintf(" AND territory_id = $%d", len(args))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.City, &c.TerritoryID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, tax_id = $4, email = $5, phone = $6, address = $7, city = $8, territory_id = $9, updated_at = $10
		WHERE company_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		customer.CompanyID, customer.ID, customer.Name, customer.TaxID,
		customer.Email, customer.Phone, customer.Address, customer.City,
		customer.TerritoryID, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente de la empresa.
func (r *CustomerRepo) Delete(companyID, id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM customers WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
