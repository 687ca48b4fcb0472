package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Los precios son NUMERIC y llegan como decimal.Decimal vía el codec del pool.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, company_id, sku, name, description, price, unit, active, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.SKU, product.Name, product.Description,
		product.Price, product.Unit, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByCompanyAndID obtiene un producto de la empresa.
func (r *ProductRepo) GetByCompanyAndID(companyID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 AND id = $2`
	return r.scanOne(query, companyID, id)
}

// GetByCompanyAndSKU obtiene un producto por SKU dentro de la empresa.
func (r *ProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 AND sku = $2`
	return r.scanOne(query, companyID, sku)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Description,
		&p.Price, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCompany lista productos de la empresa con paginación.
func (r *ProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Unit, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, description = $4, price = $5, unit = $6, active = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		product.CompanyID, product.ID, product.Name, product.Description,
		product.Price, product.Unit, product.Active, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto de la empresa.
func (r *ProductRepo) Delete(companyID, id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
