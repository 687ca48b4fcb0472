package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, company_id, email, password_hash, name, role, status, territory_id, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.Email, user.PasswordHash, user.Name,
		user.Role, user.Status, user.TerritoryID,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (sin filtro de tenant; lo usa auth).
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCompanyAndID obtiene un usuario aplicando el filtro de tenant en la consulta.
func (r *UserRepo) GetByCompanyAndID(companyID, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 AND id = $2`
	return r.scanOne(query, companyID, id)
}

// FindByEmail obtiene un usuario por email. El esquema garantiza la unicidad
// global del email (UNIQUE (email) en users), así que hay a lo sumo una fila.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(query, email)
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name,
		&u.Role, &u.Status, &u.TerritoryID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, role = $5, status = $6, territory_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.TerritoryID, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByCompany lista usuarios de la empresa con filtros opcionales.
func (r *UserRepo) ListByCompany(companyID string, f repository.UserFilter) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1`
	args := []any{companyID}
	if f.Role != "" {
		args = append(args, f.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if f.TerritoryID != "" {
		args = append(args, f.TerritoryID)
		query += fmt.Sprintf(" AND territory_id = $%d", len(args))
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.TerritoryID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario de la empresa.
func (r *UserRepo) Delete(companyID, id string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM users WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
