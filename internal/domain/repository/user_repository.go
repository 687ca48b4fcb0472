package repository

import "github.com/jhoicas/fieldforce-api/internal/domain/entity"

// UserFilter filtros opcionales para listados de usuarios.
type UserFilter struct {
	Role        string // vacío = todos
	TerritoryID string // vacío = todos
	Limit       int
	Offset      int
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByCompanyAndID aplica el filtro de tenant en la consulta misma.
	GetByCompanyAndID(companyID, id string) (*entity.User, error)
	// FindByEmail busca por email en todas las empresas (el email es único
	// global: es la llave de login y el login no pide empresa).
	FindByEmail(email string) (*entity.User, error)
	ListByCompany(companyID string, f UserFilter) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(companyID, id string) error
}
