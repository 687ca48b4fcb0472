package repository

import "github.com/jhoicas/fieldforce-api/internal/domain/entity"

// CustomerFilter filtros opcionales para listados de clientes.
type CustomerFilter struct {
	TerritoryID string // vacío = todos
	Query       string // búsqueda por nombre (ILIKE)
	Limit       int
	Offset      int
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByCompanyAndID(companyID, id string) (*entity.Customer, error)
	GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error)
	ListByCompany(companyID string, f CustomerFilter) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(companyID, id string) error
}
