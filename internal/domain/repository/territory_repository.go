package repository

import "github.com/jhoicas/fieldforce-api/internal/domain/entity"

// TerritoryRepository define el puerto de persistencia para Territory.
type TerritoryRepository interface {
	Create(t *entity.Territory) error
	GetByCompanyAndID(companyID, id string) (*entity.Territory, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Territory, error)
	Update(t *entity.Territory) error
	Delete(companyID, id string) error
}
