package repository

import "github.com/jhoicas/fieldforce-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCompanyAndID(companyID, id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(companyID, id string) error
}
