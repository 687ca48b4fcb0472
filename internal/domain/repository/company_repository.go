package repository

import (
	"context"

	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByTaxID(taxID string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id string) error

	// Módulos SaaS de la empresa.
	ListModules(companyID string) ([]*entity.CompanyModule, error)
	UpsertModule(m *entity.CompanyModule) error
	// HasActiveModule informa si el módulo está contratado, activo y sin vencer.
	// Lleva ctx porque lo consulta el middleware en cada request protegida.
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
}
