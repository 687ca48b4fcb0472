package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes (puntos de venta).
type CustomerUseCase struct {
	customerRepo  repository.CustomerRepository
	territoryRepo repository.TerritoryRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, territoryRepo repository.TerritoryRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, territoryRepo: territoryRepo}
}

// Create crea un cliente en la empresa del actor. TaxID es único por empresa.
func (uc *CustomerUseCase) Create(actor dto.Actor, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	existing, _ := uc.customerRepo.GetByCompanyAndTaxID(actor.CompanyID, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.TerritoryID != nil {
		territory, err := uc.territoryRepo.GetByCompanyAndID(actor.CompanyID, *in.TerritoryID)
		if err != nil {
			return nil, err
		}
		if territory == nil {
			return nil, domain.ErrNotFound // territorio de otra empresa o inexistente
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		Name:        in.Name,
		TaxID:       in.TaxID,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		TerritoryID: in.TerritoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente de la empresa del actor.
func (uc *CustomerUseCase) GetByID(actor dto.Actor, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza un cliente (campos nil no cambian).
func (uc *CustomerUseCase) Update(actor dto.Actor, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.TerritoryID != nil {
		territory, err := uc.territoryRepo.GetByCompanyAndID(actor.CompanyID, *in.TerritoryID)
		if err != nil {
			return nil, err
		}
		if territory == nil {
			return nil, domain.ErrNotFound
		}
		customer.TerritoryID = in.TerritoryID
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa del actor con filtros opcionales.
func (uc *CustomerUseCase) List(actor dto.Actor, f repository.CustomerFilter) (*dto.CustomerListResponse, error) {
	list, err := uc.customerRepo.ListByCompany(actor.CompanyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Delete elimina un cliente de la empresa del actor.
func (uc *CustomerUseCase) Delete(actor dto.Actor, id string) error {
	return uc.customerRepo.Delete(actor.CompanyID, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		TaxID:       c.TaxID,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		TerritoryID: c.TerritoryID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
