package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. SKU único por empresa; precio no negativo.
func (uc *ProductUseCase) Create(actor dto.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndSKU(actor.CompanyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "unidad"
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Unit:        unit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la empresa del actor.
func (uc *ProductUseCase) GetByID(actor dto.Actor, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (campos nil no cambian). El SKU no se modifica.
func (uc *ProductUseCase) Update(actor dto.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos de la empresa del actor con paginación.
func (uc *ProductUseCase) List(actor dto.Actor, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(actor.CompanyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto de la empresa del actor.
func (uc *ProductUseCase) Delete(actor dto.Actor, id string) error {
	return uc.repo.Delete(actor.CompanyID, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Unit:        p.Unit,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
