package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// TerritoryUseCase casos de uso CRUD para territorios.
type TerritoryUseCase struct {
	repo repository.TerritoryRepository
}

// NewTerritoryUseCase construye el caso de uso.
func NewTerritoryUseCase(repo repository.TerritoryRepository) *TerritoryUseCase {
	return &TerritoryUseCase{repo: repo}
}

// Create crea un territorio en la empresa del actor.
func (uc *TerritoryUseCase) Create(actor dto.Actor, in dto.CreateTerritoryRequest) (*dto.TerritoryResponse, error) {
	now := time.Now()
	territory := &entity.Territory{
		ID:        uuid.New().String(),
		CompanyID: actor.CompanyID,
		Name:      in.Name,
		Region:    in.Region,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(territory); err != nil {
		return nil, err
	}
	return toTerritoryResponse(territory), nil
}

// GetByID obtiene un territorio de la empresa del actor.
func (uc *TerritoryUseCase) GetByID(actor dto.Actor, id string) (*dto.TerritoryResponse, error) {
	territory, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if territory == nil {
		return nil, nil
	}
	return toTerritoryResponse(territory), nil
}

// Update actualiza un territorio (campos nil no cambian).
func (uc *TerritoryUseCase) Update(actor dto.Actor, id string, in dto.UpdateTerritoryRequest) (*dto.TerritoryResponse, error) {
	territory, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if territory == nil {
		return nil, nil
	}
	if in.Name != nil {
		territory.Name = *in.Name
	}
	if in.Region != nil {
		territory.Region = *in.Region
	}
	territory.UpdatedAt = time.Now()
	if err := uc.repo.Update(territory); err != nil {
		return nil, err
	}
	return toTerritoryResponse(territory), nil
}

// List lista territorios de la empresa del actor.
func (uc *TerritoryUseCase) List(actor dto.Actor, limit, offset int) (*dto.TerritoryListResponse, error) {
	list, err := uc.repo.ListByCompany(actor.CompanyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TerritoryResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTerritoryResponse(t))
	}
	return &dto.TerritoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un territorio de la empresa del actor.
func (uc *TerritoryUseCase) Delete(actor dto.Actor, id string) error {
	return uc.repo.Delete(actor.CompanyID, id)
}

func toTerritoryResponse(t *entity.Territory) *dto.TerritoryResponse {
	if t == nil {
		return nil
	}
	return &dto.TerritoryResponse{
		ID:        t.ID,
		CompanyID: t.CompanyID,
		Name:      t.Name,
		Region:    t.Region,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
