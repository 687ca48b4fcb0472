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

var hundred = decimal.NewFromInt(100)

// CampaignUseCase casos de uso para campañas de marketing y promociones.
type CampaignUseCase struct {
	repo repository.CampaignRepository
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// Create crea una campaña en estado draft.
// DiscountPct solo aplica para type=promotion y debe estar en [0, 100].
func (uc *CampaignUseCase) Create(actor dto.Actor, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if !entity.KnownCampaignType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.EndsAt.After(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.CampaignTypePromotion && in.DiscountPct.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountPct.LessThan(decimal.Zero) || in.DiscountPct.GreaterThan(hundred) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	campaign := &entity.Campaign{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		DiscountPct: in.DiscountPct,
		Budget:      in.Budget,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Status:      entity.CampaignStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// GetByID obtiene una campaña de la empresa del actor.
func (uc *CampaignUseCase) GetByID(actor dto.Actor, id string) (*dto.CampaignResponse, error) {
	campaign, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, nil
	}
	return toCampaignResponse(campaign), nil
}

// Update modifica una campaña. Solo se editan campañas en draft.
func (uc *CampaignUseCase) Update(actor dto.Actor, id string, in dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, nil
	}
	if campaign.Status != entity.CampaignStatusDraft {
		return nil, domain.ErrConflict
	}
	if in.Name != nil {
		campaign.Name = *in.Name
	}
	if in.Description != nil {
		campaign.Description = *in.Description
	}
	if in.DiscountPct != nil {
		if campaign.Type != entity.CampaignTypePromotion ||
			in.DiscountPct.LessThan(decimal.Zero) || in.DiscountPct.GreaterThan(hundred) {
			return nil, domain.ErrInvalidInput
		}
		campaign.DiscountPct = *in.DiscountPct
	}
	if in.Budget != nil {
		campaign.Budget = *in.Budget
	}
	if in.StartsAt != nil {
		campaign.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		campaign.EndsAt = *in.EndsAt
	}
	if !campaign.EndsAt.After(campaign.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	campaign.UpdatedAt = time.Now()
	if err := uc.repo.Update(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// List lista campañas de la empresa del actor con filtros opcionales.
func (uc *CampaignUseCase) List(actor dto.Actor, f repository.CampaignFilter) (*dto.CampaignListResponse, error) {
	list, err := uc.repo.ListByCompany(actor.CompanyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCampaignResponse(c))
	}
	return &dto.CampaignListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Activate pasa la campaña de draft a active.
func (uc *CampaignUseCase) Activate(actor dto.Actor, id string) (*dto.CampaignResponse, error) {
	return uc.transition(actor, id, func(c *entity.Campaign) bool { return c.CanActivate() }, entity.CampaignStatusActive)
}

// Complete cierra una campaña activa.
func (uc *CampaignUseCase) Complete(actor dto.Actor, id string) (*dto.CampaignResponse, error) {
	return uc.transition(actor, id, func(c *entity.Campaign) bool { return c.CanComplete() }, entity.CampaignStatusCompleted)
}

// Cancel cancela una campaña en draft o activa.
func (uc *CampaignUseCase) Cancel(actor dto.Actor, id string) (*dto.CampaignResponse, error) {
	return uc.transition(actor, id, func(c *entity.Campaign) bool { return c.CanCancel() }, entity.CampaignStatusCancelled)
}

// Delete elimina una campaña (solo draft; el resto se cancela para conservar histórico).
func (uc *CampaignUseCase) Delete(actor dto.Actor, id string) error {
	campaign, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return domain.ErrNotFound
	}
	if campaign.Status != entity.CampaignStatusDraft {
		return domain.ErrConflict
	}
	return uc.repo.Delete(actor.CompanyID, id)
}

func (uc *CampaignUseCase) transition(actor dto.Actor, id string, allowed func(*entity.Campaign) bool, next string) (*dto.CampaignResponse, error) {
	campaign, err := uc.repo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, nil
	}
	if !allowed(campaign) {
		return nil, domain.ErrConflict
	}
	campaign.Status = next
	campaign.UpdatedAt = time.Now()
	if err := uc.repo.Update(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	if c == nil {
		return nil
	}
	return &dto.CampaignResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		DiscountPct: c.DiscountPct,
		Budget:      c.Budget,
		StartsAt:    c.StartsAt,
		EndsAt:      c.EndsAt,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
