package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas (tenants).
// Las operaciones de alcance global (list, create, delete, plan/status) se
// restringen a super_admin en el router; aquí solo se valida el cruce de tenant.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa nueva con los módulos base activos
// (field_sales y field_marketing; el resto se contrata por separado).
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByTaxID(in.TaxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	plan := in.Plan
	if plan == "" {
		plan = entity.PlanBasic
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    entity.CompanyStatusActive,
		Plan:      plan,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	for _, mod := range []string{entity.ModuleFieldSales, entity.ModuleFieldMarketing} {
		m := &entity.CompanyModule{
			ID:          uuid.New().String(),
			CompanyID:   company.ID,
			ModuleName:  mod,
			IsActive:    true,
			ActivatedAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.UpsertModule(m); err != nil {
			return nil, err
		}
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa. Un actor no super_admin solo puede ver la suya.
func (uc *CompanyUseCase) GetByID(actor dto.Actor, id string) (*dto.CompanyResponse, error) {
	if !actor.IsSuperAdmin() && actor.CompanyID != id {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Update actualiza una empresa. Status y Plan solo los cambia super_admin.
func (uc *CompanyUseCase) Update(actor dto.Actor, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !actor.IsSuperAdmin() && actor.CompanyID != id {
		return nil, domain.ErrForbidden
	}
	if (in.Status != nil || in.Plan != nil) && !actor.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	if in.Plan != nil {
		company.Plan = *in.Plan
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación (solo super_admin, vía RequireRole).
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una empresa (solo super_admin).
func (uc *CompanyUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListModules devuelve los módulos de una empresa.
func (uc *CompanyUseCase) ListModules(actor dto.Actor, companyID string) ([]dto.ModuleResponse, error) {
	if !actor.IsSuperAdmin() && actor.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	modules, err := uc.repo.ListModules(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, dto.ModuleResponse{
			ModuleName:  m.ModuleName,
			IsActive:    m.IsActive,
			ActivatedAt: m.ActivatedAt,
			ExpiresAt:   m.ExpiresAt,
		})
	}
	return out, nil
}

// SetModule activa o desactiva un módulo SaaS (solo super_admin, vía RequireRole).
func (uc *CompanyUseCase) SetModule(companyID string, in dto.ActivateModuleRequest) error {
	if !entity.KnownModule(in.ModuleName) {
		return domain.ErrInvalidInput
	}
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	m := &entity.CompanyModule{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ModuleName:  in.ModuleName,
		IsActive:    in.IsActive,
		ActivatedAt: now,
		ExpiresAt:   in.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return uc.repo.UpsertModule(m)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Status:    c.Status,
		Plan:      c.Plan,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
