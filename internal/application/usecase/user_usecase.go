package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// UserUseCase administración de usuarios dentro de la empresa del actor.
// El company_id sale siempre del actor: un company_admin no puede crear ni
// tocar usuarios de otra empresa.
type UserUseCase struct {
	userRepo      repository.UserRepository
	territoryRepo repository.TerritoryRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, territoryRepo repository.TerritoryRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, territoryRepo: territoryRepo}
}

// Create crea un usuario en la empresa del actor. No se crean super_admin por esta vía.
func (uc *UserUseCase) Create(actor dto.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Role == entity.RoleSuperAdmin || !entity.KnownRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
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
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    actor.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Status:       "active",
		TerritoryID:  in.TerritoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario de la empresa del actor.
func (uc *UserUseCase) GetByID(actor dto.Actor, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario de la empresa del actor (campos nil no cambian).
func (uc *UserUseCase) Update(actor dto.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Role != nil {
		if *in.Role == entity.RoleSuperAdmin || !entity.KnownRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.TerritoryID != nil {
		territory, err := uc.territoryRepo.GetByCompanyAndID(actor.CompanyID, *in.TerritoryID)
		if err != nil {
			return nil, err
		}
		if territory == nil {
			return nil, domain.ErrNotFound
		}
		user.TerritoryID = in.TerritoryID
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista usuarios de la empresa del actor con filtros opcionales.
func (uc *UserUseCase) List(actor dto.Actor, f repository.UserFilter) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.ListByCompany(actor.CompanyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Delete elimina un usuario de la empresa del actor. Un usuario no se borra a sí mismo.
func (uc *UserUseCase) Delete(actor dto.Actor, id string) error {
	if actor.UserID == id {
		return domain.ErrConflict
	}
	return uc.userRepo.Delete(actor.CompanyID, id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Status:      u.Status,
		TerritoryID: u.TerritoryID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
