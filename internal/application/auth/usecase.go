package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
	"github.com/jhoicas/fieldforce-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado en cualquier
// empresa: el email es único global porque es la llave de login.
// El rol super_admin nunca se asigna por registro público.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleFieldAgent
	}
	if role == entity.RoleSuperAdmin || !entity.KnownRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound // empresa no existe
	}
	if !company.IsActive() {
		return nil, domain.ErrCompanyInactive
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
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

// Login verifica email/password, genera JWT y retorna token + usuario.
// Usuario inactivo o empresa suspendida -> ErrForbidden / ErrCompanyInactive.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsActive() {
		return nil, domain.ErrCompanyInactive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
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
