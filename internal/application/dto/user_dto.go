package dto

import "time"

// RegisterRequest entrada para registro (auth): email, password, company_id.
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	CompanyID   string  `json:"company_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"omitempty,max=200"`
	Role        string  `json:"role" validate:"omitempty,oneof=company_admin area_manager field_agent"`
	TerritoryID *string `json:"territory_id,omitempty" validate:"omitempty,uuid"`
}

// CreateUserRequest entrada para crear un usuario dentro de la empresa del admin
// (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Role        string  `json:"role" validate:"required,oneof=company_admin area_manager field_agent"`
	TerritoryID *string `json:"territory_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateUserRequest entrada parcial para actualizar un usuario (campos nil no cambian).
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	Status      *string `json:"status,omitempty"`
	TerritoryID *string `json:"territory_id,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	TerritoryID *string   `json:"territory_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login: token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
