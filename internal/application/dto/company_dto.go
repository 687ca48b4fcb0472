package dto

import "time"

// CreateCompanyRequest body para POST /api/companies (solo super_admin).
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Plan    string `json:"plan,omitempty" validate:"omitempty,oneof=basic pro enterprise"`
}

// UpdateCompanyRequest entrada parcial para actualizar una empresa.
type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Status  *string `json:"status,omitempty"` // solo super_admin
	Plan    *string `json:"plan,omitempty"`   // solo super_admin
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Status    string    `json:"status"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ActivateModuleRequest body para activar/desactivar un módulo SaaS.
type ActivateModuleRequest struct {
	ModuleName string     `json:"module_name" validate:"required,oneof=field_sales field_marketing promotions reporting"`
	IsActive   bool       `json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"` // nil = sin vencimiento
}

// ModuleResponse activación de módulo en respuestas.
type ModuleResponse struct {
	ModuleName  string     `json:"module_name"`
	IsActive    bool       `json:"is_active"`
	ActivatedAt time.Time  `json:"activated_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
