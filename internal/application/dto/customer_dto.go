package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	TaxID       string  `json:"tax_id" validate:"required"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string  `json:"phone,omitempty"`
	Address     string  `json:"address,omitempty"`
	City        string  `json:"city,omitempty"`
	TerritoryID *string `json:"territory_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateCustomerRequest entrada parcial (campos nil no cambian).
type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	TerritoryID *string `json:"territory_id,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	TerritoryID *string   `json:"territory_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
