package dto

import "time"

// CreateTerritoryRequest body para POST /api/territories.
type CreateTerritoryRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Region string `json:"region,omitempty"`
}

// UpdateTerritoryRequest entrada parcial.
type UpdateTerritoryRequest struct {
	Name   *string `json:"name,omitempty"`
	Region *string `json:"region,omitempty"`
}

// TerritoryResponse territorio en respuestas.
type TerritoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TerritoryListResponse listado paginado.
type TerritoryListResponse struct {
	Items []TerritoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
