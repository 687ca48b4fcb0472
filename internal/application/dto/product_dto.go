package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=64"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Unit        string          `json:"unit,omitempty"`
}

// UpdateProductRequest entrada parcial (campos nil no cambian).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
