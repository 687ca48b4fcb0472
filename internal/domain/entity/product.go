package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de venta en campo.
// El precio vigente vive aquí; los pedidos capturan el precio al momento de crearse.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal // precio de lista
	Unit        string          // unidad de venta (ej. "caja", "unidad")
	Active      bool            // productos inactivos no se pueden pedir
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
