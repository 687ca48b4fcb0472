package entity

import "time"

// Customer representa un punto de venta o cliente visitado por los agentes.
type Customer struct {
	ID          string
	CompanyID   string
	Name        string
	TaxID       string // NIT o Cédula (único por empresa)
	Email       string
	Phone       string
	Address     string
	City        string
	TerritoryID *string // nil = sin territorio asignado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
