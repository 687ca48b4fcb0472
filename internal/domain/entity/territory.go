package entity

import "time"

// Territory representa un área geográfica/comercial de la empresa.
// Agrupa clientes y agentes de campo para asignación y reportes.
type Territory struct {
	ID        string
	CompanyID string
	Name      string
	Region    string // agrupador superior libre (ej. "norte", "antioquia")
	CreatedAt time.Time
	UpdatedAt time.Time
}
