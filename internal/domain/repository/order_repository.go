package repository

import (
	"time"

	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

// OrderFilter filtros opcionales para listados de pedidos.
type OrderFilter struct {
	CustomerID string
	UserID     string // agente
	Status     string
	From       *time.Time // sobre created_at
	To         *time.Time
	Limit      int
	Offset     int
}

// OrderRepository define el puerto de persistencia para Order y sus items.
type OrderRepository interface {
	// Create persiste el pedido con sus items. Debe invocarse dentro de una
	// transacción (ver fieldsales.TxRunner) junto con NextNumber.
	Create(order *entity.Order) error
	// NextNumber reserva el siguiente consecutivo de pedido de la empresa.
	NextNumber(companyID string) (int64, error)
	GetByCompanyAndID(companyID, id string) (*entity.Order, error)
	ListByCompany(companyID string, f OrderFilter) ([]*entity.Order, error)
	// UpdateStatus cambia el estado; la validación de la transición es del caso de uso.
	UpdateStatus(companyID, id, status string, updatedAt time.Time) error
}
