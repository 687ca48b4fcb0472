package repository

import (
	"time"

	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

// VisitFilter filtros opcionales para listados de visitas.
type VisitFilter struct {
	UserID     string // agente; vacío = todos
	CustomerID string
	Status     string
	From       *time.Time // sobre scheduled_at
	To         *time.Time
	Limit      int
	Offset     int
}

// VisitRepository define el puerto de persistencia para Visit.
type VisitRepository interface {
	Create(visit *entity.Visit) error
	GetByCompanyAndID(companyID, id string) (*entity.Visit, error)
	ListByCompany(companyID string, f VisitFilter) ([]*entity.Visit, error)
	Update(visit *entity.Visit) error
}
