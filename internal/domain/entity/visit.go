package entity

import "time"

// Estados de una visita. Transiciones válidas:
// scheduled -> in_progress (check-in) -> completed (check-out)
// scheduled -> cancelled
const (
	VisitStatusScheduled  = "scheduled"
	VisitStatusInProgress = "in_progress"
	VisitStatusCompleted  = "completed"
	VisitStatusCancelled  = "cancelled"
)

// Resultados posibles de una visita (se fija en el check-out).
const (
	VisitOutcomeOrdered      = "ordered"
	VisitOutcomeNoOrder      = "no_order"
	VisitOutcomeNotAvailable = "not_available"
	VisitOutcomeOther        = "other"
)

// KnownVisitOutcome valida el resultado reportado por el agente.
func KnownVisitOutcome(outcome string) bool {
	switch outcome {
	case VisitOutcomeOrdered, VisitOutcomeNoOrder, VisitOutcomeNotAvailable, VisitOutcomeOther:
		return true
	}
	return false
}

// Visit representa una visita de un agente de campo a un cliente.
type Visit struct {
	ID          string
	CompanyID   string
	CustomerID  string
	UserID      string  // agente asignado
	TerritoryID *string // territorio del cliente al momento de agendar
	ScheduledAt time.Time
	CheckInAt   *time.Time
	CheckOutAt  *time.Time
	Status      string // ver constantes VisitStatus*
	Outcome     string // ver constantes VisitOutcome*; vacío hasta el check-out
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanCheckIn indica si la visita admite check-in.
func (v *Visit) CanCheckIn() bool { return v.Status == VisitStatusScheduled }

// CanCheckOut indica si la visita admite check-out.
func (v *Visit) CanCheckOut() bool { return v.Status == VisitStatusInProgress }

// CanCancel indica si la visita admite cancelación (solo agendadas).
func (v *Visit) CanCancel() bool { return v.Status == VisitStatusScheduled }
