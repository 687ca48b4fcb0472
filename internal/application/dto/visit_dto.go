package dto

import "time"

// ScheduleVisitRequest body para POST /api/visits.
// UserID es opcional: si va vacío la visita se asigna al usuario autenticado.
type ScheduleVisitRequest struct {
	CustomerID  string    `json:"customer_id" validate:"required,uuid"`
	UserID      string    `json:"user_id,omitempty" validate:"omitempty,uuid"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes,omitempty"`
}

// CheckOutVisitRequest body para POST /api/visits/:id/check-out.
type CheckOutVisitRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=ordered no_order not_available other"`
	Notes   string `json:"notes,omitempty"`
}

// VisitResponse visita en respuestas.
type VisitResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	CustomerID  string     `json:"customer_id"`
	UserID      string     `json:"user_id"`
	TerritoryID *string    `json:"territory_id,omitempty"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	CheckInAt   *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt  *time.Time `json:"check_out_at,omitempty"`
	Status      string     `json:"status"`
	Outcome     string     `json:"outcome,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// VisitListResponse listado paginado de visitas.
type VisitListResponse struct {
	Items []VisitResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
