// Package fieldmarketing contiene los casos de uso del módulo de marketing de
// campo: agenda de visitas a clientes con check-in/check-out del agente.
package fieldmarketing

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// VisitUseCase ciclo de vida de una visita:
// scheduled -> in_progress (check-in) -> completed (check-out), o cancelación.
// Un field_agent solo ve y opera sus propias visitas.
type VisitUseCase struct {
	visitRepo    repository.VisitRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(visitRepo repository.VisitRepository, customerRepo repository.CustomerRepository, userRepo repository.UserRepository) *VisitUseCase {
	return &VisitUseCase{visitRepo: visitRepo, customerRepo: customerRepo, userRepo: userRepo}
}

// Schedule agenda una visita. Si no viene UserID la visita se asigna al actor;
// asignar a otro agente requiere company_admin o area_manager.
func (uc *VisitUseCase) Schedule(actor dto.Actor, in dto.ScheduleVisitRequest) (*dto.VisitResponse, error) {
	customer, err := uc.customerRepo.GetByCompanyAndID(actor.CompanyID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound // cliente de otra empresa o inexistente
	}

	agentID := in.UserID
	if agentID == "" {
		agentID = actor.UserID
	}
	if agentID != actor.UserID {
		if actor.Role == entity.RoleFieldAgent {
			return nil, domain.ErrForbidden
		}
		agent, err := uc.userRepo.GetByCompanyAndID(actor.CompanyID, agentID)
		if err != nil {
			return nil, err
		}
		if agent == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	visit := &entity.Visit{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		CustomerID:  in.CustomerID,
		UserID:      agentID,
		TerritoryID: customer.TerritoryID, // territorio del cliente al momento de agendar
		ScheduledAt: in.ScheduledAt,
		Status:      entity.VisitStatusScheduled,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.visitRepo.Create(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// GetByID obtiene una visita. Un field_agent solo puede ver las suyas.
func (uc *VisitUseCase) GetByID(actor dto.Actor, id string) (*dto.VisitResponse, error) {
	visit, err := uc.scopedVisit(actor, id)
	if err != nil || visit == nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// List lista visitas. A un field_agent se le fuerza el filtro de agente.
func (uc *VisitUseCase) List(actor dto.Actor, f repository.VisitFilter) (*dto.VisitListResponse, error) {
	if actor.Role == entity.RoleFieldAgent {
		f.UserID = actor.UserID
	}
	list, err := uc.visitRepo.ListByCompany(actor.CompanyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VisitResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVisitResponse(v))
	}
	return &dto.VisitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// CheckIn marca el inicio de la visita (scheduled -> in_progress).
// Solo el agente asignado hace check-in.
func (uc *VisitUseCase) CheckIn(actor dto.Actor, id string) (*dto.VisitResponse, error) {
	visit, err := uc.scopedVisit(actor, id)
	if err != nil || visit == nil {
		return nil, err
	}
	if visit.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	if !visit.CanCheckIn() {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	visit.Status = entity.VisitStatusInProgress
	visit.CheckInAt = &now
	visit.UpdatedAt = now
	if err := uc.visitRepo.Update(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// CheckOut cierra la visita con su resultado (in_progress -> completed).
func (uc *VisitUseCase) CheckOut(actor dto.Actor, id string, in dto.CheckOutVisitRequest) (*dto.VisitResponse, error) {
	if !entity.KnownVisitOutcome(in.Outcome) {
		return nil, domain.ErrInvalidInput
	}
	visit, err := uc.scopedVisit(actor, id)
	if err != nil || visit == nil {
		return nil, err
	}
	if visit.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	if !visit.CanCheckOut() {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	visit.Status = entity.VisitStatusCompleted
	visit.CheckOutAt = &now
	visit.Outcome = in.Outcome
	if in.Notes != "" {
		visit.Notes = in.Notes
	}
	visit.UpdatedAt = now
	if err := uc.visitRepo.Update(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// Cancel cancela una visita agendada. El agente asignado o un rol de
// supervisión (company_admin, area_manager) pueden cancelarla.
func (uc *VisitUseCase) Cancel(actor dto.Actor, id string) (*dto.VisitResponse, error) {
	visit, err := uc.scopedVisit(actor, id)
	if err != nil || visit == nil {
		return nil, err
	}
	if visit.UserID != actor.UserID && actor.Role == entity.RoleFieldAgent {
		return nil, domain.ErrForbidden
	}
	if !visit.CanCancel() {
		return nil, domain.ErrConflict
	}
	visit.Status = entity.VisitStatusCancelled
	visit.UpdatedAt = time.Now()
	if err := uc.visitRepo.Update(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// scopedVisit trae la visita aplicando tenant y visibilidad del field_agent.
func (uc *VisitUseCase) scopedVisit(actor dto.Actor, id string) (*entity.Visit, error) {
	visit, err := uc.visitRepo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, nil
	}
	if actor.Role == entity.RoleFieldAgent && visit.UserID != actor.UserID {
		// Para el agente una visita ajena no existe
		return nil, nil
	}
	return visit, nil
}

func toVisitResponse(v *entity.Visit) *dto.VisitResponse {
	if v == nil {
		return nil
	}
	return &dto.VisitResponse{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		CustomerID:  v.CustomerID,
		UserID:      v.UserID,
		TerritoryID: v.TerritoryID,
		ScheduledAt: v.ScheduledAt,
		CheckInAt:   v.CheckInAt,
		CheckOutAt:  v.CheckOutAt,
		Status:      v.Status,
		Outcome:     v.Outcome,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
