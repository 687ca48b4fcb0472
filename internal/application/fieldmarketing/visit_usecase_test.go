package fieldmarketing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

const (
	testCompanyID = "11111111-1111-1111-1111-111111111111"
	otherCompany  = "22222222-2222-2222-2222-222222222222"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

type fakeVisitRepo struct {
	visits map[string]*entity.Visit
}

func (f *fakeVisitRepo) Create(v *entity.Visit) error {
	cp := *v
	f.visits[v.ID] = &cp
	return nil
}

func (f *fakeVisitRepo) GetByCompanyAndID(companyID, id string) (*entity.Visit, error) {
	v, ok := f.visits[id]
	if !ok || v.CompanyID != companyID {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVisitRepo) ListByCompany(companyID string, fl repository.VisitFilter) ([]*entity.Visit, error) {
	var out []*entity.Visit
	for _, v := range f.visits {
		if v.CompanyID != companyID {
			continue
		}
		if fl.UserID != "" && v.UserID != fl.UserID {
			continue
		}
		if fl.Status != "" && v.Status != fl.Status {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeVisitRepo) Update(v *entity.Visit) error {
	cp := *v
	f.visits[v.ID] = &cp
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByCompanyAndID(companyID, id string) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ListByCompany(companyID string, fl repository.CustomerFilter) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(c *entity.Customer) error   { return nil }
func (f *fakeCustomerRepo) Delete(companyID, id string) error { return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (f *fakeUserRepo) GetByCompanyAndID(companyID, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) ListByCompany(companyID string, fl repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error       { return nil }
func (f *fakeUserRepo) Delete(companyID, id string) error { return nil }

// ─── Helpers ─────────────────────────────────────────────────────────────────

type visitFixture struct {
	uc        *VisitUseCase
	visits    *fakeVisitRepo
	customers *fakeCustomerRepo
	users     *fakeUserRepo
}

func newVisitFixture() *visitFixture {
	f := &visitFixture{
		visits:    &fakeVisitRepo{visits: make(map[string]*entity.Visit)},
		customers: &fakeCustomerRepo{customers: make(map[string]*entity.Customer)},
		users:     &fakeUserRepo{users: make(map[string]*entity.User)},
	}
	f.uc = NewVisitUseCase(f.visits, f.customers, f.users)
	return f
}

func (f *visitFixture) seedCustomer(companyID string) *entity.Customer {
	territoryID := uuid.New().String()
	c := &entity.Customer{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        "Supermercado Central",
		TerritoryID: &territoryID,
	}
	f.customers.customers[c.ID] = c
	return c
}

func (f *visitFixture) seedAgent(companyID string) *entity.User {
	u := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Role:      entity.RoleFieldAgent,
		Status:    "active",
	}
	f.users.users[u.ID] = u
	return u
}

func agentActor() dto.Actor {
	return dto.Actor{UserID: uuid.New().String(), CompanyID: testCompanyID, Role: entity.RoleFieldAgent}
}

func managerActor() dto.Actor {
	return dto.Actor{UserID: uuid.New().String(), CompanyID: testCompanyID, Role: entity.RoleAreaManager}
}

// ─── Schedule ────────────────────────────────────────────────────────────────

func TestScheduleVisit_AsignaAlActorPorDefecto(t *testing.T) {
	f := newVisitFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)

	resp, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, actor.UserID, resp.UserID)
	assert.Equal(t, entity.VisitStatusScheduled, resp.Status)
	// Hereda el territorio del cliente
	require.NotNil(t, resp.TerritoryID)
	assert.Equal(t, *customer.TerritoryID, *resp.TerritoryID)
}

func TestScheduleVisit_AgenteNoAsignaAOtro(t *testing.T) {
	f := newVisitFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	other := f.seedAgent(testCompanyID)

	_, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		UserID:      other.ID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestScheduleVisit_ManagerAsignaAgente(t *testing.T) {
	f := newVisitFixture()
	manager := managerActor()
	customer := f.seedCustomer(testCompanyID)
	agent := f.seedAgent(testCompanyID)

	resp, err := f.uc.Schedule(manager, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		UserID:      agent.ID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, agent.ID, resp.UserID)
}

func TestScheduleVisit_ClienteDeOtraEmpresaNoExiste(t *testing.T) {
	f := newVisitFixture()
	foreign := f.seedCustomer(otherCompany)

	_, err := f.uc.Schedule(agentActor(), dto.ScheduleVisitRequest{
		CustomerID:  foreign.ID,
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Check-in / Check-out ────────────────────────────────────────────────────

func TestVisit_CicloCompletoCheckInCheckOut(t *testing.T) {
	f := newVisitFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)

	created, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	inProgress, err := f.uc.CheckIn(actor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusInProgress, inProgress.Status)
	require.NotNil(t, inProgress.CheckInAt)

	done, err := f.uc.CheckOut(actor, created.ID, dto.CheckOutVisitRequest{
		Outcome: entity.VisitOutcomeOrdered,
		Notes:   "Pedido levantado en sitio",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCompleted, done.Status)
	assert.Equal(t, entity.VisitOutcomeOrdered, done.Outcome)
	require.NotNil(t, done.CheckOutAt)
}

func TestVisit_CheckInDobleFalla(t *testing.T) {
	f := newVisitFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)

	created, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = f.uc.CheckIn(actor, created.ID)
	require.NoError(t, err)
	_, err = f.uc.CheckIn(actor, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVisit_CheckOutSinCheckInFalla(t *testing.T) {
	f := newVisitFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)

	created, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = f.uc.CheckOut(actor, created.ID, dto.CheckOutVisitRequest{Outcome: entity.VisitOutcomeNoOrder})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVisit_CheckOutConResultadoInvalidoFalla(t *testing.T) {
	f := newVisitFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)

	created, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = f.uc.CheckIn(actor, created.ID)
	require.NoError(t, err)

	_, err = f.uc.CheckOut(actor, created.ID, dto.CheckOutVisitRequest{Outcome: "vendido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVisit_SoloElAgenteAsignadoHaceCheckIn(t *testing.T) {
	f := newVisitFixture()
	manager := managerActor()
	customer := f.seedCustomer(testCompanyID)
	agent := f.seedAgent(testCompanyID)

	created, err := f.uc.Schedule(manager, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		UserID:      agent.ID,
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	// El manager ve la visita pero no puede hacer check-in por el agente
	_, err = f.uc.CheckIn(manager, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ─── Cancel y visibilidad ────────────────────────────────────────────────────

func TestVisit_CancelarAgendada(t *testing.T) {
	f := newVisitFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)

	created, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	cancelled, err := f.uc.Cancel(actor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCancelled, cancelled.Status)

	// Cancelada ya no admite check-in
	_, err = f.uc.CheckIn(actor, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVisit_AgenteNoCancelaVisitasAjenas(t *testing.T) {
	f := newVisitFixture()
	manager := managerActor()
	customer := f.seedCustomer(testCompanyID)
	agent := f.seedAgent(testCompanyID)

	created, err := f.uc.Schedule(manager, dto.ScheduleVisitRequest{
		CustomerID:  customer.ID,
		UserID:      agent.ID,
		ScheduledAt: time.Now(),
	})
	require.NoError(t, err)

	// Para otro agente la visita no existe
	got, err := f.uc.GetByID(agentActor(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// El manager sí puede cancelarla
	cancelled, err := f.uc.Cancel(manager, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCancelled, cancelled.Status)
}

func TestListVisits_AgenteSoloVeLasSuyas(t *testing.T) {
	f := newVisitFixture()
	a1 := agentActor()
	a2 := agentActor()
	customer := f.seedCustomer(testCompanyID)

	for _, actor := range []dto.Actor{a1, a2, a2} {
		_, err := f.uc.Schedule(actor, dto.ScheduleVisitRequest{
			CustomerID:  customer.ID,
			ScheduledAt: time.Now(),
		})
		require.NoError(t, err)
	}

	list, err := f.uc.List(a2, repository.VisitFilter{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	list, err = f.uc.List(managerActor(), repository.VisitFilter{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 3)
}
