package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

const (
	userTestCompanyID = "11111111-1111-1111-1111-111111111111"
	userOtherCompany  = "22222222-2222-2222-2222-222222222222"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users   map[string]*entity.User
	findErr error // fuerza fallo en FindByEmail
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }

func (f *fakeUserRepo) GetByCompanyAndID(companyID, id string) (*entity.User, error) {
	u := f.users[id]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByCompany(companyID string, _ repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) Delete(companyID, id string) error {
	if u := f.users[id]; u != nil && u.CompanyID == companyID {
		delete(f.users, id)
	}
	return nil
}

type fakeTerritoryRepo struct {
	territories map[string]*entity.Territory
}

func (f *fakeTerritoryRepo) Create(t *entity.Territory) error { f.territories[t.ID] = t; return nil }
func (f *fakeTerritoryRepo) GetByCompanyAndID(companyID, id string) (*entity.Territory, error) {
	t := f.territories[id]
	if t == nil || t.CompanyID != companyID {
		return nil, nil
	}
	return t, nil
}
func (f *fakeTerritoryRepo) ListByCompany(string, int, int) ([]*entity.Territory, error) {
	return nil, nil
}
func (f *fakeTerritoryRepo) Update(*entity.Territory) error { return nil }
func (f *fakeTerritoryRepo) Delete(string, string) error    { return nil }

// ─── Helpers ─────────────────────────────────────────────────────────────────

func userFixture() (*UserUseCase, *fakeUserRepo, *fakeTerritoryRepo) {
	users := newFakeUserRepo()
	territories := &fakeTerritoryRepo{territories: make(map[string]*entity.Territory)}
	return NewUserUseCase(users, territories), users, territories
}

func adminActor() dto.Actor {
	return dto.Actor{
		UserID:    "33333333-3333-3333-3333-333333333333",
		CompanyID: userTestCompanyID,
		Role:      entity.RoleCompanyAdmin,
	}
}

func agentRequest(email string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    email,
		Password: "clave-segura",
		Name:     "Agente de Campo",
		Role:     entity.RoleFieldAgent,
	}
}

// ─── Create ──────────────────────────────────────────────────────────────────

func TestCreateUser_PerteneceALaEmpresaDelActor(t *testing.T) {
	uc, _, _ := userFixture()

	resp, err := uc.Create(adminActor(), agentRequest("agente@campo.co"))

	require.NoError(t, err)
	assert.Equal(t, userTestCompanyID, resp.CompanyID)
	assert.Equal(t, "active", resp.Status)
}

func TestCreateUser_NoSeCreaSuperAdmin(t *testing.T) {
	uc, _, _ := userFixture()

	in := agentRequest("root@campo.co")
	in.Role = entity.RoleSuperAdmin

	_, err := uc.Create(adminActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El email es la llave global de login: ocupado en cualquier empresa, ocupado
// para todas.
func TestCreateUser_EmailOcupadoEnOtraEmpresa(t *testing.T) {
	uc, users, _ := userFixture()
	users.users["x"] = &entity.User{ID: "x", CompanyID: userOtherCompany, Email: "agente@campo.co"}

	_, err := uc.Create(adminActor(), agentRequest("agente@campo.co"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_FalloDeRepositorioSePropaga(t *testing.T) {
	uc, users, _ := userFixture()
	users.findErr = errors.New("conexión perdida")

	_, err := uc.Create(adminActor(), agentRequest("agente@campo.co"))
	assert.ErrorContains(t, err, "conexión perdida")
}

func TestCreateUser_TerritorioDeOtraEmpresaNoExiste(t *testing.T) {
	uc, _, territories := userFixture()
	foreignID := "44444444-4444-4444-4444-444444444444"
	territories.territories[foreignID] = &entity.Territory{ID: foreignID, CompanyID: userOtherCompany}

	in := agentRequest("agente@campo.co")
	in.TerritoryID = &foreignID

	_, err := uc.Create(adminActor(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Delete ──────────────────────────────────────────────────────────────────

func TestDeleteUser_NoSeBorraASiMismo(t *testing.T) {
	uc, _, _ := userFixture()
	actor := adminActor()

	err := uc.Delete(actor, actor.UserID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
