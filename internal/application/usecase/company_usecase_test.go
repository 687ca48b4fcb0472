package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	modules   []*entity.CompanyModule
	taxErr    error // fuerza fallo en GetByTaxID
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	if f.taxErr != nil {
		return nil, f.taxErr
	}
	for _, c := range f.companies {
		if c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error { f.companies[c.ID] = c; return nil }

func (f *fakeCompanyRepo) List(_, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Delete(id string) error { delete(f.companies, id); return nil }

func (f *fakeCompanyRepo) ListModules(companyID string) ([]*entity.CompanyModule, error) {
	var out []*entity.CompanyModule
	for _, m := range f.modules {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) UpsertModule(m *entity.CompanyModule) error {
	f.modules = append(f.modules, m)
	return nil
}

func (f *fakeCompanyRepo) HasActiveModule(context.Context, string, string) (bool, error) {
	return true, nil
}

// ─── Create ──────────────────────────────────────────────────────────────────

func TestCreateCompany_ActivaModulosBase(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := NewCompanyUseCase(repo)

	resp, err := uc.Create(dto.CreateCompanyRequest{Name: "Distribuidora Norte", TaxID: "900111222"})

	require.NoError(t, err)
	assert.Equal(t, entity.CompanyStatusActive, resp.Status)
	assert.Equal(t, entity.PlanBasic, resp.Plan, "sin plan explícito aplica basic")

	mods, err := repo.ListModules(resp.ID)
	require.NoError(t, err)
	require.Len(t, mods, 2)
	names := []string{mods[0].ModuleName, mods[1].ModuleName}
	assert.Contains(t, names, entity.ModuleFieldSales)
	assert.Contains(t, names, entity.ModuleFieldMarketing)
}

func TestCreateCompany_TaxIDDuplicado(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := NewCompanyUseCase(repo)

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Primera", TaxID: "900111222"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Segunda", TaxID: "900111222"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Un fallo de infraestructura en la verificación de duplicados no debe leerse
// como "no existe": el error sube tal cual.
func TestCreateCompany_FalloDeRepositorioSePropaga(t *testing.T) {
	repo := newFakeCompanyRepo()
	repo.taxErr = errors.New("conexión perdida")
	uc := NewCompanyUseCase(repo)

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Distribuidora Norte", TaxID: "900111222"})
	assert.ErrorContains(t, err, "conexión perdida")
}
