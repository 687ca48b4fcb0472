package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

const (
	pdfCompanyID  = "11111111-1111-1111-1111-111111111111"
	pdfOrderID    = "22222222-2222-2222-2222-222222222222"
	pdfCustomerID = "33333333-3333-3333-3333-333333333333"
	pdfAgentID    = "44444444-4444-4444-4444-444444444444"
)

// ─── Fakes ───────────────────────────────────────────────────────────────────

type fakePDFOrderRepo struct {
	order *entity.Order
}

func (f *fakePDFOrderRepo) Create(*entity.Order) error       { return nil }
func (f *fakePDFOrderRepo) NextNumber(string) (int64, error) { return 0, nil }
func (f *fakePDFOrderRepo) GetByCompanyAndID(companyID, id string) (*entity.Order, error) {
	if f.order == nil || f.order.CompanyID != companyID || f.order.ID != id {
		return nil, nil
	}
	return f.order, nil
}
func (f *fakePDFOrderRepo) ListByCompany(string, repository.OrderFilter) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakePDFOrderRepo) UpdateStatus(string, string, string, time.Time) error { return nil }

type fakePDFCompanyRepo struct {
	company *entity.Company
	err     error
}

func (f *fakePDFCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakePDFCompanyRepo) GetByID(string) (*entity.Company, error) {
	return f.company, f.err
}
func (f *fakePDFCompanyRepo) GetByTaxID(string) (*entity.Company, error) { return nil, nil }
func (f *fakePDFCompanyRepo) Update(*entity.Company) error               { return nil }
func (f *fakePDFCompanyRepo) List(int, int) ([]*entity.Company, error)   { return nil, nil }
func (f *fakePDFCompanyRepo) Delete(string) error                        { return nil }
func (f *fakePDFCompanyRepo) ListModules(string) ([]*entity.CompanyModule, error) {
	return nil, nil
}
func (f *fakePDFCompanyRepo) UpsertModule(*entity.CompanyModule) error { return nil }
func (f *fakePDFCompanyRepo) HasActiveModule(context.Context, string, string) (bool, error) {
	return true, nil
}

type fakePDFCustomerRepo struct {
	customer *entity.Customer
}

func (f *fakePDFCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakePDFCustomerRepo) GetByCompanyAndID(string, string) (*entity.Customer, error) {
	return f.customer, nil
}
func (f *fakePDFCustomerRepo) GetByCompanyAndTaxID(string, string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakePDFCustomerRepo) ListByCompany(string, repository.CustomerFilter) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakePDFCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakePDFCustomerRepo) Delete(string, string) error   { return nil }

type fakePDFProductRepo struct{}

func (f *fakePDFProductRepo) Create(*entity.Product) error { return nil }
func (f *fakePDFProductRepo) GetByCompanyAndID(string, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakePDFProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakePDFProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakePDFProductRepo) Update(*entity.Product) error { return nil }
func (f *fakePDFProductRepo) Delete(string, string) error  { return nil }

type fakePDFGenerator struct{}

func (f *fakePDFGenerator) GenerateOrderPDF(_ context.Context, _ *entity.Order, _ *entity.Company, _ *entity.Customer, _ []OrderLineForPDF) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func pdfOrder(status string) *entity.Order {
	return &entity.Order{
		ID:         pdfOrderID,
		CompanyID:  pdfCompanyID,
		CustomerID: pdfCustomerID,
		UserID:     pdfAgentID,
		Number:     "ORD-7",
		Status:     status,
		Total:      decimal.NewFromInt(100),
	}
}

func pdfFixture(order *entity.Order, companies *fakePDFCompanyRepo) *OrderPDFUseCase {
	return NewOrderPDFUseCase(
		&fakePDFOrderRepo{order: order},
		companies,
		&fakePDFCustomerRepo{customer: &entity.Customer{ID: pdfCustomerID, CompanyID: pdfCompanyID, Name: "Tienda La Esquina"}},
		&fakePDFProductRepo{},
		&fakePDFGenerator{},
	)
}

func pdfActor(role, userID string) dto.Actor {
	return dto.Actor{UserID: userID, CompanyID: pdfCompanyID, Role: role}
}

// ─── DownloadOrderPDF ────────────────────────────────────────────────────────

func TestDownloadOrderPDF_PedidoEntregado(t *testing.T) {
	uc := pdfFixture(pdfOrder(entity.OrderStatusDelivered), &fakePDFCompanyRepo{
		company: &entity.Company{ID: pdfCompanyID, Name: "Distribuidora La Sabana"},
	})

	pdfBytes, filename, err := uc.DownloadOrderPDF(context.Background(), pdfActor(entity.RoleCompanyAdmin, "x"), pdfOrderID)

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "pedido_ORD-7.pdf", filename)
}

func TestDownloadOrderPDF_PedidoCanceladoSinComprobante(t *testing.T) {
	uc := pdfFixture(pdfOrder(entity.OrderStatusCancelled), &fakePDFCompanyRepo{
		company: &entity.Company{ID: pdfCompanyID},
	})

	_, _, err := uc.DownloadOrderPDF(context.Background(), pdfActor(entity.RoleCompanyAdmin, "x"), pdfOrderID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDownloadOrderPDF_AgenteSoloSusPedidos(t *testing.T) {
	uc := pdfFixture(pdfOrder(entity.OrderStatusPlaced), &fakePDFCompanyRepo{
		company: &entity.Company{ID: pdfCompanyID},
	})

	_, _, err := uc.DownloadOrderPDF(context.Background(), pdfActor(entity.RoleFieldAgent, "otro-agente"), pdfOrderID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Empresa ausente: el error debe ser explícito, no un wrap de error nulo.
func TestDownloadOrderPDF_EmpresaAusenteDaErrorClaro(t *testing.T) {
	uc := pdfFixture(pdfOrder(entity.OrderStatusPlaced), &fakePDFCompanyRepo{company: nil})

	_, _, err := uc.DownloadOrderPDF(context.Background(), pdfActor(entity.RoleCompanyAdmin, "x"), pdfOrderID)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "%!w", "no debe envolverse un error nulo")
	assert.Contains(t, err.Error(), "no existe")
}

func TestDownloadOrderPDF_FalloDeRepositorioSePropaga(t *testing.T) {
	uc := pdfFixture(pdfOrder(entity.OrderStatusPlaced), &fakePDFCompanyRepo{err: errors.New("conexión perdida")})

	_, _, err := uc.DownloadOrderPDF(context.Background(), pdfActor(entity.RoleCompanyAdmin, "x"), pdfOrderID)
	assert.ErrorContains(t, err, "conexión perdida")
}
