package fieldsales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

type fakeOrderRepo struct {
	orders  map[string]*entity.Order
	counter int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(order *entity.Order) error {
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) NextNumber(companyID string) (int64, error) {
	f.counter++
	return f.counter, nil
}

func (f *fakeOrderRepo) GetByCompanyAndID(companyID, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok || o.CompanyID != companyID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByCompany(companyID string, fl repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CompanyID != companyID {
			continue
		}
		if fl.UserID != "" && o.UserID != fl.UserID {
			continue
		}
		if fl.Status != "" && o.Status != fl.Status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(companyID, id, status string, updatedAt time.Time) error {
	o, ok := f.orders[id]
	if !ok || o.CompanyID != companyID {
		return domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	return nil
}

// fakeTxRunner ejecuta el callback sin transacción real, contra el mismo repo.
type fakeTxRunner struct {
	repo repository.OrderRepository
}

func (f *fakeTxRunner) RunOrder(ctx context.Context, fn func(repository.OrderRepository) error) error {
	return fn(f.repo)
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

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByCompanyAndID(companyID, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}
func (f *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error    { return nil }
func (f *fakeProductRepo) Delete(companyID, id string) error { return nil }

type fakeCampaignRepo struct {
	campaigns map[string]*entity.Campaign
}

func (f *fakeCampaignRepo) Create(c *entity.Campaign) error { f.campaigns[c.ID] = c; return nil }
func (f *fakeCampaignRepo) GetByCompanyAndID(companyID, id string) (*entity.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}
func (f *fakeCampaignRepo) ListByCompany(companyID string, fl repository.CampaignFilter) ([]*entity.Campaign, error) {
	return nil, nil
}
func (f *fakeCampaignRepo) Update(c *entity.Campaign) error   { return nil }
func (f *fakeCampaignRepo) Delete(companyID, id string) error { return nil }

type fakeVisitRepo struct {
	visits map[string]*entity.Visit
}

func (f *fakeVisitRepo) Create(v *entity.Visit) error { f.visits[v.ID] = v; return nil }
func (f *fakeVisitRepo) GetByCompanyAndID(companyID, id string) (*entity.Visit, error) {
	v, ok := f.visits[id]
	if !ok || v.CompanyID != companyID {
		return nil, nil
	}
	return v, nil
}
func (f *fakeVisitRepo) ListByCompany(companyID string, fl repository.VisitFilter) ([]*entity.Visit, error) {
	return nil, nil
}
func (f *fakeVisitRepo) Update(v *entity.Visit) error { return nil }

// ─── Helpers ─────────────────────────────────────────────────────────────────

type orderFixture struct {
	uc        *OrderUseCase
	orderRepo *fakeOrderRepo
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	campaigns *fakeCampaignRepo
	visits    *fakeVisitRepo
}

func newOrderFixture() *orderFixture {
	orderRepo := newFakeOrderRepo()
	f := &orderFixture{
		orderRepo: orderRepo,
		customers: &fakeCustomerRepo{customers: make(map[string]*entity.Customer)},
		products:  &fakeProductRepo{products: make(map[string]*entity.Product)},
		campaigns: &fakeCampaignRepo{campaigns: make(map[string]*entity.Campaign)},
		visits:    &fakeVisitRepo{visits: make(map[string]*entity.Visit)},
	}
	f.uc = NewOrderUseCase(&fakeTxRunner{repo: orderRepo}, orderRepo, f.customers, f.products, f.campaigns, f.visits)
	return f
}

func (f *orderFixture) seedCustomer(companyID string) *entity.Customer {
	c := &entity.Customer{ID: uuid.New().String(), CompanyID: companyID, Name: "Tienda La Esquina"}
	f.customers.customers[c.ID] = c
	return c
}

func (f *orderFixture) seedProduct(companyID, price string, active bool) *entity.Product {
	p := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		SKU:       uuid.New().String()[:8],
		Name:      "Producto",
		Price:     decimal.RequireFromString(price),
		Active:    active,
	}
	f.products.products[p.ID] = p
	return p
}

func (f *orderFixture) seedCampaign(companyID, status, pct string) *entity.Campaign {
	now := time.Now()
	c := &entity.Campaign{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        "Promo agosto",
		Type:        entity.CampaignTypePromotion,
		DiscountPct: decimal.RequireFromString(pct),
		StartsAt:    now.Add(-time.Hour),
		EndsAt:      now.Add(time.Hour),
		Status:      status,
	}
	f.campaigns.campaigns[c.ID] = c
	return c
}

func agentActor() dto.Actor {
	return dto.Actor{UserID: uuid.New().String(), CompanyID: testCompanyID, Role: entity.RoleFieldAgent}
}

// ─── Create ──────────────────────────────────────────────────────────────────

func TestCreateOrder_CalculaTotalesYConsecutivo(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	p1 := f.seedProduct(testCompanyID, "10.50", true)
	p2 := f.seedProduct(testCompanyID, "3.33", true)

	resp, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items: []dto.OrderItemRequest{
			{ProductID: p1.ID, Quantity: 2}, // 21.00
			{ProductID: p2.ID, Quantity: 3}, // 9.99
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "ORD-000001", resp.Number)
	assert.Equal(t, entity.OrderStatusPlaced, resp.Status)
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("30.99")), "subtotal: %s", resp.Subtotal)
	assert.True(t, resp.Discount.IsZero())
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("30.99")))
	assert.Len(t, resp.Items, 2)
	// El precio queda congelado en la línea
	assert.True(t, resp.Items[0].UnitPrice.Equal(p1.Price))
	assert.Equal(t, actor.UserID, resp.UserID)
}

func TestCreateOrder_ConsecutivoIncrementa(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "5.00", true)

	for _, want := range []string{"ORD-000001", "ORD-000002", "ORD-000003"} {
		resp, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
			CustomerID: customer.ID,
			Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, want, resp.Number)
	}
}

func TestCreateOrder_AplicaDescuentoDeCampana(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "100.00", true)
	campaign := f.seedCampaign(testCompanyID, entity.CampaignStatusActive, "12.5")

	resp, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		CampaignID: &campaign.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, resp.Discount.Equal(decimal.RequireFromString("25.00")), "descuento: %s", resp.Discount)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("175.00")))
}

func TestCreateOrder_CampanaInactivaFalla(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "10.00", true)
	campaign := f.seedCampaign(testCompanyID, entity.CampaignStatusDraft, "10")

	_, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		CampaignID: &campaign.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrCampaignInactive)
}

func TestCreateOrder_ClienteDeOtraEmpresaNoExiste(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	foreign := f.seedCustomer(otherCompany)
	p := f.seedProduct(testCompanyID, "10.00", true)

	_, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: foreign.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_ProductoDeOtraEmpresaNoExiste(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	foreign := f.seedProduct(otherCompany, "10.00", true)

	_, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: foreign.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_ProductoInactivoFalla(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "10.00", false)

	_, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateOrder_SinItemsFalla(t *testing.T) {
	f := newOrderFixture()
	customer := f.seedCustomer(testCompanyID)

	_, err := f.uc.Create(context.Background(), agentActor(), dto.CreateOrderRequest{
		CustomerID: customer.ID,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_VisitaDeOtroClienteFalla(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	customer := f.seedCustomer(testCompanyID)
	other := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "10.00", true)
	visit := &entity.Visit{
		ID:         uuid.New().String(),
		CompanyID:  testCompanyID,
		CustomerID: other.ID,
		UserID:     actor.UserID,
		Status:     entity.VisitStatusInProgress,
	}
	f.visits.visits[visit.ID] = visit

	_, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		VisitID:    &visit.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Visibilidad y transiciones ──────────────────────────────────────────────

func TestGetOrder_AgenteNoVePedidosAjenos(t *testing.T) {
	f := newOrderFixture()
	owner := agentActor()
	customer := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "10.00", true)

	created, err := f.uc.Create(context.Background(), owner, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Otro agente de la misma empresa no lo ve
	got, err := f.uc.GetByID(agentActor(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Un manager de la misma empresa sí
	manager := dto.Actor{UserID: uuid.New().String(), CompanyID: testCompanyID, Role: entity.RoleAreaManager}
	got, err = f.uc.GetByID(manager, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
}

func TestOrder_TransicionesDeEstado(t *testing.T) {
	f := newOrderFixture()
	actor := agentActor()
	manager := dto.Actor{UserID: uuid.New().String(), CompanyID: testCompanyID, Role: entity.RoleCompanyAdmin}
	customer := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "10.00", true)

	created, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerID: customer.ID,
		Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// No se puede entregar sin confirmar
	_, err = f.uc.Deliver(manager, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	confirmed, err := f.uc.Confirm(manager, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, confirmed.Status)

	delivered, err := f.uc.Deliver(manager, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, delivered.Status)

	// Entregado ya no se cancela
	_, err = f.uc.Cancel(manager, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestListOrders_AgenteSoloVeLosSuyos(t *testing.T) {
	f := newOrderFixture()
	a1 := agentActor()
	a2 := agentActor()
	customer := f.seedCustomer(testCompanyID)
	p := f.seedProduct(testCompanyID, "10.00", true)

	for _, actor := range []dto.Actor{a1, a1, a2} {
		_, err := f.uc.Create(context.Background(), actor, dto.CreateOrderRequest{
			CustomerID: customer.ID,
			Items:      []dto.OrderItemRequest{{ProductID: p.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	list, err := f.uc.List(a1, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	manager := dto.Actor{UserID: uuid.New().String(), CompanyID: testCompanyID, Role: entity.RoleAreaManager}
	list, err = f.uc.List(manager, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 3)
}
