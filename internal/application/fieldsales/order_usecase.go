// Package fieldsales contiene los casos de uso del módulo de ventas en campo:
// pedidos levantados por los agentes durante las visitas.
package fieldsales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// OrderUseCase creación y ciclo de vida de pedidos.
//
// Los montos se congelan al crear: el precio unitario se copia del catálogo y
// el descuento de campaña se calcula una sola vez sobre el subtotal. La
// reserva del consecutivo y el insert corren en una transacción (TxRunner).
type OrderUseCase struct {
	tx           TxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	campaignRepo repository.CampaignRepository
	visitRepo    repository.VisitRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	tx TxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	campaignRepo repository.CampaignRepository,
	visitRepo repository.VisitRepository,
) *OrderUseCase {
	return &OrderUseCase{
		tx:           tx,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		campaignRepo: campaignRepo,
		visitRepo:    visitRepo,
	}
}

// Create valida las referencias contra la empresa del actor, captura precios,
// aplica el descuento de campaña si corresponde y persiste pedido + items.
// Toda referencia cruzada a otra empresa termina en ErrNotFound: para el
// tenant ese recurso no existe.
func (uc *OrderUseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByCompanyAndID(actor.CompanyID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	if in.VisitID != nil {
		visit, err := uc.visitRepo.GetByCompanyAndID(actor.CompanyID, *in.VisitID)
		if err != nil {
			return nil, err
		}
		if visit == nil {
			return nil, domain.ErrNotFound
		}
		if visit.CustomerID != in.CustomerID {
			return nil, domain.ErrInvalidInput // la visita es de otro cliente
		}
	}

	now := time.Now()
	var campaign *entity.Campaign
	if in.CampaignID != nil {
		campaign, err = uc.campaignRepo.GetByCompanyAndID(actor.CompanyID, *in.CampaignID)
		if err != nil {
			return nil, err
		}
		if campaign == nil {
			return nil, domain.ErrNotFound
		}
		if !campaign.AppliesAt(now) {
			return nil, domain.ErrCampaignInactive
		}
	}

	// Capturar precios del catálogo y armar las líneas
	subtotal := decimal.Zero
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByCompanyAndID(actor.CompanyID, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if !product.Active {
			return nil, domain.ErrConflict // producto descontinuado
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	discount := decimal.Zero
	if campaign != nil && campaign.DiscountPct.GreaterThan(decimal.Zero) {
		discount = subtotal.Mul(campaign.DiscountPct).Div(hundred).Round(2)
	}

	order := &entity.Order{
		ID:         uuid.New().String(),
		CompanyID:  actor.CompanyID,
		CustomerID: in.CustomerID,
		UserID:     actor.UserID,
		VisitID:    in.VisitID,
		CampaignID: in.CampaignID,
		Status:     entity.OrderStatusPlaced,
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      subtotal.Sub(discount),
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	// Consecutivo + insert en una sola transacción
	err = uc.tx.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		n, err := orderRepo.NextNumber(actor.CompanyID)
		if err != nil {
			return err
		}
		order.Number = fmt.Sprintf("ORD-%06d", n)
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido con sus items. Un field_agent solo ve los suyos.
func (uc *OrderUseCase) GetByID(actor dto.Actor, id string) (*dto.OrderResponse, error) {
	order, err := uc.scopedOrder(actor, id)
	if err != nil || order == nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos. A un field_agent se le fuerza el filtro de agente.
func (uc *OrderUseCase) List(actor dto.Actor, f repository.OrderFilter) (*dto.OrderListResponse, error) {
	if actor.Role == entity.RoleFieldAgent {
		f.UserID = actor.UserID
	}
	list, err := uc.orderRepo.ListByCompany(actor.CompanyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Confirm confirma un pedido (placed -> confirmed). Requiere rol de supervisión (router).
func (uc *OrderUseCase) Confirm(actor dto.Actor, id string) (*dto.OrderResponse, error) {
	return uc.transition(actor, id, func(o *entity.Order) bool { return o.CanConfirm() }, entity.OrderStatusConfirmed)
}

// Deliver marca un pedido como entregado (confirmed -> delivered).
func (uc *OrderUseCase) Deliver(actor dto.Actor, id string) (*dto.OrderResponse, error) {
	return uc.transition(actor, id, func(o *entity.Order) bool { return o.CanDeliver() }, entity.OrderStatusDelivered)
}

// Cancel cancela un pedido aún no entregado.
func (uc *OrderUseCase) Cancel(actor dto.Actor, id string) (*dto.OrderResponse, error) {
	return uc.transition(actor, id, func(o *entity.Order) bool { return o.CanCancel() }, entity.OrderStatusCancelled)
}

func (uc *OrderUseCase) transition(actor dto.Actor, id string, allowed func(*entity.Order) bool, next string) (*dto.OrderResponse, error) {
	order, err := uc.scopedOrder(actor, id)
	if err != nil || order == nil {
		return nil, err
	}
	if !allowed(order) {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	if err := uc.orderRepo.UpdateStatus(actor.CompanyID, id, next, now); err != nil {
		return nil, err
	}
	order.Status = next
	order.UpdatedAt = now
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) scopedOrder(actor dto.Actor, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByCompanyAndID(actor.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if actor.Role == entity.RoleFieldAgent && order.UserID != actor.UserID {
		return nil, nil
	}
	return order, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		CompanyID:  o.CompanyID,
		CustomerID: o.CustomerID,
		UserID:     o.UserID,
		VisitID:    o.VisitID,
		CampaignID: o.CampaignID,
		Number:     o.Number,
		Status:     o.Status,
		Subtotal:   o.Subtotal,
		Discount:   o.Discount,
		Total:      o.Total,
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
