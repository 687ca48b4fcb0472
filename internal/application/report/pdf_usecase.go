package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// OrderPDFUseCase genera el comprobante PDF de un pedido.
// Solo pedidos que no están cancelados tienen comprobante.
type OrderPDFUseCase struct {
	orderRepo    repository.OrderRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    OrderPDFGenerator
}

// NewOrderPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewOrderPDFUseCase(
	orderRepo repository.OrderRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator OrderPDFGenerator,
) *OrderPDFUseCase {
	return &OrderPDFUseCase{
		orderRepo:    orderRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadOrderPDF recupera el pedido con sus datos de empresa, cliente y
// productos, y genera el comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe para el tenant (o el
//     field_agent no es el dueño).
//   - domain.ErrConflict         si el pedido está cancelado.
func (uc *OrderPDFUseCase) DownloadOrderPDF(
	ctx context.Context,
	actor dto.Actor,
	orderID string,
) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByCompanyAndID(actor.CompanyID, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if actor.Role == entity.RoleFieldAgent && order.UserID != actor.UserID {
		return nil, "", domain.ErrNotFound
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, "", fmt.Errorf("%w: el pedido está cancelado y no tiene comprobante", domain.ErrConflict)
	}

	company, err := uc.companyRepo.GetByID(order.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", fmt.Errorf("pdf: empresa %s del pedido no existe", order.CompanyID)
	}

	customer, err := uc.customerRepo.GetByCompanyAndID(order.CompanyID, order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", fmt.Errorf("pdf: cliente %s del pedido no existe", order.CustomerID)
	}

	lines := make([]OrderLineForPDF, 0, len(order.Items))
	for _, it := range order.Items {
		name := "Producto " + it.ProductID // fallback
		sku := ""
		unit := ""
		if product, pErr := uc.productRepo.GetByCompanyAndID(order.CompanyID, it.ProductID); pErr == nil && product != nil {
			name = product.Name
			sku = product.SKU
			unit = product.Unit
		}
		lines = append(lines, OrderLineForPDF{
			OrderItem:   it,
			ProductName: name,
			ProductSKU:  sku,
			Unit:        unit,
		})
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, order, company, customer, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("pedido_%s.pdf", order.Number)
	return pdfBytes, filename, nil
}
