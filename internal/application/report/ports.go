package report

import (
	"context"

	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

// OrderLineForPDF línea de pedido enriquecida con los datos del producto para
// el comprobante impreso.
type OrderLineForPDF struct {
	entity.OrderItem
	ProductName string
	ProductSKU  string
	Unit        string
}

// OrderPDFGenerator genera el comprobante PDF de un pedido.
// Lo implementa pdf.OrderPDFGenerator (maroto).
type OrderPDFGenerator interface {
	GenerateOrderPDF(
		ctx context.Context,
		order *entity.Order,
		company *entity.Company,
		customer *entity.Customer,
		lines []OrderLineForPDF,
	) ([]byte, error)
}
