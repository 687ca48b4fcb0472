// Package pdf implementa la generación del comprobante de pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  N° Pedido + Fecha + Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                             │
//	│  CLIENTE: Nombre + NIT/CC + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | SKU | Descripción | P.Unit | Total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/fieldforce-api/internal/application/report"
	"github.com/jhoicas/fieldforce-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 98, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// moneyPrinter formatea montos con separador de miles en español ("25.000").
var moneyPrinter = message.NewPrinter(language.LatinAmericanSpanish)

var orderStatusLabels = map[string]string{
	entity.OrderStatusPlaced:    "REGISTRADO",
	entity.OrderStatusConfirmed: "CONFIRMADO",
	entity.OrderStatusDelivered: "ENTREGADO",
	entity.OrderStatusCancelled: "CANCELADO",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// OrderPDFGenerator implementa report.OrderPDFGenerator usando Maroto v2.
type OrderPDFGenerator struct{}

// NewOrderPDFGenerator construye el generador.
func NewOrderPDFGenerator() *OrderPDFGenerator { return &OrderPDFGenerator{} }

// GenerateOrderPDF genera el comprobante y devuelve sus bytes.
func (g *OrderPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	company *entity.Company,
	customer *entity.Customer,
	lines []report.OrderLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Pedido", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(company))
	m.AddRows(clienteRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT (izq) y número + fecha + estado (der).
func headerRow(order *entity.Order, company *entity.Company) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")
	estado := orderStatusLabels[order.Status]
	if estado == "" {
		estado = order.Status
	}

	return row.New(20).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", fecha, estado), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// emisorRow: datos de la empresa vendedora.
func emisorRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clienteRow: datos del punto de venta/cliente.
func clienteRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT/CC: %s   |   %s   |   Tel: %s",
				nonEmpty(customer.TaxID, "—"),
				nonEmpty(customer.Address, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("SKU", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del pedido.
func tableLineRows(lines []report.OrderLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		descripcion := l.ProductName
		if l.Unit != "" {
			descripcion = fmt.Sprintf("%s (%s)", l.ProductName, l.Unit)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.ProductSKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(l.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(order *entity.Order) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(3).Add(
			label("Subtotal:"),
			label("Descuento:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(order.Subtotal)),
			value("-$"+formatMoney(order.Discount)),
			grandValue("$"+formatMoney(order.Total)),
		),
		col.New(3), // espacio derecho
	)
}

// footerRow: leyenda del comprobante.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Comprobante de pedido levantado en campo. No constituye factura de venta; "+
				"la facturación se realiza al momento de la entrega.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un monto sin decimales con separador de miles.
// Ej: 25000 → "25.000", 1000000 → "1.000.000"
func formatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("%d", d.Round(0).IntPart())
}
