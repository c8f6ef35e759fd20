// Package pdf genera el recibo PDF de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: Tienda Virtual  │  N° Pedido + Fecha       │
//	│  ─────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, teléfono, dirección de envío      │
//	│  ─────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal         │
//	│  ─────────────────────────────────────────────────  │
//	│  TOTAL + estado del pedido                          │
//	└─────────────────────────────────────────────────────┘
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

	"github.com/tu-usuario/tienda-virtual/internal/application/orders"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
)

// Verificar en tiempo de compilación que ReceiptGenerator implementa el puerto.
var _ orders.ReceiptGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera recibos de pedido usando Maroto v2.
type ReceiptGenerator struct {
	storeName string
}

// NewReceiptGenerator construye el generador. storeName encabeza el recibo.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName}
}

// GenerateOrderReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateOrderReceipt(_ context.Context, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range order.Items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq), número de pedido y fecha (der).
func (g *ReceiptGenerator) headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de pedido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO "+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRow: identidad del comprador y datos de envío.
// En pedidos de invitado el nombre sale de los campos capturados al comprar.
func customerRow(order *entity.Order) core.Row {
	name := order.CustomerName
	if order.UserID == nil {
		name = order.GuestName + " " + order.GuestSurname
	}

	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s", name, order.ContactPhone), props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
			text.New("Envío: "+order.ShippingAddress, props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	right := header
	right.Align = align.Right

	return row.New(6).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", right)),
		col.New(3).Add(text.New("Subtotal", right)),
	)
}

func itemRow(item entity.OrderItem) core.Row {
	name := item.ProductName
	if name == "" {
		name = item.ProductID // producto borrado del catálogo
	}
	cell := props.Text{Size: 8, Top: 1}
	right := cell
	right.Align = align.Right

	return row.New(5).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), cell)),
		col.New(6).Add(text.New(name, cell)),
		col.New(2).Add(text.New("$"+item.UnitPrice.StringFixed(2), right)),
		col.New(3).Add(text.New("$"+item.Subtotal.StringFixed(2), right)),
	)
}

func totalRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(7).Add(
			text.New("Estado: "+order.Status, props.Text{Size: 8, Top: 3, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("TOTAL: $"+order.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
