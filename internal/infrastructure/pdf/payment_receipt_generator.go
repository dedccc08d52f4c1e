// Package pdf implementa la generación del comprobante de pago a agricultores.
//
// Layout de la página A5:
//
//	┌────────────────────────────────────────────────┐
//	│  HEADER: Empresa        │  N° Pago + Fecha     │
//	│  ────────────────────────────────────────────  │
//	│  AGRICULTOR: Nombre + NIC + contacto           │
//	│  ────────────────────────────────────────────  │
//	│  TABLA: Orden | Tipo | Kg | Precio/kg | Monto  │
//	│  ────────────────────────────────────────────  │
//	│  TOTAL PAGADO                                  │
//	└────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 44}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera comprobantes de pago usando Maroto v2.
type ReceiptGenerator struct {
	companyName string
}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(companyName string) *ReceiptGenerator {
	return &ReceiptGenerator{companyName: companyName}
}

// GeneratePaymentReceipt genera el PDF del comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) GeneratePaymentReceipt(payment *entity.FarmerPayment, farmer *entity.Farmer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Pago "+payment.PaymentID, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.companyName, payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(farmerRow(farmer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(payment))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y N° de pago + fecha (der).
func headerRow(companyName string, payment *entity.FarmerPayment) core.Row {
	fecha := payment.CreatedAt.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de pago a agricultor", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(payment.PaymentID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// farmerRow: datos del agricultor beneficiario.
func farmerRow(farmer *entity.Farmer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BENEFICIARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(farmer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIC: %s   |   Tel: %s", farmer.NIC, farmer.Phone),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Orden", 3, align.Left),
		h("Tipo", 3, align.Left),
		h("Kg", 2, align.Right),
		h("Precio/kg", 2, align.Right),
		h("Monto", 2, align.Right),
	)
}

func detailRow(payment *entity.FarmerPayment) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(7).Add(
		cell(payment.RMOrderID, 3, align.Left),
		cell(payment.PepperType, 3, align.Left),
		cell(payment.DeliveredQtyKg.StringFixed(2), 2, align.Right),
		cell(payment.PricePerKg.StringFixed(2), 2, align.Right),
		cell(payment.Amount.StringFixed(2), 2, align.Right),
	)
}

func totalRow(payment *entity.FarmerPayment) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAGADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New("Rs. "+payment.Amount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Este comprobante respalda el pago por la materia prima entregada. "+
			"Consérvelo para su registro.", props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}
