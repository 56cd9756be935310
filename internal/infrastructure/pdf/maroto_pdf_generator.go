// Package pdf genera los documentos PDF del servicio con Maroto v2.
//
// Hoja de traslado (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StockBridge + Hoja de traslado │ N° Orden + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RUTA: Origen -> Destino / Creada por / Asignada a            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Cantidad | Código de barras | ✓       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el N° de orden + firmas                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/stockbridge-api/internal/application/orders"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006 15:04"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ orders.SlipRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa orders.SlipRenderer y el exportador PDF del libro.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("StockBridge", true).
		Build()
	return maroto.New(cfg)
}

// RenderSlip genera la hoja de traslado de una orden y devuelve sus bytes.
// Cada ítem con barcode lleva su Code128 para escanearlo al recoger.
func (g *MarotoPDFGenerator) RenderSlip(_ context.Context, order entity.TransferOrder) ([]byte, error) {
	m := newDocument("Hoja de traslado " + order.ID)

	m.AddRows(slipHeaderRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(routeRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(slipTableHeaderRow())
	for _, r := range slipItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(slipFooterRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de traslado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones de la hoja ─────────────────────────────────────────────────────

func slipHeaderRow(order entity.TransferOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("StockBridge", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Hoja de traslado tienda - cocina", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE TRASLADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Creada: "+order.CreatedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func routeRow(order entity.TransferOrder) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RUTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.Store+"  ->  "+order.Destination, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Creada por: %s   |   Asignada a: %s   |   Estado: %s",
				nonEmpty(order.CreatedBy, "-"),
				nonEmpty(order.AssignedTo, "sin asignar"),
				order.Status,
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func slipTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("Código de barras", 4, align.Center),
		h("Rec.", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func slipItemRows(items []entity.TransferOrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		var barcode core.Col
		if it.Barcode != "" {
			barcode = col.New(4).Add(code.NewBar(it.Barcode, props.Barcode{Percent: 70, Center: true}))
		} else {
			barcode = col.New(4).Add(text.New("sin código", props.Text{
				Size: 7, Align: align.Center, Top: 4, Color: colorGray,
			}))
		}
		picked := "[ ]"
		if it.Picked {
			picked = "X"
		}
		result = append(result, row.New(14).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.ID), props.Text{Size: 8, Align: align.Center, Top: 4})),
			col.New(4).Add(text.New(it.Name, props.Text{Size: 9, Align: align.Left, Top: 4, Left: 1})),
			col.New(2).Add(text.New(it.Quantity.String()+" "+it.Measurement, props.Text{
				Size: 9, Align: align.Right, Top: 4, Right: 1,
			})),
			barcode,
			col.New(1).Add(text.New(picked, props.Text{Size: 9, Align: align.Center, Top: 4})),
		))
	}
	return result
}

func slipFooterRow(order entity.TransferOrder) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(order.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Escanee el QR para abrir la orden en el tablero.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Entregó: ______________________     Recibió: ______________________", props.Text{
				Size: 9, Top: 24, Left: 3,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
