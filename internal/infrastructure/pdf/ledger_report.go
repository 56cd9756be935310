package pdf

import (
	"context"
	"fmt"
	"sort"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

var colorStripe = &props.Color{Red: 240, Green: 244, Blue: 248}

// LedgerExporter exporta el libro de trazabilidad como reporte PDF.
type LedgerExporter struct{}

var _ ledger.Exporter = (*LedgerExporter)(nil)

func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

func (e *LedgerExporter) Format() string      { return "pdf" }
func (e *LedgerExporter) ContentType() string { return "application/pdf" }

// Export una fila por asiento, con los totales al pie.
func (e *LedgerExporter) Export(_ context.Context, r ledger.Report) ([]byte, error) {
	m := newDocument("Libro de trazabilidad")

	m.AddRows(ledgerHeaderRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(ledgerTableHeaderRow())
	for i, t := range r.Entries {
		m.AddRows(ledgerEntryRow(t, i%2 == 1))
	}
	if len(r.Entries) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New("Sin movimientos para el filtro.", props.Text{
			Size: 9, Align: align.Center, Top: 3, Color: colorGray,
		}))))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(ledgerTotalsRows(r.Totals)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar libro: %w", err)
	}
	return doc.GetBytes(), nil
}

func ledgerHeaderRow(r ledger.Report) core.Row {
	filter := fmt.Sprintf("Período: %s   |   Tienda: %s", r.Filter.Period, r.Filter.Store)
	if r.Filter.Query != "" {
		filter += "   |   Búsqueda: " + r.Filter.Query
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("StockBridge", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(filter, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("LIBRO DE TRAZABILIDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+r.GeneratedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func ledgerTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Orden", 1, align.Left),
		h("Producto", 2, align.Left),
		h("Cantidad", 1, align.Right),
		h("Ruta", 2, align.Left),
		h("Fecha", 2, align.Left),
		h("Usuario", 1, align.Left),
		h("Costo", 1, align.Right),
		h("Estado", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func ledgerEntryRow(t entity.Transaction, striped bool) core.Row {
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 7, Align: a, Top: 2, Left: 1, Right: 1}))
	}
	r := row.New(8).Add(
		c(t.ID, 1, align.Left),
		c(t.OrderID, 1, align.Left),
		c(t.Product, 2, align.Left),
		c(t.Quantity.String()+" "+t.Measurement, 1, align.Right),
		c(t.From+" -> "+t.To, 2, align.Left),
		c(t.Timestamp.Format(dateLayout), 2, align.Left),
		c(t.User, 1, align.Left),
		c("$"+t.Cost.StringFixed(2), 1, align.Right),
		c(t.Status, 1, align.Center),
	)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func ledgerTotalsRows(t ledger.Totals) []core.Row {
	rows := []core.Row{
		row.New(7).Add(
			col.New(9).Add(text.New(fmt.Sprintf("Movimientos: %d", t.Count), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 2,
			})),
			col.New(3).Add(text.New("Costo total: $"+t.TotalCost.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2,
			})),
		),
	}
	units := make([]string, 0, len(t.Quantities))
	for u := range t.Quantities {
		units = append(units, u)
	}
	sort.Strings(units)
	for _, u := range units {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Total %s: %s", u, t.Quantities[u].String()), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			})),
		))
	}
	return rows
}
