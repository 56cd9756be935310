// Package spreadsheet exporta el libro de trazabilidad a Excel con excelize.
package spreadsheet

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
)

const (
	sheetLedger = "Libro"
	sheetTotals = "Totales"
	timeLayout  = "2006-01-02 15:04"
)

var ledgerColumns = []string{"ID", "Orden", "Producto", "Cantidad", "Unidad", "Origen", "Destino", "Fecha", "Usuario", "Costo", "Estado"}

var _ ledger.Exporter = (*LedgerExporter)(nil)

// LedgerExporter exporta el libro como .xlsx: una hoja de asientos y una de totales.
type LedgerExporter struct{}

func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

func (e *LedgerExporter) Format() string { return "xlsx" }
func (e *LedgerExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *LedgerExporter) Export(_ context.Context, r ledger.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetLedger); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetSheetRow(sheetLedger, "A1", &ledgerColumns); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(ledgerColumns), 1)
	if err := f.SetCellStyle(sheetLedger, "A1", last, header); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	for i, t := range r.Entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			t.ID, t.OrderID, t.Product,
			t.Quantity.InexactFloat64(), t.Measurement,
			t.From, t.To, t.Timestamp.Format(timeLayout), t.User,
			t.Cost.Round(2).InexactFloat64(), t.Status,
		}
		if err := f.SetSheetRow(sheetLedger, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %s: %w", t.ID, err)
		}
	}
	_ = f.SetColWidth(sheetLedger, "C", "C", 22)
	_ = f.SetColWidth(sheetLedger, "F", "H", 16)

	if err := writeTotals(f, r, header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTotals(f *excelize.File, r ledger.Report, header int) error {
	if _, err := f.NewSheet(sheetTotals); err != nil {
		return fmt.Errorf("xlsx: hoja de totales: %w", err)
	}
	rows := [][]interface{}{
		{"Concepto", "Valor"},
		{"Período", r.Filter.Period},
		{"Tienda", r.Filter.Store},
		{"Búsqueda", r.Filter.Query},
		{"Movimientos", r.Totals.Count},
		{"Costo total", r.Totals.TotalCost.Round(2).InexactFloat64()},
	}
	units := make([]string, 0, len(r.Totals.Quantities))
	for u := range r.Totals.Quantities {
		units = append(units, u)
	}
	sort.Strings(units)
	for _, u := range units {
		rows = append(rows, []interface{}{"Cantidad (" + u + ")", r.Totals.Quantities[u].InexactFloat64()})
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetTotals, cell, &rows[i]); err != nil {
			return fmt.Errorf("xlsx: totales: %w", err)
		}
	}
	return f.SetCellStyle(sheetTotals, "A1", "B1", header)
}
