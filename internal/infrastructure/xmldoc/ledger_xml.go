package xmldoc

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
)

var _ ledger.Exporter = (*LedgerExporter)(nil)

// LedgerExporter exporta el libro de trazabilidad como XML con digest de integridad.
type LedgerExporter struct{}

func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

func (e *LedgerExporter) Format() string      { return "xml" }
func (e *LedgerExporter) ContentType() string { return "application/xml" }

func (e *LedgerExporter) Export(_ context.Context, r ledger.Report) ([]byte, error) {
	root := etree.NewElement("TransferLedger")
	root.CreateAttr("xmlns", NsLedger)
	root.CreateAttr("generatedAt", r.GeneratedAt.UTC().Format(timeLayout))

	filter := root.CreateElement("Filter")
	filter.CreateAttr("period", r.Filter.Period)
	filter.CreateAttr("store", r.Filter.Store)
	if r.Filter.Query != "" {
		filter.CreateAttr("query", r.Filter.Query)
	}

	entries := root.CreateElement("Entries")
	for _, t := range r.Entries {
		el := entries.CreateElement("Transaction")
		el.CreateAttr("id", t.ID)
		el.CreateAttr("orderId", t.OrderID)
		el.CreateAttr("status", t.Status)
		el.CreateElement("Product").SetText(t.Product)
		qty := el.CreateElement("Quantity")
		qty.CreateAttr("unit", t.Measurement)
		qty.SetText(t.Quantity.String())
		el.CreateElement("From").SetText(t.From)
		el.CreateElement("To").SetText(t.To)
		el.CreateElement("Timestamp").SetText(t.Timestamp.UTC().Format(timeLayout))
		el.CreateElement("User").SetText(t.User)
		el.CreateElement("Cost").SetText(t.Cost.StringFixed(2))
	}

	totals := root.CreateElement("Totals")
	totals.CreateElement("Count").SetText(fmt.Sprint(r.Totals.Count))
	totals.CreateElement("TotalCost").SetText(r.Totals.TotalCost.StringFixed(2))
	for _, unit := range sortedUnits(r.Totals) {
		q := totals.CreateElement("Quantity")
		q.CreateAttr("unit", unit)
		q.SetText(r.Totals.Quantities[unit].String())
	}

	digest, err := Digest(root)
	if err != nil {
		return nil, err
	}
	integrity := root.CreateElement(integrityEl)
	integrity.CreateElement("CanonicalizationMethod").CreateAttr("Algorithm", AlgC14N)
	integrity.CreateElement("DigestMethod").CreateAttr("Algorithm", AlgSHA256)
	integrity.CreateElement("DigestValue").SetText(digest)
	return write(root)
}
