package xmldoc

import (
	"sort"

	"github.com/jhoicas/stockbridge-api/internal/application/ledger"
)

func sortedUnits(t ledger.Totals) []string {
	units := make([]string, 0, len(t.Quantities))
	for u := range t.Quantities {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}
