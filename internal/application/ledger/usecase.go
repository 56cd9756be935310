// Package ledger libro de trazabilidad: búsqueda, filtros por tienda y período, totales y exportación.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
	"github.com/jhoicas/stockbridge-api/pkg/logger"
	"github.com/jhoicas/stockbridge-api/pkg/textmatch"
)

// Períodos del filtro. Son calendario, relativos al reloj del caso de uso:
// today desde las 00:00, week desde el lunes 00:00, month desde el día 1 a las 00:00.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// StoreAll sin filtro de tienda de origen.
const StoreAll = "all"

// Filter criterios de búsqueda.
type Filter struct {
	Query  string
	Store  string
	Period string
}

// Totals totales de un listado. Quantities agrupa por unidad de medida.
type Totals struct {
	Count      int
	TotalCost  decimal.Decimal
	Quantities map[string]decimal.Decimal
}

// Report listado filtrado listo para exportar.
type Report struct {
	Filter      Filter
	Entries     []entity.Transaction
	Totals      Totals
	GeneratedAt time.Time
}

// ExportFile archivo exportado.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// UseCase libro de trazabilidad.
type UseCase struct {
	txs       repository.TransactionRepository
	exporters map[string]Exporter
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso con los exportadores disponibles.
func NewUseCase(txs repository.TransactionRepository, log *logger.Logger, exporters ...Exporter) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &UseCase{
		txs:       txs,
		exporters: make(map[string]Exporter, len(exporters)),
		log:       log.Component("ledger"),
		now:       time.Now,
	}
	for _, e := range exporters {
		uc.exporters[e.Format()] = e
	}
	return uc
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// List asientos filtrados, del más reciente al más antiguo, con totales.
func (uc *UseCase) List(ctx context.Context, f Filter) (*dto.LedgerResponse, error) {
	r, err := uc.report(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(r.Entries))
	for _, t := range r.Entries {
		items = append(items, dto.TransactionResponse{
			ID:          t.ID,
			OrderID:     t.OrderID,
			Product:     t.Product,
			Quantity:    t.Quantity,
			Measurement: t.Measurement,
			From:        t.From,
			To:          t.To,
			Timestamp:   t.Timestamp,
			User:        t.User,
			Cost:        t.Cost,
			Status:      t.Status,
		})
	}
	return &dto.LedgerResponse{
		Period: r.Filter.Period,
		Store:  r.Filter.Store,
		Items:  items,
		Totals: dto.LedgerTotals{
			Count:      r.Totals.Count,
			TotalCost:  r.Totals.TotalCost,
			Quantities: r.Totals.Quantities,
		},
	}, nil
}

// Export genera el archivo en el formato pedido. Formato desconocido: domain.ErrUnsupportedFormat.
func (uc *UseCase) Export(ctx context.Context, f Filter, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	exp, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	r, err := uc.report(ctx, f)
	if err != nil {
		return nil, err
	}
	body, err := exp.Export(ctx, *r)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	uc.log.Debug().Str("format", format).Int("entries", r.Totals.Count).Msg("libro exportado")
	return &ExportFile{
		Filename:    fmt.Sprintf("ledger-%s.%s", r.GeneratedAt.Format("20060102-150405"), format),
		ContentType: exp.ContentType(),
		Body:        body,
	}, nil
}

// Formats formatos de exportación registrados, ordenados.
func (uc *UseCase) Formats() []string {
	out := make([]string, 0, len(uc.exporters))
	for f := range uc.exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (uc *UseCase) report(ctx context.Context, f Filter) (*Report, error) {
	now := uc.now()
	f.Query = strings.TrimSpace(f.Query)
	if f.Store == "" {
		f.Store = StoreAll
	}
	if f.Period == "" {
		f.Period = PeriodAll
	}
	since, err := PeriodStart(f.Period, now)
	if err != nil {
		return nil, err
	}
	repoFilter := repository.TransactionFilter{Since: since}
	if f.Store != StoreAll {
		repoFilter.From = f.Store
	}
	list, err := uc.txs.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	r := &Report{
		Filter:      f,
		Entries:     []entity.Transaction{},
		Totals:      Totals{TotalCost: decimal.Zero, Quantities: map[string]decimal.Decimal{}},
		GeneratedAt: now,
	}
	for _, t := range list {
		if !matches(t, f.Query) {
			continue
		}
		r.Entries = append(r.Entries, t)
		r.Totals.Count++
		r.Totals.TotalCost = r.Totals.TotalCost.Add(t.Cost)
		r.Totals.Quantities[t.Measurement] = r.Totals.Quantities[t.Measurement].Add(t.Quantity)
	}
	return r, nil
}

// PeriodStart inicio inclusivo del período en la zona de now; nil para "all".
func PeriodStart(period string, now time.Time) (*time.Time, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var start time.Time
	switch period {
	case PeriodAll:
		return nil, nil
	case PeriodToday:
		start = day
	case PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7 // lunes = 0
		start = day.AddDate(0, 0, -offset)
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, fmt.Errorf("%w: período %q", domain.ErrInvalidInput, period)
	}
	return &start, nil
}

func matches(t entity.Transaction, query string) bool {
	if query == "" {
		return true
	}
	return textmatch.Contains(t.Product, query) ||
		textmatch.Contains(t.OrderID, query) ||
		textmatch.Contains(t.ID, query)
}
