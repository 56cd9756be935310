package ledger

import "context"

// Exporter serializa un reporte del libro en un formato de archivo.
type Exporter interface {
	Format() string // pdf, xlsx, xml
	ContentType() string
	Export(ctx context.Context, r Report) ([]byte, error)
}
