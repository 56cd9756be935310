// seed genera el script SQL que puebla el esquema de StockBridge.
//
// Uso:
//
//	go run ./cmd/seed                                  # datos mock integrados
//	go run ./cmd/seed -csv productos.csv -charset latin1
//
// El CSV lleva encabezado: barcode,name,measurement,stock,store,reorder_point,unit_cost.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/internal/infrastructure/memory"
)

var csvHeader = []string{"barcode", "name", "measurement", "stock", "store", "reorder_point", "unit_cost"}

func main() {
	csvPath := flag.String("csv", "", "CSV de productos (opcional; por defecto los datos mock)")
	charset := flag.String("charset", "utf-8", "codificación del CSV: utf-8 o latin1")
	pin := flag.String("pin", "1234", "PIN inicial de los operadores")
	flag.Parse()

	products := memory.SeedProducts()
	if *csvPath != "" {
		f, err := os.Open(*csvPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
			os.Exit(1)
		}
		products, err = readProductsCSV(f, *charset)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
	}
	operators, err := memory.SeedOperators(*pin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Operadores: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	seed := seedData{
		Locations:    memory.SeedLocations(),
		Products:     products,
		Operators:    operators,
		PIN:          *pin,
		Orders:       memory.SeedOrders(),
		Transactions: memory.SeedTransactions(),
	}
	if err := writeSeed(out, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos, %d órdenes, %d asientos\n",
		outPath, len(seed.Products), len(seed.Orders), len(seed.Transactions))
}

type seedData struct {
	Locations    []entity.Location
	Products     []entity.Product
	Operators    []entity.Operator
	PIN          string // se hashea en la base con pgcrypto
	Orders       []entity.TransferOrder
	Transactions []entity.Transaction
}

// readProductsCSV lee productos; los ids se asignan en orden de fila desde 1.
func readProductsCSV(r io.Reader, charset string) ([]entity.Product, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV vacío")
	}
	if !strings.EqualFold(strings.TrimSpace(records[0][0]), csvHeader[0]) {
		return nil, fmt.Errorf("encabezado esperado: %s", strings.Join(csvHeader, ","))
	}

	now := time.Now().UTC().Truncate(time.Second)
	products := make([]entity.Product, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < len(csvHeader) {
			return nil, fmt.Errorf("línea %d: se esperaban %d columnas", line, len(csvHeader))
		}
		nums := make([]decimal.Decimal, 3)
		for j, col := range []int{3, 5, 6} {
			d, err := decimal.NewFromString(strings.TrimSpace(rec[col]))
			if err != nil {
				return nil, fmt.Errorf("línea %d, %s: %w", line, csvHeader[col], err)
			}
			nums[j] = d
		}
		products = append(products, entity.Product{
			ID:           int64(len(products) + 1),
			Barcode:      strings.TrimSpace(rec[0]),
			Name:         strings.TrimSpace(rec[1]),
			Measurement:  strings.TrimSpace(rec[2]),
			Stock:        nums[0],
			Store:        strings.TrimSpace(rec[4]),
			ReorderPoint: nums[1],
			UnitCost:     nums[2],
			UpdatedAt:    now,
		})
	}
	return products, nil
}

func writeSeed(w io.Writer, s seedData) error {
	b := &strings.Builder{}
	b.WriteString("-- Datos iniciales de StockBridge (generado por cmd/seed)\n\n")

	b.WriteString("-- 1. Ubicaciones\n")
	for i, l := range s.Locations {
		fmt.Fprintf(b, "INSERT INTO locations (id, name, kind, position) VALUES (%s, %s, %s, %d)\n",
			quote(l.ID), quote(l.Name), quote(l.Kind), i)
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, kind = EXCLUDED.kind, position = EXCLUDED.position;\n")
	}

	b.WriteString("\n-- 2. Catálogo\n")
	for _, p := range s.Products {
		fmt.Fprintf(b, "INSERT INTO products (id, barcode, name, measurement, stock, store, reorder_point, unit_cost, updated_at)\n")
		fmt.Fprintf(b, "VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %s)\n",
			p.ID, quote(p.Barcode), quote(p.Name), quote(p.Measurement), p.Stock.String(), quote(p.Store),
			p.ReorderPoint.String(), p.UnitCost.StringFixed(2), timestamp(p.UpdatedAt))
		b.WriteString("ON CONFLICT (barcode) DO UPDATE SET name = EXCLUDED.name, stock = EXCLUDED.stock, store = EXCLUDED.store;\n")
	}
	b.WriteString("SELECT setval(pg_get_serial_sequence('products', 'id'), (SELECT COALESCE(MAX(id), 1) FROM products));\n")

	b.WriteString("\n-- 3. Operadores\n")
	for _, op := range s.Operators {
		fmt.Fprintf(b, "INSERT INTO operators (id, name, store, pin_hash) VALUES (%s, %s, %s, crypt(%s, gen_salt('bf', 10)))\n",
			quote(op.ID), quote(op.Name), quote(op.Store), quote(s.PIN))
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	b.WriteString("\n-- 4. Tablero de órdenes\n")
	for _, o := range s.Orders {
		fmt.Fprintf(b, "INSERT INTO transfer_orders (id, status, store, destination, created_by, assigned_to, created_at)\n")
		fmt.Fprintf(b, "VALUES (%s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(o.ID), quote(o.Status), quote(o.Store), quote(o.Destination), quote(o.CreatedBy),
			quote(o.AssignedTo), timestamp(o.CreatedAt))
		for _, it := range o.Items {
			productID := "NULL"
			if it.ProductID != 0 {
				productID = fmt.Sprint(it.ProductID)
			}
			fmt.Fprintf(b, "INSERT INTO transfer_order_items (order_id, line_no, product_id, name, barcode, quantity, measurement, picked)\n")
			fmt.Fprintf(b, "VALUES (%s, %d, %s, %s, %s, %s, %s, %t) ON CONFLICT DO NOTHING;\n",
				quote(o.ID), it.ID, productID, quote(it.Name), quote(it.Barcode), it.Quantity.String(),
				quote(it.Measurement), it.Picked)
		}
		for i, ev := range o.Timeline {
			at := "NULL"
			if ev.At != nil {
				at = timestamp(*ev.At)
			}
			fmt.Fprintf(b, "INSERT INTO transfer_order_events (order_id, position, event, at, user_name, completed)\n")
			fmt.Fprintf(b, "VALUES (%s, %d, %s, %s, %s, %t) ON CONFLICT DO NOTHING;\n",
				quote(o.ID), i, quote(ev.Event), at, quote(ev.User), ev.Completed)
		}
	}
	fmt.Fprintf(b, "SELECT setval('transfer_order_seq', %d);\n", len(s.Orders))

	b.WriteString("\n-- 5. Libro de trazabilidad\n")
	for _, t := range s.Transactions {
		fmt.Fprintf(b, "INSERT INTO ledger_transactions (id, order_id, product, quantity, measurement, from_store, to_location, occurred_at, user_name, cost, status)\n")
		fmt.Fprintf(b, "VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(t.ID), quote(t.OrderID), quote(t.Product), t.Quantity.String(), quote(t.Measurement),
			quote(t.From), quote(t.To), timestamp(t.Timestamp), quote(t.User), t.Cost.StringFixed(2), quote(t.Status))
	}
	fmt.Fprintf(b, "SELECT setval('ledger_transaction_seq', %d);\n", len(s.Transactions))

	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func timestamp(t time.Time) string {
	return quote(t.UTC().Format(time.RFC3339))
}

// findModuleRoot sube desde el cwd hasta encontrar go.mod.
func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
