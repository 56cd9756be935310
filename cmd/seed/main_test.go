package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/stockbridge-api/internal/infrastructure/memory"
)

func TestReadProductsCSV_Latin1(t *testing.T) {
	raw := "barcode,name,measurement,stock,store,reorder_point,unit_cost\n" +
		"1001,Jalapeño,kg,12.5,Store A,5,3.20\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(raw)
	require.NoError(t, err)

	products, err := readProductsCSV(strings.NewReader(encoded), "latin1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Jalapeño", products[0].Name)
	assert.Equal(t, int64(1), products[0].ID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(products[0].Stock))
}

func TestReadProductsCSV_Errors(t *testing.T) {
	_, err := readProductsCSV(strings.NewReader("sku,name\n"), "utf-8")
	assert.Error(t, err)

	_, err = readProductsCSV(strings.NewReader("barcode,name,measurement,stock,store,reorder_point,unit_cost\n1,X,kg,abc,Store A,1,1\n"), "utf-8")
	assert.ErrorContains(t, err, "línea 2")

	_, err = readProductsCSV(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestWriteSeed(t *testing.T) {
	var buf bytes.Buffer
	err := writeSeed(&buf, seedData{
		Locations:    memory.SeedLocations(),
		Products:     memory.SeedProducts(),
		Orders:       memory.SeedOrders(),
		Transactions: memory.SeedTransactions(),
	})
	require.NoError(t, err)

	sql := buf.String()
	assert.Contains(t, sql, "VALUES (3, '2034', 'Flour', 'kg', 89, 'Store B', 30, 1.50, '2026-01-20T14:59:00Z')")
	assert.Contains(t, sql, "VALUES ('ORD-004', 3, NULL, 'Basil', '', 0.5, 'kg', false)")
	assert.Contains(t, sql, "SELECT setval('transfer_order_seq', 4);")
	assert.Contains(t, sql, "SELECT setval('ledger_transaction_seq', 5);")
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'O''Brien'", quote("O'Brien"))
}
