package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_StockStatus(t *testing.T) {
	d := decimal.NewFromInt
	cases := []struct {
		name    string
		stock   decimal.Decimal
		reorder decimal.Decimal
		want    string
	}{
		{"sobre reorden", d(45), d(20), StockStatusNormal},
		{"igual a reorden", d(20), d(20), StockStatusLow},
		{"olive oil", d(12), d(15), StockStatusLow},
		{"mitad exacta", d(10), d(20), StockStatusCritical},
		{"chicken breast", d(5), d(15), StockStatusCritical},
		{"decimal", decimal.RequireFromString("7.5"), d(15), StockStatusCritical},
		{"sin reorden", d(0), decimal.Zero, StockStatusNormal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Product{Stock: c.stock, ReorderPoint: c.reorder}
			assert.Equal(t, c.want, p.StockStatus())
		})
	}
}

func TestTransferOrder_Progress(t *testing.T) {
	o := TransferOrder{Items: []TransferOrderItem{{Picked: true}, {Picked: false}}}
	assert.Equal(t, 1, o.PickedCount())
	assert.True(t, o.Progress().Equal(decimal.NewFromInt(50)))

	assert.True(t, TransferOrder{}.Progress().IsZero())

	three := TransferOrder{Items: []TransferOrderItem{{Picked: true}, {}, {}}}
	assert.Equal(t, "33.33", three.Progress().StringFixed(2))
}
