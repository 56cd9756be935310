package transfer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

func product(id int64, name, barcode string, stock int64) entity.Product {
	return entity.Product{
		ID: id, Name: name, Barcode: barcode, Measurement: "kg",
		Stock: decimal.NewFromInt(stock), Store: "Store A",
	}
}

var (
	tomatoes = product(1, "Tomatoes", "4011", 45)
	oliveOil = product(2, "Olive Oil", "8411", 12)
)

func ids(lines []CartLine) []int64 {
	out := make([]int64, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.ProductID)
	}
	return out
}

func TestCart_AddDosVecesIncrementa(t *testing.T) {
	c := NewCart()
	assert.Equal(t, OutcomeAdded, c.Add(tomatoes))
	assert.Equal(t, OutcomeUpdated, c.Add(tomatoes))

	require.Equal(t, 1, c.Len())
	line, ok := c.Line(1)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestCart_AddCopiaCamposYFotoDeStock(t *testing.T) {
	c := NewCart()
	c.Add(tomatoes)

	line, _ := c.Line(1)
	assert.Equal(t, "Tomatoes", line.Name)
	assert.Equal(t, "4011", line.Barcode)
	assert.Equal(t, "kg", line.Measurement)
	assert.True(t, line.AvailableStock.Equal(decimal.NewFromInt(45)))

	// la foto no sigue al catálogo
	changed := tomatoes
	changed.Stock = decimal.NewFromInt(3)
	c.Add(changed)
	line, _ = c.Line(1)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, line.AvailableStock.Equal(decimal.NewFromInt(45)))
}

func TestCart_SetQuantityCeroONegativoElimina(t *testing.T) {
	for _, n := range []int{0, -1, -50} {
		c := NewCart()
		c.Add(tomatoes)
		assert.Equal(t, OutcomeRemoved, c.SetQuantity(1, n))
		_, ok := c.Line(1)
		assert.False(t, ok)
		assert.True(t, c.IsEmpty())
	}
}

func TestCart_SetQuantitySobreStockEsRechazoSilencioso(t *testing.T) {
	c := NewCart()
	c.Add(oliveOil)
	c.SetQuantity(2, 5)

	assert.Equal(t, OutcomeRejected, c.SetQuantity(2, 13))
	assert.Equal(t, OutcomeRejected, c.SetQuantity(2, 13))
	line, _ := c.Line(2)
	assert.Equal(t, 5, line.Quantity)

	assert.Equal(t, OutcomeUpdated, c.SetQuantity(2, 12), "igual al stock es válido")
}

func TestCart_AddAlTopeNoSupera(t *testing.T) {
	one := product(9, "Basil", "1111", 1)
	c := NewCart()
	c.Add(one)
	assert.Equal(t, OutcomeRejected, c.Add(one))
	line, _ := c.Line(9)
	assert.Equal(t, 1, line.Quantity)
}

func TestCart_StockDecimalFraccional(t *testing.T) {
	p := tomatoes
	p.Stock = decimal.RequireFromString("2.5")
	c := NewCart()
	c.Add(p)
	assert.Equal(t, OutcomeUpdated, c.SetQuantity(1, 2))
	assert.Equal(t, OutcomeRejected, c.SetQuantity(1, 3))
}

func TestCart_SetQuantitySinLineaEsNoOp(t *testing.T) {
	c := NewCart()
	c.Add(tomatoes)
	assert.Equal(t, OutcomeMissing, c.SetQuantity(99, 3))
	assert.Equal(t, OutcomeMissing, c.SetQuantity(99, 0))
	assert.Equal(t, []int64{1}, ids(c.Lines()))
}

func TestCart_OrdenDeInsercion(t *testing.T) {
	c := NewCart()
	c.Add(oliveOil)
	c.Add(tomatoes)
	c.Add(tomatoes)
	assert.Equal(t, []int64{2, 1}, ids(c.Lines()))

	c.Remove(2)
	c.Add(oliveOil)
	assert.Equal(t, []int64{1, 2}, ids(c.Lines()), "reagregar va al final")
}

func TestCart_RemoveYClear(t *testing.T) {
	c := NewCart()
	assert.False(t, c.Remove(1))
	c.Add(tomatoes)
	c.Add(oliveOil)
	assert.True(t, c.Remove(1))
	assert.Equal(t, []int64{2}, ids(c.Lines()))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
}

func TestCart_LinesEsCopia(t *testing.T) {
	c := NewCart()
	c.Add(tomatoes)
	lines := c.Lines()
	lines[0].Quantity = 40
	line, _ := c.Line(1)
	assert.Equal(t, 1, line.Quantity)
}

func TestCart_EscenarioTomatoes(t *testing.T) {
	c := NewCart()
	c.Add(tomatoes)
	require.Equal(t, []CartLine{{
		ProductID: 1, Name: "Tomatoes", Barcode: "4011", Measurement: "kg",
		Quantity: 1, AvailableStock: decimal.NewFromInt(45),
	}}, c.Lines())

	c.SetQuantity(1, 50)
	line, _ := c.Line(1)
	assert.Equal(t, 1, line.Quantity)

	c.SetQuantity(1, 10)
	line, _ = c.Line(1)
	assert.Equal(t, 10, line.Quantity)

	c.Remove(1)
	assert.True(t, c.IsEmpty())
}

func TestSubmit(t *testing.T) {
	now := time.Date(2026, 1, 20, 14, 30, 0, 0, time.UTC)

	t.Run("vacío", func(t *testing.T) {
		c := NewCart()
		_, err := Submit(c, "Store A", "Kitchen", "op-1", now)
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("con líneas vacía el carrito", func(t *testing.T) {
		c := NewCart()
		c.Add(tomatoes)
		c.Add(oliveOil)
		sub, err := Submit(c, "Store A", "Kitchen", "op-1", now)
		require.NoError(t, err)
		assert.Equal(t, AckMessage, sub.Message)
		assert.Equal(t, []int64{1, 2}, ids(sub.Lines))
		assert.Equal(t, now, sub.SubmittedAt)
		assert.True(t, c.IsEmpty())
	})

	t.Run("prepare no vacía", func(t *testing.T) {
		c := NewCart()
		c.Add(tomatoes)
		_, err := Prepare(c, "Store A", "Kitchen", "op-1", now)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})
}
