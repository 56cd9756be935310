// Package transfer contiene el carrito de traslado: la colección ordenada de líneas que un
// operador arma antes de enviar una orden de tienda a cocina.
//
// Invariantes del carrito:
//   - a lo sumo una línea por ProductID (agregar un producto presente incrementa su cantidad);
//   - 1 <= Quantity <= AvailableStock en todo momento;
//   - el orden de Lines() es el orden del primer agregado.
//
// Cart no usa locks ni hace I/O; quien lo orquesta serializa las llamadas.
package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// QuantityOutcome describe qué hizo SetQuantity. Ninguno de los valores es un error:
// el rechazo por exceso de stock es silencioso y el llamador decide si avisar.
type QuantityOutcome string

const (
	OutcomeAdded    QuantityOutcome = "added"
	OutcomeUpdated  QuantityOutcome = "updated"
	OutcomeRemoved  QuantityOutcome = "removed"
	OutcomeRejected QuantityOutcome = "rejected" // supera el stock disponible
	OutcomeMissing  QuantityOutcome = "missing"  // no hay línea para el producto
)

// CartLine una línea del carrito. AvailableStock es la foto del stock al momento de agregar
// y no se vuelve a validar contra el catálogo.
type CartLine struct {
	ProductID      int64
	Name           string
	Barcode        string
	Measurement    string
	Quantity       int
	AvailableStock decimal.Decimal
}

// Cart carrito de traslado.
type Cart struct {
	lines []CartLine
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(productID int64) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add agrega el producto con cantidad 1, o equivale a SetQuantity(id, actual+1) si ya está.
func (c *Cart) Add(p entity.Product) QuantityOutcome {
	if i := c.indexOf(p.ID); i >= 0 {
		return c.SetQuantity(p.ID, c.lines[i].Quantity+1)
	}
	c.lines = append(c.lines, CartLine{
		ProductID:      p.ID,
		Name:           p.Name,
		Barcode:        p.Barcode,
		Measurement:    p.Measurement,
		Quantity:       1,
		AvailableStock: p.Stock,
	})
	return OutcomeAdded
}

// SetQuantity fija la cantidad de una línea.
// Sin línea: no-op. n <= 0: elimina la línea. n > stock disponible: no-op.
func (c *Cart) SetQuantity(productID int64, n int) QuantityOutcome {
	i := c.indexOf(productID)
	if i < 0 {
		return OutcomeMissing
	}
	if n <= 0 {
		c.removeAt(i)
		return OutcomeRemoved
	}
	if decimal.NewFromInt(int64(n)).GreaterThan(c.lines[i].AvailableStock) {
		return OutcomeRejected
	}
	c.lines[i].Quantity = n
	return OutcomeUpdated
}

// Remove elimina la línea si existe. Devuelve false si no había línea.
func (c *Cart) Remove(productID int64) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line devuelve la línea del producto si existe.
func (c *Cart) Line(productID int64) (CartLine, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

// Len cantidad de líneas.
func (c *Cart) Len() int { return len(c.lines) }

// IsEmpty true si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }
