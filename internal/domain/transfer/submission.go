package transfer

import (
	"time"

	"github.com/jhoicas/stockbridge-api/internal/domain"
)

// AckMessage confirmación que se muestra al operador tras enviar.
const AckMessage = "orden de traslado creada correctamente"

// Submission resultado de enviar un carrito. No toca el stock del catálogo.
type Submission struct {
	Store       string
	Destination string
	Operator    string
	Lines       []CartLine
	Message     string
	SubmittedAt time.Time
}

// Prepare valida el carrito y toma una foto de sus líneas sin vaciarlo.
// Carrito vacío: domain.ErrEmptyCart y nada cambia.
func Prepare(c *Cart, store, destination, operator string, now time.Time) (Submission, error) {
	if c.IsEmpty() {
		return Submission{}, domain.ErrEmptyCart
	}
	return Submission{
		Store:       store,
		Destination: destination,
		Operator:    operator,
		Lines:       c.Lines(),
		Message:     AckMessage,
		SubmittedAt: now,
	}, nil
}

// Submit es Prepare seguido de Clear. No hay revalidación de stock ni round-trip.
func Submit(c *Cart, store, destination, operator string, now time.Time) (Submission, error) {
	sub, err := Prepare(c, store, destination, operator, now)
	if err != nil {
		return Submission{}, err
	}
	c.Clear()
	return sub, nil
}
