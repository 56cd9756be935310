package scanner

import (
	"context"

	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

// Camera capacidad de captura y decodificación. La decodificación real queda fuera del servicio.
type Camera interface {
	Devices(ctx context.Context) ([]entity.Device, error)
	Open(ctx context.Context, deviceID string) (Stream, error)
}

// Stream sesión abierta sobre un dispositivo. Events entrega a lo sumo un texto decodificado
// y se cierra al llamar Stop. Stop es idempotente.
type Stream interface {
	Events() <-chan string
	Stop()
}
