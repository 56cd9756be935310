// Package camera adaptador de cámaras por relevo: lectores de mano o páginas del navegador
// decodifican localmente y envían el texto al servicio. Cada escaneo abierto recibe un solo texto.
package camera

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/stockbridge-api/internal/application/scanner"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
)

var _ scanner.Camera = (*Hub)(nil)

// Hub registro de dispositivos de relevo y sus escaneos abiertos.
type Hub struct {
	mu      sync.Mutex
	devices []entity.Device
	streams map[string]map[string]*relayStream // deviceID -> streamID -> stream
}

// NewHub crea el registro con los dispositivos dados, en ese orden.
func NewHub(devices ...entity.Device) *Hub {
	h := &Hub{streams: make(map[string]map[string]*relayStream)}
	for _, d := range devices {
		_ = h.Register(d)
	}
	return h
}

// Register agrega o renombra un dispositivo. El label vacío toma "Camera <id>".
func (h *Hub) Register(d entity.Device) error {
	d.ID = strings.TrimSpace(d.ID)
	if d.ID == "" {
		return fmt.Errorf("%w: id de dispositivo vacío", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Label) == "" {
		d.Label = "Camera " + d.ID
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.devices {
		if h.devices[i].ID == d.ID {
			h.devices[i].Label = d.Label
			return nil
		}
	}
	h.devices = append(h.devices, d)
	return nil
}

// Devices lista los dispositivos en orden de registro.
func (h *Hub) Devices(ctx context.Context) ([]entity.Device, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]entity.Device(nil), h.devices...), nil
}

// Open abre un escaneo sobre el dispositivo.
func (h *Hub) Open(ctx context.Context, deviceID string) (scanner.Stream, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.knownLocked(deviceID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrDeviceUnavailable, deviceID)
	}
	s := &relayStream{id: uuid.New().String(), deviceID: deviceID, hub: h, events: make(chan string, 1)}
	if h.streams[deviceID] == nil {
		h.streams[deviceID] = make(map[string]*relayStream)
	}
	h.streams[deviceID][s.id] = s
	return s, nil
}

// Decode entrega text a los escaneos abiertos del dispositivo y devuelve cuántos lo recibieron.
// Dispositivo desconocido: domain.ErrNotFound. Texto vacío: domain.ErrInvalidInput.
func (h *Hub) Decode(deviceID, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, domain.ErrInvalidInput
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.knownLocked(deviceID) {
		return 0, domain.ErrNotFound
	}
	delivered := 0
	for _, s := range h.streams[deviceID] {
		if s.delivered {
			continue
		}
		s.events <- text // buffer de 1 y una sola entrega: no bloquea
		s.delivered = true
		delivered++
	}
	return delivered, nil
}

// OpenStreams cantidad de escaneos abiertos del dispositivo.
func (h *Hub) OpenStreams(deviceID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.streams[deviceID])
}

func (h *Hub) knownLocked(deviceID string) bool {
	for _, d := range h.devices {
		if d.ID == deviceID {
			return true
		}
	}
	return false
}

func (h *Hub) release(s *relayStream) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.streams[s.deviceID], s.id)
	if len(h.streams[s.deviceID]) == 0 {
		delete(h.streams, s.deviceID)
	}
	close(s.events)
}

type relayStream struct {
	id        string
	deviceID  string
	hub       *Hub
	events    chan string
	delivered bool // protegido por hub.mu
	once      sync.Once
}

func (s *relayStream) Events() <-chan string { return s.events }

func (s *relayStream) Stop() {
	s.once.Do(func() { s.hub.release(s) })
}
