// Package scanner orquesta una sesión de escaneo: elige dispositivo, espera un código,
// lo resuelve contra el catálogo y publica el resultado.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/stockbridge-api/internal/application/catalog"
	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/pkg/logger"
)

// UseCase un único escáner por proceso. Iniciar un escaneo detiene el anterior.
// No hay timeout ni reintento: si el dispositivo falla el escáner queda inactivo con el error.
type UseCase struct {
	camera   Camera
	resolver *catalog.Resolver
	log      *logger.Logger
	now      func() time.Time

	mu       sync.Mutex
	gen      uint64
	stream   Stream
	deviceID string
	scanning bool
	result   *entity.ScanResult
	lastErr  string
	subs     map[uint64]chan dto.ScanResultResponse
	nextSub  uint64
}

// NewUseCase construye el caso de uso.
func NewUseCase(camera Camera, resolver *catalog.Resolver, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		camera:   camera,
		resolver: resolver,
		log:      log.Component("scanner"),
		now:      time.Now,
		subs:     make(map[uint64]chan dto.ScanResultResponse),
	}
}

// Devices dispositivos disponibles. Cualquier falla se informa como domain.ErrDeviceUnavailable.
func (uc *UseCase) Devices(ctx context.Context) ([]dto.DeviceResponse, error) {
	list, err := uc.camera.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDeviceUnavailable, err)
	}
	out := make([]dto.DeviceResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DeviceResponse{ID: d.ID, Label: d.Label})
	}
	return out, nil
}

// Start abre un escaneo sobre deviceID, o sobre el primer dispositivo si es vacío.
// El escaneo previo se detiene y el último resultado se descarta.
func (uc *UseCase) Start(ctx context.Context, deviceID string) (*dto.ScannerStatusResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.stopLocked()
	uc.result = nil
	uc.lastErr = ""

	if deviceID == "" {
		devices, err := uc.camera.Devices(ctx)
		if err != nil {
			return nil, uc.failLocked(err)
		}
		if len(devices) == 0 {
			return nil, uc.failLocked(errors.New("no hay dispositivos"))
		}
		deviceID = devices[0].ID
	}
	stream, err := uc.camera.Open(ctx, deviceID)
	if err != nil {
		return nil, uc.failLocked(err)
	}

	uc.gen++
	uc.stream = stream
	uc.deviceID = deviceID
	uc.scanning = true
	go uc.await(uc.gen, deviceID, stream)

	uc.log.Debug().Str("device", deviceID).Msg("escaneo iniciado")
	return uc.statusLocked(), nil
}

// Stop detiene el escaneo en curso. Sin escaneo es no-op.
func (uc *UseCase) Stop() *dto.ScannerStatusResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.stopLocked()
	return uc.statusLocked()
}

// Reset descarta el último resultado y error para escanear de nuevo.
func (uc *UseCase) Reset() *dto.ScannerStatusResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.result = nil
	uc.lastErr = ""
	return uc.statusLocked()
}

// Status estado actual.
func (uc *UseCase) Status() *dto.ScannerStatusResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.statusLocked()
}

// Subscribe recibe cada resultado nuevo. Un suscriptor lento pierde resultados en vez de bloquear.
// cancel libera la suscripción y cierra el canal.
func (uc *UseCase) Subscribe() (<-chan dto.ScanResultResponse, func()) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.nextSub++
	id := uc.nextSub
	ch := make(chan dto.ScanResultResponse, 4)
	uc.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			uc.mu.Lock()
			defer uc.mu.Unlock()
			delete(uc.subs, id)
			close(ch)
		})
	}
}

func (uc *UseCase) await(gen uint64, deviceID string, stream Stream) {
	text, ok := <-stream.Events()
	if !ok {
		return
	}
	res := entity.ScanResult{DeviceID: deviceID, Barcode: text, ScannedAt: uc.now()}
	var resolveErr error
	p, err := uc.resolver.Resolve(context.Background(), text)
	switch {
	case err == nil:
		res.Found, res.Product = true, p
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
	default:
		resolveErr = err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.gen || uc.stream != stream {
		return
	}
	uc.stopLocked()
	uc.result = &res
	if resolveErr != nil {
		uc.lastErr = resolveErr.Error()
		uc.log.Error().Err(resolveErr).Str("barcode", text).Msg("no se pudo resolver el código")
	}
	uc.log.Info().Str("device", deviceID).Str("barcode", text).Bool("found", res.Found).Msg("código escaneado")

	msg := toResultResponse(res)
	for _, ch := range uc.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (uc *UseCase) stopLocked() {
	if uc.stream != nil {
		uc.stream.Stop()
		uc.stream = nil
	}
	uc.scanning = false
}

func (uc *UseCase) failLocked(err error) error {
	uc.lastErr = err.Error()
	uc.log.Warn().Err(err).Msg("no se pudo abrir la cámara")
	return fmt.Errorf("%w: %v", domain.ErrDeviceUnavailable, err)
}

func (uc *UseCase) statusLocked() *dto.ScannerStatusResponse {
	out := &dto.ScannerStatusResponse{Scanning: uc.scanning, DeviceID: uc.deviceID, Error: uc.lastErr}
	if uc.result != nil {
		r := toResultResponse(*uc.result)
		out.Result = &r
	}
	return out
}

func toResultResponse(r entity.ScanResult) dto.ScanResultResponse {
	out := dto.ScanResultResponse{DeviceID: r.DeviceID, Barcode: r.Barcode, Found: r.Found, ScannedAt: r.ScannedAt}
	if r.Product != nil {
		p := catalog.ToProductResponse(*r.Product)
		out.Product = &p
	}
	return out
}
