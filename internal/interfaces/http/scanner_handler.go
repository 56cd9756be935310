package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/application/scanner"
	"github.com/jhoicas/stockbridge-api/internal/domain/entity"
	"github.com/jhoicas/stockbridge-api/pkg/logger"
)

// DeviceRelay alta de dispositivos y entrega de textos decodificados (camera.Hub).
type DeviceRelay interface {
	Register(d entity.Device) error
	Decode(deviceID, text string) (int, error)
}

// ScannerHandler escáner de códigos de barras y su stream por websocket.
type ScannerHandler struct {
	uc    *scanner.UseCase
	relay DeviceRelay
	log   *logger.Logger
}

// NewScannerHandler construye el handler.
func NewScannerHandler(uc *scanner.UseCase, relay DeviceRelay, log *logger.Logger) *ScannerHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ScannerHandler{uc: uc, relay: relay, log: log.Component("ws")}
}

// Devices godoc
// @Summary      Listar dispositivos de escaneo
// @Tags         scanner
// @Produce      json
// @Success      200  {array}   dto.DeviceResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/scanner/devices [get]
func (h *ScannerHandler) Devices(c *fiber.Ctx) error {
	out, err := h.uc.Devices(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterDevice godoc
// @Summary      Registrar dispositivo de relevo
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterDeviceRequest  true  "id, label"
// @Success      201   {object}  dto.DeviceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scanner/devices [post]
func (h *ScannerHandler) RegisterDevice(c *fiber.Ctx) error {
	var in dto.RegisterDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.relay.Register(entity.Device{ID: in.ID, Label: in.Label}); err != nil {
		return writeError(c, err)
	}
	out := dto.DeviceResponse{ID: in.ID, Label: in.Label}
	if out.Label == "" {
		out.Label = "Camera " + in.ID
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Decode godoc
// @Summary      Entregar texto decodificado
// @Description  El dispositivo envía el código leído; lo recibe el escaneo abierto sobre él, si hay uno.
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del dispositivo"
// @Param        body  body  dto.DecodeRequest  true  "text"
// @Success      200   {object}  dto.DecodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scanner/devices/{id}/decode [post]
func (h *ScannerHandler) Decode(c *fiber.Ctx) error {
	var in dto.DecodeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	n, err := h.relay.Decode(c.Params("id"), in.Text)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DecodeResponse{DeviceID: c.Params("id"), Delivered: n})
}

// Start godoc
// @Summary      Iniciar escaneo
// @Description  device_id vacío usa el primer dispositivo. Detiene cualquier escaneo anterior.
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartScanRequest  false  "device_id"
// @Success      200   {object}  dto.ScannerStatusResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/scanner/start [post]
func (h *ScannerHandler) Start(c *fiber.Ctx) error {
	var in dto.StartScanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.Start(c.UserContext(), in.DeviceID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stop godoc
// @Summary      Detener escaneo
// @Tags         scanner
// @Produce      json
// @Success      200  {object}  dto.ScannerStatusResponse
// @Router       /api/scanner/stop [post]
func (h *ScannerHandler) Stop(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stop())
}

// Reset godoc
// @Summary      Limpiar último resultado
// @Tags         scanner
// @Produce      json
// @Success      200  {object}  dto.ScannerStatusResponse
// @Router       /api/scanner/reset [post]
func (h *ScannerHandler) Reset(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reset())
}

// Status godoc
// @Summary      Estado del escáner
// @Tags         scanner
// @Produce      json
// @Success      200  {object}  dto.ScannerStatusResponse
// @Router       /api/scanner/status [get]
func (h *ScannerHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status())
}

// UpgradeOnly deja pasar solo peticiones de upgrade a websocket.
func UpgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream envía por websocket cada resultado de escaneo como JSON (dto.ScanResultResponse).
// Se corta cuando el cliente cierra o falla una escritura.
func (h *ScannerHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		results, cancel := h.uc.Subscribe()
		defer cancel()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		h.log.Debug().Str("ip", conn.IP()).Msg("suscriptor de escaneos conectado")
		for {
			select {
			case <-closed:
				h.log.Debug().Str("ip", conn.IP()).Msg("suscriptor de escaneos desconectado")
				return
			case r, ok := <-results:
				if !ok {
					return
				}
				if err := conn.WriteJSON(r); err != nil {
					h.log.Warn().Err(err).Msg("escribir resultado de escaneo")
					return
				}
			}
		}
	})
}
