package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/application/transfer"
)

// TransferHandler sesiones de traslado: carrito, tienda, destino y envío.
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir sesión de traslado
// @Description  Crea un carrito vacío. Sin store/destination se usan Store A y Kitchen.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenTransferRequest  false  "store, destination"
// @Success      201   {object}  dto.TransferSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenTransferRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.Open(c.UserContext(), in.Store, in.Destination, GetOperator(c).Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener sesión de traslado
// @Tags         transfers
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.TransferSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Descartar sesión de traslado
// @Tags         transfers
// @Param        id   path  string  true  "ID de sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [delete]
func (h *TransferHandler) Close(c *fiber.Ctx) error {
	if err := h.uc.Close(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListProducts godoc
// @Summary      Productos de la tienda de la sesión
// @Tags         transfers
// @Produce      json
// @Param        id   path   string  true   "ID de sesión"
// @Param        q    query  string  false  "Búsqueda por nombre o código"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/products [get]
func (h *TransferHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext(), c.Params("id"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SelectStore godoc
// @Summary      Cambiar tienda de origen
// @Description  El carrito se conserva.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de sesión"
// @Param        body  body  dto.SelectStoreRequest   true  "store"
// @Success      200   {object}  dto.TransferSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/store [put]
func (h *TransferHandler) SelectStore(c *fiber.Ctx) error {
	var in dto.SelectStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SelectStore(c.UserContext(), c.Params("id"), in.Store)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SelectDestination godoc
// @Summary      Cambiar destino
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de sesión"
// @Param        body  body  dto.SelectDestinationRequest  true  "destination"
// @Success      200   {object}  dto.TransferSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/destination [put]
func (h *TransferHandler) SelectDestination(c *fiber.Ctx) error {
	var in dto.SelectDestinationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SelectDestination(c.UserContext(), c.Params("id"), in.Destination)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar producto al carrito
// @Description  Por product_id o por barcode. Un barcode desconocido responde 200 con found=false.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de sesión"
// @Param        body  body  dto.AddLineRequest  true  "product_id o barcode"
// @Success      200   {object}  dto.CartChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/lines [post]
func (h *TransferHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var (
		out *dto.CartChangeResponse
		err error
	)
	switch {
	case strings.TrimSpace(in.Barcode) != "":
		out, err = h.uc.AddByBarcode(c.UserContext(), c.Params("id"), in.Barcode)
	case in.ProductID > 0:
		out, err = h.uc.AddProduct(c.UserContext(), c.Params("id"), in.ProductID)
	default:
		return badRequest(c, CodeValidation, "product_id o barcode es requerido")
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar cantidad de una línea
// @Description  quantity <= 0 quita la línea; por encima del stock disponible no cambia (outcome rejected).
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id         path  string                  true  "ID de sesión"
// @Param        productId  path  int                     true  "ID de producto"
// @Param        body       body  dto.SetQuantityRequest  true  "quantity"
// @Success      200        {object}  dto.CartChangeResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/lines/{productId} [put]
func (h *TransferHandler) SetQuantity(c *fiber.Ctx) error {
	productID, err := productIDParam(c)
	if err != nil {
		return badRequest(c, CodeValidation, "productId inválido")
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetQuantity(c.UserContext(), c.Params("id"), productID, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar línea del carrito
// @Tags         transfers
// @Produce      json
// @Param        id         path  string  true  "ID de sesión"
// @Param        productId  path  int     true  "ID de producto"
// @Success      200        {object}  dto.CartChangeResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/lines/{productId} [delete]
func (h *TransferHandler) RemoveLine(c *fiber.Ctx) error {
	productID, err := productIDParam(c)
	if err != nil {
		return badRequest(c, CodeValidation, "productId inválido")
	}
	out, err := h.uc.Remove(c.UserContext(), c.Params("id"), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar traslado
// @Description  Confirma el carrito y lo vacía. No descuenta stock del catálogo.
// @Tags         transfers
// @Produce      json
// @Param        id   path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SubmissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/submit [post]
func (h *TransferHandler) Submit(c *fiber.Ctx) error {
	// Sin token se conserva el operador con el que se abrió la sesión.
	var operator string
	if op := GetOperator(c); op.ID != AnonymousOperator.ID {
		operator = op.Name
	}
	out, err := h.uc.Submit(c.UserContext(), c.Params("id"), operator)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func productIDParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("productId"), 10, 64)
}
