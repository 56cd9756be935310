package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/auth"
	"github.com/jhoicas/stockbridge-api/internal/application/dto"
)

// AuthHandler emite tokens de operador.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Emitir token de operador
// @Description  Valida el PIN del operador y devuelve un Bearer token para atribuir los traslados.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "operator_id, pin"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.IssueToken(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
