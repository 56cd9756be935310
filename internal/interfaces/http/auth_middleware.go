package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/pkg/jwt"
)

// LocalOperator key de c.Locals con el jwt.Operator de la petición.
const LocalOperator = "operator"

// AnonymousOperator atribución de las peticiones sin token.
var AnonymousOperator = jwt.Operator{ID: "anonymous", Name: "anonymous"}

// OperatorMiddleware atribuye la petición a un operador. Sin Authorization la petición sigue como
// anónima; un token mal formado, expirado o con firma incorrecta corta con 401. No hay roles.
func OperatorMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			c.Locals(LocalOperator, AnonymousOperator)
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "formato: Bearer <token>"})
		}
		op, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "token inválido o expirado"})
		}
		c.Locals(LocalOperator, op)
		return c.Next()
	}
}

// GetOperator devuelve el operador de la petición (anónimo si el middleware no corrió).
func GetOperator(c *fiber.Ctx) jwt.Operator {
	if op, ok := c.Locals(LocalOperator).(jwt.Operator); ok {
		return op
	}
	return AnonymousOperator
}
