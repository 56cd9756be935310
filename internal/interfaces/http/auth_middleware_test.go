package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	apphttp "github.com/jhoicas/stockbridge-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stockbridge-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "stockbridge-test"
)

// buildMiddlewareApp ruta dummy que devuelve el operador atribuido.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.OperatorMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		op := apphttp.GetOperator(c)
		return c.JSON(fiber.Map{"id": op.ID, "name": op.Name})
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body := map[string]string{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp, body
}

func TestOperatorMiddleware_SinTokenEsAnonimo(t *testing.T) {
	resp, body := whoami(t, buildMiddlewareApp(), "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "anonymous", body["id"])
}

func TestOperatorMiddleware_TokenValido(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Operator{ID: "op-002", Name: "Jane Smith", Store: "Store B"}, testIssuer, 60)
	require.NoError(t, err)

	resp, body := whoami(t, buildMiddlewareApp(), "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "op-002", body["id"])
	assert.Equal(t, "Jane Smith", body["name"])
}

func TestOperatorMiddleware_TokenInvalido(t *testing.T) {
	other, err := pkgjwt.Generate("another-secret", pkgjwt.Operator{ID: "op-001", Name: "John Doe"}, testIssuer, 60)
	require.NoError(t, err)
	cases := map[string]string{
		"malformado":   "Bearer not-a-jwt",
		"sin esquema":  "Token abc",
		"bearer vacío": "Bearer ",
		"otra firma":   "Bearer " + other,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", header)
			resp, err := buildMiddlewareApp().Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var e dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			assert.Equal(t, apphttp.CodeUnauthorized, e.Code)
		})
	}
}

func TestOperatorMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Operator{ID: "op-001", Name: "John Doe"}, testIssuer, -5)
	require.NoError(t, err)
	resp, _ := whoami(t, buildMiddlewareApp(), "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
