package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad del operador.
// Solo atribuye acciones (quién creó un traslado); no hay roles.
type Claims struct {
	jwt.RegisteredClaims
	OperatorID   string `json:"operator_id"`
	OperatorName string `json:"operator_name"`
	Store        string `json:"store,omitempty"`
}

// Operator identidad extraída de un token válido.
type Operator struct {
	ID    string
	Name  string
	Store string
}

// Generate genera un token HS256 firmado para el operador.
func Generate(secret string, op Operator, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   op.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		OperatorID:   op.ID,
		OperatorName: op.Name,
		Store:        op.Store,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el operador.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Operator, error) {
	if secret == "" {
		return Operator{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Operator{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.OperatorID == "" {
		return Operator{}, fmt.Errorf("claims inválidos")
	}
	return Operator{ID: claims.OperatorID, Name: claims.OperatorName, Store: claims.Store}, nil
}
