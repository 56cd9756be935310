package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockbridge-api/internal/application/dto"
	"github.com/jhoicas/stockbridge-api/internal/domain"
	"github.com/jhoicas/stockbridge-api/internal/domain/repository"
	"github.com/jhoicas/stockbridge-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase identificación de operadores por PIN. El token solo atribuye los traslados
// al operador; no hay roles ni permisos.
type AuthUseCase struct {
	operators repository.OperatorRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operators repository.OperatorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operators: operators, jwtCfg: jwtCfg}
}

// IssueToken verifica el PIN con bcrypt y firma un JWT con id, nombre y tienda del operador.
// Operador inexistente o PIN incorrecto: domain.ErrUnauthorized (no se distingue cuál).
func (uc *AuthUseCase) IssueToken(ctx context.Context, in dto.TokenRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(in.OperatorID) == "" || in.PIN == "" {
		return nil, domain.ErrInvalidInput
	}
	op, err := uc.operators.GetByID(ctx, in.OperatorID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PINHash), []byte(in.PIN)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Operator{ID: op.ID, Name: op.Name, Store: op.Store}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		Token:    token,
		Operator: dto.OperatorResponse{ID: op.ID, Name: op.Name, Store: op.Store},
	}, nil
}
