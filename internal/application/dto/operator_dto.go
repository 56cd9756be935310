package dto

// TokenRequest body de POST /api/auth/token.
type TokenRequest struct {
	OperatorID string `json:"operator_id" validate:"required"`
	PIN        string `json:"pin" validate:"required"`
}

// OperatorResponse operador sin hash de PIN.
type OperatorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Store string `json:"store"`
}

// TokenResponse salida con token JWT.
type TokenResponse struct {
	Token    string           `json:"token"`
	Operator OperatorResponse `json:"operator"`
}
