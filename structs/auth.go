package structs

import (
	"time"

	"github.com/google/uuid"
)

type AuthClaims struct {
	Sub  string    `json:"sub"`
	Role string    `json:"role"`
	Iat  time.Time `json:"iat"`
	Exp  time.Time `json:"exp"`
	Jti  uuid.UUID `json:"jti"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
