package ds

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const RoleAdmin = "admin"

type JWTClaims struct {
	jwt.StandardClaims
	Role string `json:"role"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Role        string    `json:"role"`
}

type TokenRequest struct {
	Key string `json:"key" binding:"required"`
}
