package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest carries the shared admin key
type LoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionResponse describes the current admin session
type SessionResponse struct {
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
