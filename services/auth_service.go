package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ascent-cms/config"
	"github.com/ascent-cms/dto"
)

// RoleAdmin is the only session role
const RoleAdmin = "admin"

// ErrInvalidKey is returned for a wrong admin key
var ErrInvalidKey = errors.New("invalid admin key")

// AuthService checks the shared admin key and issues session tokens
type AuthService struct {
	keyHash []byte
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewAuthService creates the session gate. A plain ADMIN_KEY is hashed once here
// so both configurations are compared the same way.
func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	hash := []byte(cfg.AdminKeyHash)
	if len(hash) == 0 {
		if cfg.AdminKey == "" {
			return nil, errors.New("ADMIN_KEY or ADMIN_KEY_HASH not set")
		}
		generated, err := HashKey(cfg.AdminKey)
		if err != nil {
			return nil, err
		}
		hash = []byte(generated)
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{keyHash: hash, secret: []byte(cfg.JWTSecret), ttl: ttl, now: time.Now}, nil
}

// HashKey returns the bcrypt hash of an admin key
func HashKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash key: %w", err)
	}
	return string(hashed), nil
}

// TTL is the lifetime of issued sessions
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

// Login checks the key and returns a session token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(req.Key)); err != nil {
		return nil, ErrInvalidKey
	}

	token, expiresAt, err := s.GenerateToken()
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// GenerateToken generates a new admin JWT
func (s *AuthService) GenerateToken() (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := dto.TokenClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   RoleAdmin,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Role != RoleAdmin {
		return nil, errors.New("token does not carry the admin role")
	}
	return claims, nil
}
