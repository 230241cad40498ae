package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject is the only subject allowed to mutate phrases
const AdminSubject = "admin"

// ErrAuthDisabled is returned when no signing secret is configured
var ErrAuthDisabled = errors.New("admin auth is disabled")

// JWTService handles admin token generation and validation
type JWTService struct {
	secret     []byte
	expiration time.Duration
}

// NewJWTService creates a new JWT service. An empty secret disables auth.
func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Enabled reports whether mutating routes require a token
func (j *JWTService) Enabled() bool {
	return len(j.secret) > 0
}

// GenerateToken generates an admin token
func (j *JWTService) GenerateToken() (string, error) {
	if !j.Enabled() {
		return "", ErrAuthDisabled
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   AdminSubject,
		Issuer:    "phrase-svc",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates an admin token
func (j *JWTService) ValidateToken(tokenString string) error {
	if !j.Enabled() {
		return ErrAuthDisabled
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})

	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	if claims.Subject != AdminSubject {
		return fmt.Errorf("unexpected subject %q", claims.Subject)
	}

	return nil
}
