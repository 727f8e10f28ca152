package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// SetJWTKey overrides the signing key; main wires the configured secret in
// after the env is loaded.
func SetJWTKey(key string) {
	jwtKey = []byte(key)
}

const (
	// ScopeGate unlocks the password-protected site; it carries no user.
	ScopeGate = "gate"
	// ScopeUser authenticates a registered account.
	ScopeUser = "user"
)

type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

// CreateGateToken issues the opaque unlock token handed out after a correct
// site password. Its presence client-side is the whole "unlocked" signal, so
// the expiry is generous.
func CreateGateToken() (string, error) {
	claims := &Claims{
		Scope: ScopeGate,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func CreateUserToken(userID uuid.UUID) (string, error) {
	claims := &Claims{
		UserID: userID.String(),
		Scope:  ScopeUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
