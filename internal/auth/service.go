package auth

import (
	"fmt"
	"time"

	apperrors "netlist-visualizer-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AnonymousUser is the identity assigned to unauthenticated requests.
const AnonymousUser = "anonymous"

// AuthService validates and issues the HS256 bearer tokens used by the
// frontend. The user id travels in the standard "sub" claim.
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

// ValidateJWT returns the subject of a valid token.
func (s *AuthService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", apperrors.ErrInvalidToken
	}
	return subject, nil
}

// GenerateToken issues a token for the given user id.
func (s *AuthService) GenerateToken(userID string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
