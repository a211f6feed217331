package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
)

// sessionClaims são as claims embutidas no token de sessão
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService implementa ports.TokenService com JWT HMAC-SHA256.
// Não há lista de revogação: a expiração é a única invalidação.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService cria um TokenService com o segredo compartilhado e a
// validade em dias dos tokens emitidos
func NewTokenService(secret string, expiryDays int) ports.TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryDays) * 24 * time.Hour,
	}
}

// Issue emite um token assinado com subject, email e expiração
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now().UTC()

	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify valida assinatura e expiração e retorna o subject (user_id).
// Qualquer falha (token malformado, assinatura inválida, expirado) vira
// ErrInvalidToken; o chamador responde 401.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return "", domainerrors.ErrInvalidToken
	}

	return claims.Subject, nil
}
