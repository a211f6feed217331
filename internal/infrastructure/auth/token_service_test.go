package auth

import (
	"errors"
	"testing"
	"time"

	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService("test-secret", 7)

	t.Run("emite e verifica um token válido", func(t *testing.T) {
		token, err := service.Issue("user-1", "sarah@example.com")
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}
		if token == "" {
			t.Fatal("token vazio")
		}

		userID, err := service.Verify(token)
		if err != nil {
			t.Fatalf("falha ao verificar token: %v", err)
		}
		if userID != "user-1" {
			t.Errorf("esperava subject 'user-1', obteve '%s'", userID)
		}
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		// expiryDays negativo produz um token já vencido
		expired := NewTokenService("test-secret", -1)

		token, err := expired.Issue("user-1", "sarah@example.com")
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		if _, err := service.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken para token expirado, obteve %v", err)
		}
	})

	t.Run("rejeita assinatura de outro segredo", func(t *testing.T) {
		other := NewTokenService("other-secret", 7)

		token, err := other.Issue("user-1", "sarah@example.com")
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		if _, err := service.Verify(token); !errors.Is(err, domainerrors.ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken para assinatura inválida, obteve %v", err)
		}
	})

	t.Run("rejeita token malformado", func(t *testing.T) {
		if _, err := service.Verify("nem-de-longe-um-jwt"); !errors.Is(err, domainerrors.ErrInvalidToken) {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})

	t.Run("token expira na janela configurada", func(t *testing.T) {
		ts := &TokenService{secret: []byte("test-secret"), expiry: 7 * 24 * time.Hour}

		token, err := ts.Issue("user-1", "sarah@example.com")
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}
		if _, err := ts.Verify(token); err != nil {
			t.Errorf("token dentro da validade rejeitado: %v", err)
		}
	})
}
