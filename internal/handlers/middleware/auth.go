package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
)

// UserIDContextKey é a chave do contexto gin onde o subject do token fica
// disponível para os handlers
const UserIDContextKey = "user_id"

// AuthMiddleware protege rotas exigindo um bearer token válido
type AuthMiddleware struct {
	tokens ports.TokenService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth verifica o header Authorization e coloca o user_id do token
// no contexto. Sem token, token malformado, assinatura inválida ou
// expirado: 401 e a requisição não prossegue.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(domainerrors.ErrNoToken.Error()))
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(domainerrors.ErrInvalidToken.Error()))
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// extractBearerToken extrai o token do header "Authorization: Bearer <t>"
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
