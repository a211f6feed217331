package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unplugapp/unplug-backend/internal/handlers/middleware"
)

// queryDays lê o parâmetro ?days=N, caindo para o default quando ausente
// ou não numérico
func queryDays(c *gin.Context, defaultDays int) int {
	raw := c.Query("days")
	if raw == "" {
		return defaultDays
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return defaultDays
	}

	return days
}

// currentUserID retorna o user_id colocado no contexto pelo middleware de
// autenticação
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDContextKey)
}
