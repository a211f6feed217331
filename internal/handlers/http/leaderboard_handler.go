package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
	"github.com/unplugapp/unplug-backend/internal/services"
)

// LeaderboardHandler lida com o ranking por total investido
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

// NewLeaderboardHandler cria um novo LeaderboardHandler
func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard retorna todos os usuários ranqueados. Cada leitura
// persiste as posições recalculadas.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	users, err := h.leaderboardService.GetLeaderboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaderboardResponse(users))
}
