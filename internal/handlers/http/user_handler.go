package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
	"github.com/unplugapp/unplug-backend/internal/services"
)

// UserHandler lida com perfil e apps rastreados
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile retorna a projeção completa do usuário autenticado
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errs.Is(err, domainerrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}

// GetTrackedApps retorna a lista de apps rastreados
func (h *UserHandler) GetTrackedApps(c *gin.Context) {
	apps, err := h.userService.GetTrackedApps(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errs.Is(err, domainerrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.TrackedAppsResponse{TrackedApps: apps})
}

// ReplaceTrackedApps substitui a lista inteira de apps rastreados (PUT,
// não merge)
func (h *UserHandler) ReplaceTrackedApps(c *gin.Context) {
	var req dto.TrackedAppsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	apps, err := h.userService.ReplaceTrackedApps(c.Request.Context(), currentUserID(c), req.TrackedApps)
	if err != nil {
		if errs.Is(err, domainerrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.TrackedAppsResponse{TrackedApps: apps})
}
