package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
	"github.com/unplugapp/unplug-backend/internal/services"
)

// AuthHandler lida com o login
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login resolve o usuário pelo email (criando-o na primeira vez) e emite
// um token novo
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domainerrors.ErrMissingLoginData.Error()))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:   req.Email,
		Name:    req.Name,
		UserID:  req.ResolveUserID(),
		Picture: req.Picture,
	})
	if err != nil {
		if errs.Is(err, domainerrors.ErrMissingLoginData) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(user, token))
}
