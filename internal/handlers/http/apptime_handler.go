package http

import (
	errs "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
	"github.com/unplugapp/unplug-backend/internal/services"
)

const defaultAppTimeDays = 7

// AppTimeHandler lida com o histórico de uso de apps
type AppTimeHandler struct {
	appTimeService *services.AppTimeService
}

// NewAppTimeHandler cria um novo AppTimeHandler
func NewAppTimeHandler(appTimeService *services.AppTimeService) *AppTimeHandler {
	return &AppTimeHandler{appTimeService: appTimeService}
}

// GetHistory retorna as entradas dos últimos ?days=N dias (default 7)
func (h *AppTimeHandler) GetHistory(c *gin.Context) {
	days := queryDays(c, defaultAppTimeDays)

	entries, err := h.appTimeService.GetHistory(c.Request.Context(), currentUserID(c), days)
	if err != nil {
		if errs.Is(err, domainerrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToAppTimeHistoryResponse(entries))
}

// RecordEntry faz upsert da medição diária e recomputa as somas semanais
func (h *AppTimeHandler) RecordEntry(c *gin.Context) {
	var req dto.RecordAppTimeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domainerrors.ErrMissingEntryData.Error()))
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid date format, expected YYYY-MM-DD"))
		return
	}

	entry, err := h.appTimeService.RecordEntry(c.Request.Context(), currentUserID(c), date, req.AppName, req.TimeSpentHours)
	if err != nil {
		if errs.Is(err, domainerrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToAppTimeEntryResponse(entry))
}
