package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
	"github.com/unplugapp/unplug-backend/internal/services"
)

const defaultInvestmentDays = 30

// InvestmentHandler lida com o portfólio simulado
type InvestmentHandler struct {
	investmentService *services.InvestmentService
}

// NewInvestmentHandler cria um novo InvestmentHandler
func NewInvestmentHandler(investmentService *services.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// GetPortfolio retorna o resumo atual do portfólio
func (h *InvestmentHandler) GetPortfolio(c *gin.Context) {
	summary, err := h.investmentService.GetPortfolio(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errs.Is(err, domainerrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToPortfolioResponse(summary))
}

// SetupInvestments sobrescreve o nível de risco do usuário
func (h *InvestmentHandler) SetupInvestments(c *gin.Context) {
	var req dto.SetupInvestmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(domainerrors.ErrInvalidRiskLevel.Error()))
		return
	}

	level, err := h.investmentService.SetupRiskLevel(c.Request.Context(), currentUserID(c), entities.RiskLevel(req.RiskLevel))
	if err != nil {
		switch {
		case errs.Is(err, domainerrors.ErrInvalidRiskLevel):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		case errs.Is(err, domainerrors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.RiskLevelResponse{RiskLevel: string(level)})
}

// GetHistory retorna os snapshots dos últimos ?days=N dias (default 30)
func (h *InvestmentHandler) GetHistory(c *gin.Context) {
	days := queryDays(c, defaultInvestmentDays)

	snapshots, err := h.investmentService.GetHistory(c.Request.Context(), currentUserID(c), days)
	if err != nil {
		if errs.Is(err, domainerrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentHistoryResponse(snapshots))
}
