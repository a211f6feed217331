package dto

import (
	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/services"
)

// PortfolioResponse é o resumo atual do portfólio
type PortfolioResponse struct {
	TotalValue    float64 `json:"total_value"`
	Change24h     float64 `json:"change_24h"`
	RiskLevel     string  `json:"risk_level"`
	TotalInvested float64 `json:"total_invested"`
}

// ToPortfolioResponse converte o resumo do serviço para a resposta da API
func ToPortfolioResponse(summary *services.PortfolioSummary) PortfolioResponse {
	return PortfolioResponse{
		TotalValue:    summary.TotalValue,
		Change24h:     summary.Change24h,
		RiskLevel:     string(summary.RiskLevel),
		TotalInvested: summary.TotalInvested,
	}
}

// SetupInvestmentRequest representa a escolha do nível de risco
type SetupInvestmentRequest struct {
	RiskLevel string `json:"risk_level" binding:"required,risklevel"`
}

// RiskLevelResponse confirma o nível de risco gravado
type RiskLevelResponse struct {
	RiskLevel string `json:"risk_level"`
}

// InvestmentSnapshotResponse representa um snapshot datado do portfólio
type InvestmentSnapshotResponse struct {
	Date           string  `json:"date"`
	PortfolioValue float64 `json:"portfolio_value"`
}

// InvestmentHistoryResponse embrulha o histórico de snapshots
type InvestmentHistoryResponse struct {
	History []InvestmentSnapshotResponse `json:"history"`
}

// ToInvestmentHistoryResponse converte os snapshots para a resposta
func ToInvestmentHistoryResponse(snapshots []*entities.InvestmentSnapshot) InvestmentHistoryResponse {
	history := make([]InvestmentSnapshotResponse, len(snapshots))
	for i, snapshot := range snapshots {
		history[i] = InvestmentSnapshotResponse{
			Date:           snapshot.Date.Format(DateLayout),
			PortfolioValue: snapshot.PortfolioValue,
		}
	}
	return InvestmentHistoryResponse{History: history}
}
