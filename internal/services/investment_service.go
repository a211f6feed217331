package services

import (
	"context"
	"time"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
)

// InvestmentService contém a lógica do portfólio simulado
type InvestmentService struct {
	userRepo       repositories.UserRepository
	investmentRepo repositories.InvestmentRepository
	logger         ports.Logger
}

// NewInvestmentService cria um novo InvestmentService
func NewInvestmentService(
	userRepo repositories.UserRepository,
	investmentRepo repositories.InvestmentRepository,
	logger ports.Logger,
) *InvestmentService {
	return &InvestmentService{
		userRepo:       userRepo,
		investmentRepo: investmentRepo,
		logger:         logger,
	}
}

// PortfolioSummary é o resumo atual do portfólio de um usuário
type PortfolioSummary struct {
	TotalValue    float64
	Change24h     float64
	RiskLevel     entities.RiskLevel
	TotalInvested float64
}

// GetPortfolio monta o resumo a partir do snapshot mais recente. Sem
// snapshot algum, valor e variação são zero. A variação compara com o
// snapshot mais recente estritamente anterior ao último.
func (s *InvestmentService) GetPortfolio(ctx context.Context, userID string) (*PortfolioSummary, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	summary := &PortfolioSummary{
		RiskLevel:     user.InvestmentRiskLevel,
		TotalInvested: user.TotalInvested,
	}

	latest, err := s.investmentRepo.FindLatest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return summary, nil
	}

	summary.TotalValue = latest.PortfolioValue

	previous, err := s.investmentRepo.FindLatestBefore(ctx, userID, latest.Date)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		summary.Change24h = entities.Change24h(latest.PortfolioValue, previous.PortfolioValue)
	}

	return summary, nil
}

// SetupRiskLevel sobrescreve o nível de risco do usuário
func (s *InvestmentService) SetupRiskLevel(ctx context.Context, userID string, level entities.RiskLevel) (entities.RiskLevel, error) {
	if !level.IsValid() {
		return "", domainerrors.ErrInvalidRiskLevel
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domainerrors.ErrUserNotFound
	}

	if err := s.userRepo.UpdateRiskLevel(ctx, userID, level); err != nil {
		return "", err
	}

	return level, nil
}

// GetHistory retorna os snapshots dos últimos N dias, ordenados por data
// ascendente
func (s *InvestmentService) GetHistory(ctx context.Context, userID string, days int) ([]*entities.InvestmentSnapshot, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	return s.investmentRepo.FindByDateRange(ctx, userID, start, end)
}
