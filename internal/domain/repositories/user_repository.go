package repositories

import (
	"context"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, userID string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	// ListByTotalInvested retorna todos os usuários ordenados por
	// total_invested desc (empate: user_id asc, ordem estável).
	ListByTotalInvested(ctx context.Context) ([]*entities.User, error)
	UpdateLeaderboardPosition(ctx context.Context, userID string, position int) error
	UpdateWeeklyTotals(ctx context.Context, userID string, timeWeekly, chargedWeekly float64) error
	UpdateRiskLevel(ctx context.Context, userID string, level entities.RiskLevel) error
	UpdateTrackedApps(ctx context.Context, userID string, apps []string) error
}
