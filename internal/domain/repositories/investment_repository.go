package repositories

import (
	"context"
	"time"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
)

// InvestmentRepository define a interface para os snapshots de portfólio.
// O sistema vivo só lê snapshots; a escrita existe para o seeder de demo.
type InvestmentRepository interface {
	Create(ctx context.Context, snapshot *entities.InvestmentSnapshot) error
	// FindLatest retorna o snapshot mais recente do usuário, ou nil
	FindLatest(ctx context.Context, userID string) (*entities.InvestmentSnapshot, error)
	// FindLatestBefore retorna o snapshot mais recente estritamente
	// anterior à data, ou nil
	FindLatestBefore(ctx context.Context, userID string, date time.Time) (*entities.InvestmentSnapshot, error)
	FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.InvestmentSnapshot, error)
}
