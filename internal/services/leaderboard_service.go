package services

import (
	"context"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
)

// LeaderboardService ranqueia usuários por total investido
type LeaderboardService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewLeaderboardService cria um novo LeaderboardService
func NewLeaderboardService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *LeaderboardService {
	return &LeaderboardService{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
	}
}

// GetLeaderboard ordena todos os usuários por total_invested desc e
// persiste a posição 1-based de cada um. Toda leitura reescreve as
// posições da tabela inteira; a transação única evita ranks parciais
// entre leituras concorrentes.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		users, err = s.userRepo.ListByTotalInvested(txCtx)
		if err != nil {
			return err
		}

		for i, user := range users {
			position := i + 1
			if err := s.userRepo.UpdateLeaderboardPosition(txCtx, user.UserID, position); err != nil {
				return err
			}
			user.LeaderboardPosition = &position
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
