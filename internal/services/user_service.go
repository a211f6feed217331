package services

import (
	"context"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
)

// UserService contém a lógica de perfil e apps rastreados
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile busca o perfil completo do usuário
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// GetTrackedApps retorna a lista de apps rastreados do usuário
func (s *UserService) GetTrackedApps(ctx context.Context, userID string) ([]string, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.TrackedApps, nil
}

// ReplaceTrackedApps substitui a lista inteira de apps rastreados
func (s *UserService) ReplaceTrackedApps(ctx context.Context, userID string, apps []string) ([]string, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ReplaceTrackedApps(apps)
	if err := s.userRepo.UpdateTrackedApps(ctx, userID, user.TrackedApps); err != nil {
		return nil, err
	}

	return user.TrackedApps, nil
}
