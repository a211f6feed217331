package services

import (
	"context"
	"time"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
)

// AppTimeService contém a lógica do histórico de uso e das somas semanais
type AppTimeService struct {
	userRepo    repositories.UserRepository
	appTimeRepo repositories.AppTimeRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewAppTimeService cria um novo AppTimeService
func NewAppTimeService(
	userRepo repositories.UserRepository,
	appTimeRepo repositories.AppTimeRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AppTimeService {
	return &AppTimeService{
		userRepo:    userRepo,
		appTimeRepo: appTimeRepo,
		uow:         uow,
		logger:      logger,
	}
}

// GetHistory retorna as entradas do usuário nos últimos N dias, ordenadas
// por data ascendente
func (s *AppTimeService) GetHistory(ctx context.Context, userID string, days int) ([]*entities.AppTimeEntry, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	return s.appTimeRepo.FindByDateRange(ctx, userID, start, end)
}

// RecordEntry faz upsert da entrada (user, date, app) e recomputa as somas
// semanais do usuário sobre a janela segunda..domingo que contém a data.
// As somas refletem apenas a semana da data enviada, não necessariamente a
// semana corrente. Upsert e recomputação rodam em uma única transação.
func (s *AppTimeService) RecordEntry(ctx context.Context, userID string, date time.Time, appName string, timeSpentHours float64) (*entities.AppTimeEntry, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	entry := entities.NewAppTimeEntry(userID, date, appName, timeSpentHours)

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.appTimeRepo.Upsert(txCtx, entry); err != nil {
			return err
		}

		weekStart, weekEnd := entities.WeekWindow(entry.Date)
		weekEntries, err := s.appTimeRepo.FindByDateRange(txCtx, userID, weekStart, weekEnd)
		if err != nil {
			return err
		}

		var timeWeekly, chargedWeekly float64
		for _, e := range weekEntries {
			timeWeekly += e.TimeSpentHours
			chargedWeekly += e.AmountCharged
		}

		return s.userRepo.UpdateWeeklyTotals(txCtx, userID, timeWeekly, chargedWeekly)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
