package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
	"github.com/unplugapp/unplug-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model, err := r.toModel(user)
	if err != nil {
		return err
	}

	db := r.getDB(ctx)
	return db.Create(model).Error
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model, err := r.toModel(user)
	if err != nil {
		return err
	}

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *UserRepository) ListByTotalInvested(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := r.getDB(ctx)
	// user_id asc como desempate para ordem estável entre chamadas
	if err := db.Order("total_invested DESC, user_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) UpdateLeaderboardPosition(ctx context.Context, userID string, position int) error {
	db := r.getDB(ctx)
	return db.Model(&UserModel{}).
		Where("user_id = ?", userID).
		Update("leaderboard_position", position).Error
}

func (r *UserRepository) UpdateWeeklyTotals(ctx context.Context, userID string, timeWeekly, chargedWeekly float64) error {
	db := r.getDB(ctx)
	return db.Model(&UserModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"targeted_apps_time_weekly": timeWeekly,
			"amount_charged_weekly":     chargedWeekly,
		}).Error
}

func (r *UserRepository) UpdateRiskLevel(ctx context.Context, userID string, level entities.RiskLevel) error {
	db := r.getDB(ctx)
	return db.Model(&UserModel{}).
		Where("user_id = ?", userID).
		Update("investment_risk_level", string(level)).Error
}

func (r *UserRepository) UpdateTrackedApps(ctx context.Context, userID string, apps []string) error {
	payload, err := json.Marshal(apps)
	if err != nil {
		return err
	}

	db := r.getDB(ctx)
	return db.Model(&UserModel{}).
		Where("user_id = ?", userID).
		Update("tracked_apps", datatypes.JSON(payload)).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) (*UserModel, error) {
	apps := user.TrackedApps
	if apps == nil {
		apps = []string{}
	}

	payload, err := json.Marshal(apps)
	if err != nil {
		return nil, err
	}

	return &UserModel{
		UserID:                 user.UserID,
		Name:                   user.Name,
		Email:                  user.Email.String(),
		Pfp:                    user.Pfp,
		TargetedAppsTimeWeekly: user.TargetedAppsTimeWeekly,
		AmountChargedWeekly:    user.AmountChargedWeekly,
		TotalInvested:          user.TotalInvested,
		LeaderboardID:          user.LeaderboardID,
		LeaderboardPosition:    user.LeaderboardPosition,
		InvestmentRiskLevel:    string(user.InvestmentRiskLevel),
		TrackedApps:            datatypes.JSON(payload),
		CreatedAt:              user.CreatedAt.Unix(),
	}, nil
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	apps := []string{}
	if len(model.TrackedApps) > 0 {
		if err := json.Unmarshal(model.TrackedApps, &apps); err != nil {
			return nil, err
		}
	}

	return &entities.User{
		UserID:                 model.UserID,
		Name:                   model.Name,
		Email:                  email,
		Pfp:                    model.Pfp,
		TargetedAppsTimeWeekly: model.TargetedAppsTimeWeekly,
		AmountChargedWeekly:    model.AmountChargedWeekly,
		TotalInvested:          model.TotalInvested,
		LeaderboardID:          model.LeaderboardID,
		LeaderboardPosition:    model.LeaderboardPosition,
		InvestmentRiskLevel:    entities.RiskLevel(model.InvestmentRiskLevel),
		TrackedApps:            apps,
		CreatedAt:              time.Unix(model.CreatedAt, 0).UTC(),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
