package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
)

// InvestmentRepository implementa repositories.InvestmentRepository
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository cria um novo InvestmentRepository
func NewInvestmentRepository(db *gorm.DB) repositories.InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, snapshot *entities.InvestmentSnapshot) error {
	model := r.toModel(snapshot)
	if model.InvestmentID == "" {
		model.InvestmentID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	snapshot.InvestmentID = model.InvestmentID
	return nil
}

func (r *InvestmentRepository) FindLatest(ctx context.Context, userID string) (*entities.InvestmentSnapshot, error) {
	var model InvestmentModel

	db := r.getDB(ctx)
	err := db.
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *InvestmentRepository) FindLatestBefore(ctx context.Context, userID string, date time.Time) (*entities.InvestmentSnapshot, error) {
	var model InvestmentModel

	db := r.getDB(ctx)
	err := db.
		Where("user_id = ? AND date < ?", userID, date).
		Order("date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *InvestmentRepository) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.InvestmentSnapshot, error) {
	var models []*InvestmentModel

	db := r.getDB(ctx)
	err := db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	snapshots := make([]*entities.InvestmentSnapshot, 0, len(models))
	for _, model := range models {
		snapshots = append(snapshots, r.toEntity(model))
	}

	return snapshots, nil
}

func (r *InvestmentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *InvestmentRepository) toModel(snapshot *entities.InvestmentSnapshot) *InvestmentModel {
	return &InvestmentModel{
		InvestmentID:   snapshot.InvestmentID,
		UserID:         snapshot.UserID,
		Date:           snapshot.Date,
		PortfolioValue: snapshot.PortfolioValue,
	}
}

func (r *InvestmentRepository) toEntity(model *InvestmentModel) *entities.InvestmentSnapshot {
	return &entities.InvestmentSnapshot{
		InvestmentID:   model.InvestmentID,
		UserID:         model.UserID,
		Date:           model.Date,
		PortfolioValue: model.PortfolioValue,
	}
}
