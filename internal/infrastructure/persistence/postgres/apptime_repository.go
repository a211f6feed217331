package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
)

// AppTimeRepository implementa repositories.AppTimeRepository
type AppTimeRepository struct {
	db *gorm.DB
}

// NewAppTimeRepository cria um novo AppTimeRepository
func NewAppTimeRepository(db *gorm.DB) repositories.AppTimeRepository {
	return &AppTimeRepository{db: db}
}

// Upsert grava a entrada; conflito na chave (user_id, date, app_name)
// sobrescreve horas e cobrança em vez de criar linha nova
func (r *AppTimeRepository) Upsert(ctx context.Context, entry *entities.AppTimeEntry) error {
	model := r.toModel(entry)
	if model.HistoryID == "" {
		model.HistoryID = uuid.NewString()
	}

	db := r.getDB(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "app_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"time_spent_hours",
			"amount_charged",
		}),
	}).Create(model).Error
	if err != nil {
		return err
	}

	entry.HistoryID = model.HistoryID
	return nil
}

func (r *AppTimeRepository) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.AppTimeEntry, error) {
	var models []*AppTimeModel

	db := r.getDB(ctx)
	err := db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.AppTimeEntry, 0, len(models))
	for _, model := range models {
		entries = append(entries, r.toEntity(model))
	}

	return entries, nil
}

func (r *AppTimeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *AppTimeRepository) toModel(entry *entities.AppTimeEntry) *AppTimeModel {
	return &AppTimeModel{
		HistoryID:      entry.HistoryID,
		UserID:         entry.UserID,
		Date:           entry.Date,
		AppName:        entry.AppName,
		TimeSpentHours: entry.TimeSpentHours,
		AmountCharged:  entry.AmountCharged,
	}
}

func (r *AppTimeRepository) toEntity(model *AppTimeModel) *entities.AppTimeEntry {
	return &entities.AppTimeEntry{
		HistoryID:      model.HistoryID,
		UserID:         model.UserID,
		Date:           model.Date,
		AppName:        model.AppName,
		TimeSpentHours: model.TimeSpentHours,
		AmountCharged:  model.AmountCharged,
	}
}
