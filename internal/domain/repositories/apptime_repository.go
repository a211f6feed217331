package repositories

import (
	"context"
	"time"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
)

// AppTimeRepository define a interface para persistência do histórico de uso
type AppTimeRepository interface {
	// Upsert grava a entrada, substituindo qualquer linha existente para a
	// mesma chave (user_id, date, app_name).
	Upsert(ctx context.Context, entry *entities.AppTimeEntry) error
	// FindByDateRange retorna as entradas do usuário em [start, end],
	// ordenadas por data ascendente.
	FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]*entities.AppTimeEntry, error)
}
