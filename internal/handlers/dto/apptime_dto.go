package dto

import "github.com/unplugapp/unplug-backend/internal/domain/entities"

// RecordAppTimeRequest representa o envio de uma medição diária de uso
type RecordAppTimeRequest struct {
	Date           string  `json:"date" binding:"required"`
	AppName        string  `json:"app_name" binding:"required"`
	TimeSpentHours float64 `json:"time_spent_hours" binding:"min=0"`
}

// AppTimeEntryResponse representa uma entrada do histórico de uso
type AppTimeEntryResponse struct {
	Date           string  `json:"date"`
	AppName        string  `json:"app_name"`
	TimeSpentHours float64 `json:"time_spent_hours"`
	AmountCharged  float64 `json:"amount_charged"`
}

// AppTimeHistoryResponse embrulha o histórico de uso
type AppTimeHistoryResponse struct {
	History []AppTimeEntryResponse `json:"history"`
}

// ToAppTimeEntryResponse converte a entidade para a resposta da API
func ToAppTimeEntryResponse(entry *entities.AppTimeEntry) AppTimeEntryResponse {
	return AppTimeEntryResponse{
		Date:           entry.Date.Format(DateLayout),
		AppName:        entry.AppName,
		TimeSpentHours: entry.TimeSpentHours,
		AmountCharged:  entry.AmountCharged,
	}
}

// ToAppTimeHistoryResponse converte a lista de entradas para a resposta
func ToAppTimeHistoryResponse(entries []*entities.AppTimeEntry) AppTimeHistoryResponse {
	history := make([]AppTimeEntryResponse, len(entries))
	for i, entry := range entries {
		history[i] = ToAppTimeEntryResponse(entry)
	}
	return AppTimeHistoryResponse{History: history}
}
