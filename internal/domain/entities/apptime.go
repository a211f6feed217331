package entities

import "time"

// ChargeRatePerHour é a taxa cobrada por hora de uso rastreado (£2/h)
const ChargeRatePerHour = 2.0

// AppTimeEntry representa o uso de um app por um usuário em uma data.
// Existe no máximo uma entrada por (user_id, date, app_name).
type AppTimeEntry struct {
	HistoryID      string
	UserID         string
	Date           time.Time
	AppName        string
	TimeSpentHours float64
	AmountCharged  float64
}

// NewAppTimeEntry cria uma entrada com a cobrança calculada pela taxa fixa
func NewAppTimeEntry(userID string, date time.Time, appName string, timeSpentHours float64) *AppTimeEntry {
	return &AppTimeEntry{
		UserID:         userID,
		Date:           normalizeDate(date),
		AppName:        appName,
		TimeSpentHours: timeSpentHours,
		AmountCharged:  timeSpentHours * ChargeRatePerHour,
	}
}

// WeekWindow retorna a janela segunda..domingo que contém a data.
// A segunda-feira tem índice 0 (time.Monday no Go é 1, domingo é 0).
func WeekWindow(date time.Time) (start, end time.Time) {
	date = normalizeDate(date)
	offset := (int(date.Weekday()) + 6) % 7
	start = date.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// normalizeDate trunca para meia-noite UTC, já que o domínio só conhece datas
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
