package entities

import (
	"math"
	"time"
)

// InvestmentSnapshot representa o valor do portfólio simulado em uma data
type InvestmentSnapshot struct {
	InvestmentID   string
	UserID         string
	Date           time.Time
	PortfolioValue float64
}

// NewInvestmentSnapshot cria um snapshot datado do portfólio
func NewInvestmentSnapshot(userID string, date time.Time, portfolioValue float64) *InvestmentSnapshot {
	return &InvestmentSnapshot{
		UserID:         userID,
		Date:           normalizeDate(date),
		PortfolioValue: portfolioValue,
	}
}

// Change24h calcula a variação percentual entre dois snapshots, arredondada
// a 2 casas. Valor anterior 0 resulta em 0 (nunca divisão por zero).
func Change24h(latest, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	change := (latest - previous) / previous * 100
	return math.Round(change*100) / 100
}
