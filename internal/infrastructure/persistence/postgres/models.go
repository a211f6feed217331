package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	UserID                 string         `gorm:"column:user_id;type:varchar(255);primaryKey"`
	Name                   string         `gorm:"type:varchar(255);not null"`
	Email                  string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Pfp                    *string        `gorm:"type:varchar(500)"`
	TargetedAppsTimeWeekly float64        `gorm:"not null;default:0"`
	AmountChargedWeekly    float64        `gorm:"not null;default:0"`
	TotalInvested          float64        `gorm:"not null;default:0;index"`
	LeaderboardID          string         `gorm:"type:varchar(255)"`
	LeaderboardPosition    *int
	InvestmentRiskLevel    string         `gorm:"type:varchar(50);not null;default:'standard'"`
	TrackedApps            datatypes.JSON
	CreatedAt              int64          `gorm:"autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// AppTimeModel é o model GORM para o histórico diário de uso por app.
// A chave (user_id, date, app_name) é única: escritas fazem upsert.
type AppTimeModel struct {
	HistoryID      string    `gorm:"column:history_id;type:uuid;primaryKey"`
	UserID         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_apptime_user_date_app"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_apptime_user_date_app"`
	AppName        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_apptime_user_date_app"`
	TimeSpentHours float64   `gorm:"not null"`
	AmountCharged  float64   `gorm:"not null"`
}

func (AppTimeModel) TableName() string {
	return "app_time_history"
}

// InvestmentModel é o model GORM para os snapshots diários de portfólio
type InvestmentModel struct {
	InvestmentID   string    `gorm:"column:investment_id;type:uuid;primaryKey"`
	UserID         string    `gorm:"type:varchar(255);not null;index:idx_investment_user_date"`
	Date           time.Time `gorm:"type:date;not null;index:idx_investment_user_date"`
	PortfolioValue float64   `gorm:"not null"`
}

func (InvestmentModel) TableName() string {
	return "investment_history"
}
