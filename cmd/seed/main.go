// Seeder de dados de demonstração: três contas com uma semana de uso de
// apps e um mês de snapshots de portfólio. Apaga os dados existentes.
package main

import (
	"context"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/domain/valueobjects"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/config"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/logging"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/persistence/postgres"
)

type demoAccount struct {
	userID        string
	name          string
	email         string
	pfp           string
	timeWeekly    float64
	chargedWeekly float64
	totalInvested float64
	position      int
	riskLevel     entities.RiskLevel
	trackedApps   []string
	// faixa de horas diárias por app
	dailyHours map[string][2]float64
	// curva do portfólio nos últimos 30 dias
	portfolioStart float64
	portfolioEnd   float64
	fluctuation    float64
}

var accounts = []demoAccount{
	{
		userID: "sarah.chen@example.com", name: "Sarah Chen",
		email: "sarah.chen@example.com",
		pfp:   "https://ui-avatars.com/api/?name=Sarah+Chen&background=4f46e5&color=fff",
		timeWeekly: 28.0, chargedWeekly: 56.0, totalInvested: 784.0,
		position: 2, riskLevel: entities.RiskMedium,
		trackedApps: []string{"Instagram", "TikTok", "YouTube"},
		dailyHours: map[string][2]float64{
			"Instagram": {1.0, 2.0},
			"TikTok":    {1.0, 2.0},
			"YouTube":   {1.0, 1.5},
		},
		portfolioStart: 650.0, portfolioEnd: 784.0, fluctuation: 0.02,
	},
	{
		userID: "marcus.j@example.com", name: "Marcus Johnson",
		email: "marcus.j@example.com",
		pfp:   "https://ui-avatars.com/api/?name=Marcus+Johnson&background=059669&color=fff",
		timeWeekly: 42.0, chargedWeekly: 84.0, totalInvested: 1176.0,
		position: 1, riskLevel: entities.RiskHigh,
		trackedApps: []string{"Instagram", "Twitter", "Reddit", "YouTube"},
		dailyHours: map[string][2]float64{
			"Instagram": {1.5, 2.0},
			"Twitter":   {1.0, 2.0},
			"Reddit":    {1.5, 2.0},
			"YouTube":   {1.5, 2.0},
		},
		portfolioStart: 920.0, portfolioEnd: 1176.0, fluctuation: 0.04,
	},
	{
		userID: "emma.w@example.com", name: "Emma Williams",
		email: "emma.w@example.com",
		pfp:   "https://ui-avatars.com/api/?name=Emma+Williams&background=dc2626&color=fff",
		timeWeekly: 21.0, chargedWeekly: 42.0, totalInvested: 546.0,
		position: 3, riskLevel: entities.RiskLow,
		trackedApps: []string{"Instagram", "Facebook"},
		dailyHours: map[string][2]float64{
			"Instagram": {1.0, 1.5},
			"Facebook":  {1.0, 1.5},
		},
		portfolioStart: 480.0, portfolioEnd: 546.0, fluctuation: 0.005,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		log.Fatal(err)
	}

	// Limpar dados existentes antes de semear
	for _, table := range []string{"app_time_history", "investment_history", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal(err)
		}
	}

	userRepo := postgres.NewUserRepository(db)
	appTimeRepo := postgres.NewAppTimeRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)

	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, account := range accounts {
		email, err := valueobjects.NewEmail(account.email)
		if err != nil {
			log.Fatal(err)
		}

		pfp := account.pfp
		position := account.position

		user := &entities.User{
			UserID:                 account.userID,
			Name:                   account.name,
			Email:                  email,
			Pfp:                    &pfp,
			TargetedAppsTimeWeekly: account.timeWeekly,
			AmountChargedWeekly:    account.chargedWeekly,
			TotalInvested:          account.totalInvested,
			LeaderboardID:          account.userID,
			LeaderboardPosition:    &position,
			InvestmentRiskLevel:    account.riskLevel,
			TrackedApps:            account.trackedApps,
			CreatedAt:              today.AddDate(0, 0, -60),
		}

		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal(err)
		}

		// Última semana de uso por app
		for dayOffset := 0; dayOffset < 7; dayOffset++ {
			date := today.AddDate(0, 0, -dayOffset)
			for appName, hoursRange := range account.dailyHours {
				hours := roundTo(hoursRange[0]+rand.Float64()*(hoursRange[1]-hoursRange[0]), 1)
				entry := entities.NewAppTimeEntry(user.UserID, date, appName, hours)
				if err := appTimeRepo.Upsert(ctx, entry); err != nil {
					log.Fatal(err)
				}
			}
		}

		// Último mês de snapshots, interpolando da abertura ao valor atual
		// com flutuação diária proporcional ao risco
		growth := (account.portfolioEnd - account.portfolioStart) / account.portfolioStart
		for dayOffset := 0; dayOffset < 30; dayOffset++ {
			date := today.AddDate(0, 0, -dayOffset)
			progress := float64(30-dayOffset) / 30
			base := account.portfolioStart + growth*account.portfolioStart*progress
			value := base * (1 + (rand.Float64()*2-1)*account.fluctuation)

			snapshot := entities.NewInvestmentSnapshot(user.UserID, date, roundTo(value, 2))
			if err := investmentRepo.Create(ctx, snapshot); err != nil {
				log.Fatal(err)
			}
		}

		logger.Info("seeded demo account", "user_id", user.UserID)
	}

	logger.Info("database seeded with demo data")
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
