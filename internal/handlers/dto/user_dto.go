package dto

import "github.com/unplugapp/unplug-backend/internal/domain/entities"

// ProfileResponse representa a projeção completa do perfil
type ProfileResponse struct {
	UserID                 string   `json:"user_id"`
	Name                   string   `json:"name"`
	Email                  string   `json:"email"`
	Pfp                    *string  `json:"pfp"`
	TargetedAppsTimeWeekly float64  `json:"targeted_apps_time_weekly"`
	AmountChargedWeekly    float64  `json:"amount_charged_weekly"`
	TotalInvested          float64  `json:"total_invested"`
	LeaderboardPosition    *int     `json:"leaderboard_position"`
	InvestmentRiskLevel    string   `json:"investment_risk_level"`
	TrackedApps            []string `json:"tracked_apps"`
}

// ToProfileResponse converte a entidade User para ProfileResponse
func ToProfileResponse(user *entities.User) ProfileResponse {
	apps := user.TrackedApps
	if apps == nil {
		apps = []string{}
	}

	return ProfileResponse{
		UserID:                 user.UserID,
		Name:                   user.Name,
		Email:                  user.Email.String(),
		Pfp:                    user.Pfp,
		TargetedAppsTimeWeekly: user.TargetedAppsTimeWeekly,
		AmountChargedWeekly:    user.AmountChargedWeekly,
		TotalInvested:          user.TotalInvested,
		LeaderboardPosition:    user.LeaderboardPosition,
		InvestmentRiskLevel:    string(user.InvestmentRiskLevel),
		TrackedApps:            apps,
	}
}

// TrackedAppsRequest representa a substituição da lista de apps (PUT)
type TrackedAppsRequest struct {
	TrackedApps []string `json:"tracked_apps"`
}

// TrackedAppsResponse representa a lista de apps rastreados
type TrackedAppsResponse struct {
	TrackedApps []string `json:"tracked_apps"`
}
