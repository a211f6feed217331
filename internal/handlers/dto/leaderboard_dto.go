package dto

import "github.com/unplugapp/unplug-backend/internal/domain/entities"

// LeaderboardEntryResponse representa um usuário ranqueado
type LeaderboardEntryResponse struct {
	UserID                 string   `json:"user_id"`
	Name                   string   `json:"name"`
	Pfp                    *string  `json:"pfp"`
	TargetedAppsTimeWeekly float64  `json:"targeted_apps_time_weekly"`
	AmountChargedWeekly    float64  `json:"amount_charged_weekly"`
	TotalInvested          float64  `json:"total_invested"`
	LeaderboardPosition    *int     `json:"leaderboard_position"`
	TrackedApps            []string `json:"tracked_apps"`
}

// LeaderboardResponse embrulha o ranking completo
type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntryResponse `json:"leaderboard"`
}

// ToLeaderboardResponse converte os usuários já ranqueados para a resposta
func ToLeaderboardResponse(users []*entities.User) LeaderboardResponse {
	leaderboard := make([]LeaderboardEntryResponse, len(users))
	for i, user := range users {
		apps := user.TrackedApps
		if apps == nil {
			apps = []string{}
		}

		leaderboard[i] = LeaderboardEntryResponse{
			UserID:                 user.UserID,
			Name:                   user.Name,
			Pfp:                    user.Pfp,
			TargetedAppsTimeWeekly: user.TargetedAppsTimeWeekly,
			AmountChargedWeekly:    user.AmountChargedWeekly,
			TotalInvested:          user.TotalInvested,
			LeaderboardPosition:    user.LeaderboardPosition,
			TrackedApps:            apps,
		}
	}
	return LeaderboardResponse{Leaderboard: leaderboard}
}
