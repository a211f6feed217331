package entities

import (
	"errors"
	"time"

	"github.com/unplugapp/unplug-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa uma conta monitorada pelo sistema
type User struct {
	UserID                 string
	Name                   string
	Email                  valueobjects.Email
	Pfp                    *string
	TargetedAppsTimeWeekly float64
	AmountChargedWeekly    float64
	TotalInvested          float64
	LeaderboardID          string
	LeaderboardPosition    *int
	InvestmentRiskLevel    RiskLevel
	TrackedApps            []string
	CreatedAt              time.Time
}

// NewUser cria um novo usuário com os defaults de primeira autenticação.
// O user_id cai para o email quando o provedor não envia um identificador.
func NewUser(userID, name string, email valueobjects.Email, pfp *string) *User {
	if userID == "" {
		userID = email.String()
	}

	return &User{
		UserID:              userID,
		Name:                name,
		Email:               email,
		Pfp:                 pfp,
		LeaderboardID:       userID,
		InvestmentRiskLevel: RiskStandard,
		TrackedApps:         []string{},
		CreatedAt:           time.Now().UTC(),
	}
}

// ReplaceTrackedApps substitui a lista inteira (PUT, não merge)
func (u *User) ReplaceTrackedApps(apps []string) {
	if apps == nil {
		apps = []string{}
	}
	u.TrackedApps = apps
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.UserID == "" {
		return errors.New("user_id is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if !u.InvestmentRiskLevel.IsValid() {
		return errors.New("invalid investment risk level")
	}

	return nil
}
