package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
)

// Fakes em memória para testar os serviços sem banco.

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if _, exists := r.users[user.UserID]; exists {
		return fmt.Errorf("duplicate user_id %s", user.UserID)
	}
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, userID string) (*entities.User, error) {
	return r.users[userID], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepo) ListByTotalInvested(_ context.Context) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].TotalInvested != users[j].TotalInvested {
			return users[i].TotalInvested > users[j].TotalInvested
		}
		return users[i].UserID < users[j].UserID
	})
	return users, nil
}

func (r *fakeUserRepo) UpdateLeaderboardPosition(_ context.Context, userID string, position int) error {
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	user.LeaderboardPosition = &position
	return nil
}

func (r *fakeUserRepo) UpdateWeeklyTotals(_ context.Context, userID string, timeWeekly, chargedWeekly float64) error {
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	user.TargetedAppsTimeWeekly = timeWeekly
	user.AmountChargedWeekly = chargedWeekly
	return nil
}

func (r *fakeUserRepo) UpdateRiskLevel(_ context.Context, userID string, level entities.RiskLevel) error {
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	user.InvestmentRiskLevel = level
	return nil
}

func (r *fakeUserRepo) UpdateTrackedApps(_ context.Context, userID string, apps []string) error {
	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	user.TrackedApps = apps
	return nil
}

type fakeAppTimeRepo struct {
	entries map[string]*entities.AppTimeEntry
	counter int
}

func newFakeAppTimeRepo() *fakeAppTimeRepo {
	return &fakeAppTimeRepo{entries: make(map[string]*entities.AppTimeEntry)}
}

func appTimeKey(userID string, date time.Time, appName string) string {
	return fmt.Sprintf("%s|%s|%s", userID, date.Format("2006-01-02"), appName)
}

func (r *fakeAppTimeRepo) Upsert(_ context.Context, entry *entities.AppTimeEntry) error {
	key := appTimeKey(entry.UserID, entry.Date, entry.AppName)
	if existing, ok := r.entries[key]; ok {
		entry.HistoryID = existing.HistoryID
	} else {
		r.counter++
		entry.HistoryID = fmt.Sprintf("history-%d", r.counter)
	}
	copied := *entry
	r.entries[key] = &copied
	return nil
}

func (r *fakeAppTimeRepo) FindByDateRange(_ context.Context, userID string, start, end time.Time) ([]*entities.AppTimeEntry, error) {
	var result []*entities.AppTimeEntry
	for _, entry := range r.entries {
		if entry.UserID != userID {
			continue
		}
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

type fakeInvestmentRepo struct {
	snapshots []*entities.InvestmentSnapshot
}

func (r *fakeInvestmentRepo) Create(_ context.Context, snapshot *entities.InvestmentSnapshot) error {
	snapshot.InvestmentID = fmt.Sprintf("investment-%d", len(r.snapshots)+1)
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeInvestmentRepo) FindLatest(_ context.Context, userID string) (*entities.InvestmentSnapshot, error) {
	var latest *entities.InvestmentSnapshot
	for _, snapshot := range r.snapshots {
		if snapshot.UserID != userID {
			continue
		}
		if latest == nil || snapshot.Date.After(latest.Date) {
			latest = snapshot
		}
	}
	return latest, nil
}

func (r *fakeInvestmentRepo) FindLatestBefore(_ context.Context, userID string, date time.Time) (*entities.InvestmentSnapshot, error) {
	var latest *entities.InvestmentSnapshot
	for _, snapshot := range r.snapshots {
		if snapshot.UserID != userID || !snapshot.Date.Before(date) {
			continue
		}
		if latest == nil || snapshot.Date.After(latest.Date) {
			latest = snapshot
		}
	}
	return latest, nil
}

func (r *fakeInvestmentRepo) FindByDateRange(_ context.Context, userID string, start, end time.Time) ([]*entities.InvestmentSnapshot, error) {
	var result []*entities.InvestmentSnapshot
	for _, snapshot := range r.snapshots {
		if snapshot.UserID != userID {
			continue
		}
		if snapshot.Date.Before(start) || snapshot.Date.After(end) {
			continue
		}
		result = append(result, snapshot)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// fakeUnitOfWork executa fn direto, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeTokenService emite tokens previsíveis para os testes
type fakeTokenService struct{}

func (fakeTokenService) Issue(userID, _ string) (string, error) {
	return "token-" + userID, nil
}

func (fakeTokenService) Verify(token string) (string, error) {
	return token, nil
}

// noopLogger implementa ports.Logger descartando tudo
type noopLogger struct{}

func (noopLogger) Info(string, ...any)       {}
func (noopLogger) Error(string, ...any)      {}
func (noopLogger) Debug(string, ...any)      {}
func (noopLogger) Warn(string, ...any)       {}
func (l noopLogger) With(...any) ports.Logger { return l }
