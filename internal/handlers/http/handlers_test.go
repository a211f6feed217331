package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
	"github.com/unplugapp/unplug-backend/internal/domain/valueobjects"
	"github.com/unplugapp/unplug-backend/internal/handlers/dto"
	"github.com/unplugapp/unplug-backend/internal/handlers/middleware"
	"github.com/unplugapp/unplug-backend/internal/infrastructure/auth"
	"github.com/unplugapp/unplug-backend/internal/services"
)

// Stubs em memória cobrindo só o que os handlers exercitam.

type stubUserRepo struct {
	users map[string]*entities.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entities.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, userID string) (*entities.User, error) {
	return r.users[userID], nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entities.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *stubUserRepo) ListByTotalInvested(_ context.Context) ([]*entities.User, error) {
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

func (r *stubUserRepo) UpdateLeaderboardPosition(_ context.Context, userID string, position int) error {
	r.users[userID].LeaderboardPosition = &position
	return nil
}

func (r *stubUserRepo) UpdateWeeklyTotals(_ context.Context, userID string, timeWeekly, chargedWeekly float64) error {
	r.users[userID].TargetedAppsTimeWeekly = timeWeekly
	r.users[userID].AmountChargedWeekly = chargedWeekly
	return nil
}

func (r *stubUserRepo) UpdateRiskLevel(_ context.Context, userID string, level entities.RiskLevel) error {
	r.users[userID].InvestmentRiskLevel = level
	return nil
}

func (r *stubUserRepo) UpdateTrackedApps(_ context.Context, userID string, apps []string) error {
	r.users[userID].TrackedApps = apps
	return nil
}

type stubAppTimeRepo struct {
	entries map[string]*entities.AppTimeEntry
}

func (r *stubAppTimeRepo) Upsert(_ context.Context, entry *entities.AppTimeEntry) error {
	key := fmt.Sprintf("%s|%s|%s", entry.UserID, entry.Date.Format("2006-01-02"), entry.AppName)
	entry.HistoryID = key
	copied := *entry
	r.entries[key] = &copied
	return nil
}

func (r *stubAppTimeRepo) FindByDateRange(_ context.Context, userID string, start, end time.Time) ([]*entities.AppTimeEntry, error) {
	var result []*entities.AppTimeEntry
	for _, entry := range r.entries {
		if entry.UserID == userID && !entry.Date.Before(start) && !entry.Date.After(end) {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

type stubInvestmentRepo struct{}

func (stubInvestmentRepo) Create(context.Context, *entities.InvestmentSnapshot) error { return nil }
func (stubInvestmentRepo) FindLatest(context.Context, string) (*entities.InvestmentSnapshot, error) {
	return nil, nil
}
func (stubInvestmentRepo) FindLatestBefore(context.Context, string, time.Time) (*entities.InvestmentSnapshot, error) {
	return nil, nil
}
func (stubInvestmentRepo) FindByDateRange(context.Context, string, time.Time, time.Time) ([]*entities.InvestmentSnapshot, error) {
	return nil, nil
}

type stubUnitOfWork struct{}

func (stubUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (stubUnitOfWork) Commit(context.Context) error                       { return nil }
func (stubUnitOfWork) Rollback(context.Context) error                     { return nil }
func (stubUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type silentLogger struct{}

func (silentLogger) Info(string, ...any)        {}
func (silentLogger) Error(string, ...any)       {}
func (silentLogger) Debug(string, ...any)       {}
func (silentLogger) Warn(string, ...any)        {}
func (l silentLogger) With(...any) ports.Logger { return l }

type testEnv struct {
	router   *gin.Engine
	userRepo *stubUserRepo
	token    string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidations(); err != nil {
		t.Fatalf("falha ao registrar validações: %v", err)
	}

	userRepo := &stubUserRepo{users: make(map[string]*entities.User)}
	appTimeRepo := &stubAppTimeRepo{entries: make(map[string]*entities.AppTimeEntry)}

	email, err := valueobjects.NewEmail("sarah@example.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}
	user := entities.NewUser("user-1", "Sarah Chen", email, nil)
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	tokens := auth.NewTokenService("test-secret", 7)
	token, err := tokens.Issue("user-1", "sarah@example.com")
	if err != nil {
		t.Fatalf("falha ao emitir token: %v", err)
	}

	logger := silentLogger{}
	authService := services.NewAuthService(userRepo, tokens, logger)
	userService := services.NewUserService(userRepo, logger)
	appTimeService := services.NewAppTimeService(userRepo, appTimeRepo, stubUnitOfWork{}, logger)
	investmentService := services.NewInvestmentService(userRepo, stubInvestmentRepo{}, logger)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	appTimeHandler := NewAppTimeHandler(appTimeService)
	investmentHandler := NewInvestmentHandler(investmentService)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	router := gin.New()
	router.POST("/auth/login", authHandler.Login)
	protected := router.Group("", authMiddleware.RequireAuth())
	{
		protected.GET("/user/profile", userHandler.GetProfile)
		protected.POST("/user/apptime", appTimeHandler.RecordEntry)
		protected.POST("/investments/setup", investmentHandler.SetupInvestments)
		protected.GET("/investments/portfolio", investmentHandler.GetPortfolio)
	}

	return &testEnv{router: router, userRepo: userRepo, token: token}
}

func (e *testEnv) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("sem nome responde 400", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("POST", "/auth/login", map[string]any{"email": "a@b.com"}, false)
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
	})

	t.Run("login válido retorna token e projeção mínima", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("POST", "/auth/login", map[string]any{
			"email": "marcus@example.com",
			"name":  "Marcus Johnson",
			"sub":   "auth0|999",
		}, false)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}

		var resp dto.LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("resposta não é JSON válido: %v", err)
		}
		if resp.Token == "" {
			t.Error("esperava token na resposta")
		}
		if resp.User.UserID != "auth0|999" {
			t.Errorf("esperava user_id 'auth0|999', obteve '%s'", resp.User.UserID)
		}
	})
}

func TestProfileEndpoint(t *testing.T) {
	t.Run("sem token responde 401", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("GET", "/user/profile", nil, false)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("com token retorna o perfil", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("GET", "/user/profile", nil, true)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}

		var resp dto.ProfileResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("resposta não é JSON válido: %v", err)
		}
		if resp.UserID != "user-1" {
			t.Errorf("esperava user_id 'user-1', obteve '%s'", resp.UserID)
		}
		if resp.TrackedApps == nil {
			t.Error("tracked_apps deve ser lista, nunca null")
		}
	})
}

func TestRecordAppTimeEndpoint(t *testing.T) {
	t.Run("sem app_name responde 400", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("POST", "/user/apptime", map[string]any{
			"date":             "2025-06-02",
			"time_spent_hours": 2.0,
		}, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
	})

	t.Run("data malformada responde 400", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("POST", "/user/apptime", map[string]any{
			"date":             "02/06/2025",
			"app_name":         "Instagram",
			"time_spent_hours": 2.0,
		}, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
	})

	t.Run("envio válido retorna a entrada com a cobrança", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("POST", "/user/apptime", map[string]any{
			"date":             "2025-06-02",
			"app_name":         "Instagram",
			"time_spent_hours": 2.0,
		}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}

		var resp dto.AppTimeEntryResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("resposta não é JSON válido: %v", err)
		}
		if resp.AmountCharged != 4.0 {
			t.Errorf("esperava cobrança 4.0, obteve %v", resp.AmountCharged)
		}
	})
}

func TestSetupInvestmentsEndpoint(t *testing.T) {
	t.Run("nível inválido responde 400 e não altera o gravado", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("POST", "/investments/setup", map[string]any{"risk_level": "extreme"}, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
		if env.userRepo.users["user-1"].InvestmentRiskLevel != entities.RiskStandard {
			t.Error("nível de risco alterado por payload inválido")
		}
	})

	t.Run("nível válido responde 200", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("POST", "/investments/setup", map[string]any{"risk_level": "medium"}, true)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}
		if env.userRepo.users["user-1"].InvestmentRiskLevel != entities.RiskMedium {
			t.Error("nível de risco não persistido")
		}
	})
}

func TestPortfolioEndpoint(t *testing.T) {
	t.Run("sem snapshots retorna zeros", func(t *testing.T) {
		env := setupTestEnv(t)

		w := env.do("GET", "/investments/portfolio", nil, true)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}

		var resp dto.PortfolioResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("resposta não é JSON válido: %v", err)
		}
		if resp.TotalValue != 0 || resp.Change24h != 0 {
			t.Errorf("esperava zeros, obteve %+v", resp)
		}
		if resp.RiskLevel != "standard" {
			t.Errorf("esperava risco 'standard', obteve '%s'", resp.RiskLevel)
		}
	})
}
