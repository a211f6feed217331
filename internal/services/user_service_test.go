package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/domain/valueobjects"
)

func newUserServiceForTest(t *testing.T) (*UserService, *fakeUserRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	service := NewUserService(userRepo, noopLogger{})

	email, err := valueobjects.NewEmail("emma@example.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}
	user := entities.NewUser("user-1", "Emma Williams", email, nil)
	user.TrackedApps = []string{"Instagram", "Facebook"}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	return service, userRepo
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("retorna o perfil do usuário", func(t *testing.T) {
		service, _ := newUserServiceForTest(t)

		user, err := service.GetProfile(ctx, "user-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if user.Name != "Emma Williams" {
			t.Errorf("esperava 'Emma Williams', obteve '%s'", user.Name)
		}
	})

	t.Run("usuário inexistente retorna NotFound", func(t *testing.T) {
		service, _ := newUserServiceForTest(t)

		_, err := service.GetProfile(ctx, "fantasma")
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})
}

func TestUserService_ReplaceTrackedApps(t *testing.T) {
	ctx := context.Background()

	t.Run("substitui a lista inteira, sem merge", func(t *testing.T) {
		service, userRepo := newUserServiceForTest(t)

		apps, err := service.ReplaceTrackedApps(ctx, "user-1", []string{"TikTok"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if !reflect.DeepEqual(apps, []string{"TikTok"}) {
			t.Errorf("esperava ['TikTok'], obteve %v", apps)
		}
		if !reflect.DeepEqual(userRepo.users["user-1"].TrackedApps, []string{"TikTok"}) {
			t.Errorf("lista persistida incorreta: %v", userRepo.users["user-1"].TrackedApps)
		}
	})

	t.Run("lista nula vira lista vazia", func(t *testing.T) {
		service, _ := newUserServiceForTest(t)

		apps, err := service.ReplaceTrackedApps(ctx, "user-1", nil)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if apps == nil || len(apps) != 0 {
			t.Errorf("esperava lista vazia, obteve %v", apps)
		}
	})
}
