package services

import (
	"context"

	"github.com/unplugapp/unplug-backend/internal/domain/entities"
	domainerrors "github.com/unplugapp/unplug-backend/internal/domain/errors"
	"github.com/unplugapp/unplug-backend/internal/domain/ports"
	"github.com/unplugapp/unplug-backend/internal/domain/repositories"
	"github.com/unplugapp/unplug-backend/internal/domain/valueobjects"
)

// AuthService resolve logins e emite tokens de sessão
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   ports.TokenService
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens ports.TokenService,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginInput representa o payload de login vindo do provedor de identidade
type LoginInput struct {
	Email   string
	Name    string
	UserID  string
	Picture string
}

// Login busca o usuário pelo email, criando-o na primeira autenticação, e
// emite um token novo. Idempotente: logins repetidos com o mesmo email
// nunca duplicam nem sobrescrevem o perfil existente.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*entities.User, string, error) {
	if input.Email == "" || input.Name == "" {
		return nil, "", domainerrors.ErrMissingLoginData
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, "", domainerrors.ErrMissingLoginData
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		var pfp *string
		if input.Picture != "" {
			pfp = &input.Picture
		}

		user = entities.NewUser(input.UserID, input.Name, email, pfp)
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, "", err
		}

		s.logger.Info("user created on first login",
			"user_id", user.UserID,
			"email", user.Email.String(),
		)
	}

	token, err := s.tokens.Issue(user.UserID, user.Email.String())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
