package dto

import "github.com/unplugapp/unplug-backend/internal/domain/entities"

// LoginRequest representa o payload de login. O identificador pode vir em
// user_id ou em sub, conforme o provedor de identidade do cliente.
type LoginRequest struct {
	Email   string `json:"email" binding:"required"`
	Name    string `json:"name" binding:"required"`
	UserID  string `json:"user_id"`
	Sub     string `json:"sub"`
	Picture string `json:"picture"`
}

// ResolveUserID retorna o identificador enviado, preferindo user_id
func (r *LoginRequest) ResolveUserID() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.Sub
}

// UserSummary é a projeção mínima de usuário retornada no login
type UserSummary struct {
	UserID string  `json:"user_id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Pfp    *string `json:"pfp"`
}

// LoginResponse representa a resposta do login
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ToLoginResponse monta a resposta de login a partir da entidade
func ToLoginResponse(user *entities.User, token string) LoginResponse {
	return LoginResponse{
		Token: token,
		User: UserSummary{
			UserID: user.UserID,
			Name:   user.Name,
			Email:  user.Email.String(),
			Pfp:    user.Pfp,
		},
	}
}
