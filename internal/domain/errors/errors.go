package errors

import "errors"

// Erros de negócio. Os handlers convertem cada um no status HTTP
// correspondente e no corpo {"error": "<mensagem>"}.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrNoToken          = errors.New("No token provided")
	ErrInvalidToken     = errors.New("Invalid token")
	ErrMissingLoginData = errors.New("Email and name required")
	ErrMissingEntryData = errors.New("Date and app_name required")
	ErrInvalidRiskLevel = errors.New("Invalid risk level")
)
