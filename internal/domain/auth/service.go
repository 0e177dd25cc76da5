package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)

	// User administration
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUserRole(ctx context.Context, userID, role string) error
	SetUserActive(ctx context.Context, userID string, active bool) error
}
