package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/auth"
	"github.com/constrack/backoffice-backend-go/internal/domain/user"
	"github.com/constrack/backoffice-backend-go/internal/pkg/jwt"
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwt      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	return s.issueTokens(userData)
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleStaff
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return auth.UserResponse{}, err
		}
		return auth.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(created), nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	return s.issueTokens(userData)
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		User:         toUserResponse(u),
	}, nil
}

// ListUsers implements auth.AuthService.
func (s *AuthServiceImpl) ListUsers(ctx context.Context) ([]auth.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]auth.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// UpdateUserRole implements auth.AuthService.
func (s *AuthServiceImpl) UpdateUserRole(ctx context.Context, userID, role string) error {
	if !user.Role(role).Valid() {
		return validator.ValidationErrors{
			{Field: "role", Message: "must be 'admin' or 'staff'"},
		}
	}
	return s.userRepo.UpdateRole(ctx, userID, user.Role(role))
}

// SetUserActive implements auth.AuthService.
func (s *AuthServiceImpl) SetUserActive(ctx context.Context, userID string, active bool) error {
	return s.userRepo.SetActive(ctx, userID, active)
}
