package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/auth"
	"github.com/yigit/studentms/internal/pkg/logger"
	"github.com/yigit/studentms/internal/pkg/validation"
)

// TokenIssuer signs session tokens for authenticated users
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	userRepo               repositories.IUserRepository
	tokens                 TokenIssuer
	allowAdminRegistration bool
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.IUserRepository, tokens TokenIssuer, allowAdminRegistration bool) AuthService {
	return &authServiceImpl{
		userRepo:               userRepo,
		tokens:                 tokens,
		allowAdminRegistration: allowAdminRegistration,
	}
}

// Register creates a user with a normalized role
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if !validation.NewStringValidation(username).
		WithMinLength(validation.UsernameMinLength).
		WithMaxLength(validation.UsernameMaxLength).
		Validate() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Username must be between %d and %d characters",
			validation.UsernameMinLength, validation.UsernameMaxLength))
	}
	if !validation.NewStringValidation(req.Password).WithMinLength(validation.PasswordMinLength).Validate() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperrors.ErrInvalidRole
	}
	if role == models.RoleAdmin && !s.allowAdminRegistration {
		return nil, apperrors.ErrAdminRegistrationForbidden
	}

	exists, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     role,
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email := strings.TrimSpace(*req.Email)
		user.Email = &email
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login checks credentials and issues a session token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrLoginFailed
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrLoginFailed
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error issuing token")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	return &dto.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(auth.TokenTTL.Seconds()),
		User:      user,
	}, nil
}
