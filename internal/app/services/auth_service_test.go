package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/mocks"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/auth"
)

type fixedIssuer struct {
	token string
	err   error
}

func (f fixedIssuer) Issue(user *models.User) (string, error) {
	return f.token, f.err
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("legacy USER role becomes MENTOR", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewAuthService(repo, fixedIssuer{}, false)

		repo.On("UsernameExists", ctx, "mentor1").Return(false, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.User).ID = 10 }).
			Return(nil)

		user, err := svc.Register(ctx, &dto.RegisterRequest{Username: " mentor1 ", Password: "secret1", Role: "user"})
		require.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		assert.Equal(t, "mentor1", user.Username)
		assert.Equal(t, models.RoleMentor, user.Role)
		assert.NotEqual(t, "secret1", user.Password)
		assert.True(t, auth.CheckPassword(user.Password, "secret1"))
	})

	t.Run("admin registration disabled", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewAuthService(repo, fixedIssuer{}, false)

		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "boss", Password: "secret1", Role: "ADMIN"})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc := NewAuthService(new(mocks.UserRepository), fixedIssuer{}, true)

		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "someone", Password: "secret1", Role: "teacher"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("username taken", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewAuthService(repo, fixedIssuer{}, true)
		repo.On("UsernameExists", ctx, "taken").Return(true, nil)

		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "taken", Password: "secret1", Role: "MENTOR"})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("short password", func(t *testing.T) {
		svc := NewAuthService(new(mocks.UserRepository), fixedIssuer{}, true)

		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "someone", Password: "123", Role: "MENTOR"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hashed, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	stored := &models.User{ID: 3, Username: "admin", Password: hashed, Role: models.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewAuthService(repo, fixedIssuer{token: "signed"}, false)
		repo.On("GetByUsername", ctx, "admin").Return(stored, nil)
		repo.On("UpdateLastLogin", ctx, int64(3)).Return(errors.New("ignored"))

		resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "signed", resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.Same(t, stored, resp.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewAuthService(repo, fixedIssuer{token: "signed"}, false)
		repo.On("GetByUsername", ctx, "admin").Return(stored, nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user looks like wrong password", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		svc := NewAuthService(repo, fixedIssuer{token: "signed"}, false)
		repo.On("GetByUsername", ctx, "ghost").Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		msg, _ := apperrors.PublicMessage(err)
		assert.Equal(t, "Invalid credentials", msg)
	})
}
