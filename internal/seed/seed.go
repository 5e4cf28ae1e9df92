package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/studentms/internal/app/models"
	appRepos "github.com/yigit/studentms/internal/app/repositories"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/auth"
)

// AdminAccount holds the credentials of the default administrator
type AdminAccount struct {
	Username string
	Password string
}

// CreateDefaultData ensures an ADMIN user exists. It does nothing when the admin
// username is already taken or when no password is configured.
func CreateDefaultData(ctx context.Context, userRepo appRepos.IUserRepository, admin AdminAccount, lgr zerolog.Logger) error {
	if admin.Username == "" || admin.Password == "" {
		lgr.Warn().Msg("Default admin credentials not configured, skipping admin seed")
		return nil
	}

	lgr.Info().Str("username", admin.Username).Msg("Checking/Creating default admin user...")

	exists, err := userRepo.UsernameExists(ctx, admin.Username)
	if err != nil {
		return fmt.Errorf("error checking default admin: %w", err)
	}
	if exists {
		lgr.Info().Str("username", admin.Username).Msg("Default admin already exists")
		return nil
	}

	hashed, err := auth.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	user := &appModels.User{
		Username: admin.Username,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameExists) {
			return nil
		}
		return fmt.Errorf("error creating default admin: %w", err)
	}

	lgr.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("Default admin created")
	return nil
}
