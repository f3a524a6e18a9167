package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/uniboard/markbook/internal/app/models"
	appRepos "github.com/uniboard/markbook/internal/app/repositories"
	"github.com/uniboard/markbook/internal/config"
	"github.com/uniboard/markbook/internal/pkg/auth"
)

// EnsureDefaultStaff creates the configured staff account if it does not
// already exist. An existing account is never modified, so a changed password
// in the configuration does not reset a live account.
func EnsureDefaultStaff(ctx context.Context, userRepo appRepos.IUserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	email := cfg.Seed.StaffEmail

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking staff account: %w", err)
	}
	if exists {
		lgr.Info().Str("email", email).Msg("Default staff account already exists, skipping creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Seed.StaffPassword)
	if err != nil {
		return fmt.Errorf("error hashing staff password: %w", err)
	}

	staff := &appModels.User{
		Email:    email,
		Password: hashedPassword,
		Name:     cfg.Seed.StaffName,
		RoleType: appModels.RoleStaff,
	}

	if err := userRepo.Create(ctx, staff); err != nil {
		return fmt.Errorf("error creating staff account: %w", err)
	}

	lgr.Info().Str("email", email).Int64("userID", staff.ID).Msg("Default staff account created")
	return nil
}
