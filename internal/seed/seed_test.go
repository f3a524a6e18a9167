package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/app/repositories"
	"github.com/uniboard/markbook/internal/config"
	"github.com/uniboard/markbook/internal/pkg/apperrors"
	"github.com/uniboard/markbook/internal/pkg/auth"
)

type memoryUserRepo struct {
	repositories.IUserRepository

	users   map[string]*models.User
	creates int
}

func (r *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	r.creates++
	user.ID = int64(r.creates)
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *memoryUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func seedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Seed.StaffEmail = "staff@example.com"
	cfg.Seed.StaffPassword = "staff123"
	cfg.Seed.StaffName = "Default Staff"
	return cfg
}

func TestEnsureDefaultStaff(t *testing.T) {
	repo := &memoryUserRepo{users: make(map[string]*models.User)}
	cfg := seedConfig()

	require.NoError(t, EnsureDefaultStaff(context.Background(), repo, cfg, zerolog.Nop()))

	staff, ok := repo.users["staff@example.com"]
	require.True(t, ok)
	assert.Equal(t, models.RoleStaff, staff.RoleType)
	assert.Equal(t, "Default Staff", staff.Name)
	assert.True(t, auth.CheckPassword(staff.Password, "staff123"))
}

func TestEnsureDefaultStaffIsIdempotent(t *testing.T) {
	repo := &memoryUserRepo{users: make(map[string]*models.User)}
	cfg := seedConfig()

	require.NoError(t, EnsureDefaultStaff(context.Background(), repo, cfg, zerolog.Nop()))
	originalPassword := repo.users["staff@example.com"].Password

	// A second run, even with a changed configured password, leaves the
	// existing account alone
	cfg.Seed.StaffPassword = "different456"
	require.NoError(t, EnsureDefaultStaff(context.Background(), repo, cfg, zerolog.Nop()))

	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, originalPassword, repo.users["staff@example.com"].Password)
}
