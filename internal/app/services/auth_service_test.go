package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/app/models/dto"
	"github.com/uniboard/markbook/internal/pkg/apperrors"
	"github.com/uniboard/markbook/internal/pkg/auth"
)

func newAuthTestService(t *testing.T) (AuthService, *fakeUserRepo, *fakeTokenRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "markbook.test",
	})

	svc := NewAuthService(userRepo, tokenRepo, jwtService, zerolog.Nop())
	return svc, userRepo, tokenRepo
}

func seedUser(t *testing.T, userRepo *fakeUserRepo, email, password string, role models.RoleType) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:    email,
		Password: hash,
		Name:     "Test User",
		RoleType: role,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return user
}

func TestLogin(t *testing.T) {
	svc, userRepo, _ := newAuthTestService(t)
	seedUser(t, userRepo, "staff@example.com", "staff123", models.RoleStaff)

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "staff@example.com",
			Password: "staff123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotEmpty(t, resp.Token.RefreshToken)
		assert.Equal(t, "Bearer", resp.Token.TokenType)
		assert.Equal(t, "staff@example.com", resp.User.Email)
		assert.Equal(t, string(models.RoleStaff), resp.User.RoleType)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "staff@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("UnknownEmailLooksIdentical", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		// Same error as a wrong password, so the endpoint cannot be used
		// to probe which emails have accounts
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("UpdatesLastLogin", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "staff@example.com",
			Password: "staff123",
		})
		require.NoError(t, err)

		user, err := userRepo.GetByEmail(context.Background(), "staff@example.com")
		require.NoError(t, err)
		assert.NotNil(t, user.LastLoginAt)
	})
}

func TestRefreshToken(t *testing.T) {
	svc, userRepo, _ := newAuthTestService(t)
	seedUser(t, userRepo, "jane@example.com", "password123", models.RoleStudent)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), login.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.Token.RefreshToken, refreshed.RefreshToken)

	// A refresh token is single-use
	_, err = svc.RefreshToken(context.Background(), login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// The replacement still works
	_, err = svc.RefreshToken(context.Background(), refreshed.RefreshToken)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRefreshTokenExpired(t *testing.T) {
	svc, userRepo, tokenRepo := newAuthTestService(t)
	user := seedUser(t, userRepo, "jane@example.com", "password123", models.RoleStudent)

	require.NoError(t, tokenRepo.CreateToken(context.Background(), "stale-token", user.ID, time.Now().Add(-time.Minute)))

	_, err := svc.RefreshToken(context.Background(), "stale-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestLogout(t *testing.T) {
	svc, userRepo, _ := newAuthTestService(t)
	seedUser(t, userRepo, "jane@example.com", "password123", models.RoleStudent)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.Token.RefreshToken))

	_, err = svc.RefreshToken(context.Background(), login.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	err = svc.Logout(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}
