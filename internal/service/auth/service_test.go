package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowpoint/salon-backend-go/internal/domain/auth"
	"github.com/glowpoint/salon-backend-go/internal/domain/user"
	"github.com/glowpoint/salon-backend-go/internal/pkg/jwt"
	"github.com/glowpoint/salon-backend-go/internal/repository/memory"
)

func setupAuthService(t *testing.T) (*AuthServiceImpl, *user.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &user.User{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		FullName:     "Head Office Admin",
		Role:         user.RoleAdmin,
		IsActive:     true,
	}

	userRepo := memory.NewUserRepository()
	require.NoError(t, userRepo.Create(context.Background(), u))

	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")

	return NewAuthService(userRepo, jwtService), u
}

func TestLogin(t *testing.T) {
	svc, _ := setupAuthService(t)

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	// Unknown email and wrong password are indistinguishable to the caller.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository()
	require.NoError(t, userRepo.Create(ctx, &user.User{
		Email:        "former@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleSupervisor,
		IsActive:     false,
	}))

	svc := NewAuthService(userRepo, jwt.NewJWTService("test-secret-key", "15m", "168h"))

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "former@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The presented refresh token is single-use.
	_, err = svc.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestProfile(t *testing.T) {
	svc, u := setupAuthService(t)

	profile, err := svc.Profile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, profile.Email)
	assert.Equal(t, "admin", profile.Role)
	assert.Nil(t, profile.BranchID)
}
