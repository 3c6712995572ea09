package services_test

import (
	"context"
	"testing"

	"vesselhub/internal/adapters/persistence/memory"
	"vesselhub/internal/config"
	"vesselhub/internal/core/domain"
	"vesselhub/internal/core/services"
	"vesselhub/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Port:    "8000",
		JWT: config.JWTConfig{
			Secret:          "unit-test-secret",
			AccessTokenMins: 30,
		},
		UploadDir: "uploads",
	}
}

func TestRegisterDefaultsToCrewRole(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewAuthService(store.Users(), testConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, &services.RegisterInput{
		Email:    "sailor@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleCrew, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.HashedPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewAuthService(store.Users(), testConfig())
	ctx := context.Background()

	_, err := svc.Register(ctx, &services.RegisterInput{Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &services.RegisterInput{Email: "dup@example.com", Password: "password456"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	store := memory.NewStore()
	svc := services.NewAuthService(store.Users(), testConfig())
	ctx := context.Background()

	registered, err := svc.Register(ctx, &services.RegisterInput{
		Email:    "captain@example.com",
		Password: "password123",
		Role:     domain.RoleCaptain,
	})
	require.NoError(t, err)

	// Correct credentials return a usable token
	result, err := svc.Login(ctx, "captain@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, registered.ID, result.User.ID)

	claims, err := jwt.ValidateAccessToken(result.AccessToken, "unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "captain", claims.Role)

	// Wrong password and unknown email return the same failure
	_, err = svc.Login(ctx, "captain@example.com", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestResolveCaller(t *testing.T) {
	store := memory.NewStore()
	cfg := testConfig()
	svc := services.NewAuthService(store.Users(), cfg)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &services.RegisterInput{Email: "me@example.com", Password: "password123"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "me@example.com", "password123")
	require.NoError(t, err)

	// Valid token resolves to the user
	user, err := svc.ResolveCaller(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Garbage token
	_, err = svc.ResolveCaller(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Token signed with a different secret
	forged, err := jwt.GenerateAccessToken(registered.ID, "me@example.com", "admin", "other-secret", 30)
	require.NoError(t, err)
	_, err = svc.ResolveCaller(ctx, forged)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Well formed token whose subject no longer resolves
	orphan, err := jwt.GenerateAccessToken(9999, "gone@example.com", "crew", cfg.JWT.Secret, 30)
	require.NoError(t, err)
	_, err = svc.ResolveCaller(ctx, orphan)
	assert.ErrorIs(t, err, domain.ErrUnknownSubject)
}

func TestRequireRole(t *testing.T) {
	svc := services.NewAuthService(memory.NewStore().Users(), testConfig())

	admin := &domain.User{Role: domain.RoleAdmin}
	crew := &domain.User{Role: domain.RoleCrew}

	assert.NoError(t, svc.RequireRole(admin, domain.RoleAdmin))
	assert.NoError(t, svc.RequireRole(crew, domain.RoleAdmin, domain.RoleCrew))
	assert.ErrorIs(t, svc.RequireRole(crew, domain.RoleAdmin), domain.ErrForbidden)
	assert.ErrorIs(t, svc.RequireRole(crew, domain.RoleAdmin, domain.RoleManager), domain.ErrForbidden)
}
