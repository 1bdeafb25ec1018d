package auth

import (
	"testing"
	"time"

	"github.com/crosserp/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	cfg := config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	}
	return NewJWTService(cfg)
}

func TestNewJWTService_UsesSecretForRefreshIfNotProvided(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:        "test-secret",
		RefreshSecret: "",
	}

	svc := NewJWTService(cfg)

	assert.Equal(t, []byte(cfg.Secret), svc.refreshSecret)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(uuid.New(), uuid.New(), "testuser")

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.AccessTokenExpiresAt.After(time.Now()))
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()
	tenantID := uuid.New()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(tenantID, userID, "testuser")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)

		assert.Equal(t, tenantID.String(), claims.TenantID)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "testuser", claims.Username)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)

		gotTenant, err := claims.GetTenantUUID()
		require.NoError(t, err)
		assert.Equal(t, tenantID, gotTenant)

		gotUser, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                 "a-completely-different-secret-key",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "test-issuer",
		})

		_, err := other.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "test-issuer",
	})

	pair, err := svc.GenerateTokenPair(uuid.New(), uuid.New(), "testuser")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	tenantID := uuid.New()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(tenantID, userID, "testuser")
	require.NoError(t, err)

	t.Run("refresh yields a fresh valid pair", func(t *testing.T) {
		fresh, err := svc.RefreshTokenPair(pair.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(fresh.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, tenantID.String(), claims.TenantID)
		assert.Equal(t, userID.String(), claims.UserID)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		_, err := svc.RefreshTokenPair(pair.AccessToken)
		assert.Error(t, err)
	})
}
