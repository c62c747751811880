package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestJWTConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := primitive.NewObjectID().Hex()
	roles := []string{"ROLE_USER", "ROLE_ADMIN"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := newTestJWTConfig("first_access_secret_for_testing", "first_refresh_secret_for_testing")
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	otherCfg := newTestJWTConfig("second_access_secret_for_testing", "second_refresh_secret_for_testing")
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(primitive.NewObjectID().Hex(), []string{"ROLE_USER"})
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestJWTConfig("", "")

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
