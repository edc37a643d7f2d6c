package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taalimflow/config"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateAdminToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseAdminToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestGenerateAdminTokenWithoutSecret(t *testing.T) {
	config.AppConfig.JWTSecret = ""

	_, err := GenerateAdminToken()
	assert.Error(t, err)
}

func TestParseAdminTokenWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateAdminToken()
	assert.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ParseAdminToken(token)
	assert.Error(t, err)
}

func TestParseAdminTokenGarbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := ParseAdminToken("not.a.token")
	assert.Error(t, err)
}
