package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	Load()

	assert.Equal(t, "8080", AppConfig.APIPort)
	assert.Equal(t, "user_api", AppConfig.APIAppName)
	assert.False(t, AppConfig.APIDebugMode)
	assert.Equal(t, "secret", AppConfig.APIAccessToken)
	assert.Contains(t, AppConfig.DBConnStr, "sslmode=disable")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_X_API_TOKEN", "super-secret")
	t.Setenv("API_DEBUG_MODE", "true")
	t.Setenv("POSTGRESQL_HOST", "db.internal")
	t.Setenv("POSTGRESQL_DATABASE_NAME", "users_db")

	Load()

	assert.Equal(t, "super-secret", AppConfig.APIAccessToken)
	assert.True(t, AppConfig.APIDebugMode)
	assert.Contains(t, AppConfig.DBConnStr, "host=db.internal")
	assert.Contains(t, AppConfig.DBConnStr, "dbname=users_db")
}
