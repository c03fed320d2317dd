package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvironment_Defaults(t *testing.T) {
	for _, k := range []string{"DB_URI", "PORT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "SEED_DATA", "RAILWAY_ENVIRONMENT_NAME"} {
		t.Setenv(k, "")
	}

	env := LoadEnvironment()
	assert.Equal(t, DefaultDatabaseURI, env.DatabaseURI)
	assert.Equal(t, DefaultPort, env.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:4000"}, env.AllowedOrigins)
	assert.Equal(t, "info", env.LogLevel)
	assert.False(t, env.SeedData)
	assert.True(t, env.IsDevelopment)
	assert.Equal(t, env, Env)
}

func TestLoadEnvironment_Overrides(t *testing.T) {
	t.Setenv("DB_URI", "postgres://localhost/cosmic")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SEED_DATA", "True")
	t.Setenv("RAILWAY_ENVIRONMENT_NAME", "production")

	env := LoadEnvironment()
	assert.Equal(t, "postgres://localhost/cosmic", env.DatabaseURI)
	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.AllowedOrigins)
	assert.Equal(t, "debug", env.LogLevel)
	assert.True(t, env.SeedData)
	assert.False(t, env.IsDevelopment)
}
