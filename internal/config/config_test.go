package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:  "secure-secret-at-least-32-chars-long",
		Port:       "8480",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
		Env:        "development",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid development config", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Short secret allowed outside production", func(c *Config) { c.JWTSecret = "short-secret" }, false},
		{"Default password allowed outside production", func(c *Config) { c.DBPassword = "password" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		mutate      func(c *Config)
		expectError bool
	}{
		{"Valid production config", "production", func(c *Config) {}, false},
		{"Prod alias also strict", "prod", func(c *Config) { c.DBPassword = "password" }, true},
		{"Default JWT secret rejected", "production",
			func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }, true},
		{"Short JWT secret rejected", "production",
			func(c *Config) { c.JWTSecret = "too-short" }, true},
		{"Default DB password rejected", "production",
			func(c *Config) { c.DBPassword = "password" }, true},
		{"Empty DB password rejected", "production",
			func(c *Config) { c.DBPassword = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = tt.env
			tt.mutate(c)
			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8480", cfg.Port)
	assert.Equal(t, "waveboard", cfg.DBName)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "test", cfg.Env)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "test")
	t.Setenv("PORT", "9999")
	t.Setenv("DB_NAME", "waveboard_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "waveboard_test", cfg.DBName)
}
