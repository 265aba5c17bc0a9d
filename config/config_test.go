package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 40))
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("RATE_LIMIT_MAX", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_BuildsPostgresDSN(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 40))
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "chat")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DatabaseURL, "host=db.internal")
	assert.Contains(t, cfg.DatabaseURL, "dbname=chat")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing secret", Config{DBDriver: "sqlite", RateLimitMax: 1}, "JWT_SECRET must be set"},
		{"short secret", Config{JWTSecret: "short", DBDriver: "sqlite", RateLimitMax: 1}, "at least 32"},
		{"bad driver", Config{JWTSecret: strings.Repeat("x", 32), DBDriver: "mysql", RateLimitMax: 1}, "unsupported DB_DRIVER"},
		{"bad rate limit", Config{JWTSecret: strings.Repeat("x", 32), DBDriver: "sqlite"}, "RATE_LIMIT_MAX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
