package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"teamchat/config"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.Config
		level zerolog.Level
	}{
		{"development debug", config.Config{AppEnv: "development", LogLevel: "debug"}, zerolog.DebugLevel},
		{"production warn", config.Config{AppEnv: "production", LogLevel: "warn"}, zerolog.WarnLevel},
		{"unknown level", config.Config{AppEnv: "production", LogLevel: "loud"}, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newLogger(&tt.cfg)
			assert.Equal(t, tt.level, log.GetLevel())
		})
	}
}
