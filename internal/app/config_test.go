package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vboxmanager/internal/config"
	"vboxmanager/pkg/logging"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, false)
	assert.True(t, cfg.NoTUI)
	assert.False(t, cfg.Debug)
	assert.Nil(t, cfg.Settings, "settings are loaded by the application")
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		settings *config.Config
		want     logging.LogLevel
	}{
		{name: "default", want: logging.LevelInfo},
		{name: "configured", settings: &config.Config{LogLevel: "warn"}, want: logging.LevelWarn},
		{name: "debug flag wins", debug: true, settings: &config.Config{LogLevel: "error"}, want: logging.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(false, tt.debug)
			cfg.Settings = tt.settings
			assert.Equal(t, tt.want, cfg.LogLevel())
		})
	}
}
