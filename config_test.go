package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "BANK_FILE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Config{Port: "8050", LogLevel: "info", LogFormat: "console"}, cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BANK_FILE", "/etc/assistant/bank.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/etc/assistant/bank.yaml", cfg.BankFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_OverrideWins(t *testing.T) {
	t.Setenv("PORT", "9090")

	v := viper.New()
	v.Set("port", "7000")

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}
