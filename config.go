package main

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the assistant
type Config struct {
	Port      string
	BankFile  string
	LogLevel  string
	LogFormat string
}

// loadConfig reads .env when present, then environment variables
// (PORT, BANK_FILE, LOG_LEVEL, LOG_FORMAT) and any flags bound to v.
func loadConfig(v *viper.Viper) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v.SetDefault("port", "8050")
	v.SetDefault("bank_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.AutomaticEnv()
	for _, key := range []string{"port", "bank_file", "log_level", "log_format"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := Config{
		Port:      v.GetString("port"),
		BankFile:  v.GetString("bank_file"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}
	if cfg.Port == "" {
		return Config{}, errors.New("port must not be empty")
	}

	return cfg, nil
}
