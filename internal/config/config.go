package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Dictionary
		Log
		Stats
		Database
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Dictionary struct {
		Dir          string // Root directory holding one subdirectory per language
		ManifestPath string // Explicit manifest; empty means <Dir>/manifest.yaml or built-in defaults
		Preload      bool   // Load every length partition before serving
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text or json
	}
	Stats struct {
		Enabled  bool
		Schedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Database struct {
		Path string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("dictionary_dir", DefaultDictionaryDir)
	v.SetDefault("dictionary_manifest", "")
	v.SetDefault("dictionary_preload", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("stats_log_enabled", false)
	v.SetDefault("stats_log_schedule", "*/15 * * * *")
	v.SetDefault("database_path", DefaultDatabasePath)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Dictionary: Dictionary{
			Dir:          v.GetString("DICTIONARY_DIR"),
			ManifestPath: v.GetString("DICTIONARY_MANIFEST"),
			Preload:      v.GetBool("DICTIONARY_PRELOAD"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Stats: Stats{
			Enabled:  v.GetBool("STATS_LOG_ENABLED"),
			Schedule: v.GetString("STATS_LOG_SCHEDULE"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
	}
}
