package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Calendar
	Storage      StorageConfig
	Calendar     CalendarConfig
	Notification NotificationConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         LogFileConfig
}

// LogFileConfig enables rotating file output when Filename is set.
type LogFileConfig struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type RateLimitConfig struct {
	PerMin int
}

// StorageConfig selects the key-value backend: memory, file or sqlite.
type StorageConfig struct {
	Driver    string
	Path      string
	CacheSize int
}

type CalendarConfig struct {
	Timezone string
}

type NotificationConfig struct {
	ReminderWindow time.Duration
	DedupeTTL      time.Duration
	Telegram       TelegramConfig
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/task-calendar/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/task-calendar/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.File.Filename = viper.GetString("logger.file.filename")
	cfg.Logger.File.MaxSize = viper.GetInt("logger.file.max_size")
	cfg.Logger.File.MaxBackups = viper.GetInt("logger.file.max_backups")
	cfg.Logger.File.MaxAge = viper.GetInt("logger.file.max_age")
	cfg.Logger.File.Compress = viper.GetBool("logger.file.compress")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.CacheSize = viper.GetInt("storage.cache_size")

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	// Notifications
	cfg.Notification.ReminderWindow = viper.GetDuration("notification.reminder_window")
	cfg.Notification.DedupeTTL = viper.GetDuration("notification.dedupe_ttl")
	cfg.Notification.Telegram.BotToken = expandEnvVar(viper.GetString("notification.telegram.bot_token"))
	cfg.Notification.Telegram.ChatID = viper.GetInt64("notification.telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Notification.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "memory", "file", "sqlite":
	default:
		return fmt.Errorf("storage.driver %q: must be memory, file or sqlite", c.Storage.Driver)
	}
	if c.Storage.Driver != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for driver %q", c.Storage.Driver)
	}
	if c.Notification.ReminderWindow <= 0 {
		return fmt.Errorf("notification.reminder_window must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.file.max_size", 100)
	viper.SetDefault("logger.file.max_backups", 3)
	viper.SetDefault("logger.file.max_age", 28)
	viper.SetDefault("rate_limit.per_min", 600)

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.path", "data/calendar.json")
	viper.SetDefault("storage.cache_size", 64)

	viper.SetDefault("calendar.timezone", "Local")

	viper.SetDefault("notification.reminder_window", "60m")
	viper.SetDefault("notification.dedupe_ttl", "1m")
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		return os.Getenv(envVar)
	}
	return value
}
