package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type JWTConfig struct {
	Secret        string `yaml:"secret"`
	AccessTTLRaw  string `yaml:"access_ttl"`
	RefreshTTLRaw string `yaml:"refresh_ttl"`

	// заполняются в LoadConfig из *Raw строк
	AccessTTL  time.Duration `yaml:"-"`
	RefreshTTL time.Duration `yaml:"-"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
	Enabled  bool   `yaml:"enabled"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	JWT   JWTConfig `yaml:"jwt"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	cfg.JWT.AccessTTL = parseTTL(cfg.JWT.AccessTTLRaw, 15*time.Minute)
	cfg.JWT.RefreshTTL = parseTTL(cfg.JWT.RefreshTTLRaw, 30*24*time.Hour)
	return &cfg
}

func parseTTL(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		panic("Failed to parse ttl '" + raw + "': " + err.Error())
	}
	return d
}
