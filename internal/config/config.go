package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	// Токены выпускает внешний identity provider, мы только проверяем подпись
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
		Issuer    string `yaml:"issuer"`
	} `yaml:"auth"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Workers struct {
		ExpiryInterval time.Duration `yaml:"expiry_interval"`
	} `yaml:"workers"`
}

var AppConfig *Config

// LoadConfig читает config.yaml, либо, если задан DATABASE_URL,
// собирает конфиг из переменных окружения (контейнеры и тесты).
func LoadConfig() (*Config, error) {
	var cfg *Config
	var err error

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		cfg, err = LoadFile(configPath)
	} else {
		cfg, err = loadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	AppConfig = cfg
	return cfg, nil
}

// LoadFile читает YAML-конфиг по пути
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	cfg := &Config{}
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Auth.Issuer = os.Getenv("JWT_ISSUER")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("EMAIL_FROM")
	cfg.Email.Enabled = cfg.Email.SMTPHost != ""
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		cfg.Email.SMTPPort, _ = strconv.Atoi(portStr)
	}

	if v := os.Getenv("EXPIRY_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EXPIRY_INTERVAL %q: %w", v, err)
		}
		cfg.Workers.ExpiryInterval = d
	}

	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Email.FromName == "" {
		c.Email.FromName = "Job Match"
	}
	if c.Workers.ExpiryInterval == 0 {
		c.Workers.ExpiryInterval = time.Hour
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database url is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Email.Enabled && c.Email.SMTPHost == "" {
		return fmt.Errorf("email.smtp_host is required when email is enabled")
	}
	return nil
}

// GetConfig возвращает загруженный конфиг, при необходимости загружая его
func GetConfig() *Config {
	if AppConfig == nil {
		if _, err := LoadConfig(); err != nil {
			panic(err)
		}
	}
	return AppConfig
}
