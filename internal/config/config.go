package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	SMTP     SMTPConfig
	Renderer RendererConfig
}

type AppConfig struct {
	Environment     string
	HTTPPort        string
	LogLevel        string
	ProfileFallback bool
}

type DatabaseConfig struct {
	URL string
}

type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	TTL           time.Duration
}

// SMTPConfig is only needed by the contact endpoint, so it is not checked at
// load time; see Validate.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
	From string
}

type RendererConfig struct {
	ChromePath string
	Timeout    time.Duration
}

// MissingEnvError lists required variables that were empty or unset.
type MissingEnvError struct {
	Vars []string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Vars, ", ")
}

// Load reads the environment, loading a .env file first when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		App: AppConfig{
			Environment:     opt("APP_ENV", "development"),
			HTTPPort:        opt("HTTP_PORT", "3000"),
			LogLevel:        opt("LOG_LEVEL", "info"),
			ProfileFallback: opt("PROFILE_FALLBACK", "false") == "true",
		},
		Database: DatabaseConfig{
			URL: req("DATABASE_URL"),
		},
		Cache: CacheConfig{
			RedisAddr:     opt("REDIS_ADDR", ""),
			RedisPassword: opt("REDIS_PASSWORD", ""),
			TTL:           seconds(opt("REDIS_TTL", ""), 600*time.Second),
		},
		SMTP: SMTPConfig{
			Host: opt("SMTP_HOST", ""),
			Port: opt("SMTP_PORT", ""),
			User: opt("SMTP_USER", ""),
			Pass: opt("SMTP_PASS", ""),
			To:   opt("CONTACT_TO", ""),
			From: opt("CONTACT_FROM", ""),
		},
		Renderer: RendererConfig{
			ChromePath: opt("CHROME_PATH", ""),
			Timeout:    seconds(opt("RENDER_TIMEOUT", ""), 60*time.Second),
		},
	}

	if len(missing) > 0 {
		return Config{}, &MissingEnvError{Vars: missing}
	}
	return cfg, nil
}

// Validate reports which SMTP settings are missing and parses the port.
func (c SMTPConfig) Validate() (int, error) {
	var missing []string
	for _, kv := range [][2]string{
		{"SMTP_HOST", c.Host},
		{"SMTP_PORT", c.Port},
		{"SMTP_USER", c.User},
		{"SMTP_PASS", c.Pass},
		{"CONTACT_TO", c.To},
	} {
		if kv[1] == "" {
			missing = append(missing, kv[0])
		}
	}
	if len(missing) > 0 {
		return 0, &MissingEnvError{Vars: missing}
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 {
		return 0, fmt.Errorf("invalid SMTP_PORT %q", c.Port)
	}
	return port, nil
}

// Sender is the envelope sender: CONTACT_FROM, else the SMTP user.
func (c SMTPConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.User
}

func seconds(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
