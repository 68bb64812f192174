package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string `validate:"required"`
	Environment string `validate:"oneof=development test staging production"`
	HTTP        HTTPConfig
	Upstream    UpstreamConfig
	Redis       RedisConfig
	Flash       FlashConfig
	Journal     JournalConfig
	Monitor     MonitorConfig
	Context     ContextConfig
	Logger      LoggerConfig
	View        ViewConfig
}

type HTTPConfig struct {
	Host         string
	Port         string `validate:"required,numeric"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// UpstreamConfig describes the external assignments service.
type UpstreamConfig struct {
	URL        string        `validate:"required,url"`
	Timeout    time.Duration `validate:"gt=0"`
	MaxConns   int           `validate:"gte=0"`
	Token      string
	JWTSecret  string
	JWTIssuer  string
	JWTSubject string
	JWTTTL     time.Duration `validate:"gt=0"`
}

type RedisConfig struct {
	Enabled  bool
	URL      string `validate:"required_if=Enabled true"`
	Password string
	DB       int `validate:"gte=0"`
}

type FlashConfig struct {
	TTL time.Duration `validate:"gt=0"`
}

type JournalConfig struct {
	Path           string        `validate:"required"`
	RetentionHours int           `validate:"gt=0"`
	PruneInterval  time.Duration `validate:"gte=1s"`
}

type MonitorConfig struct {
	Interval time.Duration `validate:"gt=0"`
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string `validate:"oneof=json console"`
}

// ViewConfig is the small configuration surface of the rendered board.
type ViewConfig struct {
	Title        string
	LabelLayout  string `validate:"required"`
	DateLayout   string `validate:"required"`
	DeleteStyle  string `validate:"oneof=text icon"`
	DeferredLoad bool
	AddURL       string `validate:"required"`
	HelpURL      string `validate:"required"`
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults so the board can boot against a local service.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "assignment-board"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Upstream: UpstreamConfig{
			URL:        getString("UPSTREAM_URL", "http://localhost:10000"),
			Timeout:    getDuration("UPSTREAM_TIMEOUT", 5*time.Second),
			MaxConns:   getInt("UPSTREAM_MAX_CONNS", 64),
			Token:      os.Getenv("UPSTREAM_TOKEN"),
			JWTSecret:  os.Getenv("UPSTREAM_JWT_SECRET"),
			JWTIssuer:  getString("UPSTREAM_JWT_ISSUER", "assignment-board"),
			JWTSubject: getString("UPSTREAM_JWT_SUBJECT", "assignment-board"),
			JWTTTL:     getDuration("UPSTREAM_JWT_TTL", time.Minute),
		},
		Redis: RedisConfig{
			Enabled:  getBool("REDIS_ENABLED", false),
			URL:      getString("REDIS_URL", "redis://localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		Flash: FlashConfig{
			TTL: getDuration("FLASH_TTL", 5*time.Minute),
		},
		Journal: JournalConfig{
			Path:           getString("JOURNAL_PATH", "./data/journal.db"),
			RetentionHours: getInt("JOURNAL_RETENTION_HOURS", 24*7),
			PruneInterval:  getDuration("JOURNAL_PRUNE_INTERVAL", time.Hour),
		},
		Monitor: MonitorConfig{
			Interval: getDuration("MONITOR_INTERVAL", 10*time.Second),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 10*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
		View: ViewConfig{
			Title:        getString("VIEW_TITLE", "Assignments"),
			LabelLayout:  getString("VIEW_LABEL_LAYOUT", "Mon, Jan 2"),
			DateLayout:   getString("VIEW_DATE_LAYOUT", "1/2/2006"),
			DeleteStyle:  getString("VIEW_DELETE_STYLE", "text"),
			DeferredLoad: getBool("VIEW_DEFERRED_LOAD", false),
			AddURL:       getString("VIEW_ADD_URL", "/add"),
			HelpURL:      getString("VIEW_HELP_URL", "/help"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the struct tags of the whole configuration tree.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}

// JournalRetention converts the retention window into a duration.
func (c *Config) JournalRetention() time.Duration {
	return time.Duration(c.Journal.RetentionHours) * time.Hour
}
