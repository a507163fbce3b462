package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	Browser    Browser
	Suite      Suite
	Logger     Logger
	Database   Database
	Migrations Migrations
}

type Browser struct {
	Name            string
	Headless        bool
	Display         string
	BrowsersPath    string
	WaitTimeout     time.Duration
	PollInterval    time.Duration
	NavigateTimeout time.Duration
	ViewportWidth   int
	ViewportHeight  int
	ScreenshotDir   string
}

type Suite struct {
	BaseURL      string
	FeaturesPath string
	Tags         string
	Format       string
}

type Logger struct {
	Env   string
	Level string
}

type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// Enabled reports whether run history should be stored.
func (d Database) Enabled() bool {
	return d.Host != ""
}

type Migrations struct {
	Path string
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv), nil
}

// FromEnv builds the configuration from getenv without touching .env files.
func FromEnv(getenv func(string) string) *Cfg {
	e := envReader(getenv)

	return &Cfg{
		Browser: Browser{
			Name:            e.str("BROWSER_NAME", "chromium"),
			Headless:        e.boolean("PW_HEADLESS", true),
			Display:         e.str("DISPLAY", ""),
			BrowsersPath:    e.str("PLAYWRIGHT_BROWSERS_PATH", ""),
			WaitTimeout:     e.duration("WAIT_TIMEOUT", 5*time.Second),
			PollInterval:    e.duration("WAIT_POLL_INTERVAL", 500*time.Millisecond),
			NavigateTimeout: e.duration("NAVIGATE_TIMEOUT", 60*time.Second),
			ViewportWidth:   e.integer("VIEWPORT_WIDTH", 1920),
			ViewportHeight:  e.integer("VIEWPORT_HEIGHT", 1080),
			ScreenshotDir:   e.str("SCREENSHOT_DIR", ""),
		},
		Suite: Suite{
			BaseURL:      e.str("BASE_URL", "https://www.freerangetesters.com"),
			FeaturesPath: e.str("FEATURES_PATH", "features"),
			Tags:         e.str("GODOG_TAGS", ""),
			Format:       e.str("GODOG_FORMAT", "pretty"),
		},
		Logger: Logger{
			Env:   e.str("ENV", "dev"),
			Level: e.str("LOG_LEVEL", "info"),
		},
		Database: Database{
			Host:     getenv("DB_HOST"),
			Port:     e.str("DB_PORT", "5432"),
			Name:     getenv("DB_NAME"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASS"),
			SSLMode:  e.str("DB_SSLMODE", "disable"),
		},
		Migrations: Migrations{
			Path: e.str("MIGRATIONS_PATH", "file://migrations"),
		},
	}
}

type envReader func(string) string

func (e envReader) str(key, defaultValue string) string {
	if v := e(key); v != "" {
		return v
	}
	return defaultValue
}

func (e envReader) integer(key string, defaultValue int) int {
	if v := e(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func (e envReader) boolean(key string, defaultValue bool) bool {
	v := strings.ToLower(strings.TrimSpace(e(key)))
	switch v {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

// duration accepts Go durations ("750ms") or a plain number of seconds.
func (e envReader) duration(key string, defaultValue time.Duration) time.Duration {
	v := strings.TrimSpace(e(key))
	if v == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return defaultValue
}
