package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the process configuration. Values are layered: defaults, then the
// optional YAML file named by CONFIG_FILE, then .env, then the environment.
type Config struct {
	Env  string     `yaml:"env"`
	HTTP HTTPConfig `yaml:"http"`
	Log  LogConfig  `yaml:"log"`

	// OSID workbook backing customer lookup for claims.
	CustomerFile string `yaml:"customer_file"`
	// Optional store / RBM master workbook.
	StoreFile string `yaml:"store_file"`

	SMTP     SMTPConfig     `yaml:"smtp"`
	Tracking TrackingConfig `yaml:"tracking"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxUploadMB    int64    `yaml:"max_upload_mb"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SMTPConfig struct {
	Host     string        `yaml:"host"`
	Port     int           `yaml:"port"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	From     string        `yaml:"from"`
	To       string        `yaml:"to"`
	CC       []string      `yaml:"cc"`
	Timeout  time.Duration `yaml:"timeout"`
}

type TrackingConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:        ":8080",
			MaxUploadMB: 32,
		},
		Log:          LogConfig{Level: "info", Format: "json"},
		CustomerFile: "Onsitego OSID.xlsx",
		SMTP: SMTPConfig{
			Host:    "smtp.gmail.com",
			Port:    587,
			Timeout: 10 * time.Second,
		},
		Tracking: TrackingConfig{Timeout: 8 * time.Second},
	}
}

// Load builds the configuration from all layers. A missing .env is not an error;
// a malformed .env or a CONFIG_FILE that cannot be read or parsed is.
func Load() (Config, error) {
	cfg := Default()

	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// loadDotEnv loads the given env files, .env when none is named. Files that
// do not exist are skipped.
func loadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Env, "GO_ENV")
	setString(&c.HTTP.Addr, "HTTP_ADDR")
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv("HTTP_ADDR") == "" {
		c.HTTP.Addr = ":" + port
	}
	setList(&c.HTTP.AllowedOrigins, "CORS_ALLOWED_ORIGINS")
	setInt64(&c.HTTP.MaxUploadMB, "MAX_UPLOAD_MB")

	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	setString(&c.CustomerFile, "CUSTOMER_FILE")
	setString(&c.StoreFile, "STORE_FILE")

	setString(&c.SMTP.Host, "SMTP_HOST")
	setInt(&c.SMTP.Port, "SMTP_PORT")
	setString(&c.SMTP.Username, "SMTP_USERNAME")
	setString(&c.SMTP.Password, "SMTP_PASSWORD")
	setString(&c.SMTP.From, "CLAIM_SENDER_EMAIL")
	setString(&c.SMTP.To, "CLAIM_TARGET_EMAIL")
	setList(&c.SMTP.CC, "CLAIM_CC_EMAILS")
	setDuration(&c.SMTP.Timeout, "SMTP_TIMEOUT")

	setString(&c.Tracking.URL, "TRACKING_URL")
	setDuration(&c.Tracking.Timeout, "TRACKING_TIMEOUT")
}

// IsProduction reports whether GO_ENV names production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

func setString(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if i, err := strconv.Atoi(v); err == nil {
		*dst = i
	}
}

func setInt64(dst *int64, name string) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		*dst = i
	}
}

func setDuration(dst *time.Duration, name string) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}

func setList(dst *[]string, name string) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}
