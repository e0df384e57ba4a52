// Package config resolves process configuration from flags, falling back to
// environment variables (optionally loaded from a .env file).
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceFixture  = "fixture"
	SourceFile     = "file"
	SourceRemote   = "remote"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr string

	// Sources lists the poll sources to merge, in order.
	Sources       []string
	FetchDelay    time.Duration
	CatalogPath   string
	RemoteURL     string
	RemoteTimeout time.Duration
	Postgres      Database

	LoadOnStart bool
	LogLevel    string
	LogFormat   string
}

// Database holds the settings of the Postgres catalog.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (d Database) ConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// LoadEnv reads a .env file into the environment if present.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func Load(name string, args []string) (Config, error) {
	var cfg Config
	var sources, fetchDelay, remoteTimeout string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "addr", envString("HTTP_ADDR", "0.0.0.0:8080"), "HTTP listen address")
	fs.StringVar(&sources, "source", envString("POLL_SOURCE", SourceFixture), "Comma separated poll sources (fixture, file, remote, postgres)")
	fs.StringVar(&fetchDelay, "fetch-delay", envString("POLL_FETCH_DELAY", "500ms"), "Simulated latency of the fixture source")
	fs.StringVar(&cfg.CatalogPath, "catalog", os.Getenv("POLL_CATALOG_PATH"), "YAML catalog path for the file source")
	fs.StringVar(&cfg.RemoteURL, "remote-url", os.Getenv("POLL_REMOTE_URL"), "Catalog URL for the remote source")
	fs.StringVar(&remoteTimeout, "remote-timeout", envString("POLL_REMOTE_TIMEOUT", "5s"), "HTTP timeout of the remote source")
	fs.StringVar(&cfg.Postgres.Host, "db-host", os.Getenv("POSTGRES_HOST"), "Database host")
	fs.StringVar(&cfg.Postgres.Port, "db-port", envString("POSTGRES_PORT", "5432"), "Database port")
	fs.StringVar(&cfg.Postgres.User, "db-user", os.Getenv("POSTGRES_USER"), "Database user")
	fs.StringVar(&cfg.Postgres.Password, "db-pass", os.Getenv("POSTGRES_PASSWORD"), "Database password")
	fs.StringVar(&cfg.Postgres.Name, "db-name", os.Getenv("POSTGRES_DB"), "Database name")
	fs.BoolVar(&cfg.LoadOnStart, "load-on-start", envBool("LOAD_ON_START", true), "Load the catalog before serving")
	fs.StringVar(&cfg.LogLevel, "log-level", envString("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", envString("LOG_FORMAT", "text"), "Log format (text, json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	if cfg.FetchDelay, err = time.ParseDuration(fetchDelay); err != nil {
		return Config{}, fmt.Errorf("invalid fetch delay %q: %w", fetchDelay, err)
	}
	if cfg.RemoteTimeout, err = time.ParseDuration(remoteTimeout); err != nil {
		return Config{}, fmt.Errorf("invalid remote timeout %q: %w", remoteTimeout, err)
	}
	cfg.Sources = splitList(sources)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return errors.New("at least one poll source is required")
	}
	for _, source := range c.Sources {
		switch source {
		case SourceFixture:
		case SourceFile:
			if c.CatalogPath == "" {
				return errors.New("file source requires a catalog path (-catalog or POLL_CATALOG_PATH)")
			}
		case SourceRemote:
			if c.RemoteURL == "" {
				return errors.New("remote source requires a url (-remote-url or POLL_REMOTE_URL)")
			}
		case SourcePostgres:
			if c.Postgres.Host == "" || c.Postgres.Name == "" {
				return errors.New("postgres source requires POSTGRES_HOST and POSTGRES_DB")
			}
		default:
			return fmt.Errorf("unknown poll source %q", source)
		}
	}
	if c.FetchDelay < 0 {
		return errors.New("fetch delay must not be negative")
	}
	return nil
}

func (c Config) Uses(source string) bool {
	for _, s := range c.Sources {
		if s == source {
			return true
		}
	}
	return false
}

func envString(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func splitList(raw string) []string {
	var items []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(strings.ToLower(value))
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
