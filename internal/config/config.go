package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`

	DBDriver   string `toml:"db_driver"`
	DBHost     string `toml:"db_host"`
	DBPort     int    `toml:"db_port"`
	DBUser     string `toml:"db_user"`
	DBPassword string `toml:"db_password"`
	DBName     string `toml:"db_name"`
	SQLitePath string `toml:"sqlite_path"`

	// JWTSecret turns on bearer auth for /recommend when set.
	JWTSecret string `toml:"jwt_secret"`
}

func Default() *Config {
	return &Config{
		Port: 5000,
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:3001",
		},
		DBDriver:   DriverPostgres,
		DBHost:     "localhost",
		DBPort:     5432,
		DBName:     "proman",
		SQLitePath: "proman.db",
	}
}

// Load reads configuration from the environment only.
func Load() *Config {
	cfg := Default()
	applyEnv(cfg)
	return cfg
}

// LoadFrom reads a TOML file over the defaults, then applies environment
// overrides. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if _, err := toml.Decode(string(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	setString(&cfg.DBDriver, "DB_DRIVER")
	setString(&cfg.DBHost, "DB_HOST")
	if port, err := strconv.Atoi(os.Getenv("DB_PORT")); err == nil {
		cfg.DBPort = port
	}
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.SQLitePath, "SQLITE_PATH")
	setString(&cfg.JWTSecret, "JWT_SECRET")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ConnString returns the data source name for the configured driver.
func (c *Config) ConnString() string {
	if c.DBDriver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
