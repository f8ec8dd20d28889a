package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvDatabaseURL   = "ARENA_DATABASE_URL"
	EnvMigrationsDir = "ARENA_MIGRATIONS_DIR"
	EnvWSPort        = "ARENA_WS_PORT"
	EnvTCPPort       = "ARENA_TCP_PORT"
	EnvAPIPort       = "ARENA_API_PORT"
	EnvLogLevel      = "ARENA_LOG_LEVEL"
	EnvTickRate      = "ARENA_TICK_RATE"
	EnvAllowOrigin   = "ARENA_ALLOW_ORIGIN"
	EnvTLSCertFile   = "ARENA_TLS_CERT_FILE"
	EnvTLSKeyFile    = "ARENA_TLS_KEY_FILE"
)

// Config is the server configuration. Flags in cmd/server override it.
type Config struct {
	DatabaseURL string
	// MigrationsDir holds one subdirectory of migrations per database type.
	MigrationsDir string
	WSPort        int
	TCPPort       int
	APIPort       int
	LogLevel      string
	// TickRate is the number of simulation ticks per second.
	TickRate    float64
	AllowOrigin string
	TLSCertFile string
	TLSKeyFile  string
}

func Default() *Config {
	return &Config{
		DatabaseURL:   "sqlite://arena.db",
		MigrationsDir: "./migrations",
		WSPort:        8080,
		TCPPort:       8888,
		APIPort:       9090,
		LogLevel:      "info",
		TickRate:      30,
		AllowOrigin:   "*",
	}
}

// Load reads the given .env files, or .env when none are given, and then the
// ARENA_* environment. Missing files are ignored. Variables already set in the
// environment win over the files.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %v", err)
	}

	c := Default()
	c.DatabaseURL = stringEnv(EnvDatabaseURL, c.DatabaseURL)
	c.MigrationsDir = stringEnv(EnvMigrationsDir, c.MigrationsDir)
	c.LogLevel = stringEnv(EnvLogLevel, c.LogLevel)
	c.AllowOrigin = stringEnv(EnvAllowOrigin, c.AllowOrigin)
	c.TLSCertFile = stringEnv(EnvTLSCertFile, c.TLSCertFile)
	c.TLSKeyFile = stringEnv(EnvTLSKeyFile, c.TLSKeyFile)

	var err error
	if c.WSPort, err = intEnv(EnvWSPort, c.WSPort); err != nil {
		return nil, err
	}
	if c.TCPPort, err = intEnv(EnvTCPPort, c.TCPPort); err != nil {
		return nil, err
	}
	if c.APIPort, err = intEnv(EnvAPIPort, c.APIPort); err != nil {
		return nil, err
	}
	if c.TickRate, err = floatEnv(EnvTickRate, c.TickRate); err != nil {
		return nil, err
	}
	if c.TickRate <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %v", EnvTickRate, c.TickRate)
	}
	return c, nil
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %v", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %v", key, err)
	}
	return f, nil
}
