package mcpserver

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every server setting.
const envPrefix = "ROMANS_"

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from ROMANS_* environment variables via loadConfig().
type serverConfig struct {
	// Parse tool defaults.
	ParseStrict bool `env:"PARSE_STRICT" envDefault:"false"`

	// Validate tool defaults.
	ValidateStrict     bool `env:"VALIDATE_STRICT"      envDefault:"false"`
	ValidateNoWarnings bool `env:"VALIDATE_NO_WARNINGS" envDefault:"false"`

	// Table tool paging.
	TableLimit int `env:"TABLE_LIMIT" envDefault:"100"`
	MaxLimit   int `env:"MAX_LIMIT"   envDefault:"1000"`
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

func defaultConfig() *serverConfig {
	return &serverConfig{TableLimit: 100, MaxLimit: 1000}
}

// loadConfig reads configuration from ROMANS_* environment variables.
// A value that does not parse logs a warning and the hardcoded defaults are used.
func loadConfig() *serverConfig {
	c := &serverConfig{}
	if err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix}); err != nil {
		slog.Warn("invalid env var, using defaults", "prefix", envPrefix, "error", err)
		return defaultConfig()
	}

	defaults := defaultConfig()
	if c.TableLimit <= 0 {
		slog.Warn("non-positive limit, using default", "key", envPrefix+"TABLE_LIMIT", "value", c.TableLimit, "default", defaults.TableLimit)
		c.TableLimit = defaults.TableLimit
	}
	if c.MaxLimit <= 0 {
		slog.Warn("non-positive limit, using default", "key", envPrefix+"MAX_LIMIT", "value", c.MaxLimit, "default", defaults.MaxLimit)
		c.MaxLimit = defaults.MaxLimit
	}
	return c
}
