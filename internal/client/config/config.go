package config

import "time"

// Config holds runtime settings for the blogsync CLI.
//
// Fields:
//   - DataDir: directory holding the settings database and the sealed
//     credential files.
//   - RequestTimeout: whole-exchange timeout applied by the HTTP client.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - LogLevel: minimum level for structured logging (debug/info/warn/error).
type Config struct {
	DataDir             string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".blogsync"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present), a JSON file (if
// selected) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
