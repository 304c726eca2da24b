package config

import "time"

// Config holds runtime settings for the CyberShield CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the detection API.
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client probes /health.
//   - LoginRedirectDelay: pause between the "limit reached" notice and the
//     login prompt.
//   - StateDBPath: path of the local state database.
type Config struct {
	ServerEndpointAddr  string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LoginRedirectDelay  time.Duration
	StateDBPath         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.LoginRedirectDelay = 2 * time.Second
	c.StateDBPath = "cybershield.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if provided) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
