package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables. A .env file in the working directory is loaded
// first; real environment variables take precedence over it.
const (
	envServerAddr     = "CYBERSHIELD_SERVER_ADDR"
	envRequestTimeout = "CYBERSHIELD_REQUEST_TIMEOUT"
	envCheckInterval  = "CYBERSHIELD_ONLINE_CHECK_INTERVAL"
	envStateDBPath    = "CYBERSHIELD_STATE_DB"
)

func parseEnv(cfg *Config) {
	// missing .env is the normal case
	_ = godotenv.Load()

	if v := os.Getenv(envServerAddr); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv(envStateDBPath); v != "" {
		cfg.StateDBPath = v
	}
}
