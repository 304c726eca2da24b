package config

import (
	"encoding/json"
	"os"

	"github.com/cybershield/cybershield-cli/internal/flagx"
	"github.com/cybershield/cybershield-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. timex.Duration
// lets intervals be written either as strings like "15s" or as integer
// nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LoginRedirectDelay  timex.Duration `json:"login_redirect_delay"`
	StateDBPath         string         `json:"state_db_path"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. When the flag is absent no JSON is loaded. Only fields
// present in the file override the current values. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LoginRedirectDelay.Duration != 0 {
		cfg.LoginRedirectDelay = jc.LoginRedirectDelay.Duration
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
}
