package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_Overrides(t *testing.T) {
	path := writeConfigFile(t, `{
		"server_endpoint_addr": "http://json.example",
		"request_timeout": "7s",
		"online_check_interval": "1m",
		"login_redirect_delay": "3s",
		"state_db_path": "json.db"
	}`)

	oldArgs := os.Args
	os.Args = []string{"cybershield", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://json.example", cfg.ServerEndpointAddr)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
	require.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	require.Equal(t, 3*time.Second, cfg.LoginRedirectDelay)
	require.Equal(t, "json.db", cfg.StateDBPath)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"server_endpoint_addr": "http://json.example"}`)

	oldArgs := os.Args
	os.Args = []string{"cybershield", "-config", path}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://json.example", cfg.ServerEndpointAddr)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "cybershield.db", cfg.StateDBPath)
}

func TestParseJson_NoFlagIsNoOp(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cybershield"}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://127.0.0.1:8000", cfg.ServerEndpointAddr)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	oldArgs := os.Args
	os.Args = []string{"cybershield", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(&cfg) })
}
