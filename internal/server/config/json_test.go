package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test"}

	c := &Config{}
	c.LoadDefaults()
	want := *c

	parseJSON(c)
	assert.Equal(t, want, *c)
}

func TestParseJSON_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"endpoint_addr_http": ":9999",
		"database_dsn": "postgres://json",
		"secret_key": "json-secret",
		"access_token_validity_duration": "45m",
		"bcrypt_cost": 12
	}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJSON(c)

	assert.Equal(t, ":9999", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://json", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 45*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 12, c.BcryptCost)
}

func TestParseJSON_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"secret_key": "only-secret"}`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-config", path}

	c := &Config{}
	c.LoadDefaults()
	parseJSON(c)

	assert.Equal(t, "only-secret", c.SecretKey)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
}

func TestParseJSON_InvalidFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	require.Panics(t, func() { parseJSON(c) })
}
