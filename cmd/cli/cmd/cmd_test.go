package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interest-calc/internal/config"
	"interest-calc/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputFormat, noColor, serveAddr = "", false, ""
	config.Set(config.Default())
	t.Cleanup(func() { config.Set(config.Default()) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config", t.TempDir() + "/none.hcl"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCalcPrintsResult(t *testing.T) {
	out, err := run(t, "calc", "--no-color", "1000", "5", "2")
	require.NoError(t, err)
	assert.Equal(t, "Interest = 100.00\n", out)
}

func TestCalcRejectsInput(t *testing.T) {
	out, err := run(t, "calc", "--no-color", "--", "-10", "5", "2")
	require.Error(t, err)
	assert.True(t, isReported(err))
	assert.Equal(t, errors.KindNonPositiveValue, errors.KindOf(err))
	assert.Equal(t, "Input should be greater than 0.\n", out)
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "calc", "--format", "json", "1500", "4.5", "3")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Interest = 202.50", got["result"])
}

func TestCalcRequiresThreeArgs(t *testing.T) {
	_, err := run(t, "calc", "1000", "5")
	require.Error(t, err)
	assert.False(t, isReported(err))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "interest-calc version "+Version+"\n", out)
}

func TestHTTPConfigFromFileConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Address = "127.0.0.1:9999"
	cfg.Server.ShutdownTimeout = "2s"

	httpCfg := HTTPConfig(cfg)
	assert.Equal(t, "127.0.0.1:9999", httpCfg.Address)
	assert.Equal(t, 2*time.Second, httpCfg.ShutdownTimeout)
	assert.Equal(t, Version, httpCfg.Version)
}
