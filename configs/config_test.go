package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"FIXTURE_DIR", "FIXTURE_STRICT_SCHEMA", "LOG_LEVEL", "TRACING_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "batchmock", cfg.ServiceName)
	assert.Equal(t, "ResponseFile", cfg.FixtureDir)
	assert.True(t, cfg.StrictSchema)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, "stderr", cfg.LogOutput)
	assert.Equal(t, "json", cfg.LogEncoding)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FIXTURE_DIR", "testdata/ResponseFile")
	t.Setenv("FIXTURE_STRICT_SCHEMA", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRACING_ENABLED", "true")

	cfg := LoadConfig()

	assert.Equal(t, "testdata/ResponseFile", cfg.FixtureDir)
	assert.False(t, cfg.StrictSchema)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.TracingEnabled)
}
