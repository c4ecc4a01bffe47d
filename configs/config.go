package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName    string
	FixtureDir     string
	StrictSchema   bool
	LogLevel       string
	LogEncoding    string
	LogOutput      string
	TracingEnabled bool
}

// LoadConfig reads configuration from the environment, after loading a .env
// file from the working directory when one exists.
func LoadConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_NAME", "batchmock")
	v.SetDefault("FIXTURE_DIR", "ResponseFile")
	v.SetDefault("FIXTURE_STRICT_SCHEMA", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "json")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("TRACING_ENABLED", false)

	return &Config{
		ServiceName:    v.GetString("SERVICE_NAME"),
		FixtureDir:     v.GetString("FIXTURE_DIR"),
		StrictSchema:   v.GetBool("FIXTURE_STRICT_SCHEMA"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogEncoding:    v.GetString("LOG_ENCODING"),
		LogOutput:      v.GetString("LOG_OUTPUT"),
		TracingEnabled: v.GetBool("TRACING_ENABLED"),
	}
}
