package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func validConfig() *Config {
	return &Config{
		Server:  Server{Host: "127.0.0.1", Port: 8080, Mode: "release"},
		Logger:  Logger{Level: "info", Format: "console"},
		History: History{Backend: "memory"},
		Suggest: Suggest{Provider: "none"},
		Archive: Archive{Backend: "none"},
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  mode: test
logger:
  level: debug
  format: json
history:
  backend: memory
notify:
  ttl: 5s
cache:
  enabled: false
`)

	conf, err := Load(Flags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, AppName, conf.AppName)
	assert.Equal(t, 9090, conf.Server.Port)
	assert.Equal(t, "test", conf.Server.Mode)
	assert.Equal(t, "json", conf.Logger.Format)
	assert.Equal(t, "memory", conf.History.Backend)
	assert.Equal(t, 5*time.Second, conf.Notify.TTL)
	assert.False(t, conf.Cache.Enabled)
	assert.Equal(t, "127.0.0.1:9090", conf.Address())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(Flags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Server.Port)
	assert.Equal(t, "file", conf.History.Backend)
	assert.Equal(t, 3*time.Second, conf.Notify.TTL)
	assert.Equal(t, "none", conf.Suggest.Provider)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("QRSTUDIO_PORT", "7000")
	t.Setenv("QRSTUDIO_LOG_LEVEL", "warn")

	conf, err := Load(Flags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 7000, conf.Server.Port)
	assert.Equal(t, "warn", conf.Logger.Level)
}

func TestLoad_DebugFlagForcesDebugLevel(t *testing.T) {
	conf, err := Load(Flags{Debug: true})
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.True(t, conf.Debug)
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: verbose\n")
	_, err := Load(Flags{ConfigPath: path})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_BackendRequirements(t *testing.T) {
	cases := map[string]func(c *Config){
		"file history without path": func(c *Config) { c.History = History{Backend: "file"} },
		"redis history without url": func(c *Config) { c.History = History{Backend: "redis"} },
		"http suggest w/o endpoint": func(c *Config) { c.Suggest = Suggest{Provider: "http"} },
		"local archive without dir": func(c *Config) { c.Archive = Archive{Backend: "local"} },
		"s3 archive without bucket": func(c *Config) { c.Archive = Archive{Backend: "s3"} },
		"unknown history backend":   func(c *Config) { c.History.Backend = "sqlite" },
		"zero port":                 func(c *Config) { c.Server.Port = 0 },
		"negative toast ttl":        func(c *Config) { c.Notify.TTL = -time.Second },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			assert.ErrorIs(t, Validate(c), ErrInvalidConfig)
		})
	}
}

func TestSuggest_Enabled(t *testing.T) {
	assert.False(t, Suggest{}.Enabled())
	assert.False(t, Suggest{Provider: "none"}.Enabled())
	assert.True(t, Suggest{Provider: "gemini"}.Enabled())
}
