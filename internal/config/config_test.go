package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/statusgrab/statusgrab/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appSettings struct {
	Addr    string          `usage:"listen address"`
	Retries int             `cli:"optional"`
	Debug   bool            `cli:"optional"`
	Timeout config.Duration `cli:"optional"`
}

func setArgs(t *testing.T, args ...string) {
	t.Helper()

	old := os.Args
	os.Args = append([]string{"statusgrab-test"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestWorkHelpDefaultsFromConfig(t *testing.T) {
	setArgs(t)

	cfg := appSettings{Addr: ":8080", Retries: 3, Timeout: config.Duration(5 * time.Second)}

	helpCalled, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.NoError(t, err)
	assert.False(t, helpCalled)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, config.Duration(5*time.Second), cfg.Timeout)
}

func TestWorkHelpMissingRequired(t *testing.T) {
	setArgs(t)

	cfg := appSettings{}

	_, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "addr")
}

func TestWorkHelpEnvOverride(t *testing.T) {
	setArgs(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("TIMEOUT", "45s")

	cfg := appSettings{Addr: ":8080"}

	_, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, config.Duration(45*time.Second), cfg.Timeout)
}

func TestWorkHelpFlagOverride(t *testing.T) {
	setArgs(t, "--addr", ":9090", "--debug")

	cfg := appSettings{Addr: ":8080"}

	_, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Debug)
}

func TestWorkHelpHelpFlag(t *testing.T) {
	setArgs(t, "--help")

	cfg := appSettings{Addr: ":8080"}

	helpCalled, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.NoError(t, err)
	assert.True(t, helpCalled)
}

func TestWorkHelpHiddenRequiredConflict(t *testing.T) {
	setArgs(t)

	cfg := struct {
		Secret string `cli:"hidden"`
	}{}

	_, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hidden")
}

func fullConfig() config.Config {
	return config.Config{
		Application: config.Application{LogLevel: "info"},
		Server: config.Server{
			Addr:         ":8080",
			ReadTimeout:  config.Duration(10 * time.Second),
			WriteTimeout: config.Duration(10 * time.Second),
		},
		Resolver: config.Resolver{
			BaseURL:   "https://cdn.syndication.twimg.com/tweet-result",
			UserAgent: "statusgrab/1.0",
			Timeout:   config.Duration(15 * time.Second),
		},
		Cache: config.Cache{TTL: config.Duration(10 * time.Minute)},
		UI:    config.UI{DebounceMS: 250, RevealStaggerMS: 120, BatchedDOM: true},
	}
}

func TestWorkHelpNestedConfig(t *testing.T) {
	setArgs(t)

	cfg := fullConfig()

	helpCalled, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.NoError(t, err)
	assert.False(t, helpCalled)
}

func TestWorkHelpNestedEnvOverride(t *testing.T) {
	setArgs(t)
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("CACHE_REDIS_ADDR", "127.0.0.1:6379")

	cfg := fullConfig()

	_, err := config.WorkHelp("test", "", "", &cfg, config.CommonParseOptions)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "127.0.0.1:6379", cfg.Cache.RedisAddr)
}

func TestDurationUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"duration string", "T: 1h30m", 90 * time.Minute},
		{"integer seconds", "T: 15", 15 * time.Second},
		{"float seconds", "T: 1.5", 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				T config.Duration `yaml:"T"`
			}

			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &out))
			assert.Equal(t, config.Duration(tt.want), out.T)
		})
	}

	var out struct {
		T config.Duration `yaml:"T"`
	}

	assert.Error(t, yaml.Unmarshal([]byte("T: not-a-duration"), &out))
}

func TestDurationMarshalYAML(t *testing.T) {
	b, err := yaml.Marshal(struct {
		T config.Duration `yaml:"T"`
	}{T: config.Duration(5 * time.Minute)})

	require.NoError(t, err)
	assert.Contains(t, string(b), "5m0s")
}
