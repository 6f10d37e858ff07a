package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.LessOrEqual(t, cfg.Workers, MaxWorkers)
	assert.Equal(t, DefaultTaskTimeout, cfg.TaskTimeout)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.InputDir = "/in"
		cfg.OutputDir = "/out"
		return cfg
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "thread count"},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, "thread count"},
		{"zero timeout", func(c *Config) { c.TaskTimeout = 0 }, "timeout"},
		{"negative timeout", func(c *Config) { c.TaskTimeout = -time.Second }, "timeout"},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }, "color mode"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log format"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"missing input dir", func(c *Config) { c.InputDir = "" }, "input_dir"},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, "input_dir"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidate_CheckOnlySkipsPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SHORTS_THREADS", "7")
	t.Setenv("SHORTS_TIMEOUT", "90s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := DefaultConfig()
	ApplyEnv(&cfg)

	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, 90*time.Second, cfg.TaskTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestApplyEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("SHORTS_THREADS", "many")
	t.Setenv("SHORTS_TIMEOUT", "soon")

	cfg := DefaultConfig()
	want := cfg
	ApplyEnv(&cfg)

	assert.Equal(t, want.Workers, cfg.Workers)
	assert.Equal(t, want.TaskTimeout, cfg.TaskTimeout)
}

func TestNormalizeDirArg(t *testing.T) {
	assert.Equal(t, "/data/in", NormalizeDirArg("/data/in/"))
	assert.Equal(t, "/data/in", NormalizeDirArg("/data/in"))
	assert.Equal(t, "/", NormalizeDirArg("/"))
}

func TestValidatePaths(t *testing.T) {
	cfg := DefaultConfig()

	assert.Error(t, cfg.ValidatePaths("/media/in", "/media/in"))
	assert.Error(t, cfg.ValidatePaths("/media/in", "/media/in/out"))
	assert.NoError(t, cfg.ValidatePaths("/media/in", "/media/out"))
	// Sibling with a shared name prefix is fine.
	assert.NoError(t, cfg.ValidatePaths("/media/in", "/media/input"))
}

func TestFilterChainIsStable(t *testing.T) {
	// The chain is part of the external contract with ffmpeg; guard
	// against accidental edits to the graph labels or geometry.
	assert.Equal(t,
		"[0:v]scale=2276:1280,boxblur=4[bg];"+
			"[1:v]scale=720:-1[fg];"+
			"[bg][fg]overlay=(W-w)/2:(H-h)/2[tmp];"+
			"[tmp]crop=720:1280:(2276-720)/2:0[out]",
		FilterChain)
}
