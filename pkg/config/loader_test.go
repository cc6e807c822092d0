package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianozsvald/bulwark/pkg/config"
)

type testConfig struct {
	LogLevel  string `env:"TEST_BULWARK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TEST_BULWARK_LOG_FORMAT" envDefault:"text"`
	Workers   int    `env:"TEST_BULWARK_WORKERS" envDefault:"1"`
}

type requiredConfig struct {
	Token string `env:"TEST_BULWARK_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, 1, cfg.Workers)
	})

	t.Run("env values override defaults", func(t *testing.T) {
		t.Setenv("TEST_BULWARK_LOG_LEVEL", "debug")
		t.Setenv("TEST_BULWARK_WORKERS", "4")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 4, cfg.Workers)
	})

	t.Run("fails on unparsable values", func(t *testing.T) {
		t.Setenv("TEST_BULWARK_WORKERS", "lots")

		var cfg testConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("fails on nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when loading fails", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("returns normally on success", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
