package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ridehail/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"RIDEHAIL_TEST_NAME" envDefault:"ridehail"`
	Port    int           `env:"RIDEHAIL_TEST_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"RIDEHAIL_TEST_TIMEOUT" envDefault:"5s"`
}

type cachedConfig struct {
	Value string `env:"RIDEHAIL_TEST_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Secret string `env:"RIDEHAIL_TEST_REQUIRED_SECRET,required"`
}

type nestedConfig struct {
	JWT struct {
		Secret string `env:"RIDEHAIL_TEST_NESTED_SECRET" envDefault:"nested"`
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("RIDEHAIL_TEST_NAME")
	os.Unsetenv("RIDEHAIL_TEST_PORT")
	os.Unsetenv("RIDEHAIL_TEST_TIMEOUT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "ridehail", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("RIDEHAIL_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("RIDEHAIL_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", second.Value, "second load should come from the cache")

	var fresh cachedConfig
	require.NoError(t, config.Parse(&fresh))
	assert.Equal(t, "second", fresh.Value, "Parse bypasses the cache")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("RIDEHAIL_TEST_REQUIRED_SECRET")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	// the failure is cached as well
	err = config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Reset(t *testing.T) {
	os.Unsetenv("RIDEHAIL_TEST_REQUIRED_SECRET")
	config.Reset()

	var cfg requiredConfig
	require.Error(t, config.Load(&cfg))

	t.Setenv("RIDEHAIL_TEST_REQUIRED_SECRET", "s3cret")
	config.Reset()

	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestParse_NestedStructs(t *testing.T) {
	t.Setenv("RIDEHAIL_TEST_NESTED_SECRET", "from-env")

	var cfg nestedConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("RIDEHAIL_TEST_REQUIRED_SECRET")
	config.Reset()

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
