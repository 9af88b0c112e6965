package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	// Defaults only, no config file
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "weather-badge", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, "http://ip-api.com", config.Geo.BaseURL)
	assert.Equal(t, "https://api.pirateweather.net", config.Weather.BaseURL)
	assert.Equal(t, []string{"fc00::/7"}, config.Proxy.TrustedRanges)
	assert.Equal(t, "8.8.8.8", config.Proxy.FallbackAddr)
	assert.Equal(t, "info", config.Log.Level)

	// The credential never has a default
	assert.Empty(t, config.Weather.APIKey)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	os.Setenv("APP_NAME", "test-app")
	os.Setenv("APP_ENV", "production")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("WEATHER_API_KEY", "test-key")
	os.Setenv("PROXY_FALLBACK_ADDR", "192.0.2.10")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("APP_ENV")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("WEATHER_API_KEY")
		os.Unsetenv("PROXY_FALLBACK_ADDR")
		os.Unsetenv("LOG_LEVEL")
	}()

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "test-key", config.Weather.APIKey)
	assert.Equal(t, "192.0.2.10", config.Proxy.FallbackAddr)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := `
server:
  port: "9999"
geo:
  base_url: http://geo.internal
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	// File values survive; everything the file omits keeps its default
	assert.Equal(t, "9999", config.Server.Port)
	assert.Equal(t, "http://geo.internal", config.Geo.BaseURL)
	assert.Equal(t, "weather-badge", config.App.Name)
	assert.Equal(t, []string{"fc00::/7"}, config.Proxy.TrustedRanges)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := `
server:
  port: "9999"
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o600))

	os.Setenv("SERVER_PORT", "7777")
	defer os.Unsetenv("SERVER_PORT")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "7777", config.Server.Port)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	valid := &Config{
		App:     AppConfig{Name: "test-app", Version: "1.0.0", Env: "development"},
		Server:  ServerConfig{Port: "8080", ReadTimeout: 10},
		Geo:     GeoConfig{BaseURL: "http://ip-api.com", Timeout: 5},
		Weather: WeatherConfig{BaseURL: "https://api.pirateweather.net", Timeout: 5},
		Proxy:   ProxyConfig{TrustedRanges: []string{"fc00::/7"}, FallbackAddr: "8.8.8.8"},
		Log:     LogConfig{Level: "info"},
	}
	assert.NoError(t, provider.Validate(valid))

	missingName := *valid
	missingName.App.Name = ""
	err := provider.Validate(&missingName)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	badRange := *valid
	badRange.Proxy = ProxyConfig{TrustedRanges: []string{"not-a-cidr"}, FallbackAddr: "8.8.8.8"}
	err = provider.Validate(&badRange)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "trusted_ranges")

	badFallback := *valid
	badFallback.Proxy = ProxyConfig{TrustedRanges: []string{"fc00::/7"}, FallbackAddr: "nope"}
	assert.Error(t, provider.Validate(&badFallback))
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{
		App:   AppConfig{Env: "development"},
		Proxy: ProxyConfig{TrustedRanges: []string{"fc00::/7", "10.0.0.0/8"}},
	}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	prefixes, err := config.TrustedPrefixes()
	require.NoError(t, err)
	require.Len(t, prefixes, 2)
	assert.Equal(t, "fc00::/7", prefixes[0].String())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// A missing file is not an error
	assert.NoError(t, provider.loadFromFile(config))
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{
		config: &Config{
			App:     AppConfig{Name: "test-app", Version: "1.0.0", Env: "development"},
			Server:  ServerConfig{Port: "8080", ReadTimeout: 10},
			Geo:     GeoConfig{BaseURL: "http://ip-api.com", Timeout: 5},
			Weather: WeatherConfig{BaseURL: "https://api.pirateweather.net", Timeout: 5},
			Proxy:   ProxyConfig{TrustedRanges: []string{"fc00::/7"}, FallbackAddr: "8.8.8.8"},
			Log:     LogConfig{Level: "info"},
		},
	}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(cnf *Config) error {
	return nil
}
