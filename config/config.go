package config

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Geo     GeoConfig     `yaml:"geo"`
	Weather WeatherConfig `yaml:"weather"`
	Proxy   ProxyConfig   `yaml:"proxy"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

type ServerConfig struct {
	Port        string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
}

type GeoConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"GEO_BASE_URL"`
	Timeout int    `yaml:"timeout" envconfig:"GEO_TIMEOUT"`
}

type WeatherConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"WEATHER_BASE_URL"`
	// APIKey comes from the environment only; it must never appear in the
	// YAML file or in any log field.
	APIKey  string `yaml:"-" envconfig:"WEATHER_API_KEY"`
	Timeout int    `yaml:"timeout" envconfig:"WEATHER_TIMEOUT"`
}

type ProxyConfig struct {
	// TrustedRanges are the CIDR prefixes whose forwarded-for entries are
	// treated as internal hops. Unique local addresses by default.
	TrustedRanges []string `yaml:"trusted_ranges" envconfig:"PROXY_TRUSTED_RANGES"`
	// FallbackAddr is used for the geolocation call whenever no client
	// address can be determined from the request.
	FallbackAddr string `yaml:"fallback_addr" envconfig:"PROXY_FALLBACK_ADDR"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
}

type SentryConfig struct {
	DSN string `yaml:"-" envconfig:"SENTRY_DSN"`
}

// defaultConfig seeds the values every layer above may override. Defaults
// live here rather than in envconfig tags: a tag default would be written
// back whenever the env var is unset, clobbering the YAML layer.
func defaultConfig() Config {
	return Config{
		App: AppConfig{
			Name:    "weather-badge",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:        "8080",
			ReadTimeout: 10,
		},
		Geo: GeoConfig{
			BaseURL: "http://ip-api.com",
			Timeout: 5,
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.pirateweather.net",
			Timeout: 5,
		},
		Proxy: ProxyConfig{
			TrustedRanges: []string{"fc00::/7"},
			FallbackAddr:  "8.8.8.8",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// TrustedPrefixes parses the configured trusted ranges. Validate has
// already rejected unparsable entries by the time this is called.
func (c *Config) TrustedPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.Proxy.TrustedRanges))
	for _, r := range c.Proxy.TrustedRanges {
		p, err := netip.ParsePrefix(r)
		if err != nil {
			return nil, fmt.Errorf("proxy.trusted_ranges: %w", err)
		}
		prefixes = append(prefixes, p)
	}

	return prefixes, nil
}

// FallbackAddr parses the configured fallback client address.
func (c *Config) FallbackAddr() (netip.Addr, error) {
	addr, err := netip.ParseAddr(c.Proxy.FallbackAddr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("proxy.fallback_addr: %w", err)
	}

	return addr, nil
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(cnf *Config) error
}

// FileConfigProvider layers defaults, then the YAML file, then environment
// overrides. A missing file is not an error; the environment and defaults
// still apply.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(&cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("environment variable parsing: %w", err)
	}

	return &cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		return nil
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	if cnf.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if cnf.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if cnf.Geo.BaseURL == "" {
		return fmt.Errorf("geo.base_url is required")
	}
	if cnf.Weather.BaseURL == "" {
		return fmt.Errorf("weather.base_url is required")
	}
	for _, r := range cnf.Proxy.TrustedRanges {
		if _, err := netip.ParsePrefix(r); err != nil {
			return fmt.Errorf("proxy.trusted_ranges entry %q: %w", r, err)
		}
	}
	if _, err := netip.ParseAddr(cnf.Proxy.FallbackAddr); err != nil {
		return fmt.Errorf("proxy.fallback_addr %q: %w", cnf.Proxy.FallbackAddr, err)
	}

	return nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider("config/config.yaml"))
}

// NewConfigWithProvider loads through the provider and owns the single
// validation pass.
func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}
