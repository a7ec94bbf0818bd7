package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"tuisearch/internal/eventbus"
)

// ErrNotFound is returned when an explicitly requested config file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Catalog CatalogSettings `toml:"catalog"`
	History HistorySettings `toml:"history"`
	Style   StyleConfig     `toml:"style"`
	UI      UISettings      `toml:"ui"`
}

// CatalogSettings locates the terms file
type CatalogSettings struct {
	Path string `toml:"path"` // empty uses the built-in sample catalog
}

// HistorySettings controls where recent selections are kept
type HistorySettings struct {
	Path  string `toml:"path"` // SQLite database, empty keeps recents in memory
	Limit int    `toml:"limit"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or for the default
// location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns $XDG_CONFIG_HOME/tuisearch/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "tuisearch", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, or the defaults when there is none
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Settings missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Style.validate(); err != nil {
		return nil, fmt.Errorf("invalid style in %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultHistoryLimit is the number of recent searches kept when the config doesn't say
const DefaultHistoryLimit = 10

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		History: HistorySettings{
			Limit: DefaultHistoryLimit,
		},
		UI: UISettings{
			ShowHelp: true,
		},
	}
}

// normalize replaces values that would leave a feature unusable
func (c *Config) normalize() {
	if c.History.Limit <= 0 {
		c.History.Limit = DefaultHistoryLimit
	}
}
