package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	PageSize   int        `toml:"page_size"`   // rows per page
	MoveStep   int        `toml:"move_step"`   // previous/next step, 0 = derive from width
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	FooterHeight  float64 `toml:"footer_height"`
	ActiveColor   string  `toml:"active_color"`   // current page button
	InactiveColor string  `toml:"inactive_color"` // other page buttons
	IconColor     string  `toml:"icon_color"`     // first/prev/next/last icons
	DisabledColor string  `toml:"disabled_color"` // icons at the boundary
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service writing to the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "plutogrid")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		PageSize: 20,
		MoveStep: 0,
		UISettings: UISettings{
			FooterHeight:  1,
			ActiveColor:   "99",
			InactiveColor: "241",
			IconColor:     "33",
			DisabledColor: "238",
		},
	}
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from a specific path. A missing file
// yields the defaults; an invalid move step is rejected here so a broken
// configuration never reaches the pagination service.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves the configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	raw, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate rejects configurations that would misbehave at runtime rather
// than silently correcting them
func Validate(cfg *Config) error {
	if cfg.MoveStep < 0 {
		return fmt.Errorf("move_step must be positive, got %d", cfg.MoveStep)
	}
	if cfg.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", cfg.PageSize)
	}
	if cfg.UISettings.FooterHeight < 0 {
		return fmt.Errorf("footer_height must not be negative, got %v", cfg.UISettings.FooterHeight)
	}
	return nil
}
