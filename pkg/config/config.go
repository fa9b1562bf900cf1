/*
Package config manages TOML config for the tag cloud tools.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Lehman3D/Tag-Cloud-Generator/internal/utils"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/cloud"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/tokenize"
)

// Config holds the entire config structure
type Config struct {
	Cloud  CloudConfig  `toml:"cloud"`
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
}

// CloudConfig has pipeline related options.
type CloudConfig struct {
	DefaultCount int    `toml:"default_count"`
	Separators   string `toml:"separators"`
}

// RenderConfig holds page rendering options.
type RenderConfig struct {
	MinFont     int    `toml:"min_font"`
	MaxFont     int    `toml:"max_font"`
	Stylesheet  string `toml:"stylesheet"`
	EscapeWords bool   `toml:"escape_words"`
}

// ServerConfig has IPC server limits.
type ServerConfig struct {
	MaxCount     int `toml:"max_count"`
	MaxTextBytes int `toml:"max_text_bytes"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return execDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "tagcloud")
	if writableDir(primaryPath) {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "tagcloud")
	if writableDir(macOSPath) {
		return macOSPath, nil
	}
	return execDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// writableDir reports whether dir can hold the config file, creating the
// directory when missing.
func writableDir(dir string) bool {
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warnf("Cannot create directory %s: %v", dir, err)
			return false
		}
	}
	probe := filepath.Join(dir, ".write_test")
	f, err := os.Create(probe)
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dir, err)
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}

// execDir is the last-resort config home next to the running binary.
func execDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// LoadWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/tagcloud/config.toml
// 3. Builtin defaults
func LoadWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Cloud: CloudConfig{
			DefaultCount: 100,
			Separators:   tokenize.DefaultAlphabet,
		},
		Render: RenderConfig{
			MinFont:     cloud.MinFont,
			MaxFont:     cloud.MaxFont,
			Stylesheet:  cloud.DefaultStylesheet,
			EscapeWords: false,
		},
		Server: ServerConfig{
			MaxCount:     10000,
			MaxTextBytes: 10 << 20,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := loadTOML(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	loose, err := parseLoose(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if cloudSection, ok := section(loose, "cloud"); ok {
		extractCloudConfig(cloudSection, &config.Cloud)
	}
	if renderSection, ok := section(loose, "render"); ok {
		extractRenderConfig(renderSection, &config.Render)
	}
	if serverSection, ok := section(loose, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

// extractCloudConfig extracts pipeline configuration from a map
func extractCloudConfig(data map[string]any, cloudCfg *CloudConfig) {
	if val, ok := intValue(data, "default_count"); ok {
		cloudCfg.DefaultCount = val
	}
	if val, ok := stringValue(data, "separators"); ok {
		cloudCfg.Separators = val
	}
}

// extractRenderConfig extracts rendering configuration from a map
func extractRenderConfig(data map[string]any, render *RenderConfig) {
	if val, ok := intValue(data, "min_font"); ok {
		render.MinFont = val
	}
	if val, ok := intValue(data, "max_font"); ok {
		render.MaxFont = val
	}
	if val, ok := stringValue(data, "stylesheet"); ok {
		render.Stylesheet = val
	}
	if val, ok := boolValue(data, "escape_words"); ok {
		render.EscapeWords = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := intValue(data, "max_count"); ok {
		server.MaxCount = val
	}
	if val, ok := intValue(data, "max_text_bytes"); ok {
		server.MaxTextBytes = val
	}
}

// Validate reports the first invalid setting found, nil when usable.
func (c *Config) Validate() error {
	if c.Cloud.DefaultCount < 0 {
		return fmt.Errorf("cloud.default_count must be non-negative, got %d", c.Cloud.DefaultCount)
	}
	if c.Cloud.Separators == "" {
		return fmt.Errorf("cloud.separators must not be empty")
	}
	if c.Render.MinFont < 1 {
		return fmt.Errorf("render.min_font must be positive, got %d", c.Render.MinFont)
	}
	if c.Render.MaxFont < c.Render.MinFont {
		return fmt.Errorf("render.max_font %d is below render.min_font %d", c.Render.MaxFont, c.Render.MinFont)
	}
	if c.Server.MaxCount < 0 {
		return fmt.Errorf("server.max_count must be non-negative, got %d", c.Server.MaxCount)
	}
	if c.Server.MaxTextBytes < 0 {
		return fmt.Errorf("server.max_text_bytes must be non-negative, got %d", c.Server.MaxTextBytes)
	}
	return nil
}

// GeneratorOptions translates the config into pipeline options.
func (c *Config) GeneratorOptions() []cloud.Option {
	return []cloud.Option{
		cloud.WithSeparators(tokenize.NewSeparatorSet(c.Cloud.Separators)),
		cloud.WithScale(cloud.Scale{MinFont: c.Render.MinFont, MaxFont: c.Render.MaxFont}),
		cloud.WithStylesheet(c.Render.Stylesheet),
		cloud.WithEscaping(c.Render.EscapeWords),
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	if !filepath.IsAbs(configPath) {
		if abs, err := filepath.Abs(configPath); err == nil {
			return abs
		}
	}
	return configPath
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the server limits and saves to file
func (c *Config) Update(configPath string, maxCount, maxTextBytes *int) error {
	server := &c.Server
	if maxCount != nil {
		server.MaxCount = *maxCount
	}
	if maxTextBytes != nil {
		server.MaxTextBytes = *maxTextBytes
	}
	return SaveConfig(c, configPath)
}
