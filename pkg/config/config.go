/*
Package config manages TOML config for wordhint.
*/
package config

import (
	"os"
	"path/filepath"

	"wordhint/internal/utils"

	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Dict    DictConfig    `toml:"dict"`
	Filter  FilterConfig  `toml:"filter"`
	Suggest SuggestConfig `toml:"suggest"`
	CLI     CliConfig     `toml:"cli"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path       string `toml:"path"`
	WordLength int    `toml:"word_length"`
	Alphabet   string `toml:"alphabet"`
}

// FilterConfig holds filtering and ranking options.
type FilterConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	SortByFrequency bool `toml:"sort_by_frequency"`
}

// SuggestConfig holds suggestion engine options.
type SuggestConfig struct {
	Starters  []string `toml:"starters"`
	PoolTop   int      `toml:"pool_top"`
	PoolExtra int      `toml:"pool_extra"`
}

// CliConfig holds interactive and display options.
type CliConfig struct {
	ShowMax          int    `toml:"show_max"`
	InteractiveLimit int    `toml:"interactive_limit"`
	ValidationPolicy string `toml:"validation_policy"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordhint
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordhint")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:       "dictionary.txt",
			WordLength: 5,
			Alphabet:   "абвгдеёжзийклмнопрстуфхцчшщъыьэюя",
		},
		Filter: FilterConfig{
			DefaultLimit:    0,
			SortByFrequency: true,
		},
		Suggest: SuggestConfig{
			Starters:  []string{"адрес", "стена", "рейка", "тоска", "ление", "окрас"},
			PoolTop:   10,
			PoolExtra: 20,
		},
		CLI: CliConfig{
			ShowMax:          10,
			InteractiveLimit: 20,
			ValidationPolicy: "relaxed",
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wordhint/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
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

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
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

// LoadConfig loads from a TOML file. Values missing from the file keep
// their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}
