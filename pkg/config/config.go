/*
Package config manages TOML config for bnfgen services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bnfgen/bnfgen/internal/utils"
	"github.com/bnfgen/bnfgen/pkg/alphabet"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Expand    ExpandConfig      `toml:"expand"`
	Server    ServerConfig      `toml:"server"`
	CLI       CliConfig         `toml:"cli"`
	Languages map[string]string `toml:"languages"`
}

// ExpandConfig has expansion engine options.
type ExpandConfig struct {
	MaxRounds    int  `toml:"max_rounds"`
	IndexResults bool `toml:"index_results"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxRules     int `toml:"max_rules"`
	MaxRuleLen   int `toml:"max_rule_len"`
	DefaultLimit int `toml:"default_limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLang string `toml:"default_lang"`
	MaxRuleLen  int    `toml:"max_rule_len"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/bnfgen
// 2. ~/Library/Application Support/bnfgen (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return getExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "bnfgen")
	if err := utils.EnsureDir(primaryPath); err == nil && utils.DirWritable(primaryPath) {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "bnfgen")
	if err := utils.EnsureDir(macOSPath); err == nil && utils.DirWritable(macOSPath) {
		return macOSPath, nil
	}
	return getExecutableDir()
}

func getExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/bnfgen/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
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
		Expand: ExpandConfig{
			MaxRounds:    64,
			IndexResults: true,
		},
		Server: ServerConfig{
			MaxRules:     32,
			MaxRuleLen:   512,
			DefaultLimit: 64,
		},
		CLI: CliConfig{
			DefaultLang: "en",
			MaxRuleLen:  512,
		},
		Languages: map[string]string{},
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

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// SaveConfig writes the config to a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// tryPartialParse attempts to parse a TOML file section by section
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if expandSection, ok := utils.ExtractSection(tempConfig, "expand"); ok {
		extractExpandConfig(expandSection, &config.Expand)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if langSection, ok := utils.ExtractSection(tempConfig, "languages"); ok {
		config.Languages = make(map[string]string, len(langSection))
		for id := range langSection {
			if expr, ok := utils.ExtractString(langSection, id); ok {
				config.Languages[id] = expr
			}
		}
	}
	return config, nil
}

// extractExpandConfig extracts expansion configuration from a map
func extractExpandConfig(data map[string]any, expand *ExpandConfig) {
	if val, ok := utils.ExtractInt64(data, "max_rounds"); ok {
		expand.MaxRounds = val
	}
	if val, ok := utils.ExtractBool(data, "index_results"); ok {
		expand.IndexResults = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_rules"); ok {
		server.MaxRules = val
	}
	if val, ok := utils.ExtractInt64(data, "max_rule_len"); ok {
		server.MaxRuleLen = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "default_lang"); ok {
		cli.DefaultLang = val
	}
	if val, ok := utils.ExtractInt64(data, "max_rule_len"); ok {
		cli.MaxRuleLen = val
	}
}

// RegisterLanguages registers every custom [languages] entry with the
// alphabet table. Invalid classes are skipped with a logged error so one bad
// entry does not block startup.
func RegisterLanguages(config *Config) {
	for id, expr := range config.Languages {
		if err := alphabet.Register(id, expr); err != nil {
			log.Warnf("Skipping custom language %q: %v", id, err)
		}
	}
}
