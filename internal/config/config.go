package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"repopress/internal/compress"
)

// Config represents the complete repopress configuration (v1 schema)
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Compression CompressionConfig `json:"compression" mapstructure:"compression"`
	Scan        ScanConfig        `json:"scan" mapstructure:"scan"`
	GitHub      GitHubConfig      `json:"github" mapstructure:"github"`
	Output      OutputConfig      `json:"output" mapstructure:"output"`
	Logging     LoggingConfig     `json:"logging" mapstructure:"logging"`
}

// CompressionConfig selects the default compaction level
type CompressionConfig struct {
	Level string `json:"level" mapstructure:"level"`
}

// ScanConfig contains snapshot scanning configuration
type ScanConfig struct {
	MaxFileSizeBytes    int  `json:"maxFileSizeBytes" mapstructure:"maxFileSizeBytes"`
	SummarizeLargeFiles bool `json:"summarizeLargeFiles" mapstructure:"summarizeLargeFiles"`
}

// GitHubConfig contains GitHub fetching configuration
type GitHubConfig struct {
	TokenEnv string `json:"tokenEnv" mapstructure:"tokenEnv"`
}

// OutputConfig contains report output configuration
type OutputConfig struct {
	Gzip bool `json:"gzip" mapstructure:"gzip"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Compression: CompressionConfig{
			Level: string(compress.LevelMedium),
		},
		Scan: ScanConfig{
			MaxFileSizeBytes:    1000000,
			SummarizeLargeFiles: false,
		},
		GitHub: GitHubConfig{
			TokenEnv: "GITHUB_TOKEN",
		},
		Output: OutputConfig{
			Gzip: false,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .repopress/config.json
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("compression.level", defaults.Compression.Level)
	v.SetDefault("scan.maxFileSizeBytes", defaults.Scan.MaxFileSizeBytes)
	v.SetDefault("scan.summarizeLargeFiles", defaults.Scan.SummarizeLargeFiles)
	v.SetDefault("github.tokenEnv", defaults.GitHub.TokenEnv)
	v.SetDefault("output.gzip", defaults.Output.Gzip)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".repopress"))

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .repopress/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".repopress")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if _, err := compress.ParseLevel(c.Compression.Level); err != nil {
		return &ConfigError{Field: "compression.level", Message: err.Error()}
	}
	if c.Scan.MaxFileSizeBytes < 0 {
		return &ConfigError{Field: "scan.maxFileSizeBytes", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
