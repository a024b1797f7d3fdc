// Package config loads dmsctl settings from defaults, a yaml file and DMS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the dmsctl configuration
type Config struct {
	AWS    AWSConfig    `yaml:"aws" mapstructure:"aws"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Output string       `yaml:"output" mapstructure:"output"`
}

// AWSConfig selects the DMS endpoint and credentials
type AWSConfig struct {
	Region          string        `yaml:"region" mapstructure:"region"`
	Endpoint        string        `yaml:"endpoint" mapstructure:"endpoint"`
	Profile         string        `yaml:"profile" mapstructure:"profile"`
	AccessKeyID     string        `yaml:"accessKeyID" mapstructure:"accessKeyID"`
	SecretAccessKey string        `yaml:"secretAccessKey" mapstructure:"secretAccessKey"`
	MaxRetries      int           `yaml:"maxRetries" mapstructure:"maxRetries"`
	Timeout         time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LogConfig configures the global logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ServerConfig configures the local mock server
type ServerConfig struct {
	Port      int    `yaml:"port" mapstructure:"port"`
	AccountID string `yaml:"accountID" mapstructure:"accountID"`
}

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var (
	v        *viper.Viper
	instance *Config
	initOnce sync.Once
	mu       sync.RWMutex
)

// ResetConfig resets the configuration instance (for testing)
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	v = nil
	instance = nil
	initOnce = sync.Once{}
}

// InitConfig initializes the configuration with Viper
func InitConfig() {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		v = viper.New()

		v.SetDefault("aws.region", "us-east-1")
		v.SetDefault("aws.endpoint", "")
		v.SetDefault("aws.profile", "")
		v.SetDefault("aws.accessKeyID", "")
		v.SetDefault("aws.secretAccessKey", "")
		v.SetDefault("aws.maxRetries", 3)
		v.SetDefault("aws.timeout", 30*time.Second)

		v.SetDefault("log.level", "info")
		v.SetDefault("log.format", "compact")

		v.SetDefault("server.port", 8700)
		v.SetDefault("server.accountID", "123456789012")

		v.SetDefault("output", OutputTable)

		v.SetEnvPrefix("DMS")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		// AutomaticEnv upper-cases keys, so camel-cased keys need explicit names
		v.BindEnv("aws.accessKeyID", "DMS_AWS_ACCESS_KEY_ID")
		v.BindEnv("aws.secretAccessKey", "DMS_AWS_SECRET_ACCESS_KEY")
		v.BindEnv("aws.maxRetries", "DMS_AWS_MAX_RETRIES")
		v.BindEnv("server.accountID", "DMS_SERVER_ACCOUNT_ID")
	})
}

// BindFlag lets a command line flag override key when it is set
func BindFlag(key string, flag *pflag.Flag) error {
	InitConfig()
	mu.Lock()
	defer mu.Unlock()
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
	}
	return nil
}

// LoadConfig reads configPath, or dms.yaml from the working directory or
// $HOME/.dms when configPath is empty, and returns the merged configuration.
func LoadConfig(configPath string) (*Config, error) {
	InitConfig()

	mu.Lock()
	defer mu.Unlock()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file does not exist: %s", configPath)
			}
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("dms")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.dms")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	instance = cfg
	return cfg, nil
}

// GetConfig returns the loaded configuration, or the defaults when nothing
// has been loaded yet.
func GetConfig() *Config {
	mu.RLock()
	cfg := instance
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	cfg, err := LoadConfig("")
	if err != nil {
		return &Config{
			AWS:    AWSConfig{Region: "us-east-1", MaxRetries: 3, Timeout: 30 * time.Second},
			Log:    LogConfig{Level: "info", Format: "compact"},
			Server: ServerConfig{Port: 8700, AccountID: "123456789012"},
			Output: OutputTable,
		}
	}
	return cfg
}

// GetString returns a string configuration value
func GetString(key string) string {
	InitConfig()
	mu.RLock()
	defer mu.RUnlock()
	return v.GetString(key)
}

// Set sets a configuration value
func Set(key string, value any) {
	InitConfig()
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.AWS.Region == "" {
		return fmt.Errorf("AWS region cannot be empty")
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json", "compact"}, c.Log.Format) {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	if !slices.Contains([]string{OutputTable, OutputJSON, OutputYAML}, c.Output) {
		return fmt.Errorf("invalid output format: %s", c.Output)
	}
	if c.Server.AccountID != "" && len(c.Server.AccountID) != 12 {
		return fmt.Errorf("AWS account ID must be 12 digits: %s", c.Server.AccountID)
	}
	return nil
}
