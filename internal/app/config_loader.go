package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/yourusername/social-dl-go/internal/domain"
)

// EnvPrefix is the prefix of environment variables overriding config keys
const EnvPrefix = "SOCIALDL"

// LoadConfig loads configuration from file and environment
func LoadConfig(configPath string) (*domain.Config, error) {
	config := domain.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.social-dl")
		v.AddConfigPath("/etc/social-dl")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config = expandPaths(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// bindEnvKeys registers every config key so AutomaticEnv applies without a config file
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"server.host", "server.port",
		"download.backend", "download.endpoint", "download.mock_delay",
		"download.request_timeout", "download.logs_dir",
		"notification.enabled", "notification.sound", "notification.method",
		"logging.level", "logging.format", "logging.output_path",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// expandPaths expands environment variables in path configurations
func expandPaths(config *domain.Config) *domain.Config {
	config.Download.LogsDir = expandPath(config.Download.LogsDir)

	if config.Logging.OutputPath != "stdout" && config.Logging.OutputPath != "stderr" {
		config.Logging.OutputPath = expandPath(config.Logging.OutputPath)
	}

	return config
}

// expandPath expands environment variables and ~ in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if strings.Contains(path, "$HOME") && os.Getenv("HOME") == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.ReplaceAll(path, "$HOME", home)
		}
	}

	return os.ExpandEnv(path)
}

// validateConfig validates the configuration
func validateConfig(config *domain.Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	switch config.Download.Backend {
	case domain.BackendMock:
		if config.Download.MockDelay < 0 {
			return fmt.Errorf("mock delay cannot be negative")
		}
	case domain.BackendHTTP:
		if config.Download.RequestTimeout <= 0 {
			return fmt.Errorf("request timeout must be positive")
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownBackend, config.Download.Backend)
	}

	if config.Download.Endpoint == "" {
		return fmt.Errorf("download endpoint not configured")
	}

	if config.Download.LogsDir == "" {
		return fmt.Errorf("logs directory not configured")
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	return nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *domain.Config, path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("server.host", config.Server.Host)
	v.Set("server.port", config.Server.Port)
	v.Set("download.backend", config.Download.Backend)
	v.Set("download.endpoint", config.Download.Endpoint)
	v.Set("download.mock_delay", config.Download.MockDelay.String())
	v.Set("download.request_timeout", config.Download.RequestTimeout.String())
	v.Set("download.logs_dir", config.Download.LogsDir)
	v.Set("notification.enabled", config.Notification.Enabled)
	v.Set("notification.sound", config.Notification.Sound)
	v.Set("notification.method", config.Notification.Method)
	v.Set("logging.level", config.Logging.Level)
	v.Set("logging.format", config.Logging.Format)
	v.Set("logging.output_path", config.Logging.OutputPath)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
