package domain

import "time"

// Download backends
const (
	BackendMock = "mock"
	BackendHTTP = "http"
)

// Config represents the application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Download     DownloadConfig     `mapstructure:"download"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DownloadConfig contains download backend configuration
type DownloadConfig struct {
	Backend        string        `mapstructure:"backend"`         // mock, http
	Endpoint       string        `mapstructure:"endpoint"`        // link base for mock, API URL for http
	MockDelay      time.Duration `mapstructure:"mock_delay"`      // fixed settle delay of the mock backend
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // per-request timeout of the http backend
	LogsDir        string        `mapstructure:"logs_dir"`
}

// NotificationConfig contains notification-related configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Sound   bool   `mapstructure:"sound"`
	Method  string `mapstructure:"method"` // osascript, notify-send
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Download: DownloadConfig{
			Backend:        BackendMock,
			Endpoint:       "https://download",
			MockDelay:      1500 * time.Millisecond,
			RequestTimeout: 60 * time.Second,
			LogsDir:        "$HOME/.social-dl/logs",
		},
		Notification: NotificationConfig{
			Enabled: false,
			Sound:   false,
			Method:  "notify-send",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stdout",
		},
	}
}
