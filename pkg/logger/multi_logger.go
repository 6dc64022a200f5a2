package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogCategory represents different log categories
type LogCategory string

const (
	CategoryApp      LogCategory = "app"      // General application messages (JSON)
	CategoryDownload LogCategory = "download" // Submission lifecycle events (JSON)
	CategoryError    LogCategory = "error"    // Application errors (JSON)
)

// Categories returns all log categories written by MultiLogger
func Categories() []LogCategory {
	return []LogCategory{CategoryApp, CategoryDownload, CategoryError}
}

// ValidCategory reports whether category is written by MultiLogger
func ValidCategory(category LogCategory) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// MultiLogger provides categorized logging with one JSON file per category per day
type MultiLogger struct {
	loggers map[LogCategory]*zap.Logger
	files   []*os.File
	config  MultiLoggerConfig
	mu      sync.RWMutex
}

// MultiLoggerConfig contains configuration for multi-output logging
type MultiLoggerConfig struct {
	Level   string       // debug, info, warn, error
	LogsDir string       // Directory for log files
	Console zapcore.Core // Optional core the app category is teed into

	// Now picks the dated file names; defaults to time.Now
	Now func() time.Time
}

// NewMultiLogger creates a new multi-output logger
func NewMultiLogger(config MultiLoggerConfig) (*MultiLogger, error) {
	if config.LogsDir == "" {
		return nil, fmt.Errorf("logs_dir must be specified")
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	if err := os.MkdirAll(config.LogsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	ml := &MultiLogger{
		loggers: make(map[LogCategory]*zap.Logger),
		config:  config,
	}

	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	for _, category := range Categories() {
		categoryLevel := level
		if category == CategoryError {
			categoryLevel = zapcore.ErrorLevel
		}

		core, err := ml.createFileCore(category, categoryLevel)
		if err != nil {
			ml.Close()
			return nil, fmt.Errorf("failed to create %s logger: %w", category, err)
		}

		if category == CategoryApp && config.Console != nil {
			core = zapcore.NewTee(core, config.Console)
		}
		ml.loggers[category] = zap.New(core)
	}

	return ml, nil
}

// createFileCore creates a JSON core writing to the category's file for today
func (ml *MultiLogger) createFileCore(category LogCategory, level zapcore.Level) (zapcore.Core, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "msg"
	encoderConfig.LevelKey = "level"
	encoderConfig.CallerKey = ""

	file, err := os.OpenFile(ml.categoryLogPath(category), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	ml.files = append(ml.files, file)

	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), level), nil
}

func (ml *MultiLogger) categoryLogPath(category LogCategory) string {
	return LogPath(ml.config.LogsDir, category, ml.config.Now())
}

// LogPath returns the file a category is written to on the given day
func LogPath(logsDir string, category LogCategory, date time.Time) string {
	filename := fmt.Sprintf("%s-%s.log", category, date.Format("20060102"))
	return filepath.Join(logsDir, filename)
}

// GetLogsDir returns the logs directory path
func (ml *MultiLogger) GetLogsDir() string {
	return ml.config.LogsDir
}

// GetLogger returns the logger for a category, falling back to the error logger
func (ml *MultiLogger) GetLogger(category LogCategory) *zap.Logger {
	ml.mu.RLock()
	defer ml.mu.RUnlock()

	if logger, ok := ml.loggers[category]; ok {
		return logger
	}
	return ml.loggers[CategoryError]
}

// General returns the application logger
func (ml *MultiLogger) General() *zap.Logger {
	return ml.GetLogger(CategoryApp)
}

// Download returns the submission lifecycle logger
func (ml *MultiLogger) Download() *zap.Logger {
	return ml.GetLogger(CategoryDownload)
}

// Error returns the error logger
func (ml *MultiLogger) Error() *zap.Logger {
	return ml.GetLogger(CategoryError)
}

// LogError logs to the category logger and mirrors the entry to the error log
func (ml *MultiLogger) LogError(category LogCategory, msg string, fields ...zap.Field) {
	if category != CategoryError {
		ml.GetLogger(category).Error(msg, fields...)
	}
	ml.Error().Error(msg, append(fields, zap.String("category", string(category)))...)
}

// LogDownloadEvent logs a submission lifecycle event with structured data
func (ml *MultiLogger) LogDownloadEvent(event string, fields ...zap.Field) {
	ml.Download().Info(event, fields...)
}

// Sync flushes all loggers
func (ml *MultiLogger) Sync() error {
	ml.mu.RLock()
	defer ml.mu.RUnlock()

	var result error
	for category, logger := range ml.loggers {
		if err := logger.Sync(); err != nil {
			result = multierror.Append(result, multierror.Prefix(err, fmt.Sprintf("[%s]", category)))
		}
	}
	return result
}

// Close flushes all loggers and closes their files
func (ml *MultiLogger) Close() error {
	result := ml.Sync()

	ml.mu.Lock()
	defer ml.mu.Unlock()

	for _, file := range ml.files {
		if err := file.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	ml.files = nil
	return result
}
