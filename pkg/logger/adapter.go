package logger

import (
	"go.uber.org/zap"
)

// LoggerAdapter provides a unified interface for both single and multi-logger
type LoggerAdapter struct {
	multiLogger  *MultiLogger
	singleLogger *zap.Logger
	useMulti     bool
}

// NewLoggerAdapter creates a new logger adapter
func NewLoggerAdapter(multiLogger *MultiLogger) *LoggerAdapter {
	return &LoggerAdapter{
		multiLogger: multiLogger,
		useMulti:    true,
	}
}

// NewSingleLoggerAdapter routes every category to one logger (tests, CLI)
func NewSingleLoggerAdapter(logger *zap.Logger) *LoggerAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggerAdapter{
		singleLogger: logger,
		useMulti:     false,
	}
}

// General returns the application logger
func (la *LoggerAdapter) General() *zap.Logger {
	if la.useMulti {
		return la.multiLogger.General()
	}
	return la.singleLogger
}

// Download returns the submission lifecycle logger
func (la *LoggerAdapter) Download() *zap.Logger {
	if la.useMulti {
		return la.multiLogger.Download()
	}
	return la.singleLogger
}

// LogDownloadEvent logs a submission lifecycle event
func (la *LoggerAdapter) LogDownloadEvent(event string, fields ...zap.Field) {
	la.Download().Info(event, fields...)
}

// LogError logs an error to both category and error logs
func (la *LoggerAdapter) LogError(category LogCategory, msg string, fields ...zap.Field) {
	if la.useMulti {
		la.multiLogger.LogError(category, msg, fields...)
	} else {
		la.singleLogger.Error(msg, fields...)
	}
}

// Sync flushes all loggers
func (la *LoggerAdapter) Sync() error {
	if la.useMulti {
		return la.multiLogger.Sync()
	}
	return la.singleLogger.Sync()
}

// LogsDir returns the directory category files are written to, or "" for a single logger
func (la *LoggerAdapter) LogsDir() string {
	if la.useMulti {
		return la.multiLogger.GetLogsDir()
	}
	return ""
}
