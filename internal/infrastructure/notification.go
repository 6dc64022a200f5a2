package infrastructure

import (
	"fmt"
	"os/exec"

	"github.com/yourusername/social-dl-go/internal/domain"
	"go.uber.org/zap"
)

// commandRunner runs a notification command
type commandRunner func(name string, args ...string) error

// NotificationService sends desktop notifications when submissions settle
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
	run    commandRunner
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		config: config,
		logger: logger,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Send sends a notification with the configured method
func (n *NotificationService) Send(title, message string) error {
	if n == nil || n.config == nil || !n.config.Enabled {
		return nil
	}

	var name string
	var args []string
	switch n.config.Method {
	case "osascript":
		script := fmt.Sprintf(`display notification %q with title %q`, message, title)
		if n.config.Sound {
			script += ` sound name "Glass"`
		}
		name, args = "osascript", []string{"-e", script}
	case "notify-send":
		name, args = "notify-send", []string{title, message}
	default:
		n.logger.Warn("Unknown notification method", zap.String("method", n.config.Method))
		return nil
	}

	if err := n.run(name, args...); err != nil {
		n.logger.Warn("Failed to send notification",
			zap.String("method", n.config.Method),
			zap.Error(err))
		return err
	}

	n.logger.Debug("Notification sent",
		zap.String("title", title),
		zap.String("message", message))
	return nil
}

// NotifyDownloadReady sends a notification when a download link is ready
func (n *NotificationService) NotifyDownloadReady(url string, platform domain.Platform) {
	_ = n.Send("Download Ready", fmt.Sprintf("Ready: %s (%s)", truncateString(url, 30), platform))
}

// NotifyDownloadFailed sends a notification when a submission fails
func (n *NotificationService) NotifyDownloadFailed(url string, platform domain.Platform, message string) {
	_ = n.Send("Download Failed", fmt.Sprintf("%s: %s (%s)", message, truncateString(url, 30), platform))
}

// truncateString truncates a string to maxLen runes
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
