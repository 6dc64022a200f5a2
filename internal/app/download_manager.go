package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/yourusername/social-dl-go/internal/domain"
	"github.com/yourusername/social-dl-go/internal/infrastructure"
	"github.com/yourusername/social-dl-go/pkg/logger"
)

// DownloadManager owns the UI state and runs submissions against a downloader.
// At most one submission is in flight; the loading flag doubles as the guard.
type DownloadManager struct {
	downloader  domain.Downloader
	notifier    *infrastructure.NotificationService
	log         *logger.LoggerAdapter
	mu          sync.Mutex
	state       domain.State
	inFlight    *domain.Download
	subscribers map[chan domain.State]struct{}
}

// NewDownloadManager creates a new download manager in the idle state
func NewDownloadManager(
	downloader domain.Downloader,
	notifier *infrastructure.NotificationService,
	log *logger.LoggerAdapter,
) *DownloadManager {
	if log == nil {
		log = logger.NewSingleLoggerAdapter(nil)
	}
	return &DownloadManager{
		downloader:  downloader,
		notifier:    notifier,
		log:         log,
		state:       domain.NewState(),
		subscribers: make(map[chan domain.State]struct{}),
	}
}

// Backend returns the name of the downloader in use
func (dm *DownloadManager) Backend() string {
	if dm.downloader == nil {
		return ""
	}
	return dm.downloader.Name()
}

// State returns a snapshot of the UI state
func (dm *DownloadManager) State() domain.State {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.state.Clone()
}

// IsBusy reports whether a submission is waiting on the downloader
func (dm *DownloadManager) IsBusy() bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	return dm.inFlight != nil
}

// SetURL records new input and re-runs platform detection
func (dm *DownloadManager) SetURL(url string) domain.Platform {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	platform := dm.setURLLocked(url)
	dm.publishLocked()
	return platform
}

func (dm *DownloadManager) setURLLocked(url string) domain.Platform {
	dm.state.URL = url
	dm.state.Platform = domain.DetectPlatform(url)
	return dm.state.Platform
}

// Submit validates url, calls the downloader and folds the outcome into the UI state.
// Every outcome except ErrSubmissionInProgress is reported through the returned
// download and the state, never as an error.
func (dm *DownloadManager) Submit(ctx context.Context, url string) (*domain.Download, error) {
	dm.mu.Lock()
	platform := dm.setURLLocked(url)

	if dm.inFlight != nil {
		dm.publishLocked()
		dm.mu.Unlock()
		return nil, domain.ErrSubmissionInProgress
	}

	download := domain.NewDownload(url, platform)

	if strings.TrimSpace(url) == "" {
		download.MarkRejected(domain.MessageInvalidURL)
		dm.state.Message = domain.MessageInvalidURL
		dm.publishLocked()
		dm.mu.Unlock()

		dm.log.LogDownloadEvent("download_rejected",
			zap.String("id", download.ID),
			zap.String("reason", "blank_url"))
		return download, nil
	}

	download.MarkProcessing()
	dm.inFlight = download
	dm.state.IsLoading = true
	dm.state.Message = ""
	dm.state.DownloadURL = nil
	dm.publishLocked()
	dm.mu.Unlock()

	dm.log.LogDownloadEvent("download_submitted",
		zap.String("id", download.ID),
		zap.String("url", url),
		zap.String("platform", string(platform)),
		zap.String("backend", dm.Backend()))

	result, err := dm.callDownloader(ctx, url, platform)
	dm.settle(download, result, err)

	return download, nil
}

// callDownloader turns a panicking downloader into a transport failure
func (dm *DownloadManager) callDownloader(ctx context.Context, url string, platform domain.Platform) (result *domain.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("downloader panic: %v", r)
		}
	}()

	if dm.downloader == nil {
		return nil, fmt.Errorf("no downloader configured")
	}
	return dm.downloader.Download(ctx, url, platform)
}

// settle maps the downloader outcome onto the submission and the UI state
func (dm *DownloadManager) settle(download *domain.Download, result *domain.Result, err error) {
	switch {
	case err != nil:
		download.MarkFailed(domain.MessageRequestFailed)
		dm.log.Download().Warn("download_transport_failure",
			zap.String("id", download.ID),
			zap.Error(err))
	case result == nil || (result.Success && result.DownloadURL == ""):
		download.MarkFailed(domain.MessageRequestFailed)
		dm.log.Download().Warn("download_transport_failure",
			zap.String("id", download.ID),
			zap.String("reason", "incomplete_result"))
	case result.Success:
		download.MarkCompleted(result.DownloadURL, domain.MessageReady)
	default:
		message := result.Message
		if message == "" {
			message = domain.MessageFailed
		}
		download.MarkFailed(message)
	}

	dm.mu.Lock()
	dm.inFlight = nil
	dm.state.IsLoading = false
	dm.state.Message = download.Message
	if download.Status == domain.StatusCompleted {
		link := download.DownloadURL
		dm.state.DownloadURL = &link
	}
	dm.publishLocked()
	dm.mu.Unlock()

	dm.log.LogDownloadEvent("download_settled",
		zap.String("id", download.ID),
		zap.String("status", string(download.Status)),
		zap.String("message", download.Message),
		zap.Duration("duration", download.CompletedAt.Sub(*download.StartedAt)))

	if download.Status == domain.StatusCompleted {
		dm.notifier.NotifyDownloadReady(download.URL, download.Platform)
	} else {
		dm.notifier.NotifyDownloadFailed(download.URL, download.Platform, download.Message)
	}
}

// Subscribe returns a channel receiving the latest state after every change.
// Slow subscribers only see the most recent snapshot. Call cancel to unsubscribe.
func (dm *DownloadManager) Subscribe() (<-chan domain.State, func()) {
	ch := make(chan domain.State, 1)

	dm.mu.Lock()
	dm.subscribers[ch] = struct{}{}
	ch <- dm.state.Clone()
	dm.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			dm.mu.Lock()
			delete(dm.subscribers, ch)
			dm.mu.Unlock()
		})
	}
	return ch, cancel
}

// publishLocked pushes the current state to every subscriber; dm.mu must be held
func (dm *DownloadManager) publishLocked() {
	for ch := range dm.subscribers {
		snapshot := dm.state.Clone()
		select {
		case ch <- snapshot:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}
