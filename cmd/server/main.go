package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/social-dl-go/api"
	"github.com/yourusername/social-dl-go/api/handlers"
	"github.com/yourusername/social-dl-go/internal/app"
	"github.com/yourusername/social-dl-go/internal/infrastructure"
	"github.com/yourusername/social-dl-go/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	configPath = flag.String("config", "", "Path to config file")
	daemon     = flag.Bool("daemon", false, "Detach and run the server in the background")
)

func main() {
	flag.Parse()

	if *daemon {
		startAsDaemon()
		return
	}

	if err := runServer(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startAsDaemon re-executes the binary without -daemon in a new session
func startAsDaemon() {
	execPath, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get executable path: %v\n", err)
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}

	args := []string{}
	if *configPath != "" {
		args = append(args, "-config", *configPath)
	}

	cmd := exec.Command(execPath, args...)
	cmd.Dir = cwd
	cmd.Env = os.Environ()
	detach(cmd)

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", os.DevNull, err)
		os.Exit(1)
	}
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start daemon: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Server started as daemon (PID: %d)\n", cmd.Process.Pid)
}

func runServer() error {
	config, err := app.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	console, err := logger.NewCore(logger.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		OutputPath: config.Logging.OutputPath,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize console logger: %w", err)
	}

	// app, download and error categories under logs_dir; app is mirrored to the console
	multiLog, err := logger.NewMultiLogger(logger.MultiLoggerConfig{
		Level:   config.Logging.Level,
		LogsDir: config.Download.LogsDir,
		Console: console,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer multiLog.Close()

	logAdapter := logger.NewLoggerAdapter(multiLog)
	log := logAdapter.General()

	downloader, err := infrastructure.NewDownloader(&config.Download)
	if err != nil {
		return err
	}

	log.Info("Starting social-dl server",
		zap.String("version", handlers.Version),
		zap.String("host", config.Server.Host),
		zap.Int("port", config.Server.Port),
		zap.String("backend", downloader.Name()),
		zap.String("logs_dir", config.Download.LogsDir))

	notifier := infrastructure.NewNotificationService(&config.Notification, log)
	downloadMgr := app.NewDownloadManager(downloader, notifier, logAdapter)

	router := api.SetupRouter(downloadMgr, logAdapter, config.Download.LogsDir)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("Received shutdown signal")
	case err := <-serveErr:
		logAdapter.LogError(logger.CategoryApp, "HTTP server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logAdapter.LogError(logger.CategoryApp, "Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
