package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/yourusername/social-dl-go/internal/app"
	"github.com/yourusername/social-dl-go/internal/domain"
)

var (
	serverURL   string
	noAutoStart bool
	noColor     bool
	rootCmd     = &cobra.Command{
		Use:   "social-dl",
		Short: "social-dl CLI - Download links for YouTube, Instagram and Facebook videos",
		Long:  `A command-line interface for the social-dl server. Detects the platform of a video URL and requests a download link.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			color.NoColor = color.NoColor || noColor
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&noAutoStart, "no-auto-start", false, "Don't auto-start server if not running")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	logsCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	logsCmd.Flags().StringP("date", "d", "", "Day to read (YYYY-MM-DD), defaults to today")
}

// ensureServer checks if server is running and starts it if needed (unless --no-auto-start)
func ensureServer() {
	if noAutoStart {
		return
	}
	if err := ensureServerRunning(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

var detectCmd = &cobra.Command{
	Use:   "detect [url]",
	Short: "Print the platform a URL belongs to",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), domain.DetectPlatform(args[0]))
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit [url]",
	Short: "Request a download link for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureServer()

		client := newAPIClient(serverURL)
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Processing..."),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)

		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					bar.Add(1)
				}
			}
		}()

		resp, err := client.Submit(args[0])
		close(done)
		bar.Finish()
		if err != nil {
			return err
		}

		printResult(color.Output, resp.Result)
		return nil
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the server's current widget state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureServer()

		state, err := newAPIClient(serverURL).State()
		if err != nil {
			return err
		}

		fmt.Printf("URL:      %s\n", state.URL)
		fmt.Printf("Platform: %s\n", state.Platform)
		fmt.Printf("Loading:  %t\n", state.IsLoading)
		printState(color.Output, *state)
		return nil
	},
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PLATFORM\tICON\tCOLOR")
		for _, p := range domain.SupportedPlatforms() {
			icon := p.Icon()
			fmt.Fprintf(w, "%s\t%s\t%s\n", p, icon.Name, icon.Color)
		}
		w.Flush()
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs [category]",
	Short: "View server logs (app, download, error)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ensureServer()

		limit, _ := cmd.Flags().GetInt("limit")
		date, _ := cmd.Flags().GetString("date")

		entries, err := newAPIClient(serverURL).Logs(args[0], date, limit)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			fields, _ := json.Marshal(entry.Fields)
			if len(entry.Fields) == 0 {
				fields = nil
			}
			fmt.Printf("%s  %-5s  %s %s\n", entry.Timestamp, entry.Level, entry.Message, fields)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "configs/config.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if err := app.SaveConfig(domain.DefaultConfig(), path); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", path)
		return nil
	},
}

// printResult prints this submission's outcome: green with the link on success, red otherwise
func printResult(w io.Writer, result *domain.Result) {
	if result == nil {
		return
	}

	if result.Success {
		fmt.Fprintln(w, color.GreenString(result.Message))
		fmt.Fprintf(w, "Download: %s\n", result.DownloadURL)
		return
	}
	fmt.Fprintln(w, color.RedString(result.Message))
}

// printState prints the widget message, green only when it announces a ready video, then any link
func printState(w io.Writer, state domain.State) {
	if state.Message != "" {
		if strings.Contains(state.Message, "ready") {
			fmt.Fprintln(w, color.GreenString(state.Message))
		} else {
			fmt.Fprintln(w, color.RedString(state.Message))
		}
	}
	if state.HasLink() {
		fmt.Fprintf(w, "Download: %s\n", *state.DownloadURL)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
