// Local development server for recipe scraping (Transport B). Serves
// the same /scrape contract as the serverless function, plus /health,
// on the first available port starting at 5001.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/willbiddy/recipe-to-notion/config"
	"github.com/willbiddy/recipe-to-notion/internal/server"
)

var (
	flagHost     string
	flagPort     int
	flagLogLevel string
	flagNoReload bool
)

var rootCmd = &cobra.Command{
	Use:   "scraper-dev",
	Short: "Local development server for recipe scraping",
	Long: `Runs the recipe scraper locally when developing without Vercel.
The backend calls POST /scrape with {"url": ..., "html": ...} and
receives the normalized recipe record.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagHost, "host", config.DefaultHost, "address to bind")
	rootCmd.Flags().IntVar(&flagPort, "port", config.DefaultPort, "first port to try")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagNoReload, "no-reload", false,
		"accepted for compatibility with older tooling; the server never auto-reloads")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	srv := server.New(cfg, logger)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting recipe scraper development server")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		logger.Info("received signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
