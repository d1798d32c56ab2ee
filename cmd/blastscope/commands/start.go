package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/blastscope/blastscope/internal/monitor"
	"github.com/blastscope/blastscope/internal/observability"
	"github.com/blastscope/blastscope/pkg/version"
)

// metricsReadHeaderTimeout bounds header reads on the scrape listener.
const metricsReadHeaderTimeout = 5 * time.Second

// StartCommand holds the flags for the start command.
type StartCommand struct {
	pauseThreshold time.Duration
	pollInterval   time.Duration
	sessionLogPath string
	metricsAddr    string
	logJSON        bool
	debug          bool
}

// NewStartCommand creates the idle-monitoring command.
func NewStartCommand() *cobra.Command {
	cmd := &StartCommand{}

	cobraCmd := &cobra.Command{
		Use:   "start",
		Short: "Run the idle-detection monitor",
		Long: `Start begins idle monitoring and blocks until interrupted. While running,
activity pauses longer than the pause threshold are appended to the session
log. With --metrics-addr, a Prometheus /metrics endpoint is served.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.Run,
	}

	cobraCmd.Flags().DurationVar(&cmd.pauseThreshold, "pause-threshold", monitor.DefaultPauseThreshold, "idle gap that counts as a pause")
	cobraCmd.Flags().DurationVar(&cmd.pollInterval, "poll-interval", monitor.DefaultPollInterval, "how often to check for a pause")
	cobraCmd.Flags().StringVar(&cmd.sessionLogPath, "session-log", monitor.DefaultSessionLogPath, "append-only pause event log path")
	cobraCmd.Flags().StringVar(&cmd.metricsAddr, "metrics-addr", "", "address for the Prometheus /metrics endpoint (disabled when empty)")
	cobraCmd.Flags().BoolVar(&cmd.logJSON, "log-json", false, "emit JSON logs")
	cobraCmd.Flags().BoolVar(&cmd.debug, "debug", false, "enable debug logging")

	return cobraCmd
}

// Run executes the start command, blocking until SIGINT or SIGTERM.
func (c *StartCommand) Run(cobraCmd *cobra.Command, _ []string) error {
	registry := prometheus.NewRegistry()

	providers, initErr := c.initObservability(registry)
	if initErr != nil {
		return initErr
	}

	defer func() {
		shutdownErr := providers.Shutdown(context.Background())
		if shutdownErr != nil {
			providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
		}
	}()

	mon := monitor.New(monitor.Config{
		PauseThreshold: c.pauseThreshold,
		PollInterval:   c.pollInterval,
		SessionLogPath: c.sessionLogPath,
	}, providers.Logger, monitor.NewMetrics(registry))

	mon.Start()
	defer mon.Stop()

	metricsServer := c.serveMetrics(registry, providers.Logger)

	ctx, stop := signal.NotifyContext(cobraCmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	if metricsServer != nil {
		closeErr := metricsServer.Close()
		if closeErr != nil {
			providers.Logger.Warn("metrics server close failed", "error", closeErr)
		}
	}

	return nil
}

func (c *StartCommand) initObservability(registry *prometheus.Registry) (observability.Providers, error) {
	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version.Version
	cfg.LogJSON = c.logJSON
	cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	cfg.OTLPInsecure = os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true"

	if c.debug {
		cfg.LogLevel = slog.LevelDebug
	}

	return observability.Init(cfg, registry)
}

// serveMetrics starts the scrape listener when configured. Listener errors
// are logged, not fatal: monitoring continues without metrics.
func (c *StartCommand) serveMetrics(registry *prometheus.Registry, logger *slog.Logger) *http.Server {
	if c.metricsAddr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              c.metricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		serveErr := server.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Warn("metrics server failed", "error", serveErr)
		}
	}()

	logger.Info("metrics endpoint listening", "addr", c.metricsAddr)

	return server
}
