package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/internal/adapters/metrics"
	"github.com/andrescamacho/spacetraders-sdk/internal/infrastructure/config"
	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/pkg/logging"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

// app holds everything a command needs once configuration has been loaded
type app struct {
	cfg      *config.Config
	client   *client.Client
	logger   logging.Logger
	registry *prometheus.Registry
	commands *metrics.CommandMetricsCollector
	closers  []io.Closer
}

// current is set by the root command's PersistentPreRunE
var current *app

// newApp loads configuration and builds the API client with the throttle,
// retry policy, circuit breaker, logger and metrics it describes.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	a := &app{cfg: cfg}

	logOut, err := a.logWriter(cmd)
	if err != nil {
		return nil, err
	}
	a.logger = logging.NewStdLogger(logOut, cfg.Logging.Level, cfg.Logging.Format)

	opts := []client.Option{
		transport.WithTimeout(cfg.API.Timeout),
		transport.WithThrottle(transport.NewRateLimiter(float64(cfg.API.RateLimit.Requests), cfg.API.RateLimit.Burst)),
		transport.WithLogger(a.logger),
	}
	if cfg.API.Retry.MaxAttempts > 0 {
		opts = append(opts, transport.WithRetryPolicy(transport.ExponentialBackoff{
			MaxRetries: cfg.API.Retry.MaxAttempts,
			Base:       cfg.API.Retry.BackoffBase,
		}))
	}
	if cfg.API.CircuitBreaker.MaxFailures > 0 {
		opts = append(opts, transport.WithCircuitBreaker(
			transport.NewCircuitBreaker(cfg.API.CircuitBreaker.MaxFailures, cfg.API.CircuitBreaker.Timeout, transport.RealClock{})))
	}

	if cfg.Metrics.Enabled {
		api := metrics.NewAPIMetricsCollector(cfg.Metrics.Namespace)
		a.commands = metrics.NewCommandMetricsCollector(cfg.Metrics.Namespace)
		a.registry, err = metrics.NewRegistry(api, a.commands)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		opts = append(opts, transport.WithRecorder(api))
	}

	a.client, err = client.New(cfg.API.BaseURL, cfg.API.Token, opts...)
	if err != nil {
		if errors.Is(err, client.ErrMissingToken) {
			return nil, fmt.Errorf("%w: set %s or api.token in the config file", err, config.EnvToken)
		}
		return nil, err
	}
	return a, nil
}

func (a *app) logWriter(cmd *cobra.Command) (io.Writer, error) {
	switch a.cfg.Logging.Output {
	case "stdout":
		return cmd.OutOrStdout(), nil
	case "file":
		f, err := os.OpenFile(a.cfg.Logging.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		return f, nil
	default:
		return cmd.ErrOrStderr(), nil
	}
}

// close flushes metrics to the configured textfile and releases open files
func (a *app) close() error {
	var firstErr error
	if a.registry != nil && a.cfg.Metrics.Textfile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.Metrics.Textfile, a.registry); err != nil {
			firstErr = fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// instrument wraps a handler with command metrics. The collector only exists
// after configuration is loaded, so it is looked up on each run.
func instrument(run metrics.RunE) metrics.RunE {
	return func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return run(cmd, args)
		}
		return metrics.CommandMiddleware(current.commands, run)(cmd, args)
	}
}
