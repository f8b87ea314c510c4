package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/internal/infrastructure/config"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage SpaceTraders configuration settings.

Configuration is loaded from multiple sources with priority:
1. API_URL and TOKEN environment variables (or .env)
2. Environment variables (ST_* prefix)
3. Config file (config.yaml)
4. Default values

User preferences (default ship and system) are stored in ~/.spacetraders/config.json

Examples:
  spacetraders config show
  spacetraders config set-ship FEBA66-1
  spacetraders config set-system X1-DF55
  spacetraders config clear`,
		Annotations: map[string]string{"offline": "true"},
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetShipCommand())
	cmd.AddCommand(newConfigSetSystemCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := handler.Load()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "SpaceTraders Configuration")
			fmt.Fprintln(w, "==========================")

			fmt.Fprintln(w, "User Preferences:")
			field(w, "Config file", handler.GetConfigPath())
			field(w, "Default ship", orUnset(userCfg.DefaultShip))
			field(w, "Default system", orUnset(userCfg.DefaultSystem))

			fmt.Fprintln(w, "\nSpaceTraders API:")
			field(w, "Base URL", cfg.API.BaseURL)
			field(w, "Token", maskToken(cfg.API.Token))
			field(w, "Timeout", cfg.API.Timeout)
			field(w, "Rate limit", fmt.Sprintf("%d req/s (burst: %d)", cfg.API.RateLimit.Requests, cfg.API.RateLimit.Burst))
			field(w, "Max retries", cfg.API.Retry.MaxAttempts)
			field(w, "Breaker", fmt.Sprintf("%d failures, %s open", cfg.API.CircuitBreaker.MaxFailures, cfg.API.CircuitBreaker.Timeout))

			fmt.Fprintln(w, "\nLogging:")
			field(w, "Level", cfg.Logging.Level)
			field(w, "Format", cfg.Logging.Format)
			field(w, "Output", cfg.Logging.Output)

			fmt.Fprintln(w, "\nMetrics:")
			field(w, "Enabled", cfg.Metrics.Enabled)
			field(w, "Namespace", cfg.Metrics.Namespace)
			field(w, "Textfile", orUnset(cfg.Metrics.Textfile))

			return nil
		},
	}
}

func newConfigSetShipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-ship <symbol>",
		Short: "Set the ship used when --ship is omitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			if err := models.CheckSymbol(symbol); err != nil {
				return fmt.Errorf("invalid ship symbol %q", args[0])
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.SetDefaultShip(symbol); err != nil {
				return fmt.Errorf("failed to set default ship: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default ship set to %s\n", symbol)
			return nil
		},
	}
}

func newConfigSetSystemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-system <symbol>",
		Short: "Set the system used when none is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			if err := models.CheckSymbol(symbol); err != nil {
				return fmt.Errorf("invalid system symbol %q", args[0])
			}

			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.SetDefaultSystem(symbol); err != nil {
				return fmt.Errorf("failed to set default system: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default system set to %s\n", symbol)
			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the default ship and system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := handler.Clear(); err != nil {
				return fmt.Errorf("failed to clear defaults: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Defaults cleared")
			return nil
		},
	}
}

// maskToken keeps the last four characters so tokens can be told apart
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func orUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
