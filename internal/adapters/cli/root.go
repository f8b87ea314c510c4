package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	outputFormat string
	verbose      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spacetraders",
		Short: "SpaceTraders CLI - Query and command your fleet through the SpaceTraders API",
		Long: `SpaceTraders CLI talks directly to the SpaceTraders v2 API.

The API URL and agent token are read from API_URL and TOKEN (or a .env file),
falling back to api.base_url and api.token in config.yaml.

Examples:
  spacetraders status
  spacetraders agent
  spacetraders contracts accept clx-contract-1
  spacetraders ships orbit --ship AGENT-1
  spacetraders ships navigate --ship AGENT-1 --destination X1-GZ7-B1
  spacetraders systems waypoints X1-GZ7 --trait MARKETPLACE
  spacetraders systems market X1-GZ7-A1 --output yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !validOutput(outputFormat) {
				return fmt.Errorf("unknown output format %q: use text, json or yaml", outputFormat)
			}
			if skipsClient(cmd) {
				return nil
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			current = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApp()
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/spacetraders)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output (debug logging of every request)")

	// Add command groups
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewAgentCommand())
	rootCmd.AddCommand(NewContractsCommand())
	rootCmd.AddCommand(NewFactionsCommand())
	rootCmd.AddCommand(NewShipsCommand())
	rootCmd.AddCommand(NewSystemsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// skipsClient reports whether cmd works without API credentials
func skipsClient(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["offline"] == "true" {
			return true
		}
	}
	return false
}

func closeApp() error {
	if current == nil {
		return nil
	}
	err := current.close()
	current = nil
	return err
}

// Run executes the CLI with args, writing command output to stdout and
// logs or usage errors to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := closeApp(); err == nil {
		err = closeErr
	}
	return err
}

// Execute runs the root command and exits with status 1 on any failure,
// including an API call that completed with an error status.
func Execute() {
	err := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		var failed *FailedError
		if !errors.As(err, &failed) {
			fmt.Fprint(os.Stderr, "Error: ")
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
