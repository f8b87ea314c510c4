package metrics

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// RunE is the signature of a cobra command handler
type RunE func(cmd *cobra.Command, args []string) error

// CommandMiddleware wraps a command handler and records:
// - Execution duration (histogram)
// - Success/failure counts (counter)
//
// Commands are labelled by their path below the root, e.g. "ships orbit".
func CommandMiddleware(collector *CommandMetricsCollector, next RunE) RunE {
	return func(cmd *cobra.Command, args []string) error {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(cmd, args)
		}

		start := time.Now()
		err := next(cmd, args)
		collector.RecordCommandExecution(commandName(cmd), time.Since(start).Seconds(), err == nil)
		return err
	}
}

// commandName strips the root command from the command path:
//   - "spacetraders ships orbit" → "ships orbit"
//   - "spacetraders status" → "status"
func commandName(cmd *cobra.Command) string {
	if cmd == nil {
		return "unknown"
	}
	path := cmd.CommandPath()
	if i := strings.IndexByte(path, ' '); i >= 0 {
		return path[i+1:]
	}
	return path
}
