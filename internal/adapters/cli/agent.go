package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// NewAgentCommand creates the agent command
func NewAgentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "agent [symbol]",
		Short: "Show your agent, or another agent by symbol",
		Long: `Show the agent owning the configured token, or the public details of
another agent when a symbol is given.

Examples:
  spacetraders agent
  spacetraders agent FEBA66`,
		Args: cobra.MaximumNArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			agents := current.client.Agents
			if len(args) == 0 {
				outcome, err := agents.Mine(cmd.Context())
				return render(cmd, outcome, err, printAgent)
			}
			outcome, err := agents.Get(cmd.Context(), args[0])
			return render(cmd, outcome, err, printAgent)
		}),
	}
}

func printAgent(w io.Writer, a *models.Agent) {
	field(w, "Symbol", a.Symbol)
	field(w, "Headquarters", a.Headquarters)
	field(w, "Credits", credits(a.Credits))
	field(w, "Faction", a.StartingFaction)
	field(w, "Ships", a.ShipCount)
}
