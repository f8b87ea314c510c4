package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server status, version and leaderboards",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Status(cmd.Context())
			return render(cmd, outcome, err, printStatus)
		}),
	}
}

func printStatus(w io.Writer, s *models.Status) {
	field(w, "Status", s.Status)
	field(w, "Version", s.Version)
	field(w, "Reset date", s.ResetDate)
	field(w, "Next reset", when(s.ServerResets.Next))
	field(w, "Agents", humanize.Comma(int64(s.Stats.Agents)))
	field(w, "Ships", humanize.Comma(int64(s.Stats.Ships)))
	field(w, "Systems", humanize.Comma(int64(s.Stats.Systems)))
	field(w, "Waypoints", humanize.Comma(int64(s.Stats.Waypoints)))

	if len(s.Leaderboards.MostCredits) > 0 {
		fmt.Fprintln(w, "\nMost credits:")
		for i, entry := range s.Leaderboards.MostCredits {
			fmt.Fprintf(w, "  %2d. %-20s %s\n", i+1, entry.AgentSymbol, credits(entry.Credits))
		}
	}
	for _, a := range s.Announcements {
		fmt.Fprintf(w, "\n%s\n  %s\n", a.Title, a.Body)
	}
}
