package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// NewFactionsCommand creates the factions command with subcommands
func NewFactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factions",
		Short: "Browse the factions of the universe",
	}

	cmd.AddCommand(newFactionsListCommand())
	cmd.AddCommand(newFactionsGetCommand())

	return cmd
}

func newFactionsListCommand() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List factions",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Factions.List(cmd.Context(), page, limit)
			return render(cmd, outcome, err, func(w io.Writer, p *models.Page[models.Faction]) {
				tw := newTable(w, "SYMBOL", "NAME", "HEADQUARTERS", "RECRUITING")
				for _, f := range p.Data {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", f.Symbol, f.Name, f.Headquarters, f.IsRecruiting)
				}
				tw.Flush()
				pageFooter(w, p.Meta.Total, p.Meta.Page, p.Meta.Limit)
			})
		}),
	}
	addPageFlags(cmd, &page, &limit)

	return cmd
}

func newFactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <symbol>",
		Short: "Show a faction and its traits",
		Args:  cobra.ExactArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Factions.Get(cmd.Context(), args[0])
			return render(cmd, outcome, err, func(w io.Writer, f *models.Faction) {
				field(w, "Symbol", f.Symbol)
				field(w, "Name", f.Name)
				field(w, "Headquarters", f.Headquarters)
				field(w, "Recruiting", f.IsRecruiting)
				fmt.Fprintf(w, "\n%s\n", f.Description)
				for _, t := range f.Traits {
					fmt.Fprintf(w, "  - %s: %s\n", t.Name, t.Description)
				}
			})
		}),
	}
}
