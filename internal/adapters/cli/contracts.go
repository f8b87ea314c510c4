package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// NewContractsCommand creates the contracts command with subcommands
func NewContractsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "List, accept and fulfill contracts",
		Long: `Manage your agent's contracts.

Examples:
  spacetraders contracts list
  spacetraders contracts get clx-contract-1
  spacetraders contracts accept clx-contract-1
  spacetraders contracts fulfill clx-contract-1`,
	}

	cmd.AddCommand(newContractsListCommand())
	cmd.AddCommand(newContractsGetCommand())
	cmd.AddCommand(newContractsAcceptCommand())
	cmd.AddCommand(newContractsFulfillCommand())

	return cmd
}

func newContractsListCommand() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your contracts",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Contracts.List(cmd.Context(), page, limit)
			return render(cmd, outcome, err, func(w io.Writer, p *models.Page[models.Contract]) {
				tw := newTable(w, "ID", "TYPE", "FACTION", "ACCEPTED", "FULFILLED", "PAYMENT")
				for _, c := range p.Data {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%s\n", c.ID, c.Type, c.FactionSymbol, c.Accepted, c.Fulfilled,
						credits(int64(c.Terms.Payment.OnAccepted+c.Terms.Payment.OnFulfilled)))
				}
				tw.Flush()
				pageFooter(w, p.Meta.Total, p.Meta.Page, p.Meta.Limit)
			})
		}),
	}
	addPageFlags(cmd, &page, &limit)

	return cmd
}

func newContractsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <contract-id>",
		Short: "Show a contract and its delivery terms",
		Args:  cobra.ExactArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Contracts.Get(cmd.Context(), args[0])
			return render(cmd, outcome, err, printContract)
		}),
	}
}

func newContractsAcceptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <contract-id>",
		Short: "Accept a contract and collect the up-front payment",
		Args:  cobra.ExactArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Contracts.Accept(cmd.Context(), args[0])
			return render(cmd, outcome, err, printContractAgent)
		}),
	}
}

func newContractsFulfillCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fulfill <contract-id>",
		Short: "Fulfill a contract once every delivery is complete",
		Args:  cobra.ExactArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Contracts.Fulfill(cmd.Context(), args[0])
			return render(cmd, outcome, err, printContractAgent)
		}),
	}
}

func printContract(w io.Writer, c *models.Contract) {
	field(w, "ID", c.ID)
	field(w, "Type", c.Type)
	field(w, "Faction", c.FactionSymbol)
	field(w, "Accepted", c.Accepted)
	field(w, "Fulfilled", c.Fulfilled)
	field(w, "Accept by", when(c.DeadlineToAccept))
	field(w, "Deadline", when(c.Terms.Deadline))
	field(w, "On accept", credits(int64(c.Terms.Payment.OnAccepted)))
	field(w, "On fulfill", credits(int64(c.Terms.Payment.OnFulfilled)))

	if len(c.Terms.Deliver) > 0 {
		fmt.Fprintln(w)
		tw := newTable(w, "GOOD", "DESTINATION", "DELIVERED", "REMAINING")
		for _, d := range c.Terms.Deliver {
			fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d\n", d.TradeSymbol, d.DestinationSymbol,
				d.UnitsFulfilled, d.UnitsRequired, d.Remaining())
		}
		tw.Flush()
	}
}

func printContractAgent(w io.Writer, r *models.ContractAgent) {
	printContract(w, &r.Contract)
	fmt.Fprintln(w)
	field(w, "Credits", credits(r.Agent.Credits))
}

func addPageFlags(cmd *cobra.Command, page, limit *int) {
	cmd.Flags().IntVar(page, "page", client.DefaultPage, "Page number, starting at 1")
	cmd.Flags().IntVar(limit, "limit", client.DefaultLimit, "Items per page (1-20)")
}
