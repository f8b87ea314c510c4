package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// NewSystemsCommand creates the systems command with subcommands
func NewSystemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "Explore systems, waypoints and markets",
		Long: `Explore the universe.

Commands taking a system fall back to the default system set with
'spacetraders config set-system'.

Examples:
  spacetraders systems list
  spacetraders systems get X1-DF55
  spacetraders systems waypoints X1-DF55 --trait MARKETPLACE --trait SHIPYARD
  spacetraders systems market X1-DF55-A1`,
	}

	cmd.AddCommand(newSystemsListCommand())
	cmd.AddCommand(newSystemsGetCommand())
	cmd.AddCommand(newSystemsWaypointsCommand())
	cmd.AddCommand(newSystemsMarketCommand())

	return cmd
}

func newSystemsListCommand() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List systems",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Systems.List(cmd.Context(), page, limit)
			return render(cmd, outcome, err, func(w io.Writer, p *models.Page[models.System]) {
				tw := newTable(w, "SYMBOL", "TYPE", "X", "Y", "WAYPOINTS")
				for _, s := range p.Data {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", s.Symbol, s.Type, s.X, s.Y, len(s.Waypoints))
				}
				tw.Flush()
				pageFooter(w, p.Meta.Total, p.Meta.Page, p.Meta.Limit)
			})
		}),
	}
	addPageFlags(cmd, &page, &limit)

	return cmd
}

func newSystemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [system]",
		Short: "Show a system and its waypoints",
		Args:  cobra.MaximumNArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultSystem(firstArg(args))
			if err != nil {
				return err
			}
			outcome, err := current.client.Systems.Get(cmd.Context(), symbol)
			return render(cmd, outcome, err, func(w io.Writer, s *models.System) {
				field(w, "Symbol", s.Symbol)
				field(w, "Sector", s.SectorSymbol)
				field(w, "Type", s.Type)
				field(w, "Position", fmt.Sprintf("(%d, %d)", s.X, s.Y))
				fmt.Fprintln(w)
				tw := newTable(w, "WAYPOINT", "TYPE", "X", "Y")
				for _, wp := range s.Waypoints {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", wp.Symbol, wp.Type, wp.X, wp.Y)
				}
				tw.Flush()
			})
		}),
	}
}

func newSystemsWaypointsCommand() *cobra.Command {
	var page, limit int
	var traits []string
	var waypointType string

	cmd := &cobra.Command{
		Use:   "waypoints [system]",
		Short: "List waypoints in a system",
		Long: `List the waypoints of a system. Every --trait given must be present
on a waypoint for it to be listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultSystem(firstArg(args))
			if err != nil {
				return err
			}

			filter := models.WaypointFilter{Type: models.WaypointType(strings.ToUpper(waypointType))}
			for _, t := range traits {
				filter.Traits = append(filter.Traits, models.WaypointTraitSymbol(strings.ToUpper(t)))
			}

			outcome, err := current.client.Systems.ListWaypoints(cmd.Context(), symbol, filter, page, limit)
			return render(cmd, outcome, err, func(w io.Writer, p *models.Page[models.Waypoint]) {
				tw := newTable(w, "SYMBOL", "TYPE", "X", "Y", "TRAITS")
				for _, wp := range p.Data {
					names := make([]string, 0, len(wp.Traits))
					for _, t := range wp.Traits {
						names = append(names, string(t.Symbol))
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", wp.Symbol, wp.Type, wp.X, wp.Y, strings.Join(names, ","))
				}
				tw.Flush()
				pageFooter(w, p.Meta.Total, p.Meta.Page, p.Meta.Limit)
			})
		}),
	}

	addPageFlags(cmd, &page, &limit)
	cmd.Flags().StringArrayVar(&traits, "trait", nil, "Only waypoints with this trait (repeatable)")
	cmd.Flags().StringVar(&waypointType, "type", "", "Only waypoints of this type, e.g. ASTEROID")

	return cmd
}

func newSystemsMarketCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "market <waypoint>",
		Short: "Show the market at a waypoint",
		Long: `Show the goods traded at a waypoint. Prices are only shown while one
of your ships is present.`,
		Args: cobra.ExactArgs(1),
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			waypoint := args[0]
			outcome, err := current.client.Systems.Market(cmd.Context(), models.SystemSymbolOf(waypoint), waypoint)
			return render(cmd, outcome, err, printMarket)
		}),
	}
}

func printMarket(w io.Writer, m *models.Market) {
	field(w, "Market", m.Symbol)
	field(w, "Exports", goodSymbols(m.Exports))
	field(w, "Imports", goodSymbols(m.Imports))
	field(w, "Exchange", goodSymbols(m.Exchange))

	if len(m.TradeGoods) == 0 {
		fmt.Fprintln(w, "\nNo prices: no ship present.")
		return
	}
	fmt.Fprintln(w)
	tw := newTable(w, "GOOD", "TYPE", "SUPPLY", "BUY", "SELL", "VOLUME")
	for _, g := range m.TradeGoods {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n", g.Symbol, g.Type, g.Supply, g.PurchasePrice, g.SellPrice, g.TradeVolume)
	}
	tw.Flush()
}

func goodSymbols(goods []models.TradeGood) string {
	if len(goods) == 0 {
		return "-"
	}
	names := make([]string, len(goods))
	for i, g := range goods {
		names[i] = string(g.Symbol)
	}
	return strings.Join(names, ", ")
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
