package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

var shipSymbol string

// NewShipsCommand creates the ships command with subcommands
func NewShipsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ships",
		Short: "Inspect and fly your ships",
		Long: `Inspect and fly the ships of your agent.

Commands acting on a single ship take --ship, falling back to the default
ship set with 'spacetraders config set-ship'.

Examples:
  spacetraders ships list
  spacetraders ships get --ship FEBA66-1
  spacetraders ships orbit --ship FEBA66-1
  spacetraders ships navigate --ship FEBA66-1 --destination X1-DF55-B2 --mode BURN
  spacetraders ships refuel --ship FEBA66-1 --units 100`,
	}

	cmd.PersistentFlags().StringVar(&shipSymbol, "ship", "", "Ship symbol (defaults to the configured ship)")

	cmd.AddCommand(newShipsListCommand())
	cmd.AddCommand(newShipsGetCommand())
	cmd.AddCommand(newShipsCargoCommand())
	cmd.AddCommand(newShipsOrbitCommand())
	cmd.AddCommand(newShipsDockCommand())
	cmd.AddCommand(newShipsNavigateCommand())
	cmd.AddCommand(newShipsRefuelCommand())

	return cmd
}

func newShipsListCommand() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your ships",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			outcome, err := current.client.Fleet.List(cmd.Context(), page, limit)
			return render(cmd, outcome, err, func(w io.Writer, p *models.Page[models.Ship]) {
				tw := newTable(w, "SYMBOL", "ROLE", "LOCATION", "STATUS", "FUEL", "CARGO")
				for _, s := range p.Data {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/%d\t%d/%d\n", s.Symbol, s.Registration.Role,
						s.Nav.WaypointSymbol, s.Nav.Status, s.Fuel.Current, s.Fuel.Capacity, s.Cargo.Units, s.Cargo.Capacity)
				}
				tw.Flush()
				pageFooter(w, p.Meta.Total, p.Meta.Page, p.Meta.Limit)
			})
		}),
	}
	addPageFlags(cmd, &page, &limit)

	return cmd
}

func newShipsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show a ship's navigation, fuel, cargo and cooldown",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultShip(shipSymbol)
			if err != nil {
				return err
			}
			outcome, err := current.client.Fleet.Get(cmd.Context(), symbol)
			return render(cmd, outcome, err, printShip)
		}),
	}
}

func newShipsCargoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cargo",
		Short: "Show a ship's cargo hold",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultShip(shipSymbol)
			if err != nil {
				return err
			}
			outcome, err := current.client.Fleet.Cargo(cmd.Context(), symbol)
			return render(cmd, outcome, err, printCargo)
		}),
	}
}

func newShipsOrbitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orbit",
		Short: "Move a docked ship into orbit",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultShip(shipSymbol)
			if err != nil {
				return err
			}
			outcome, err := current.client.Fleet.Orbit(cmd.Context(), symbol)
			return render(cmd, outcome, err, printNavUpdate)
		}),
	}
}

func newShipsDockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dock",
		Short: "Dock an orbiting ship",
		Args:  cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultShip(shipSymbol)
			if err != nil {
				return err
			}
			outcome, err := current.client.Fleet.Dock(cmd.Context(), symbol)
			return render(cmd, outcome, err, printNavUpdate)
		}),
	}
}

func newShipsNavigateCommand() *cobra.Command {
	var destination, mode string

	cmd := &cobra.Command{
		Use:   "navigate",
		Short: "Fly an orbiting ship to a waypoint in its system",
		Long: `Fly an orbiting ship to a waypoint in its current system.

When --mode is given the flight mode is changed first.`,
		Args: cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultShip(shipSymbol)
			if err != nil {
				return err
			}

			if mode != "" {
				setMode, err := current.client.Fleet.SetFlightMode(cmd.Context(), symbol, models.FlightMode(strings.ToUpper(mode)))
				if err := check(setMode, err); err != nil {
					return err
				}
			}

			outcome, err := current.client.Fleet.Navigate(cmd.Context(), symbol, destination)
			return render(cmd, outcome, err, func(w io.Writer, n *models.Navigation) {
				printRoute(w, n.Nav)
				field(w, "Fuel", fmt.Sprintf("%d/%d", n.Fuel.Current, n.Fuel.Capacity))
				if n.Fuel.Consumed != nil {
					field(w, "Fuel used", n.Fuel.Consumed.Amount)
				}
				for _, e := range n.Events {
					fmt.Fprintf(w, "  ! %s (%s): %s\n", e.Name, e.Component, e.Description)
				}
			})
		}),
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Destination waypoint symbol (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Flight mode to set first: DRIFT, STEALTH, CRUISE or BURN")
	cmd.MarkFlagRequired("destination")

	return cmd
}

func newShipsRefuelCommand() *cobra.Command {
	var units int
	var fromCargo bool

	cmd := &cobra.Command{
		Use:   "refuel",
		Short: "Refuel a docked ship at the local market",
		Long: `Refuel a docked ship. Without --units the tank is filled.

With --from-cargo fuel is taken from the ship's hold instead of the market.`,
		Args: cobra.NoArgs,
		RunE: instrument(func(cmd *cobra.Command, args []string) error {
			symbol, err := defaultShip(shipSymbol)
			if err != nil {
				return err
			}
			req := models.RefuelRequest{Units: units, FromCargo: fromCargo}
			outcome, err := current.client.Fleet.Refuel(cmd.Context(), symbol, req)
			return render(cmd, outcome, err, func(w io.Writer, r *models.Refuel) {
				field(w, "Fuel", fmt.Sprintf("%d/%d", r.Fuel.Current, r.Fuel.Capacity))
				field(w, "Paid", credits(int64(r.Transaction.TotalPrice)))
				field(w, "Credits", credits(r.Agent.Credits))
			})
		}),
	}

	cmd.Flags().IntVar(&units, "units", 0, "Fuel units to buy (default: fill the tank)")
	cmd.Flags().BoolVar(&fromCargo, "from-cargo", false, "Refuel from fuel carried in the cargo hold")

	return cmd
}

func printShip(w io.Writer, s *models.Ship) {
	field(w, "Symbol", s.Symbol)
	field(w, "Name", s.Registration.Name)
	field(w, "Role", s.Registration.Role)
	field(w, "Frame", s.Frame.Name)
	printRoute(w, s.Nav)
	field(w, "Fuel", fmt.Sprintf("%d/%d", s.Fuel.Current, s.Fuel.Capacity))
	field(w, "Crew", fmt.Sprintf("%d/%d (morale %d)", s.Crew.Current, s.Crew.Capacity, s.Crew.Morale))
	if s.Cooldown.Active() {
		field(w, "Cooldown", fmt.Sprintf("%ds remaining", s.Cooldown.RemainingSeconds))
	}
	fmt.Fprintln(w)
	printCargo(w, &s.Cargo)
}

func printRoute(w io.Writer, nav models.ShipNav) {
	field(w, "Status", nav.Status)
	field(w, "Location", nav.WaypointSymbol)
	field(w, "Flight mode", nav.FlightMode)
	if nav.Status == models.NavStatusInTransit {
		field(w, "Route", nav.Route.Origin.Symbol+" → "+nav.Route.Destination.Symbol)
		field(w, "Arrival", when(nav.Route.Arrival))
	}
}

func printNavUpdate(w io.Writer, u *models.NavUpdate) {
	printRoute(w, u.Nav)
}

func printCargo(w io.Writer, c *models.ShipCargo) {
	field(w, "Cargo", fmt.Sprintf("%d/%d", c.Units, c.Capacity))
	if len(c.Inventory) == 0 {
		return
	}
	tw := newTable(w, "GOOD", "UNITS")
	for _, item := range c.Inventory {
		fmt.Fprintf(tw, "%s\t%d\n", item.Symbol, item.Units)
	}
	tw.Flush()
}
