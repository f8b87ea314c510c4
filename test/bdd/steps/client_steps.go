package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

// result is the type-erased part of the last Outcome
type result struct {
	ok         bool
	message    string
	statusCode int
	value      interface{}
}

type clientContext struct {
	fake   *helpers.FakeAPI
	client *client.Client
	last   result
	err    error
}

func (c *clientContext) reset() {
	if c.fake != nil {
		c.fake.Close()
	}
	c.fake = nil
	c.client = nil
	c.last = result{}
	c.err = nil
}

func record[T any](c *clientContext, outcome *client.Outcome[T], err error) {
	c.err = err
	c.last = result{}
	if outcome != nil {
		c.last = result{
			ok:         outcome.OK(),
			message:    outcome.Message,
			statusCode: outcome.StatusCode,
		}
		if outcome.Value != nil {
			c.last.value = outcome.Value
		}
	}
}

// Setup

func (c *clientContext) aSpaceTradersAPIWhereMyAgentHoldsCredits(symbol string, credits int64) error {
	c.fake = helpers.StartFakeAPI()
	c.fake.SetAgent(helpers.CreateTestAgent(symbol, credits))

	var err error
	c.client, err = c.fake.NewClient()
	return err
}

func (c *clientContext) shipIsDockedAtWithFuel(symbol, waypoint string, current, capacity int) error {
	ship := helpers.CreateTestShip(symbol, waypoint, models.NavStatusDocked)
	ship.Fuel.Current = current
	ship.Fuel.Capacity = capacity
	c.fake.AddShip(ship)
	return nil
}

// Actions

func (c *clientContext) iFetchMyAgent() error {
	outcome, err := c.client.Agents.Mine(context.Background())
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iFetchAgent(symbol string) error {
	outcome, err := c.client.Agents.Get(context.Background(), symbol)
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iAcceptContract(id string) error {
	outcome, err := c.client.Contracts.Accept(context.Background(), id)
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iListContractsOnPageWithLimit(page, limit int) error {
	outcome, err := c.client.Contracts.List(context.Background(), page, limit)
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iOrbitShip(symbol string) error {
	outcome, err := c.client.Fleet.Orbit(context.Background(), symbol)
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iDockShip(symbol string) error {
	outcome, err := c.client.Fleet.Dock(context.Background(), symbol)
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iNavigateShipTo(symbol, waypoint string) error {
	outcome, err := c.client.Fleet.Navigate(context.Background(), symbol, waypoint)
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iRefuelShipWithUnits(symbol string, units int) error {
	outcome, err := c.client.Fleet.Refuel(context.Background(), symbol, models.RefuelRequest{Units: units})
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iRefuelShip(symbol string) error {
	return c.iRefuelShipWithUnits(symbol, 0)
}

func (c *clientContext) iListWaypointsWithTraits(system, traits string) error {
	var filter models.WaypointFilter
	for _, t := range splitList(traits) {
		filter.Traits = append(filter.Traits, models.WaypointTraitSymbol(t))
	}
	outcome, err := c.client.Systems.ListWaypoints(context.Background(), system, filter, client.DefaultPage, client.DefaultLimit)
	record(c, outcome, err)
	return nil
}

func (c *clientContext) iFetchTheMarketAt(waypoint string) error {
	outcome, err := c.client.Systems.Market(context.Background(), models.SystemSymbolOf(waypoint), waypoint)
	record(c, outcome, err)
	return nil
}

// Assertions

func (c *clientContext) theCallShouldSucceed() error {
	if c.err != nil {
		return fmt.Errorf("expected success but got error: %w", c.err)
	}
	if !c.last.ok {
		return fmt.Errorf("expected success but got %q", c.last.message)
	}
	return nil
}

func (c *clientContext) theCallShouldSucceedWithMessage(message string) error {
	if err := c.theCallShouldSucceed(); err != nil {
		return err
	}
	if c.last.message != message {
		return fmt.Errorf("expected message %q but got %q", message, c.last.message)
	}
	return nil
}

func (c *clientContext) theCallShouldFailWithStatus(status int) error {
	if c.err != nil {
		return fmt.Errorf("expected a failed outcome but got error: %w", c.err)
	}
	if c.last.ok {
		return fmt.Errorf("expected failure but the call succeeded with %q", c.last.message)
	}
	if c.last.statusCode != status {
		return fmt.Errorf("expected status %d but got %d", status, c.last.statusCode)
	}
	return nil
}

func (c *clientContext) theCallShouldFailWithStatusAndMessage(status int, message string) error {
	if err := c.theCallShouldFailWithStatus(status); err != nil {
		return err
	}
	if c.last.message != message {
		return fmt.Errorf("expected message %q but got %q", message, c.last.message)
	}
	return nil
}

func (c *clientContext) theCallShouldBeRejectedForInvalidParameters() error {
	if !errors.Is(c.err, client.ErrInvalidParams) {
		return fmt.Errorf("expected ErrInvalidParams but got %v", c.err)
	}
	return nil
}

func (c *clientContext) noRequestShouldHaveReachedTheAPI() error {
	if hits := c.fake.Hits(); hits != 0 {
		return fmt.Errorf("expected no requests but the API received %d", hits)
	}
	return nil
}

func (c *clientContext) theAgentShouldHoldCredits(credits int64) error {
	agent, ok := c.last.value.(*models.Agent)
	if !ok {
		return fmt.Errorf("expected an agent but got %T", c.last.value)
	}
	if agent.Credits != credits {
		return fmt.Errorf("expected %d credits but got %d", credits, agent.Credits)
	}
	return nil
}

func (c *clientContext) myAgentShouldHoldCredits(credits int64) error {
	if got := c.fake.Agent().Credits; got != credits {
		return fmt.Errorf("expected %d credits but the agent holds %d", credits, got)
	}
	return nil
}

func (c *clientContext) contractShouldBeAccepted(id string) error {
	contract, ok := c.fake.Contract(id)
	if !ok {
		return fmt.Errorf("contract %s not found", id)
	}
	if !contract.Accepted {
		return fmt.Errorf("expected contract %s to be accepted", id)
	}
	return nil
}

func (c *clientContext) shipShouldBe(symbol, status string) error {
	ship, ok := c.fake.Ship(symbol)
	if !ok {
		return fmt.Errorf("ship %s not found", symbol)
	}
	if string(ship.Nav.Status) != status {
		return fmt.Errorf("expected ship %s to be %s but it is %s", symbol, status, ship.Nav.Status)
	}
	return nil
}

func (c *clientContext) shipShouldHaveFuel(symbol string, current, capacity int) error {
	ship, ok := c.fake.Ship(symbol)
	if !ok {
		return fmt.Errorf("ship %s not found", symbol)
	}
	if ship.Fuel.Current != current || ship.Fuel.Capacity != capacity {
		return fmt.Errorf("expected fuel %d/%d but got %d/%d", current, capacity, ship.Fuel.Current, ship.Fuel.Capacity)
	}
	return nil
}

func (c *clientContext) theWaypointsListedShouldBe(expected string) error {
	page, ok := c.last.value.(*models.Page[models.Waypoint])
	if !ok {
		return fmt.Errorf("expected a waypoint page but got %T", c.last.value)
	}
	got := make([]string, 0, len(page.Data))
	for _, wp := range page.Data {
		got = append(got, wp.Symbol)
	}
	if want := splitList(expected); strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("expected waypoints %v but got %v", want, got)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// InitializeClientScenario registers the SDK steps. Every scenario gets its
// own fake API, closed when the scenario ends.
func InitializeClientScenario(sc *godog.ScenarioContext) {
	c := &clientContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, s *godog.Scenario, err error) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	sc.Step(`^a SpaceTraders API where my agent "([^"]*)" holds (\d+) credits$`, c.aSpaceTradersAPIWhereMyAgentHoldsCredits)
	sc.Step(`^ship "([^"]*)" is docked at "([^"]*)" with fuel (\d+)/(\d+)$`, c.shipIsDockedAtWithFuel)

	sc.Step(`^I fetch my agent$`, c.iFetchMyAgent)
	sc.Step(`^I fetch agent "([^"]*)"$`, c.iFetchAgent)
	sc.Step(`^I accept contract "([^"]*)"$`, c.iAcceptContract)
	sc.Step(`^I list contracts on page (\d+) with limit (\d+)$`, c.iListContractsOnPageWithLimit)
	sc.Step(`^I orbit ship "([^"]*)"$`, c.iOrbitShip)
	sc.Step(`^I dock ship "([^"]*)"$`, c.iDockShip)
	sc.Step(`^I navigate ship "([^"]*)" to "([^"]*)"$`, c.iNavigateShipTo)
	sc.Step(`^I refuel ship "([^"]*)" with (\d+) units$`, c.iRefuelShipWithUnits)
	sc.Step(`^I refuel ship "([^"]*)"$`, c.iRefuelShip)
	sc.Step(`^I list waypoints in "([^"]*)" with traits "([^"]*)"$`, c.iListWaypointsWithTraits)
	sc.Step(`^I fetch the market at "([^"]*)"$`, c.iFetchTheMarketAt)

	sc.Step(`^the call should succeed$`, c.theCallShouldSucceed)
	sc.Step(`^the call should succeed with message "([^"]*)"$`, c.theCallShouldSucceedWithMessage)
	sc.Step(`^the call should fail with status (\d+)$`, c.theCallShouldFailWithStatus)
	sc.Step(`^the call should fail with status (\d+) and message "([^"]*)"$`, c.theCallShouldFailWithStatusAndMessage)
	sc.Step(`^the call should be rejected for invalid parameters$`, c.theCallShouldBeRejectedForInvalidParameters)
	sc.Step(`^no request should have reached the API$`, c.noRequestShouldHaveReachedTheAPI)
	sc.Step(`^the agent should hold (\d+) credits$`, c.theAgentShouldHoldCredits)
	sc.Step(`^my agent should hold (\d+) credits$`, c.myAgentShouldHoldCredits)
	sc.Step(`^contract "([^"]*)" should be accepted$`, c.contractShouldBeAccepted)
	sc.Step(`^ship "([^"]*)" should be "([^"]*)"$`, c.shipShouldBe)
	sc.Step(`^ship "([^"]*)" should have fuel (\d+)/(\d+)$`, c.shipShouldHaveFuel)
	sc.Step(`^the waypoints listed should be "([^"]*)"$`, c.theWaypointsListedShouldBe)
}
