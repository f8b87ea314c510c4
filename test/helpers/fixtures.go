package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// FixtureTime is the reference instant all fixtures are built around
var FixtureTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// CreateTestAgent builds an agent headquartered at X1-DF55-A1
func CreateTestAgent(symbol string, credits int64) models.Agent {
	accountID := "acct-" + strings.ToLower(symbol)
	return models.Agent{
		AccountID:       &accountID,
		Symbol:          symbol,
		Headquarters:    "X1-DF55-A1",
		Credits:         credits,
		StartingFaction: string(models.FactionCosmic),
		ShipCount:       1,
	}
}

// CreateTestShip builds a command frigate with a half-full tank and an empty hold
func CreateTestShip(symbol, waypointSymbol string, status models.NavStatus) models.Ship {
	system := models.SystemSymbolOf(waypointSymbol)
	here := models.ShipNavRouteWaypoint{
		Symbol:       waypointSymbol,
		Type:         models.WaypointTypePlanet,
		SystemSymbol: system,
	}

	return models.Ship{
		Symbol: symbol,
		Registration: models.ShipRegistration{
			Name:          symbol,
			FactionSymbol: string(models.FactionCosmic),
			Role:          models.ShipRoleCommand,
		},
		Nav: models.ShipNav{
			SystemSymbol:   system,
			WaypointSymbol: waypointSymbol,
			Route: models.ShipNavRoute{
				Destination:   here,
				Origin:        here,
				DepartureTime: FixtureTime.Add(-time.Hour),
				Arrival:       FixtureTime.Add(-time.Hour),
			},
			Status:     status,
			FlightMode: models.FlightModeCruise,
		},
		Crew: models.ShipCrew{
			Current:  57,
			Required: 57,
			Capacity: 80,
			Rotation: models.CrewRotationStrict,
			Morale:   100,
		},
		Frame: models.ShipFrame{
			Symbol:         models.FrameFrigate,
			Name:           "Frigate",
			Description:    "A medium-sized, multi-purpose spacecraft.",
			Condition:      1,
			Integrity:      1,
			ModuleSlots:    8,
			MountingPoints: 5,
			FuelCapacity:   400,
			Requirements:   models.ShipRequirements{Power: models.Ptr(8), Crew: models.Ptr(25)},
		},
		Reactor: models.ShipReactor{
			Symbol:       models.ReactorFissionI,
			Name:         "Fission Reactor I",
			Condition:    1,
			Integrity:    1,
			PowerOutput:  31,
			Requirements: models.ShipRequirements{Crew: models.Ptr(8)},
		},
		Engine: models.ShipEngine{
			Symbol:       models.EngineIonDriveII,
			Name:         "Ion Drive II",
			Condition:    1,
			Integrity:    1,
			Speed:        36,
			Requirements: models.ShipRequirements{Power: models.Ptr(6), Crew: models.Ptr(8)},
		},
		Cooldown: models.Cooldown{ShipSymbol: symbol},
		Modules: []models.ShipModule{
			{
				Symbol:       models.ModuleCargoHoldII,
				Capacity:     models.Ptr(40),
				Name:         "Expanded Cargo Hold",
				Requirements: models.ShipRequirements{Crew: models.Ptr(2), Power: models.Ptr(2), Slots: models.Ptr(2)},
			},
		},
		Mounts: []models.ShipMount{
			{
				Symbol:       models.MountMiningLaserII,
				Name:         "Mining Laser II",
				Strength:     models.Ptr(25),
				Requirements: models.ShipRequirements{Crew: models.Ptr(2), Power: models.Ptr(2)},
			},
			{
				Symbol:       models.MountSensorArrayII,
				Name:         "Sensor Array II",
				Strength:     models.Ptr(4),
				Deposits:     []models.DepositSymbol{models.DepositIronOre},
				Requirements: models.ShipRequirements{Crew: models.Ptr(2), Power: models.Ptr(2)},
			},
		},
		Cargo: models.ShipCargo{Capacity: 40, Units: 0, Inventory: []models.ShipCargoItem{}},
		Fuel:  models.ShipFuel{Current: 200, Capacity: 400},
	}
}

// CreateTestContract builds an unaccepted procurement contract for IRON_ORE
func CreateTestContract(id string) models.Contract {
	return models.Contract{
		ID:            id,
		FactionSymbol: string(models.FactionCosmic),
		Type:          models.ContractTypeProcurement,
		Terms: models.ContractTerms{
			Deadline: FixtureTime.Add(7 * 24 * time.Hour),
			Payment:  models.ContractPayment{OnAccepted: 10000, OnFulfilled: 40000},
			Deliver: []models.ContractDeliver{
				{
					TradeSymbol:       string(models.TradeSymbolIronOre),
					DestinationSymbol: "X1-DF55-A1",
					UnitsRequired:     30,
				},
			},
		},
		DeadlineToAccept: FixtureTime.Add(24 * time.Hour),
	}
}

// CreateTestFaction builds a recruiting faction
func CreateTestFaction(symbol models.FactionSymbol) models.Faction {
	return models.Faction{
		Symbol:       symbol,
		Name:         string(symbol) + " Faction",
		Description:  fmt.Sprintf("The %s faction.", symbol),
		Headquarters: "X1-DF55",
		Traits: []models.FactionTrait{
			{Symbol: models.FactionTraitBureaucratic, Name: "Bureaucratic"},
		},
		IsRecruiting: true,
	}
}

// CreateTestWaypoint builds a charted waypoint with the given traits
func CreateTestWaypoint(symbol string, typ models.WaypointType, x, y int, traits ...models.WaypointTraitSymbol) models.Waypoint {
	wp := models.Waypoint{
		Symbol:       symbol,
		Type:         typ,
		SystemSymbol: models.SystemSymbolOf(symbol),
		X:            x,
		Y:            y,
		Orbitals:     []models.WaypointOrbital{},
		Traits:       make([]models.WaypointTrait, 0, len(traits)),
		Modifiers:    []models.WaypointModifier{},
		Chart: &models.Chart{
			SubmittedBy: string(models.FactionCosmic),
			SubmittedOn: FixtureTime.Add(-30 * 24 * time.Hour),
		},
	}
	for _, t := range traits {
		wp.Traits = append(wp.Traits, models.WaypointTrait{Symbol: t, Name: string(t)})
	}
	return wp
}

// CreateTestSystem builds a system listing the given waypoints
func CreateTestSystem(symbol string, waypoints ...models.Waypoint) models.System {
	system := models.System{
		Symbol:       symbol,
		SectorSymbol: "X1",
		Type:         models.SystemTypeOrangeStar,
		Waypoints:    make([]models.SystemWaypoint, 0, len(waypoints)),
		Factions:     []models.FactionRef{{Symbol: models.FactionCosmic}},
	}
	for _, wp := range waypoints {
		system.Waypoints = append(system.Waypoints, models.SystemWaypoint{
			Symbol:   wp.Symbol,
			Type:     wp.Type,
			X:        wp.X,
			Y:        wp.Y,
			Orbitals: wp.Orbitals,
		})
	}
	return system
}

// CreateTestMarket builds a market that exchanges FUEL and imports IRON_ORE
func CreateTestMarket(waypointSymbol string) models.Market {
	return models.Market{
		Symbol:   waypointSymbol,
		Exports:  []models.TradeGood{},
		Imports:  []models.TradeGood{{Symbol: models.TradeSymbolIronOre, Name: "Iron Ore"}},
		Exchange: []models.TradeGood{{Symbol: models.TradeSymbolFuel, Name: "Fuel"}},
		TradeGoods: []models.MarketTradeGood{
			{
				Symbol:        models.TradeSymbolFuel,
				Type:          models.TradeGoodExchange,
				TradeVolume:   100,
				Supply:        models.SupplyModerate,
				PurchasePrice: 72,
				SellPrice:     68,
			},
			{
				Symbol:        models.TradeSymbolIronOre,
				Type:          models.TradeGoodImport,
				TradeVolume:   60,
				Supply:        models.SupplyScarce,
				Activity:      models.ActivityWeak,
				PurchasePrice: 110,
				SellPrice:     52,
			},
		},
	}
}

// CreateTestStatus builds a server status with one leaderboard entry
func CreateTestStatus() models.Status {
	accounts := 1200
	return models.Status{
		Status:      "SpaceTraders is currently online and available to play",
		Version:     "v2.3.0",
		ResetDate:   "2025-05-25",
		Description: "SpaceTraders is a headless game.",
		Stats:       models.ServerStats{Accounts: &accounts, Agents: 900, Ships: 4000, Systems: 8000, Waypoints: 90000},
		Leaderboards: models.Leaderboards{
			MostCredits:         []models.CreditsEntry{{AgentSymbol: "TOP-AGENT", Credits: 12000000}},
			MostSubmittedCharts: []models.ChartsEntry{{AgentSymbol: "TOP-AGENT", ChartCount: 300}},
		},
		ServerResets:  models.ServerResets{Next: FixtureTime.Add(14 * 24 * time.Hour), Frequency: "fortnightly"},
		Announcements: []models.Announcement{{Title: "Welcome", Body: "Have fun."}},
		Links:         []models.Link{{Name: "Website", URL: "https://spacetraders.io"}},
	}
}
