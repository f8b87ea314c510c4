package models

import (
	"strings"
	"time"
)

// System is a star system. Coordinates are relative to the sector.
type System struct {
	Symbol       string           `json:"symbol" validate:"required,symbol"`
	SectorSymbol string           `json:"sectorSymbol" validate:"required,symbol"`
	Type         SystemType       `json:"type" validate:"enum"`
	X            int              `json:"x"`
	Y            int              `json:"y"`
	Waypoints    []SystemWaypoint `json:"waypoints" validate:"dive"`
	Factions     []FactionRef     `json:"factions" validate:"dive"`
}

// SystemWaypoint is the summary of a waypoint embedded in a System.
type SystemWaypoint struct {
	Symbol   string            `json:"symbol" validate:"required,symbol"`
	Type     WaypointType      `json:"type" validate:"enum"`
	X        int               `json:"x"`
	Y        int               `json:"y"`
	Orbitals []WaypointOrbital `json:"orbitals" validate:"dive"`
	Orbits   *string           `json:"orbits,omitempty" validate:"omitempty,symbol"`
}

type FactionRef struct {
	Symbol FactionSymbol `json:"symbol" validate:"enum"`
}

type WaypointOrbital struct {
	Symbol string `json:"symbol" validate:"required,symbol"`
}

// Waypoint is a navigable location within a system. A waypoint may orbit a
// parent (Orbits) and may itself be orbited (Orbitals).
type Waypoint struct {
	Symbol              string             `json:"symbol" validate:"required,symbol"`
	Type                WaypointType       `json:"type" validate:"enum"`
	SystemSymbol        string             `json:"systemSymbol,omitempty" validate:"omitempty,symbol"`
	X                   int                `json:"x"`
	Y                   int                `json:"y"`
	Orbitals            []WaypointOrbital  `json:"orbitals" validate:"dive"`
	Orbits              *string            `json:"orbits,omitempty" validate:"omitempty,symbol"`
	Faction             *FactionRef        `json:"faction,omitempty"`
	Traits              []WaypointTrait    `json:"traits" validate:"dive"`
	Modifiers           []WaypointModifier `json:"modifiers" validate:"dive"`
	Chart               *Chart             `json:"chart,omitempty"`
	IsUnderConstruction bool               `json:"isUnderConstruction"`
}

// HasTrait reports whether the waypoint carries the given trait.
func (w Waypoint) HasTrait(symbol WaypointTraitSymbol) bool {
	for _, t := range w.Traits {
		if t.Symbol == symbol {
			return true
		}
	}
	return false
}

type WaypointTrait struct {
	Symbol      WaypointTraitSymbol `json:"symbol" validate:"enum"`
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
}

type WaypointModifier struct {
	Symbol      WaypointModifierSymbol `json:"symbol" validate:"enum"`
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
}

// Chart records who charted a waypoint and when. Absent on uncharted waypoints.
type Chart struct {
	WaypointSymbol *string   `json:"waypointSymbol,omitempty" validate:"omitempty,symbol"`
	SubmittedBy    string    `json:"submittedBy" validate:"required,symbol"`
	SubmittedOn    time.Time `json:"submittedOn" validate:"required"`
}

// JumpGate lists the waypoints reachable through a gate.
type JumpGate struct {
	Symbol      string   `json:"symbol" validate:"required,symbol"`
	Connections []string `json:"connections" validate:"dive,symbol"`
}

// SystemSymbolOf returns the system part of a waypoint symbol:
// "X1-DF55-A1" belongs to "X1-DF55". Symbols without a waypoint part are
// returned unchanged.
func SystemSymbolOf(waypointSymbol string) string {
	if i := strings.LastIndexByte(waypointSymbol, '-'); i > 0 && strings.Count(waypointSymbol, "-") >= 2 {
		return waypointSymbol[:i]
	}
	return waypointSymbol
}
