package models

import "time"

// Status is the server status returned by the API root.
type Status struct {
	Status        string         `json:"status" validate:"required"`
	Version       string         `json:"version" validate:"required"`
	ResetDate     string         `json:"resetDate" validate:"required,datetime=2006-01-02"`
	Description   string         `json:"description"`
	Stats         ServerStats    `json:"stats"`
	Leaderboards  Leaderboards   `json:"leaderboards"`
	ServerResets  ServerResets   `json:"serverResets"`
	Announcements []Announcement `json:"announcements" validate:"dive"`
	Links         []Link         `json:"links" validate:"dive"`
}

type ServerStats struct {
	Accounts  *int `json:"accounts,omitempty" validate:"omitempty,gte=0"`
	Agents    int  `json:"agents" validate:"gte=0"`
	Ships     int  `json:"ships" validate:"gte=0"`
	Systems   int  `json:"systems" validate:"gte=0"`
	Waypoints int  `json:"waypoints" validate:"gte=0"`
}

type Leaderboards struct {
	MostCredits         []CreditsEntry `json:"mostCredits" validate:"dive"`
	MostSubmittedCharts []ChartsEntry  `json:"mostSubmittedCharts" validate:"dive"`
}

type CreditsEntry struct {
	AgentSymbol string `json:"agentSymbol" validate:"required,symbol"`
	Credits     int64  `json:"credits" validate:"gte=-9007199254740991,lte=9007199254740991"`
}

type ChartsEntry struct {
	AgentSymbol string `json:"agentSymbol" validate:"required,symbol"`
	ChartCount  int    `json:"chartCount" validate:"gte=0"`
}

// ServerResets gives the next scheduled reset and how often resets happen.
type ServerResets struct {
	Next      time.Time `json:"next" validate:"required"`
	Frequency string    `json:"frequency" validate:"required"`
}

type Announcement struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}

type Link struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}
