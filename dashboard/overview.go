package dashboard

import (
	"time"

	"github.com/gofrs/uuid"

	pulsedeck "github.com/pulsedeck/pulsedeck-go"
)

// Overview is the complete render-ready state of the dashboard at one instant.
type Overview struct {
	GeneratedAt time.Time
	Groups      []Group

	// Total counts the services shown, after deduplication.
	Total          int
	CountsByStatus map[pulsedeck.Status]int

	// Availability is the share of up checks across the whole supplied
	// history, not only the newest check per service.
	Availability        float64
	AvailabilityCaption string

	// OldestCheck is the instant of the earliest supplied check.
	// Nil when there are no checks at all.
	OldestCheck *time.Time
}

// Group is a set of services rolled up under one heading.
type Group struct {
	Name string

	// Status is the worst status among the member rows.
	Status pulsedeck.Status

	Services []ServiceView
}

// ServiceView is one service row, formatted for display.
type ServiceView struct {
	ID     uuid.UUID
	Name   string
	Status pulsedeck.Status

	// Stale marks rows whose newest check is too old to trust. Stale rows
	// show as pending regardless of what the check reported.
	Stale bool

	// Degraded marks up rows that answer slower than the configured bound.
	Degraded bool

	Tags []string

	LatencyCaption     string
	UptimeCaption      string
	LastCheckedCaption string
	Message            string
}
