// Package pulsedeck holds the value types the dashboard core exchanges with
// its callers.
//
// Records are ephemeral and caller-owned. The aggregation entry points in
// package dashboard receive plain slices of Service and CheckResult and never
// retain or mutate them.
package pulsedeck

import (
	"time"

	"github.com/gofrs/uuid"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// ErrUnknownService is returned by lookups for service IDs absent from the
// supplied records.
var ErrUnknownService = xerrors.NewSentinel("unknown service")

// Service identifies one monitored service.
type Service struct {
	ID    uuid.UUID
	Name  string
	Group string
	Tags  []string
}

// CheckResult is the outcome of a single health probe of one service.
type CheckResult struct {
	ServiceID uuid.UUID
	Status    Status
	Latency   time.Duration
	At        time.Time
	Message   string
}
