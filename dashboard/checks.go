package dashboard

import (
	"time"

	"github.com/gofrs/uuid"

	"go.ytsaurus.tech/library/go/core/xerrors"

	pulsedeck "github.com/pulsedeck/pulsedeck-go"
	"github.com/pulsedeck/pulsedeck-go/slices"
)

// Availability returns the share of up checks, in [0, 1].
// No checks means zero availability.
func Availability(checks []pulsedeck.CheckResult) float64 {
	if len(checks) == 0 {
		return 0
	}

	up := slices.Count(checks, func(c pulsedeck.CheckResult) bool {
		return c.Status == pulsedeck.StatusUp
	})
	return float64(up) / float64(len(checks))
}

// LatestByService indexes the newest check of every service.
func LatestByService(checks []pulsedeck.CheckResult) map[uuid.UUID]pulsedeck.CheckResult {
	latest := make(map[uuid.UUID]pulsedeck.CheckResult, len(checks))
	for _, c := range checks {
		if prev, ok := latest[c.ServiceID]; !ok || c.At.After(prev.At) {
			latest[c.ServiceID] = c
		}
	}
	return latest
}

// Latest returns the newest check recorded for the given service.
// Returns ErrUnknownService when checks hold no record of it.
func Latest(checks []pulsedeck.CheckResult, id uuid.UUID) (pulsedeck.CheckResult, error) {
	var best pulsedeck.CheckResult
	found := false
	for _, c := range checks {
		if c.ServiceID != id {
			continue
		}
		if !found || c.At.After(best.At) {
			best = c
			found = true
		}
	}

	if !found {
		return pulsedeck.CheckResult{}, xerrors.Errorf("service %s: %w", id, pulsedeck.ErrUnknownService)
	}
	return best, nil
}

// Pages splits service rows into complication-sized pages.
// Non-positive size yields no pages.
func Pages(views []ServiceView, size int) [][]ServiceView {
	return slices.Chunk(views, size)
}

// uptimeOf computes how long a service has been continuously up given its
// full check history. Zero when the newest check is not up or there is none.
// Reorders history in place.
func uptimeOf(history []pulsedeck.CheckResult, now time.Time) time.Duration {
	if len(history) == 0 {
		return 0
	}

	slices.SortBy(history, func(c pulsedeck.CheckResult) int64 { return c.At.UnixNano() })

	last := history[len(history)-1]
	if last.Status != pulsedeck.StatusUp {
		return 0
	}

	upSince := last.At
	for i := len(history) - 2; i >= 0; i-- {
		if history[i].Status != pulsedeck.StatusUp {
			break
		}
		upSince = history[i].At
	}
	return now.Sub(upSince)
}
