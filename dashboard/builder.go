package dashboard

import (
	"time"

	"github.com/gofrs/uuid"

	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/log/nop"
	"go.ytsaurus.tech/library/go/ptr"

	pulsedeck "github.com/pulsedeck/pulsedeck-go"
	"github.com/pulsedeck/pulsedeck-go/slices"
	"github.com/pulsedeck/pulsedeck-go/xmaps"
)

// Builder aggregates service and check records into Overviews.
//
// A Builder is immutable after construction and safe for concurrent use.
type Builder struct {
	log    log.Logger
	clock  Clock
	config Config
}

// BuilderOption customizes a Builder.
type BuilderOption func(b *Builder)

// WithLogger routes the builder's debug output to l.
func WithLogger(l log.Logger) BuilderOption {
	return func(b *Builder) {
		b.log = l
	}
}

// WithClock pins the builder to an explicit time source.
func WithClock(c Clock) BuilderOption {
	return func(b *Builder) {
		b.clock = c
	}
}

// WithConfig replaces the default tuning.
func WithConfig(c Config) BuilderOption {
	return func(b *Builder) {
		b.config = c
	}
}

// NewBuilder returns a Builder with the system clock, a nop logger and
// DefaultConfig. Options override any of the three.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		log:    &nop.Logger{},
		clock:  SystemClock{},
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build aggregates services and checks into a render-ready Overview.
//
// Input order does not matter. Services are deduplicated by ID keeping the
// first occurrence, every row takes the newest check of its service, groups
// and rows are sorted by name. Services without a group land in the
// configured default group; services without any check show as pending.
func (b *Builder) Build(services []pulsedeck.Service, checks []pulsedeck.CheckResult) Overview {
	now := b.clock.Now()

	unique := slices.DedupBy(services, func(s pulsedeck.Service) uuid.UUID { return s.ID })
	if dropped := len(services) - len(unique); dropped > 0 {
		b.log.Debug("dropped duplicate service records", log.Int("count", dropped))
	}

	latest := LatestByService(checks)
	history := slices.GroupBy(checks, func(c pulsedeck.CheckResult) uuid.UUID { return c.ServiceID })
	uptimes := xmaps.MapValues(history, func(h []pulsedeck.CheckResult) time.Duration {
		return uptimeOf(h, now)
	})

	known := make(map[uuid.UUID]struct{}, len(unique))
	for _, s := range unique {
		known[s.ID] = struct{}{}
	}
	orphans := slices.Count(checks, func(c pulsedeck.CheckResult) bool {
		_, ok := known[c.ServiceID]
		return !ok
	})
	if orphans > 0 {
		b.log.Debug("checks reference unknown services", log.Int("count", orphans))
	}

	byGroup := slices.GroupBy(unique, func(s pulsedeck.Service) string {
		if s.Group == "" {
			return b.config.DefaultGroup
		}
		return s.Group
	})

	overview := Overview{
		GeneratedAt:    now,
		Groups:         make([]Group, 0, len(byGroup)),
		Total:          len(unique),
		CountsByStatus: make(map[pulsedeck.Status]int, 4),
		Availability:   Availability(checks),
	}
	overview.AvailabilityCaption = AvailabilityCaption(overview.Availability)

	for _, name := range xmaps.SortedKeys(byGroup) {
		views := slices.Map(byGroup[name], func(s pulsedeck.Service) ServiceView {
			return b.serviceView(s, latest, uptimes, now)
		})
		slices.SortBy(views, func(v ServiceView) string { return v.Name })

		status := pulsedeck.StatusUp
		for _, v := range views {
			status = status.Worse(v.Status)
			overview.CountsByStatus[v.Status]++
		}

		overview.Groups = append(overview.Groups, Group{
			Name:     name,
			Status:   status,
			Services: views,
		})
	}

	for _, c := range checks {
		if overview.OldestCheck == nil || c.At.Before(*overview.OldestCheck) {
			overview.OldestCheck = ptr.Time(c.At)
		}
	}

	b.log.Debug("dashboard overview built",
		log.Int("services", overview.Total),
		log.Int("groups", len(overview.Groups)),
		log.Int("checks", len(checks)),
		log.Time("generated_at", now))

	return overview
}

func (b *Builder) serviceView(s pulsedeck.Service, latest map[uuid.UUID]pulsedeck.CheckResult, uptimes map[uuid.UUID]time.Duration, now time.Time) ServiceView {
	view := ServiceView{
		ID:   s.ID,
		Name: s.Name,
		Tags: s.Tags,
	}

	check, ok := latest[s.ID]
	if !ok {
		view.Status = pulsedeck.StatusPending
		view.UptimeCaption = UptimeCaption(0)
		view.LastCheckedCaption = "Never"
		return view
	}

	view.Status = check.Status
	view.Message = check.Message
	view.LatencyCaption = LatencyCaption(check.Latency)
	view.UptimeCaption = UptimeCaption(uptimes[s.ID])
	view.LastCheckedCaption = LastCheckedCaption(check.At, now)

	switch {
	case b.config.StaleAfter > 0 && now.Sub(check.At) > b.config.StaleAfter:
		view.Stale = true
		view.Status = pulsedeck.StatusPending
	case b.config.DegradedLatency > 0 && check.Status == pulsedeck.StatusUp && check.Latency > b.config.DegradedLatency:
		view.Degraded = true
	}

	return view
}
