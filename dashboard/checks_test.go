package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pulsedeck "github.com/pulsedeck/pulsedeck-go"
	"github.com/pulsedeck/pulsedeck-go/dashboard"
)

func TestAvailability(t *testing.T) {
	type testCase struct {
		name   string
		checks []pulsedeck.CheckResult
		want   float64
	}
	tests := []testCase{
		{name: "nil checks", checks: nil, want: 0},
		{name: "empty checks", checks: []pulsedeck.CheckResult{}, want: 0},
		{
			name: "all up",
			checks: []pulsedeck.CheckResult{
				{Status: pulsedeck.StatusUp},
				{Status: pulsedeck.StatusUp},
			},
			want: 1,
		},
		{
			name: "mixed",
			checks: []pulsedeck.CheckResult{
				{Status: pulsedeck.StatusUp},
				{Status: pulsedeck.StatusDown},
				{Status: pulsedeck.StatusUp},
				{Status: pulsedeck.StatusMaintenance},
			},
			want: 0.5,
		},
		{
			name:   "none up",
			checks: []pulsedeck.CheckResult{{Status: pulsedeck.StatusDown}},
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, dashboard.Availability(tt.checks), 1e-9)
		})
	}
}

func TestLatestByService(t *testing.T) {
	checks := []pulsedeck.CheckResult{
		{ServiceID: apiID, Status: pulsedeck.StatusDown, At: buildAt.Add(-time.Hour)},
		{ServiceID: apiID, Status: pulsedeck.StatusUp, At: buildAt.Add(-time.Minute)},
		{ServiceID: dbID, Status: pulsedeck.StatusUp, At: buildAt.Add(-2 * time.Hour)},
	}

	latest := dashboard.LatestByService(checks)

	require.Len(t, latest, 2)
	assert.Equal(t, pulsedeck.StatusUp, latest[apiID].Status)
	assert.Equal(t, buildAt.Add(-time.Minute), latest[apiID].At)
	assert.Equal(t, buildAt.Add(-2*time.Hour), latest[dbID].At)
}

func TestLatest(t *testing.T) {
	checks := []pulsedeck.CheckResult{
		{ServiceID: apiID, Status: pulsedeck.StatusDown, At: buildAt.Add(-time.Hour)},
		{ServiceID: apiID, Status: pulsedeck.StatusUp, At: buildAt.Add(-time.Minute)},
	}

	got, err := dashboard.Latest(checks, apiID)
	require.NoError(t, err)
	assert.Equal(t, pulsedeck.StatusUp, got.Status)
	assert.Equal(t, buildAt.Add(-time.Minute), got.At)
}

func TestLatestUnknownService(t *testing.T) {
	checks := []pulsedeck.CheckResult{
		{ServiceID: apiID, Status: pulsedeck.StatusUp, At: buildAt},
	}

	_, err := dashboard.Latest(checks, workerID)
	require.ErrorIs(t, err, pulsedeck.ErrUnknownService)

	_, err = dashboard.Latest(nil, workerID)
	require.ErrorIs(t, err, pulsedeck.ErrUnknownService)
}

func TestPages(t *testing.T) {
	views := []dashboard.ServiceView{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}

	pages := dashboard.Pages(views, 2)

	require.Len(t, pages, 3)
	assert.Equal(t, []dashboard.ServiceView{{Name: "a"}, {Name: "b"}}, pages[0])
	assert.Equal(t, []dashboard.ServiceView{{Name: "e"}}, pages[2])
}

func TestPagesNonPositiveSize(t *testing.T) {
	views := []dashboard.ServiceView{{Name: "a"}, {Name: "b"}}

	assert.Empty(t, dashboard.Pages(views, 0))
	assert.Empty(t, dashboard.Pages(views, -1))
}
