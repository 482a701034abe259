package pulsedeck

import (
	"fmt"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// Status is the health state of a single monitored service.
type Status uint8

const (
	StatusUp Status = iota
	StatusDown
	StatusPending
	StatusMaintenance
)

// String returns the canonical text form, e.g. "up".
func (s Status) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	case StatusPending:
		return "pending"
	case StatusMaintenance:
		return "maintenance"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// ParseStatus converts the text form produced by String back into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "up":
		return StatusUp, nil
	case "down":
		return StatusDown, nil
	case "pending":
		return StatusPending, nil
	case "maintenance":
		return StatusMaintenance, nil
	default:
		return 0, xerrors.Errorf("unexpected service status %q", s)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Worse returns the more severe of s and other.
//
// Severity grows from up through maintenance and pending to down, so one
// failing service dominates a rollup no matter how many healthy services
// surround it.
func (s Status) Worse(other Status) Status {
	if other.severity() > s.severity() {
		return other
	}
	return s
}

func (s Status) severity() int {
	switch s {
	case StatusDown:
		return 3
	case StatusPending:
		return 2
	case StatusMaintenance:
		return 1
	default:
		return 0
	}
}
