package booking

import (
	"fmt"
	"strings"
	"time"
)

// clockLayout matches the human time strings the frontend submits,
// e.g. "2:30 PM".
const clockLayout = "3:04 PM"

const dateLayout = "2006-01-02"

// Slot is a resolved appointment window: absolute start/end instants
// plus the zone name the calendar event declares them under.
type Slot struct {
	Date       string // canonical YYYY-MM-DD
	Start      time.Time
	End        time.Time
	TargetZone string
}

// SlotResolver turns client date/time strings into absolute instants.
type SlotResolver struct {
	Source   *time.Location
	Target   *time.Location
	Duration time.Duration
}

// NewSlotResolver loads the configured source and target zones.
func NewSlotResolver(sourceZone, targetZone string, duration time.Duration) (*SlotResolver, error) {
	src, err := time.LoadLocation(sourceZone)
	if err != nil {
		return nil, fmt.Errorf("loading source zone %q: %w", sourceZone, err)
	}
	dst, err := time.LoadLocation(targetZone)
	if err != nil {
		return nil, fmt.Errorf("loading target zone %q: %w", targetZone, err)
	}
	return &SlotResolver{Source: src, Target: dst, Duration: duration}, nil
}

// CanonicalDate normalizes a client-submitted date to YYYY-MM-DD. It
// accepts a bare date or a full RFC 3339 timestamp (some frontends
// send the latter); anything else is a ValidationError. Both the
// insert and the list paths go through this, so a write is always
// visible to a later read.
func CanonicalDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.Format(dateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dateLayout), nil
	}
	return "", NewValidationError("date", fmt.Sprintf("unrecognized date %q", raw))
}

// Resolve interprets date as midnight in the source zone, adds the
// parsed clock time, and returns the bounded slot. It never falls back
// to the current time on bad input.
func (r *SlotResolver) Resolve(rawDate, clock string) (*Slot, error) {
	date, err := CanonicalDate(rawDate)
	if err != nil {
		return nil, err
	}

	t, err := time.Parse(clockLayout, strings.TrimSpace(clock))
	if err != nil {
		return nil, NewValidationError("time", fmt.Sprintf("unrecognized time %q", clock))
	}

	midnight, err := time.ParseInLocation(dateLayout, date, r.Source)
	if err != nil {
		return nil, NewValidationError("date", fmt.Sprintf("unrecognized date %q", rawDate))
	}

	start := midnight.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	return &Slot{
		Date:       date,
		Start:      start,
		End:        start.Add(r.Duration),
		TargetZone: r.Target.String(),
	}, nil
}
