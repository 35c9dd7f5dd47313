package models

import (
	"fmt"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/utils"
)

// Alarm is a scheduled reminder. Datetime is the next fire instant; for
// repeating alarms it is pushed forward by the scheduler after each firing.
type Alarm struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Datetime  time.Time        `json:"datetime"`
	Repeat    constants.Repeat `json:"repeat"`
	Note      string           `json:"note,omitempty"`
	Active    bool             `json:"active"`
	CreatedAt time.Time        `json:"created_at"`
}

func (a *Alarm) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("alarm title cannot be empty")
	}
	if a.Datetime.IsZero() {
		return fmt.Errorf("alarm datetime cannot be empty")
	}
	if !constants.ValidRepeat(a.Repeat) {
		return fmt.Errorf("invalid repeat kind: %s (must be none, daily, weekly, or monthly)", a.Repeat)
	}
	return nil
}

// IsRepeating reports whether the alarm re-fires after going off.
func (a *Alarm) IsRepeating() bool {
	return a.Repeat != constants.RepeatNone
}

// IsOverdue reports whether an active alarm's fire time has already passed.
func (a *Alarm) IsOverdue(now time.Time) bool {
	return a.Active && !a.Datetime.After(now)
}

// NextOccurrence returns the fire instant one repeat period after the
// current one. Monthly advancement clamps to the last day of shorter
// months so time-of-day is always preserved.
func (a *Alarm) NextOccurrence() time.Time {
	switch a.Repeat {
	case constants.RepeatDaily:
		return a.Datetime.AddDate(0, 0, 1)
	case constants.RepeatWeekly:
		return a.Datetime.AddDate(0, 0, 7)
	case constants.RepeatMonthly:
		return utils.AddMonths(a.Datetime, 1)
	default:
		return a.Datetime
	}
}

// OccurrenceAfter advances from the alarm's current fire time through as
// many repeat periods as needed to land strictly after now. Skipped
// occurrences are not reported; callers must not notify for them.
func (a *Alarm) OccurrenceAfter(now time.Time) time.Time {
	if !a.IsRepeating() {
		return a.Datetime
	}
	next := a.Datetime
	probe := *a
	for !next.After(now) {
		probe.Datetime = next
		next = probe.NextOccurrence()
	}
	return next
}

// FormatRepeat returns a human-readable label for the repeat kind.
func (a *Alarm) FormatRepeat() string {
	switch a.Repeat {
	case constants.RepeatDaily:
		return "Daily"
	case constants.RepeatWeekly:
		return "Weekly"
	case constants.RepeatMonthly:
		return "Monthly"
	default:
		return ""
	}
}

// AlarmStats summarizes the alarm collection for the dashboard.
type AlarmStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Upcoming  int `json:"upcoming"`
	Overdue   int `json:"overdue"`
	Repeating int `json:"repeating"`
}

// ComputeAlarmStats derives counts from a snapshot of the collection.
func ComputeAlarmStats(alarms []Alarm, now time.Time) AlarmStats {
	stats := AlarmStats{Total: len(alarms)}
	for _, a := range alarms {
		if a.Active {
			stats.Active++
			if a.Datetime.After(now) {
				stats.Upcoming++
			} else {
				stats.Overdue++
			}
		}
		if a.IsRepeating() {
			stats.Repeating++
		}
	}
	return stats
}
