package cli

import (
	"fmt"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/notify"
	"daydesk/internal/quotes"
	"daydesk/internal/scheduler"
	"daydesk/internal/storage"
	"daydesk/internal/utils"
	"daydesk/internal/wishes"
)

type Context struct {
	Store      storage.Provider
	Scheduler  *scheduler.Scheduler
	Dispatcher *notify.Dispatcher
	Quotes     *quotes.Service
	Wishes     *wishes.Service
}

// ConsoleBanner prints in-app banners to stdout. Used by headless
// commands; the TUI supplies its own sink.
type ConsoleBanner struct{}

func (ConsoleBanner) ShowBanner(b notify.Banner) {
	fmt.Printf("\a[%s] %s\n", time.Now().Format(constants.TimeFormat), b.Title)
}

// ParseRepeat validates a repeat flag value.
func ParseRepeat(s string) (constants.Repeat, error) {
	r := constants.Repeat(s)
	if !constants.ValidRepeat(r) {
		return "", fmt.Errorf("invalid repeat: %s (must be none, daily, weekly, or monthly)", s)
	}
	return r, nil
}

// CombineDateTime merges a YYYY-MM-DD date and HH:MM clock into a local
// time. An empty date means today.
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := utils.ParseClock(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}

	day := time.Now()
	if date != "" {
		day, err = utils.ParseDate(date)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

// FormatDatetime renders an alarm time per the configured clock style.
func FormatDatetime(t time.Time, settings models.Settings) string {
	if settings.TimeFormat == "24h" {
		return t.Format("2006-01-02 15:04")
	}
	return t.Format("2006-01-02 3:04 PM")
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
