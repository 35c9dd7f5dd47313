// Package notify delivers user-visible alerts for firing alarms over two
// independent channels: a transient in-app banner and a system-level
// notification routed through the tray companion app.
package notify

import (
	"fmt"
	"sync"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/logger"
	"daydesk/internal/models"
)

// Banner is a transient in-app alert, auto-dismissed after Duration.
type Banner struct {
	Title    string
	Body     string
	Duration time.Duration
}

// BannerSink receives in-app banners. The TUI dashboard implements it; the
// headless run command prints to stdout.
type BannerSink interface {
	ShowBanner(Banner)
}

// SystemNotifier is the system-level delivery capability. Availability may
// be denied; callers degrade to the banner channel alone.
type SystemNotifier interface {
	// Available reports whether system delivery is currently possible.
	Available() bool
	// Show displays a notification. Tag carries replacement semantics: at
	// most one notification per tag is visible, a re-fire replaces it.
	Show(title, body, tag string, requireInteraction, sound bool) error
}

// Dispatcher fans a firing alarm out to both channels. Delivery failure on
// either channel never fails the firing transition.
type Dispatcher struct {
	mu       sync.RWMutex
	banners  BannerSink
	system   SystemNotifier
	settings func() models.Settings
}

func NewDispatcher(banners BannerSink, system SystemNotifier, settings func() models.Settings) *Dispatcher {
	return &Dispatcher{
		banners:  banners,
		system:   system,
		settings: settings,
	}
}

// SetBannerSink swaps the in-app channel. The TUI installs its program
// sink here once it owns the terminal.
func (d *Dispatcher) SetBannerSink(sink BannerSink) {
	d.mu.Lock()
	d.banners = sink
	d.mu.Unlock()
}

// AlarmTag returns the stable notification tag for an alarm id, so
// re-firing replaces the visible notification instead of stacking.
func AlarmTag(id string) string {
	return "alarm-" + id
}

// DispatchAlarm emits both channels for a firing alarm.
func (d *Dispatcher) DispatchAlarm(alarm models.Alarm) {
	body := alarm.Note
	if body == "" {
		body = "Reminder time!"
	}

	d.mu.RLock()
	banners := d.banners
	d.mu.RUnlock()
	if banners != nil {
		text := alarm.Title
		if alarm.Note != "" {
			text = fmt.Sprintf("%s - %s", alarm.Title, alarm.Note)
		}
		banners.ShowBanner(Banner{
			Title:    text,
			Body:     body,
			Duration: constants.BannerDuration,
		})
	}

	settings := models.DefaultSettings()
	if d.settings != nil {
		settings = d.settings()
	}
	if !settings.Notifications {
		return
	}

	if d.system == nil || !d.system.Available() {
		logger.Debug("System notification channel unavailable, banner only", "alarm", alarm.ID)
		return
	}
	if err := d.system.Show(alarm.Title, body, AlarmTag(alarm.ID), true, settings.SoundEnabled); err != nil {
		logger.Warn("System notification failed", "alarm", alarm.ID, "error", err)
	}
}
