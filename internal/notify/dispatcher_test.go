package notify

import (
	"errors"
	"testing"

	"daydesk/internal/models"
)

type recordingSink struct {
	banners []Banner
}

func (r *recordingSink) ShowBanner(b Banner) {
	r.banners = append(r.banners, b)
}

type recordingNotifier struct {
	available bool
	err       error

	shown []struct {
		Title, Body, Tag string
		Sound            bool
	}
}

func (r *recordingNotifier) Available() bool {
	return r.available
}

func (r *recordingNotifier) Show(title, body, tag string, requireInteraction, sound bool) error {
	r.shown = append(r.shown, struct {
		Title, Body, Tag string
		Sound            bool
	}{title, body, tag, sound})
	return r.err
}

func settingsFunc(s models.Settings) func() models.Settings {
	return func() models.Settings { return s }
}

func TestDispatchAlarm(t *testing.T) {
	alarm := models.Alarm{ID: "a1", Title: "Standup", Note: "daily sync"}

	t.Run("fans out to both channels", func(t *testing.T) {
		sink := &recordingSink{}
		system := &recordingNotifier{available: true}
		d := NewDispatcher(sink, system, settingsFunc(models.DefaultSettings()))

		d.DispatchAlarm(alarm)

		if len(sink.banners) != 1 {
			t.Fatalf("banners shown = %d, want 1", len(sink.banners))
		}
		if sink.banners[0].Title != "Standup - daily sync" {
			t.Errorf("banner title = %q", sink.banners[0].Title)
		}

		if len(system.shown) != 1 {
			t.Fatalf("system notifications = %d, want 1", len(system.shown))
		}
		got := system.shown[0]
		if got.Title != "Standup" || got.Body != "daily sync" {
			t.Errorf("system notification = %+v", got)
		}
		if got.Tag != AlarmTag("a1") {
			t.Errorf("tag = %q, want %q", got.Tag, AlarmTag("a1"))
		}
		if !got.Sound {
			t.Error("sound flag should follow settings")
		}
	})

	t.Run("empty note gets a default body", func(t *testing.T) {
		sink := &recordingSink{}
		system := &recordingNotifier{available: true}
		d := NewDispatcher(sink, system, settingsFunc(models.DefaultSettings()))

		d.DispatchAlarm(models.Alarm{ID: "a2", Title: "Standup"})

		if sink.banners[0].Title != "Standup" {
			t.Errorf("banner title = %q, want bare title", sink.banners[0].Title)
		}
		if system.shown[0].Body != "Reminder time!" {
			t.Errorf("body = %q, want default", system.shown[0].Body)
		}
	})

	t.Run("disabled notifications stay banner only", func(t *testing.T) {
		sink := &recordingSink{}
		system := &recordingNotifier{available: true}
		settings := models.DefaultSettings()
		settings.Notifications = false
		d := NewDispatcher(sink, system, settingsFunc(settings))

		d.DispatchAlarm(alarm)

		if len(sink.banners) != 1 {
			t.Errorf("banners shown = %d, want 1", len(sink.banners))
		}
		if len(system.shown) != 0 {
			t.Errorf("system notifications = %d, want 0", len(system.shown))
		}
	})

	t.Run("unavailable system channel degrades silently", func(t *testing.T) {
		sink := &recordingSink{}
		system := &recordingNotifier{available: false}
		d := NewDispatcher(sink, system, settingsFunc(models.DefaultSettings()))

		d.DispatchAlarm(alarm)

		if len(sink.banners) != 1 {
			t.Errorf("banners shown = %d, want 1", len(sink.banners))
		}
		if len(system.shown) != 0 {
			t.Errorf("system notifications = %d, want 0", len(system.shown))
		}
	})

	t.Run("system delivery failure does not panic", func(t *testing.T) {
		sink := &recordingSink{}
		system := &recordingNotifier{available: true, err: errors.New("webhook down")}
		d := NewDispatcher(sink, system, settingsFunc(models.DefaultSettings()))

		d.DispatchAlarm(alarm)

		if len(sink.banners) != 1 {
			t.Errorf("banners shown = %d, want 1", len(sink.banners))
		}
	})

	t.Run("sink can be swapped at runtime", func(t *testing.T) {
		first := &recordingSink{}
		second := &recordingSink{}
		d := NewDispatcher(first, nil, settingsFunc(models.DefaultSettings()))

		d.SetBannerSink(second)
		d.DispatchAlarm(alarm)

		if len(first.banners) != 0 {
			t.Errorf("old sink received %d banners", len(first.banners))
		}
		if len(second.banners) != 1 {
			t.Errorf("new sink received %d banners, want 1", len(second.banners))
		}
	})
}
