package scheduler

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/storage"
)

type captureDispatcher struct {
	fired chan models.Alarm
}

func newCaptureDispatcher() *captureDispatcher {
	return &captureDispatcher{fired: make(chan models.Alarm, 8)}
}

func (d *captureDispatcher) DispatchAlarm(a models.Alarm) {
	d.fired <- a
}

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(afero.NewMemMapFs(), "/data")
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func waitForAlarm(t *testing.T, d *captureDispatcher) models.Alarm {
	t.Helper()
	select {
	case a := <-d.fired:
		return a
	case <-time.After(2 * time.Second):
		t.Fatal("alarm did not fire in time")
		return models.Alarm{}
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestArmOverdueOneTimeFires(t *testing.T) {
	store := newTestStore(t)
	dispatcher := newCaptureDispatcher()
	sched := New(store, dispatcher)
	defer sched.Stop()

	alarm := store.AddAlarm(storage.AlarmInput{
		Title:    "missed",
		Datetime: time.Now().Add(-time.Minute),
	})

	sched.Arm(alarm)

	fired := waitForAlarm(t, dispatcher)
	if fired.ID != alarm.ID {
		t.Errorf("fired alarm id = %s, want %s", fired.ID, alarm.ID)
	}

	// a fired one-time alarm is deactivated and its timer removed
	waitUntil(t, func() bool {
		got, err := store.GetAlarm(alarm.ID)
		return err == nil && !got.Active
	})
	waitUntil(t, func() bool { return !sched.Armed(alarm.ID) })
}

func TestArmOverdueRepeatingAdvancesWithoutFiring(t *testing.T) {
	store := newTestStore(t)
	dispatcher := newCaptureDispatcher()
	sched := New(store, dispatcher)
	defer sched.Stop()

	base := time.Now()
	sched.now = func() time.Time { return base }

	alarm := store.AddAlarm(storage.AlarmInput{
		Title:    "daily standup",
		Datetime: base.Add(-36 * time.Hour),
		Repeat:   constants.RepeatDaily,
	})

	sched.Arm(alarm)

	got, err := store.GetAlarm(alarm.ID)
	if err != nil {
		t.Fatalf("GetAlarm() error = %v", err)
	}
	want := base.Add(12 * time.Hour)
	if !got.Datetime.Equal(want) {
		t.Errorf("advanced datetime = %v, want %v", got.Datetime, want)
	}
	if !sched.Armed(alarm.ID) {
		t.Error("alarm should be armed after advancement")
	}

	// the skipped occurrences must not fire
	select {
	case a := <-dispatcher.fired:
		t.Errorf("unexpected firing of %s", a.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestArmInactiveDisarms(t *testing.T) {
	store := newTestStore(t)
	sched := New(store, newCaptureDispatcher())
	defer sched.Stop()

	alarm := store.AddAlarm(storage.AlarmInput{
		Title:    "standup",
		Datetime: time.Now().Add(time.Hour),
	})
	sched.Arm(alarm)
	if !sched.Armed(alarm.ID) {
		t.Fatal("alarm should be armed")
	}

	toggled, err := store.ToggleAlarm(alarm.ID)
	if err != nil {
		t.Fatalf("ToggleAlarm() error = %v", err)
	}
	sched.Arm(toggled)

	if sched.Armed(alarm.ID) {
		t.Error("inactive alarm should not stay armed")
	}
}

func TestRepeatingAlarmFiresAndAdvances(t *testing.T) {
	store := newTestStore(t)
	dispatcher := newCaptureDispatcher()
	sched := New(store, dispatcher)
	defer sched.Stop()

	when := time.Now().Add(50 * time.Millisecond)
	alarm := store.AddAlarm(storage.AlarmInput{
		Title:    "hourly check",
		Datetime: when,
		Repeat:   constants.RepeatDaily,
	})

	sched.Arm(alarm)
	waitForAlarm(t, dispatcher)

	waitUntil(t, func() bool {
		got, err := store.GetAlarm(alarm.ID)
		return err == nil && got.Datetime.After(time.Now()) && got.Active
	})
	if !sched.Armed(alarm.ID) {
		t.Error("repeating alarm should be re-armed after firing")
	}
}

func TestDeletedAlarmDoesNotFire(t *testing.T) {
	store := newTestStore(t)
	dispatcher := newCaptureDispatcher()
	sched := New(store, dispatcher)
	defer sched.Stop()

	alarm := store.AddAlarm(storage.AlarmInput{
		Title:    "doomed",
		Datetime: time.Now().Add(50 * time.Millisecond),
	})
	sched.Arm(alarm)
	store.DeleteAlarm(alarm.ID)

	select {
	case a := <-dispatcher.fired:
		t.Errorf("deleted alarm %s fired", a.ID)
	case <-time.After(300 * time.Millisecond):
	}
	waitUntil(t, func() bool { return !sched.Armed(alarm.ID) })
}

func TestReconcile(t *testing.T) {
	t.Run("arms active alarms", func(t *testing.T) {
		store := newTestStore(t)
		sched := New(store, newCaptureDispatcher())
		defer sched.Stop()

		alarm := store.AddAlarm(storage.AlarmInput{
			Title:    "standup",
			Datetime: time.Now().Add(time.Hour),
		})

		sched.Reconcile()
		if !sched.Armed(alarm.ID) {
			t.Error("active alarm should be armed after reconcile")
		}
	})

	t.Run("disarms deactivated alarms", func(t *testing.T) {
		store := newTestStore(t)
		sched := New(store, newCaptureDispatcher())
		defer sched.Stop()

		alarm := store.AddAlarm(storage.AlarmInput{
			Title:    "standup",
			Datetime: time.Now().Add(time.Hour),
		})
		sched.Arm(alarm)
		if _, err := store.ToggleAlarm(alarm.ID); err != nil {
			t.Fatalf("ToggleAlarm() error = %v", err)
		}

		sched.Reconcile()
		if sched.Armed(alarm.ID) {
			t.Error("deactivated alarm should be disarmed after reconcile")
		}
	})

	t.Run("prunes deleted alarms", func(t *testing.T) {
		store := newTestStore(t)
		sched := New(store, newCaptureDispatcher())
		defer sched.Stop()

		alarm := store.AddAlarm(storage.AlarmInput{
			Title:    "standup",
			Datetime: time.Now().Add(time.Hour),
		})
		sched.Arm(alarm)
		store.DeleteAlarm(alarm.ID)

		sched.Reconcile()
		if sched.Armed(alarm.ID) {
			t.Error("deleted alarm should be pruned after reconcile")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := newTestStore(t)
		sched := New(store, newCaptureDispatcher())
		defer sched.Stop()

		alarm := store.AddAlarm(storage.AlarmInput{
			Title:    "standup",
			Datetime: time.Now().Add(time.Hour),
		})

		sched.Reconcile()
		sched.Reconcile()
		if !sched.Armed(alarm.ID) {
			t.Error("alarm should stay armed across reconciles")
		}
	})
}

func TestSnooze(t *testing.T) {
	t.Run("pushes fire time forward", func(t *testing.T) {
		store := newTestStore(t)
		sched := New(store, newCaptureDispatcher())
		defer sched.Stop()

		base := time.Now()
		sched.now = func() time.Time { return base }

		alarm := store.AddAlarm(storage.AlarmInput{
			Title:    "standup",
			Datetime: base.Add(-time.Minute),
			Repeat:   constants.RepeatDaily,
		})

		snoozed, err := sched.Snooze(alarm.ID, time.Hour)
		if err != nil {
			t.Fatalf("Snooze() error = %v", err)
		}
		if !snoozed.Datetime.Equal(base.Add(time.Hour)) {
			t.Errorf("snoozed datetime = %v, want %v", snoozed.Datetime, base.Add(time.Hour))
		}
		if !snoozed.Active {
			t.Error("snoozed alarm should be active")
		}
		if !sched.Armed(alarm.ID) {
			t.Error("snoozed alarm should be armed")
		}
	})

	t.Run("non-positive duration uses the default", func(t *testing.T) {
		store := newTestStore(t)
		sched := New(store, newCaptureDispatcher())
		defer sched.Stop()

		base := time.Now()
		sched.now = func() time.Time { return base }

		alarm := store.AddAlarm(storage.AlarmInput{
			Title:    "standup",
			Datetime: base.Add(-time.Minute),
		})

		snoozed, err := sched.Snooze(alarm.ID, 0)
		if err != nil {
			t.Fatalf("Snooze() error = %v", err)
		}
		if !snoozed.Datetime.Equal(base.Add(constants.DefaultSnooze)) {
			t.Errorf("snoozed datetime = %v, want %v", snoozed.Datetime, base.Add(constants.DefaultSnooze))
		}
	})

	t.Run("unknown id returns an error", func(t *testing.T) {
		store := newTestStore(t)
		sched := New(store, newCaptureDispatcher())
		defer sched.Stop()

		if _, err := sched.Snooze("missing", time.Minute); err == nil {
			t.Error("Snooze() should fail for an unknown alarm")
		}
	})
}
