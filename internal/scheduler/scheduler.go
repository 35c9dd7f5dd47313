// Package scheduler owns the in-memory timer table that turns persisted
// alarms into firings. It is the only component that transitions alarms
// between scheduled, fired, and advanced states.
package scheduler

import (
	"context"
	"sync"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/logger"
	"daydesk/internal/models"
	"daydesk/internal/storage"
)

// AlarmDispatcher receives alarms at their firing instant.
type AlarmDispatcher interface {
	DispatchAlarm(models.Alarm)
}

// Scheduler maps alarm ids to pending timers. The store is the source of
// truth: fire re-reads the alarm before dispatching, so deletes and edits
// made after arming win over the stale timer.
type Scheduler struct {
	mu         sync.Mutex
	store      storage.Provider
	dispatcher AlarmDispatcher
	timers     map[string]*time.Timer
	now        func() time.Time
	interval   time.Duration
}

func New(store storage.Provider, dispatcher AlarmDispatcher) *Scheduler {
	return &Scheduler{
		store:      store,
		dispatcher: dispatcher,
		timers:     make(map[string]*time.Timer),
		now:        time.Now,
		interval:   constants.ReconcileInterval,
	}
}

// Arm schedules a timer for the alarm, replacing any pending one. Inactive
// alarms are disarmed instead. An overdue repeating alarm is advanced past
// now and the advancement persisted before arming; skipped occurrences do
// not fire. An overdue one-time alarm fires as soon as the timer runs.
func (s *Scheduler) Arm(alarm models.Alarm) {
	if !alarm.Active {
		s.Disarm(alarm.ID)
		return
	}

	now := s.now()
	when := alarm.Datetime
	if !when.After(now) {
		if alarm.IsRepeating() {
			next := alarm.OccurrenceAfter(now)
			if _, err := s.store.UpdateAlarm(alarm.ID, storage.AlarmUpdate{Datetime: &next}); err != nil {
				logger.Warn("Failed to persist alarm advancement", "alarm", alarm.ID, "error", err)
			}
			when = next
		} else {
			when = now
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[alarm.ID]; ok {
		t.Stop()
	}
	id := alarm.ID
	s.timers[id] = time.AfterFunc(when.Sub(now), func() { s.fire(id) })
}

// Disarm cancels the pending timer for an alarm id, if any.
func (s *Scheduler) Disarm(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Snooze pushes the alarm's fire time to now plus d and re-arms it. A
// non-positive d uses the default snooze interval. For a repeating alarm
// this shifts the series anchor, so the snoozed time becomes the new base
// for future occurrences.
func (s *Scheduler) Snooze(id string, d time.Duration) (models.Alarm, error) {
	if d <= 0 {
		d = constants.DefaultSnooze
	}
	next := s.now().Add(d)
	active := true
	updated, err := s.store.UpdateAlarm(id, storage.AlarmUpdate{Datetime: &next, Active: &active})
	if err != nil {
		return models.Alarm{}, err
	}
	s.Arm(updated)
	return updated, nil
}

func (s *Scheduler) fire(id string) {
	alarm, err := s.store.GetAlarm(id)
	if err != nil || !alarm.Active {
		// deleted or disabled after arming
		s.remove(id)
		return
	}

	now := s.now()
	if alarm.Datetime.After(now) {
		// rescheduled later after arming
		s.Arm(alarm)
		return
	}

	logger.Info("Alarm firing", "alarm", alarm.ID, "title", alarm.Title)
	s.dispatcher.DispatchAlarm(alarm)

	if alarm.IsRepeating() {
		next := alarm.OccurrenceAfter(now)
		updated, err := s.store.UpdateAlarm(id, storage.AlarmUpdate{Datetime: &next})
		if err != nil {
			logger.Warn("Failed to persist alarm advancement", "alarm", id, "error", err)
			s.remove(id)
			return
		}
		s.Arm(updated)
		return
	}

	inactive := false
	if _, err := s.store.UpdateAlarm(id, storage.AlarmUpdate{Active: &inactive}); err != nil {
		logger.Warn("Failed to deactivate fired alarm", "alarm", id, "error", err)
	}
	s.remove(id)
}

func (s *Scheduler) remove(id string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()
}

// Reconcile walks the store and converges the timer table: active alarms
// without a timer get armed, inactive or deleted ones get disarmed. Safe
// to call repeatedly; an already armed alarm is left alone. This is the
// recovery path after process suspension, where overdue one-time alarms
// fire immediately on arming.
func (s *Scheduler) Reconcile() {
	alarms := s.store.GetAlarms()
	known := make(map[string]bool, len(alarms))
	for _, a := range alarms {
		known[a.ID] = true
		s.mu.Lock()
		_, armed := s.timers[a.ID]
		s.mu.Unlock()
		switch {
		case a.Active && !armed:
			s.Arm(a)
		case !a.Active && armed:
			s.Disarm(a.ID)
		}
	}

	s.mu.Lock()
	for id, t := range s.timers {
		if !known[id] {
			t.Stop()
			delete(s.timers, id)
		}
	}
	s.mu.Unlock()
}

// Run reconciles immediately, then on every tick until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.Reconcile()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return
		case <-ticker.C:
			s.Reconcile()
		}
	}
}

// Stop cancels all pending timers.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Armed reports whether the alarm id currently has a pending timer.
func (s *Scheduler) Armed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}
