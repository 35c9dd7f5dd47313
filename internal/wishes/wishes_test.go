package wishes

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"daydesk/internal/models"
	"daydesk/internal/storage"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	store := storage.NewJSONStore(afero.NewMemMapFs(), "/data")
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	s := NewService(store)
	s.now = func() time.Time { return now }
	return s
}

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.Local)
}

func TestWishesForHolidays(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantName string
	}{
		{
			name:     "christmas",
			date:     localDate(2026, time.December, 25),
			wantName: "Christmas",
		},
		{
			name:     "new year's day",
			date:     localDate(2026, time.January, 1),
			wantName: "New Year's Day",
		},
		{
			name:     "mother's day second sunday of may",
			date:     localDate(2026, time.May, 10),
			wantName: "Mother's Day",
		},
		{
			name:     "father's day third sunday of june",
			date:     localDate(2026, time.June, 21),
			wantName: "Father's Day",
		},
		{
			name:     "thanksgiving fourth thursday of november",
			date:     localDate(2026, time.November, 26),
			wantName: "Thanksgiving",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.date)
			got := svc.WishesFor(tt.date)
			if !containsWish(got, tt.wantName) {
				t.Errorf("WishesFor(%v) = %v, want a wish named %q", tt.date, got, tt.wantName)
			}
		})
	}

	t.Run("ordinary day has no holiday wishes", func(t *testing.T) {
		date := localDate(2026, time.March, 10)
		svc := newTestService(t, date)
		if got := svc.WishesFor(date); len(got) != 0 {
			t.Errorf("WishesFor(%v) = %v, want none", date, got)
		}
	})
}

func TestSeasonalWishes(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantName string
	}{
		{
			name:     "first day of spring",
			date:     localDate(2026, time.March, 20),
			wantName: "First Day of Spring",
		},
		{
			name:     "first day of summer",
			date:     localDate(2026, time.June, 20),
			wantName: "First Day of Summer",
		},
		{
			name:     "first day of autumn",
			date:     localDate(2026, time.September, 22),
			wantName: "First Day of Autumn",
		},
		{
			name:     "first day of winter",
			date:     localDate(2026, time.December, 21),
			wantName: "First Day of Winter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.date)
			got := svc.WishesFor(tt.date)
			if !containsWish(got, tt.wantName) {
				t.Errorf("WishesFor(%v) = %v, want a wish named %q", tt.date, got, tt.wantName)
			}
		})
	}
}

func TestCustomWishes(t *testing.T) {
	date := localDate(2026, time.June, 15)
	svc := newTestService(t, date)

	if _, err := svc.AddCustomWish("Anniversary", "Happy anniversary!", "06-15"); err != nil {
		t.Fatalf("AddCustomWish() error = %v", err)
	}

	got := svc.WishesFor(date)
	if !containsWish(got, "Anniversary") {
		t.Errorf("WishesFor(%v) = %v, want the custom wish", date, got)
	}
	for _, w := range got {
		if w.Name == "Anniversary" && w.Kind != models.WishCustom {
			t.Errorf("custom wish kind = %v, want %v", w.Kind, models.WishCustom)
		}
	}

	if got := svc.WishesFor(date.AddDate(0, 0, 1)); containsWish(got, "Anniversary") {
		t.Error("custom wish matched the wrong date")
	}

	t.Run("invalid date is rejected", func(t *testing.T) {
		if _, err := svc.AddCustomWish("Broken", "msg", "15-06"); err == nil {
			t.Error("AddCustomWish() should reject a bad MM-DD date")
		}
	})
}

func TestGeneralWish(t *testing.T) {
	tests := []struct {
		name        string
		date        time.Time
		wantMessage string
	}{
		{
			name:        "monday",
			date:        localDate(2026, time.March, 2),
			wantMessage: "New week, new possibilities! Let's make it count!",
		},
		{
			name:        "friday",
			date:        localDate(2026, time.March, 6),
			wantMessage: "Friday vibes! You've worked hard this week!",
		},
		{
			name:        "saturday",
			date:        localDate(2026, time.March, 7),
			wantMessage: "Weekend joy! Time to relax and recharge!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.date)
			got := svc.GeneralWish(tt.date)
			if got.Message != tt.wantMessage {
				t.Errorf("GeneralWish(%v) = %q, want %q", tt.date, got.Message, tt.wantMessage)
			}
			if got.Kind != models.WishGeneral {
				t.Errorf("wish kind = %v, want %v", got.Kind, models.WishGeneral)
			}
		})
	}

	t.Run("midweek uses an inspirational wish", func(t *testing.T) {
		date := localDate(2026, time.March, 4) // a Wednesday
		svc := newTestService(t, date)
		svc.intn = func(n int) int { return 2 }

		got := svc.GeneralWish(date)
		if got.Message != inspirationalWishes[2] {
			t.Errorf("GeneralWish() = %q, want inspirational entry 2", got.Message)
		}
	})
}

func TestTodaysWishes(t *testing.T) {
	t.Run("falls back to the general wish", func(t *testing.T) {
		date := localDate(2026, time.March, 10)
		svc := newTestService(t, date)

		got := svc.TodaysWishes()
		if len(got) != 1 {
			t.Fatalf("TodaysWishes() returned %d wishes, want 1", len(got))
		}
		if got[0].Kind != models.WishGeneral {
			t.Errorf("fallback wish kind = %v, want %v", got[0].Kind, models.WishGeneral)
		}
	})

	t.Run("records the check date", func(t *testing.T) {
		date := localDate(2026, time.March, 10)
		svc := newTestService(t, date)

		svc.TodaysWishes()

		data := svc.store.GetWishesData()
		if data.LastCheckedDate == "" {
			t.Error("last checked date was not recorded")
		}
	})
}

func TestUpcoming(t *testing.T) {
	date := localDate(2026, time.December, 20)
	svc := newTestService(t, date)

	got := svc.Upcoming(7)

	// Dec 21/22 winter, Dec 25 Christmas
	if len(got) < 3 {
		t.Fatalf("Upcoming(7) returned %d dates, want at least 3", len(got))
	}
	found := false
	for _, u := range got {
		if containsWish(u.Wishes, "Christmas") {
			found = true
		}
	}
	if !found {
		t.Error("Upcoming(7) from Dec 20 should include Christmas")
	}
}

func TestMilestones(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantCount int
	}{
		{
			name:      "new year",
			date:      localDate(2026, time.January, 1),
			wantCount: 1,
		},
		{
			name:      "mid-year in a common year",
			date:      localDate(2026, time.July, 2),
			wantCount: 1,
		},
		{
			name:      "mid-year in a leap year",
			date:      localDate(2028, time.July, 2),
			wantCount: 1,
		},
		{
			name:      "ordinary day",
			date:      localDate(2026, time.March, 10),
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.date)
			if got := svc.Milestones(tt.date); len(got) != tt.wantCount {
				t.Errorf("Milestones(%v) returned %d wishes, want %d", tt.date, len(got), tt.wantCount)
			}
		})
	}
}

func TestStats(t *testing.T) {
	date := localDate(2026, time.December, 20)
	svc := newTestService(t, date)
	if _, err := svc.AddCustomWish("Anniversary", "Cheers!", "12-22"); err != nil {
		t.Fatalf("AddCustomWish() error = %v", err)
	}

	stats := svc.Stats()
	if stats.CustomWishes != 1 {
		t.Errorf("CustomWishes = %d, want 1", stats.CustomWishes)
	}
	if stats.UpcomingEvents == 0 {
		t.Error("UpcomingEvents should count the December holidays")
	}
	if stats.TodaysWishes != 0 {
		t.Errorf("TodaysWishes = %d, want 0 for an ordinary day", stats.TodaysWishes)
	}
}

func TestFormatWish(t *testing.T) {
	w := models.Wish{Kind: models.WishHoliday, Name: "Christmas", Message: "Merry!"}
	if got := FormatWish(w); got != "Christmas: Merry!" {
		t.Errorf("FormatWish() = %q", got)
	}

	unnamed := models.Wish{Message: "Just a message"}
	if got := FormatWish(unnamed); got != "Just a message" {
		t.Errorf("FormatWish() = %q", got)
	}
}

func containsWish(wishes []models.Wish, name string) bool {
	for _, w := range wishes {
		if w.Name == name {
			return true
		}
	}
	return false
}
