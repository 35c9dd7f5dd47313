package quotes

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"daydesk/internal/storage"
	"daydesk/internal/utils"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(afero.NewMemMapFs(), "/data")
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	s := NewService(newTestStore(t))
	s.now = func() time.Time { return now }
	return s
}

func TestQuoteForDateDeterministic(t *testing.T) {
	day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)

	first := quoteForDate(day)
	second := quoteForDate(day.Add(5 * time.Hour))

	if first.Text != second.Text {
		t.Errorf("same date produced different quotes: %q vs %q", first.Text, second.Text)
	}
	if first.Type != "daily" {
		t.Errorf("quote type = %q, want daily", first.Type)
	}
	if first.Date != utils.DayString(day) {
		t.Errorf("quote date = %q, want %q", first.Date, utils.DayString(day))
	}
}

func TestQuoteForDateVariesAcrossDays(t *testing.T) {
	day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		seen[quoteForDate(day.AddDate(0, 0, i)).Text] = true
	}
	if len(seen) < 2 {
		t.Error("consecutive days should not all share one quote")
	}
}

func TestDailyQuoteCaching(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)
	svc := newTestService(t, now)

	first := svc.DailyQuote()
	second := svc.DailyQuote()
	if first.Text != second.Text {
		t.Errorf("cached daily quote changed: %q vs %q", first.Text, second.Text)
	}

	data := svc.store.GetQuotesData()
	if data.DailyQuote == nil {
		t.Fatal("daily quote was not cached in the store")
	}
	if data.DailyQuote.Text != first.Text {
		t.Errorf("cached quote = %q, want %q", data.DailyQuote.Text, first.Text)
	}
}

func TestDailyQuoteRefreshesOnNewDay(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)
	svc := newTestService(t, now)

	first := svc.DailyQuote()

	svc.now = func() time.Time { return now.AddDate(0, 0, 1) }
	second := svc.DailyQuote()

	if second.Date == first.Date {
		t.Errorf("quote date did not advance: %q", second.Date)
	}
	data := svc.store.GetQuotesData()
	if data.LastQuoteDate != utils.DayString(now.AddDate(0, 0, 1)) {
		t.Errorf("last quote date = %q, want next day", data.LastQuoteDate)
	}
}

func TestRandomQuote(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)
	svc := newTestService(t, now)
	svc.intn = func(n int) int { return 3 }

	q := svc.RandomQuote()
	if q.Text != catalog[3].Text {
		t.Errorf("random quote = %q, want catalog entry 3", q.Text)
	}
	if q.Type != "random" {
		t.Errorf("quote type = %q, want random", q.Type)
	}
}

func TestByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		keywords []string
	}{
		{name: "success quotes", category: "success", keywords: []string{"success", "achieve", "goal"}},
		{name: "motivation quotes", category: "motivation", keywords: []string{"dream", "believe", "can"}},
		{name: "wisdom quotes", category: "wisdom", keywords: []string{"learn", "experience", "wisdom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByCategory(tt.category)
			if len(got) == 0 {
				t.Fatalf("ByCategory(%q) returned no quotes", tt.category)
			}
			for _, q := range got {
				text := strings.ToLower(q.Text)
				matched := false
				for _, kw := range tt.keywords {
					if strings.Contains(text, kw) {
						matched = true
						break
					}
				}
				if !matched {
					t.Errorf("quote %q matches none of %v", q.Text, tt.keywords)
				}
			}
		})
	}

	t.Run("unknown category falls back to the catalog", func(t *testing.T) {
		got := ByCategory("nonsense")
		if len(got) != len(catalog) {
			t.Errorf("fallback returned %d quotes, want %d", len(got), len(catalog))
		}
	})
}

func TestMotivationalMessage(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)
	svc := newTestService(t, now)
	svc.intn = func(n int) int { return 0 }

	got := svc.MotivationalMessage("productivity")
	if got != motivationalCategories["productivity"][0] {
		t.Errorf("MotivationalMessage() = %q, want first productivity entry", got)
	}

	if svc.MotivationalMessage("nonsense") == "" {
		t.Error("unknown category should still produce a message")
	}
}

func TestFavorites(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)
	svc := newTestService(t, now)

	q := catalog[0]
	svc.Favorite(q)

	favorites := svc.Favorites()
	if len(favorites) != 1 {
		t.Fatalf("Favorites() returned %d entries, want 1", len(favorites))
	}
	if favorites[0].Text != q.Text {
		t.Errorf("favorite text = %q, want %q", favorites[0].Text, q.Text)
	}
}
