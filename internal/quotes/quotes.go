// Package quotes selects the quote of the day and manages favorites.
package quotes

import (
	"math/rand"
	"strings"
	"time"

	"daydesk/internal/models"
	"daydesk/internal/storage"
	"daydesk/internal/utils"
)

var catalog = []models.Quote{
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle"},
	{Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Don't let yesterday take up too much of today.", Author: "Will Rogers"},
	{Text: "You learn more from failure than from success. Don't let it stop you. Failure builds character.", Author: "Unknown"},
	{Text: "If you are working on something that you really care about, you don't have to be pushed. The vision pulls you.", Author: "Steve Jobs"},
	{Text: "Experience is a hard teacher because she gives the test first, the lesson afterwards.", Author: "Vernon Law"},
	{Text: "To handle yourself, use your head; to handle others, use your heart.", Author: "Eleanor Roosevelt"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Text: "Life is what happens to you while you're busy making other plans.", Author: "John Lennon"},
	{Text: "The future depends on what you do today.", Author: "Mahatma Gandhi"},
	{Text: "It is not the mountain we conquer, but ourselves.", Author: "Sir Edmund Hillary"},
	{Text: "Your limitation—it's only your imagination.", Author: "Unknown"},
	{Text: "Push yourself, because no one else is going to do it for you.", Author: "Unknown"},
	{Text: "Great things never come from comfort zones.", Author: "Unknown"},
	{Text: "Dream it. Wish it. Do it.", Author: "Unknown"},
	{Text: "Success doesn't just find you. You have to go out and get it.", Author: "Unknown"},
	{Text: "The harder you work for something, the greater you'll feel when you achieve it.", Author: "Unknown"},
	{Text: "Dream bigger. Do bigger.", Author: "Unknown"},
	{Text: "Don't stop when you're tired. Stop when you're done.", Author: "Unknown"},
	{Text: "Wake up with determination. Go to bed with satisfaction.", Author: "Unknown"},
	{Text: "Do something today that your future self will thank you for.", Author: "Sean Patrick Flanery"},
	{Text: "Little things make big days.", Author: "Unknown"},
	{Text: "It's going to be hard, but hard does not mean impossible.", Author: "Unknown"},
	{Text: "Don't wait for opportunity. Create it.", Author: "Unknown"},
	{Text: "Sometimes we're tested not to show our weaknesses, but to discover our strengths.", Author: "Unknown"},
	{Text: "The key to success is to focus on goals, not obstacles.", Author: "Unknown"},
	{Text: "You are never too old to set another goal or to dream a new dream.", Author: "C.S. Lewis"},
	{Text: "A year from now you may wish you had started today.", Author: "Karen Lamb"},
	{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
	{Text: "Your only limit is your mind.", Author: "Unknown"},
	{Text: "Good things happen to those who hustle.", Author: "Anais Nin"},
	{Text: "What seems impossible today will one day become your warm-up.", Author: "Unknown"},
	{Text: "Make each day your masterpiece.", Author: "John Wooden"},
	{Text: "The difference between ordinary and extraordinary is that little extra.", Author: "Jimmy Johnson"},
	{Text: "You don't have to be great to get started, but you have to get started to be great.", Author: "Les Brown"},
	{Text: "A champion is defined not by their wins but by how they can recover when they fall.", Author: "Serena Williams"},
}

var motivationalCategories = map[string][]string{
	"morning": {
		"Today is a new beginning. Make it count!",
		"Rise and shine! Your dreams are waiting for you!",
		"Good morning! Today is full of possibilities!",
		"Wake up and be awesome! Today is your day!",
		"Morning sunshine! Let's make today amazing!",
	},
	"productivity": {
		"Focus on progress, not perfection!",
		"Small steps lead to big changes!",
		"You're closer than you think! Keep going!",
		"Every task completed is a victory!",
		"Stay focused and make it happen!",
	},
	"encouragement": {
		"You've got this! Believe in yourself!",
		"Every challenge is an opportunity to grow!",
		"You're stronger than you know!",
		"Keep pushing forward. You're amazing!",
		"Trust the process. You're on the right path!",
	},
}

// Service picks quotes from the built-in catalog and caches the daily
// selection in the store.
type Service struct {
	store storage.Provider
	now   func() time.Time
	intn  func(int) int
}

func NewService(store storage.Provider) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		intn:  rand.Intn,
	}
}

// Catalog returns the full quote table.
func Catalog() []models.Quote {
	out := make([]models.Quote, len(catalog))
	copy(out, catalog)
	return out
}

// quoteForDate is the deterministic daily selection. The same date always
// yields the same quote, with no persisted state required.
func quoteForDate(day time.Time) models.Quote {
	seed := day.Year()*1000 + int(day.Month()-1)*100 + day.Day()
	q := catalog[seed%len(catalog)]
	q.Type = "daily"
	q.Date = utils.DayString(day)
	return q
}

// DailyQuote returns the cached quote of the day, selecting and caching a
// fresh one when the stored date is not today.
func (s *Service) DailyQuote() models.Quote {
	today := utils.DayString(s.now())
	data := s.store.GetQuotesData()
	if data.DailyQuote != nil && data.LastQuoteDate == today {
		return *data.DailyQuote
	}

	q := quoteForDate(s.now())
	s.store.SetDailyQuote(q)
	return q
}

// RandomQuote returns a uniformly random quote from the catalog.
func (s *Service) RandomQuote() models.Quote {
	q := catalog[s.intn(len(catalog))]
	q.Type = "random"
	q.Date = utils.DayString(s.now())
	return q
}

// ContextualQuote narrows the catalog by time of day before picking:
// beginnings in the morning, action in the afternoon, accomplishment in
// the evening.
func (s *Service) ContextualQuote() models.Quote {
	var keywords []string
	switch hour := s.now().Hour(); {
	case hour >= 6 && hour < 12:
		keywords = []string{"begin", "start", "future", "dream"}
	case hour >= 12 && hour < 17:
		keywords = []string{"work", "do", "action", "push"}
	case hour >= 17 && hour < 22:
		keywords = []string{"success", "great", "achieve", "experience"}
	}

	pool := filterByKeywords(keywords)
	if len(pool) == 0 {
		pool = catalog
	}
	q := pool[s.intn(len(pool))]
	q.Type = "random"
	q.Date = utils.DayString(s.now())
	return q
}

// ByCategory returns catalog quotes matching a loose keyword category:
// success, motivation, or wisdom. Any other category returns everything.
func ByCategory(category string) []models.Quote {
	switch category {
	case "success":
		return filterByKeywords([]string{"success", "achieve", "goal"})
	case "motivation":
		return filterByKeywords([]string{"dream", "believe", "can"})
	case "wisdom":
		return filterByKeywords([]string{"learn", "experience", "wisdom"})
	default:
		return Catalog()
	}
}

func filterByKeywords(keywords []string) []models.Quote {
	if len(keywords) == 0 {
		return nil
	}
	var out []models.Quote
	for _, q := range catalog {
		text := strings.ToLower(q.Text)
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// MotivationalMessage picks a short message from the named category,
// falling back to morning messages for unknown categories.
func (s *Service) MotivationalMessage(category string) string {
	messages, ok := motivationalCategories[category]
	if !ok {
		messages = motivationalCategories["morning"]
	}
	return messages[s.intn(len(messages))]
}

// Favorite saves a quote to the favorites list.
func (s *Service) Favorite(q models.Quote) {
	s.store.AddFavoriteQuote(q)
}

// Favorites returns saved favorites, newest first.
func (s *Service) Favorites() []models.FavoriteQuote {
	return s.store.GetQuotesData().FavoriteQuotes
}
