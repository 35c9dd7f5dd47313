// Package wishes resolves calendar greetings: fixed and floating holidays,
// first days of seasons, user-defined recurring wishes, and a general
// fallback for ordinary days.
package wishes

import (
	"fmt"
	"math/rand"
	"time"

	"daydesk/internal/models"
	"daydesk/internal/storage"
	"daydesk/internal/utils"
)

type holiday struct {
	Name    string
	Message string
}

// Fixed-date holidays keyed by MM-DD.
var fixedHolidays = map[string]holiday{
	"01-01": {"New Year's Day", "Happy New Year! May this year bring you joy, success, and amazing adventures!"},
	"02-14": {"Valentine's Day", "Happy Valentine's Day! Spread love and kindness today!"},
	"03-17": {"St. Patrick's Day", "Happy St. Patrick's Day! May luck be with you!"},
	"04-01": {"April Fool's Day", "Happy April Fool's Day! Keep smiling and spread joy!"},
	"04-22": {"Earth Day", "Happy Earth Day! Let's take care of our beautiful planet!"},
	"05-01": {"May Day", "Happy May Day! Celebrate the beauty of spring!"},
	"06-05": {"World Environment Day", "Happy World Environment Day! Every small action counts!"},
	"07-04": {"Independence Day", "Happy Independence Day! Celebrate freedom and unity!"},
	"10-31": {"Halloween", "Happy Halloween! Have a spook-tacular day!"},
	"11-11": {"Veterans Day", "Happy Veterans Day! Thank you to all who served!"},
	"12-25": {"Christmas", "Merry Christmas! May your day be filled with love, joy, and wonderful memories!"},
	"12-31": {"New Year's Eve", "Happy New Year's Eve! Get ready for a fresh start tomorrow!"},
}

var seasonalMessages = map[string]string{
	"spring": "Welcome Spring! Time for new beginnings and fresh starts!",
	"summer": "Hello Summer! Enjoy the sunshine and warm adventures ahead!",
	"autumn": "Happy Autumn! Embrace the beautiful changes around you!",
	"winter": "Welcome Winter! Stay cozy and spread warmth to others!",
}

var inspirationalWishes = []string{
	"New week, new opportunities! Make it amazing!",
	"Monday motivation: You have the power to make today great!",
	"Believe in yourself - you're capable of incredible things!",
	"Focus on progress, not perfection. You've got this!",
	"Every day is a chance to start fresh and chase your dreams!",
	"Your potential is limitless. What will you create today?",
	"Ready for takeoff? Today is your launchpad to success!",
	"Bloom where you are planted. Today is your day to shine!",
}

// Service resolves which wishes apply to a given date. Custom wishes come
// from the store; everything else is built in.
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

// WishesFor returns every wish matching the date: fixed holidays, floating
// holidays, first-of-season greetings, and recurring custom wishes. An
// empty slice means an ordinary day; callers fall back to GeneralWish.
func (s *Service) WishesFor(date time.Time) []models.Wish {
	var out []models.Wish

	if h, ok := fixedHolidays[utils.MonthDay(date)]; ok {
		out = append(out, models.Wish{Kind: models.WishHoliday, Name: h.Name, Message: h.Message})
	}
	if w, ok := floatingHoliday(date); ok {
		out = append(out, w)
	}
	if w, ok := seasonalWish(date); ok {
		out = append(out, w)
	}
	out = append(out, s.customWishes(date)...)

	return out
}

// floatingHoliday matches the weekday-anchored holidays: Mother's Day is
// the second Sunday of May, Father's Day the third Sunday of June,
// Thanksgiving the fourth Thursday of November.
func floatingHoliday(date time.Time) (models.Wish, bool) {
	year := date.Year()
	switch date.Month() {
	case time.May:
		if utils.SameDay(date, utils.NthWeekdayOfMonth(year, time.May, time.Sunday, 2)) {
			return models.Wish{
				Kind:    models.WishHoliday,
				Name:    "Mother's Day",
				Message: "Happy Mother's Day! Celebrate the amazing mothers in your life!",
			}, true
		}
	case time.June:
		if utils.SameDay(date, utils.NthWeekdayOfMonth(year, time.June, time.Sunday, 3)) {
			return models.Wish{
				Kind:    models.WishHoliday,
				Name:    "Father's Day",
				Message: "Happy Father's Day! Honor the wonderful fathers in your life!",
			}, true
		}
	case time.November:
		if utils.SameDay(date, utils.NthWeekdayOfMonth(year, time.November, time.Thursday, 4)) {
			return models.Wish{
				Kind:    models.WishHoliday,
				Name:    "Thanksgiving",
				Message: "Happy Thanksgiving! Take time to appreciate all the blessings in your life!",
			}, true
		}
	}
	return models.Wish{}, false
}

func seasonalWish(date time.Time) (models.Wish, bool) {
	day := date.Day()
	var season, name string
	switch date.Month() {
	case time.March:
		if day == 20 || day == 21 {
			season, name = "spring", "First Day of Spring"
		}
	case time.June:
		if day == 20 || day == 21 {
			season, name = "summer", "First Day of Summer"
		}
	case time.September:
		if day == 22 || day == 23 {
			season, name = "autumn", "First Day of Autumn"
		}
	case time.December:
		if day == 21 || day == 22 {
			season, name = "winter", "First Day of Winter"
		}
	}
	if season == "" {
		return models.Wish{}, false
	}
	return models.Wish{Kind: models.WishSeasonal, Name: name, Message: seasonalMessages[season]}, true
}

func (s *Service) customWishes(date time.Time) []models.Wish {
	data := s.store.GetWishesData()
	monthDay := utils.MonthDay(date)
	var out []models.Wish
	for _, w := range data.CustomWishes {
		if w.Date == monthDay && w.Recurring {
			out = append(out, models.Wish{Kind: models.WishCustom, Name: w.Title, Message: w.Message})
		}
	}
	return out
}

// GeneralWish is the ordinary-day fallback, keyed to the day of week.
func (s *Service) GeneralWish(date time.Time) models.Wish {
	var msg string
	switch date.Weekday() {
	case time.Monday:
		msg = "New week, new possibilities! Let's make it count!"
	case time.Friday:
		msg = "Friday vibes! You've worked hard this week!"
	case time.Saturday, time.Sunday:
		msg = "Weekend joy! Time to relax and recharge!"
	default:
		msg = inspirationalWishes[s.intn(len(inspirationalWishes))]
	}
	return models.Wish{Kind: models.WishGeneral, Name: date.Weekday().String(), Message: msg}
}

// TodaysWishes resolves wishes for the current day, substituting the
// general wish when nothing matches, and records the check.
func (s *Service) TodaysWishes() []models.Wish {
	now := s.now()
	out := s.WishesFor(now)
	if len(out) == 0 {
		out = []models.Wish{s.GeneralWish(now)}
	}
	s.store.MarkWishesChecked()
	return out
}

// UpcomingWish is a future date with its wishes.
type UpcomingWish struct {
	Date   time.Time
	Wishes []models.Wish
}

// Upcoming scans the next n days for dates that carry wishes.
func (s *Service) Upcoming(days int) []UpcomingWish {
	var out []UpcomingWish
	today := s.now()
	for i := 1; i <= days; i++ {
		date := today.AddDate(0, 0, i)
		if wishes := s.WishesFor(date); len(wishes) > 0 {
			out = append(out, UpcomingWish{Date: date, Wishes: wishes})
		}
	}
	return out
}

// Milestones reports year-progress markers: New Year's first day and the
// mid-year check-in.
func (s *Service) Milestones(date time.Time) []models.Wish {
	var out []models.Wish
	switch utils.DayOfYear(date) {
	case 1:
		out = append(out, models.Wish{
			Kind:    models.WishGeneral,
			Name:    "New Year",
			Message: "Welcome to a brand new year! Time to set new goals and create amazing memories!",
		})
	case 183, 184:
		out = append(out, models.Wish{
			Kind:    models.WishGeneral,
			Name:    "Mid-Year Check-in",
			Message: "Half the year is done! How are you doing with your goals? Time to reflect and refocus!",
		})
	}
	return out
}

// AddCustomWish validates and stores a recurring custom wish.
func (s *Service) AddCustomWish(title, message, date string) (models.CustomWish, error) {
	wish := models.CustomWish{
		Title:     title,
		Message:   message,
		Date:      date,
		Recurring: true,
	}
	return s.store.AddCustomWish(wish)
}

// Stats summarizes the custom wish collection.
type Stats struct {
	CustomWishes   int
	UpcomingEvents int
	TodaysWishes   int
	LastChecked    string
}

func (s *Service) Stats() Stats {
	data := s.store.GetWishesData()
	return Stats{
		CustomWishes:   len(data.CustomWishes),
		UpcomingEvents: len(s.Upcoming(30)),
		TodaysWishes:   len(s.WishesFor(s.now())),
		LastChecked:    data.LastCheckedDate,
	}
}

// FormatWish renders a wish as a single display line.
func FormatWish(w models.Wish) string {
	if w.Name == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Name, w.Message)
}
