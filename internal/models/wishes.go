package models

import (
	"fmt"
	"time"

	"daydesk/internal/constants"
)

// CustomWish is a user-defined recurring greeting keyed by MM-DD.
type CustomWish struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Date      string    `json:"date"` // MM-DD recurring key
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"created_at"`
}

func (w *CustomWish) Validate() error {
	if w.Title == "" {
		return fmt.Errorf("wish title cannot be empty")
	}
	if w.Message == "" {
		return fmt.Errorf("wish message cannot be empty")
	}
	if _, err := time.Parse(constants.MonthDayFormat, w.Date); err != nil {
		return fmt.Errorf("invalid wish date (expected MM-DD): %w", err)
	}
	return nil
}

// WishesData is the persisted wish state. Single instance per store.
type WishesData struct {
	LastCheckedDate string       `json:"last_checked_date,omitempty"`
	CustomWishes    []CustomWish `json:"custom_wishes"`
}

// DefaultWishesData returns the documented empty value.
func DefaultWishesData() WishesData {
	return WishesData{CustomWishes: []CustomWish{}}
}

// WishKind classifies where a wish came from.
type WishKind string

const (
	WishHoliday  WishKind = "holiday"
	WishSeasonal WishKind = "seasonal"
	WishCustom   WishKind = "custom"
	WishGeneral  WishKind = "general"
)

// Wish is one greeting to show for a given day.
type Wish struct {
	Kind    WishKind `json:"kind"`
	Name    string   `json:"name"`
	Message string   `json:"message"`
}
