package models

import "time"

// Quote is one entry from the quote table, or a user favorite.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Type   string `json:"type,omitempty"` // "daily" or "random"
	Date   string `json:"date,omitempty"` // calendar day the quote was selected for
}

// FavoriteQuote is a quote the user saved, with the save instant.
type FavoriteQuote struct {
	Quote
	AddedAt time.Time `json:"added_at"`
}

// QuotesData is the persisted quote state. Single instance per store.
type QuotesData struct {
	DailyQuote     *Quote          `json:"daily_quote"`
	LastQuoteDate  string          `json:"last_quote_date,omitempty"`
	FavoriteQuotes []FavoriteQuote `json:"favorite_quotes"`
}

// DefaultQuotesData returns the documented empty value.
func DefaultQuotesData() QuotesData {
	return QuotesData{FavoriteQuotes: []FavoriteQuote{}}
}
