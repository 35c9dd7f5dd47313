package models

import "time"

// HighScore is one finished game result.
type HighScore struct {
	Score          int       `json:"score"`
	WordsCompleted int       `json:"words_completed"`
	Date           time.Time `json:"date"`
	Timestamp      int64     `json:"timestamp"`
}

// GameData aggregates word-game state. There is a single instance per store.
type GameData struct {
	HighScores          []HighScore `json:"high_scores"`
	TodayScore          int         `json:"today_score"`
	TotalGamesPlayed    int         `json:"total_games_played"`
	DailyWordsCompleted []string    `json:"daily_words_completed"`
	LastPlayedDate      string      `json:"last_played_date,omitempty"`
}

// DefaultGameData returns the documented empty value.
func DefaultGameData() GameData {
	return GameData{
		HighScores:          []HighScore{},
		DailyWordsCompleted: []string{},
	}
}

// WordCompletedToday reports whether word is in the daily completed set.
func (g *GameData) WordCompletedToday(word string) bool {
	for _, w := range g.DailyWordsCompleted {
		if w == word {
			return true
		}
	}
	return false
}
