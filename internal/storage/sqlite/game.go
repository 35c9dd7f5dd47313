package sqlite

import (
	"encoding/json"
	"sort"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/utils"
)

func (s *Store) GetGameData() models.GameData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadGameData()
}

func (s *Store) loadGameData() models.GameData {
	data := models.DefaultGameData()

	rows, err := s.db.Query(`
		SELECT score, words_completed, date, timestamp
		FROM high_scores
		ORDER BY score DESC, timestamp ASC
		LIMIT ?
	`, constants.MaxHighScores)
	if err != nil {
		s.readFault(constants.DocGameData, err)
		return models.DefaultGameData()
	}
	defer rows.Close()

	for rows.Next() {
		var hs models.HighScore
		var dateStr string
		if err := rows.Scan(&hs.Score, &hs.WordsCompleted, &dateStr, &hs.Timestamp); err != nil {
			s.readFault(constants.DocGameData, err)
			return models.DefaultGameData()
		}
		if hs.Date, err = time.Parse(time.RFC3339Nano, dateStr); err != nil {
			s.readFault(constants.DocGameData, err)
			return models.DefaultGameData()
		}
		data.HighScores = append(data.HighScores, hs)
	}

	var dailyWords string
	err = s.db.QueryRow(`
		SELECT today_score, total_games_played, daily_words, last_played_date
		FROM game_meta WHERE id = 1
	`).Scan(&data.TodayScore, &data.TotalGamesPlayed, &dailyWords, &data.LastPlayedDate)
	if err == nil {
		if jerr := json.Unmarshal([]byte(dailyWords), &data.DailyWordsCompleted); jerr != nil {
			data.DailyWordsCompleted = []string{}
		}
	}

	if data.DailyWordsCompleted == nil {
		data.DailyWordsCompleted = []string{}
	}
	today := utils.DayString(s.now())
	if data.LastPlayedDate != today {
		data.TodayScore = 0
		data.DailyWordsCompleted = []string{}
	}
	s.markOK(constants.DocGameData)
	return data
}

func (s *Store) saveGameMeta(data models.GameData) {
	words, err := json.Marshal(data.DailyWordsCompleted)
	if err != nil {
		s.writeFault(constants.DocGameData, err)
		return
	}
	_, err = s.db.Exec(`
		INSERT INTO game_meta (id, today_score, total_games_played, daily_words, last_played_date)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			today_score = excluded.today_score,
			total_games_played = excluded.total_games_played,
			daily_words = excluded.daily_words,
			last_played_date = excluded.last_played_date
	`, data.TodayScore, data.TotalGamesPlayed, string(words), data.LastPlayedDate)
	if err != nil {
		s.writeFault(constants.DocGameData, err)
		return
	}
	s.markOK(constants.DocGameData)
}

func (s *Store) AddHighScore(score, wordsCompleted int) models.HighScore {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := models.HighScore{
		Score:          score,
		WordsCompleted: wordsCompleted,
		Date:           now,
		Timestamp:      now.UnixMilli(),
	}

	_, err := s.db.Exec(`
		INSERT INTO high_scores (score, words_completed, date, timestamp)
		VALUES (?, ?, ?, ?)
	`, entry.Score, entry.WordsCompleted, now.Format(time.RFC3339Nano), entry.Timestamp)
	if err != nil {
		s.writeFault(constants.DocGameData, err)
		return entry
	}

	// Keep only the top entries.
	_, err = s.db.Exec(`
		DELETE FROM high_scores WHERE rowid NOT IN (
			SELECT rowid FROM high_scores ORDER BY score DESC, timestamp ASC LIMIT ?
		)
	`, constants.MaxHighScores)
	if err != nil {
		s.writeFault(constants.DocGameData, err)
		return entry
	}
	s.markOK(constants.DocGameData)
	return entry
}

func (s *Store) UpdateTodayScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadGameData()
	if score > data.TodayScore {
		data.TodayScore = score
	}
	data.LastPlayedDate = utils.DayString(s.now())
	s.saveGameMeta(data)
}

func (s *Store) RecordGamePlayed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadGameData()
	data.TotalGamesPlayed++
	data.LastPlayedDate = utils.DayString(s.now())
	s.saveGameMeta(data)
}

func (s *Store) MarkWordCompleted(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadGameData()
	if data.WordCompletedToday(word) {
		return
	}
	data.DailyWordsCompleted = append(data.DailyWordsCompleted, word)
	data.LastPlayedDate = utils.DayString(s.now())
	s.saveGameMeta(data)
}

func (s *Store) replaceGameData(data models.GameData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM high_scores`); err != nil {
		return err
	}
	scores := append([]models.HighScore(nil), data.HighScores...)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if len(scores) > constants.MaxHighScores {
		scores = scores[:constants.MaxHighScores]
	}
	for _, hs := range scores {
		if _, err := tx.Exec(`
			INSERT INTO high_scores (score, words_completed, date, timestamp)
			VALUES (?, ?, ?, ?)
		`, hs.Score, hs.WordsCompleted, hs.Date.Format(time.RFC3339Nano), hs.Timestamp); err != nil {
			return err
		}
	}

	words, err := json.Marshal(data.DailyWordsCompleted)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`
		INSERT INTO game_meta (id, today_score, total_games_played, daily_words, last_played_date)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			today_score = excluded.today_score,
			total_games_played = excluded.total_games_played,
			daily_words = excluded.daily_words,
			last_played_date = excluded.last_played_date
	`, data.TodayScore, data.TotalGamesPlayed, string(words), data.LastPlayedDate); err != nil {
		return err
	}
	return tx.Commit()
}
