package sqlite

import (
	"encoding/json"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/utils"
)

func (s *Store) GetQuotesData() models.QuotesData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadQuotesData()
}

func (s *Store) loadQuotesData() models.QuotesData {
	data := models.DefaultQuotesData()

	var dailyJSON *string
	err := s.db.QueryRow(`
		SELECT daily_quote, last_quote_date FROM quotes_meta WHERE id = 1
	`).Scan(&dailyJSON, &data.LastQuoteDate)
	if err == nil && dailyJSON != nil {
		var q models.Quote
		if jerr := json.Unmarshal([]byte(*dailyJSON), &q); jerr == nil {
			data.DailyQuote = &q
		}
	}

	rows, err := s.db.Query(`
		SELECT text, author, type, date, added_at
		FROM favorite_quotes
		ORDER BY added_at DESC, rowid DESC
		LIMIT ?
	`, constants.MaxFavoriteQuotes)
	if err != nil {
		s.readFault(constants.DocQuotes, err)
		return models.DefaultQuotesData()
	}
	defer rows.Close()

	for rows.Next() {
		var fav models.FavoriteQuote
		var addedAt string
		if err := rows.Scan(&fav.Text, &fav.Author, &fav.Type, &fav.Date, &addedAt); err != nil {
			s.readFault(constants.DocQuotes, err)
			return models.DefaultQuotesData()
		}
		if fav.AddedAt, err = time.Parse(time.RFC3339Nano, addedAt); err != nil {
			s.readFault(constants.DocQuotes, err)
			return models.DefaultQuotesData()
		}
		data.FavoriteQuotes = append(data.FavoriteQuotes, fav)
	}
	s.markOK(constants.DocQuotes)
	return data
}

func (s *Store) SetDailyQuote(q models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(q)
	if err != nil {
		s.writeFault(constants.DocQuotes, err)
		return
	}
	_, err = s.db.Exec(`
		INSERT INTO quotes_meta (id, daily_quote, last_quote_date)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			daily_quote = excluded.daily_quote,
			last_quote_date = excluded.last_quote_date
	`, string(payload), utils.DayString(s.now()))
	if err != nil {
		s.writeFault(constants.DocQuotes, err)
		return
	}
	s.markOK(constants.DocQuotes)
}

func (s *Store) AddFavoriteQuote(q models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO favorite_quotes (text, author, type, date, added_at)
		VALUES (?, ?, ?, ?, ?)
	`, q.Text, q.Author, q.Type, q.Date, s.now().Format(time.RFC3339Nano))
	if err != nil {
		s.writeFault(constants.DocQuotes, err)
		return
	}

	_, err = s.db.Exec(`
		DELETE FROM favorite_quotes WHERE rowid NOT IN (
			SELECT rowid FROM favorite_quotes ORDER BY added_at DESC, rowid DESC LIMIT ?
		)
	`, constants.MaxFavoriteQuotes)
	if err != nil {
		s.writeFault(constants.DocQuotes, err)
		return
	}
	s.markOK(constants.DocQuotes)
}

func (s *Store) replaceQuotesData(data models.QuotesData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var dailyJSON *string
	if data.DailyQuote != nil {
		payload, err := json.Marshal(data.DailyQuote)
		if err != nil {
			return err
		}
		str := string(payload)
		dailyJSON = &str
	}
	if _, err := tx.Exec(`
		INSERT INTO quotes_meta (id, daily_quote, last_quote_date)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			daily_quote = excluded.daily_quote,
			last_quote_date = excluded.last_quote_date
	`, dailyJSON, data.LastQuoteDate); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM favorite_quotes`); err != nil {
		return err
	}
	for i := len(data.FavoriteQuotes) - 1; i >= 0; i-- {
		fav := data.FavoriteQuotes[i]
		if _, err := tx.Exec(`
			INSERT INTO favorite_quotes (text, author, type, date, added_at)
			VALUES (?, ?, ?, ?, ?)
		`, fav.Text, fav.Author, fav.Type, fav.Date, fav.AddedAt.Format(time.RFC3339Nano)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
