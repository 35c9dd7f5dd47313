package sqlite

import (
	"time"

	"github.com/google/uuid"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/storage"
	"daydesk/internal/utils"
)

func (s *Store) GetWishesData() models.WishesData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadWishesData()
}

func (s *Store) loadWishesData() models.WishesData {
	data := models.DefaultWishesData()

	_ = s.db.QueryRow(`SELECT last_checked_date FROM wishes_meta WHERE id = 1`).
		Scan(&data.LastCheckedDate)

	rows, err := s.db.Query(`
		SELECT id, title, message, date, recurring, created_at
		FROM custom_wishes
		ORDER BY rowid ASC
	`)
	if err != nil {
		s.readFault(constants.DocWishes, err)
		return models.DefaultWishesData()
	}
	defer rows.Close()

	for rows.Next() {
		var w models.CustomWish
		var recurring int
		var createdAt string
		if err := rows.Scan(&w.ID, &w.Title, &w.Message, &w.Date, &recurring, &createdAt); err != nil {
			s.readFault(constants.DocWishes, err)
			return models.DefaultWishesData()
		}
		w.Recurring = recurring != 0
		if w.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			s.readFault(constants.DocWishes, err)
			return models.DefaultWishesData()
		}
		data.CustomWishes = append(data.CustomWishes, w)
	}
	s.markOK(constants.DocWishes)
	return data
}

func (s *Store) AddCustomWish(wish models.CustomWish) (models.CustomWish, error) {
	if err := wish.Validate(); err != nil {
		return models.CustomWish{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wish.ID = uuid.NewString()
	wish.CreatedAt = s.now()

	_, err := s.db.Exec(`
		INSERT INTO custom_wishes (id, title, message, date, recurring, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, wish.ID, wish.Title, wish.Message, wish.Date, boolInt(wish.Recurring),
		wish.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		s.writeFault(constants.DocWishes, err)
		return wish, nil
	}
	s.markOK(constants.DocWishes)
	return wish, nil
}

func (s *Store) MarkWishesChecked() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO wishes_meta (id, last_checked_date)
		VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET last_checked_date = excluded.last_checked_date
	`, utils.DayString(s.now()))
	if err != nil {
		s.writeFault(constants.DocWishes, err)
		return
	}
	s.markOK(constants.DocWishes)
}

func (s *Store) replaceWishesData(data models.WishesData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO wishes_meta (id, last_checked_date)
		VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET last_checked_date = excluded.last_checked_date
	`, data.LastCheckedDate); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM custom_wishes`); err != nil {
		return err
	}
	for _, w := range data.CustomWishes {
		if _, err := tx.Exec(`
			INSERT INTO custom_wishes (id, title, message, date, recurring, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, w.ID, w.Title, w.Message, w.Date, boolInt(w.Recurring),
			w.CreatedAt.Format(time.RFC3339Nano)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

var _ storage.Provider = (*Store)(nil)
