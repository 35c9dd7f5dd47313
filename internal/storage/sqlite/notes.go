package sqlite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/storage"
)

func scanNote(scan func(...any) error) (models.Note, error) {
	var n models.Note
	var important int
	var createdAt, updatedAt string

	if err := scan(&n.ID, &n.Title, &n.Content, &important, &createdAt, &updatedAt); err != nil {
		return models.Note{}, err
	}
	n.Important = important != 0

	var err error
	if n.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.Note{}, err
	}
	if n.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

func (s *Store) GetNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, title, content, important, created_at, updated_at
		FROM notes
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		s.readFault(constants.DocNotes, err)
		return []models.Note{}
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			s.readFault(constants.DocNotes, err)
			return []models.Note{}
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		s.readFault(constants.DocNotes, err)
		return []models.Note{}
	}
	s.markOK(constants.DocNotes)
	return notes
}

func (s *Store) AddNote(in storage.NoteInput) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Important: in.Important,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if note.Title == "" {
		note.Title = "Untitled"
	}

	_, err := s.db.Exec(`
		INSERT INTO notes (id, title, content, important, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.Content, boolInt(note.Important),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		s.writeFault(constants.DocNotes, err)
		return note
	}
	s.markOK(constants.DocNotes)
	return note
}

func (s *Store) UpdateNote(id string, upd storage.NoteUpdate) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, err := s.getNote(id)
	if err != nil {
		return models.Note{}, err
	}

	if upd.Title != nil {
		note.Title = *upd.Title
	}
	if upd.Content != nil {
		note.Content = *upd.Content
	}
	if upd.Important != nil {
		note.Important = *upd.Important
	}
	note.UpdatedAt = s.now()

	_, err = s.db.Exec(`
		UPDATE notes SET title = ?, content = ?, important = ?, updated_at = ?
		WHERE id = ?
	`, note.Title, note.Content, boolInt(note.Important),
		note.UpdatedAt.Format(time.RFC3339Nano), id)
	if err != nil {
		s.writeFault(constants.DocNotes, err)
		return note, nil
	}
	s.markOK(constants.DocNotes)
	return note, nil
}

func (s *Store) DeleteNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		s.writeFault(constants.DocNotes, err)
		return false
	}
	n, _ := res.RowsAffected()
	s.markOK(constants.DocNotes)
	return n > 0
}

func (s *Store) getNote(id string) (models.Note, error) {
	row := s.db.QueryRow(`
		SELECT id, title, content, important, created_at, updated_at
		FROM notes WHERE id = ?
	`, id)
	note, err := scanNote(row.Scan)
	if err == sql.ErrNoRows {
		return models.Note{}, storage.ErrNotFound
	}
	if err != nil {
		s.readFault(constants.DocNotes, err)
		return models.Note{}, storage.ErrNotFound
	}
	return note, nil
}

func (s *Store) replaceNotes(notes []models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		return err
	}
	// Insert oldest first so rowid order matches prepend semantics.
	for i := len(notes) - 1; i >= 0; i-- {
		n := notes[i]
		if _, err := tx.Exec(`
			INSERT INTO notes (id, title, content, important, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, n.ID, n.Title, n.Content, boolInt(n.Important),
			n.CreatedAt.Format(time.RFC3339Nano), n.UpdatedAt.Format(time.RFC3339Nano)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
