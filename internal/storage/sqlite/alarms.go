package sqlite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"daydesk/internal/constants"
	"daydesk/internal/models"
	"daydesk/internal/storage"
)

func scanAlarm(scan func(...any) error) (models.Alarm, error) {
	var a models.Alarm
	var repeat string
	var active int
	var datetime, createdAt string

	if err := scan(&a.ID, &a.Title, &datetime, &repeat, &a.Note, &active, &createdAt); err != nil {
		return models.Alarm{}, err
	}
	a.Repeat = constants.Repeat(repeat)
	a.Active = active != 0

	var err error
	if a.Datetime, err = time.Parse(time.RFC3339Nano, datetime); err != nil {
		return models.Alarm{}, err
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.Alarm{}, err
	}
	return a, nil
}

func (s *Store) GetAlarms() []models.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, title, datetime, repeat, note, active, created_at
		FROM alarms
		ORDER BY rowid ASC
	`)
	if err != nil {
		s.readFault(constants.DocAlarms, err)
		return []models.Alarm{}
	}
	defer rows.Close()

	alarms := []models.Alarm{}
	for rows.Next() {
		a, err := scanAlarm(rows.Scan)
		if err != nil {
			s.readFault(constants.DocAlarms, err)
			return []models.Alarm{}
		}
		alarms = append(alarms, a)
	}
	if err := rows.Err(); err != nil {
		s.readFault(constants.DocAlarms, err)
		return []models.Alarm{}
	}
	s.markOK(constants.DocAlarms)
	return alarms
}

func (s *Store) GetAlarm(id string) (models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getAlarm(id)
}

func (s *Store) getAlarm(id string) (models.Alarm, error) {
	row := s.db.QueryRow(`
		SELECT id, title, datetime, repeat, note, active, created_at
		FROM alarms WHERE id = ?
	`, id)
	alarm, err := scanAlarm(row.Scan)
	if err == sql.ErrNoRows {
		return models.Alarm{}, storage.ErrNotFound
	}
	if err != nil {
		s.readFault(constants.DocAlarms, err)
		return models.Alarm{}, storage.ErrNotFound
	}
	return alarm, nil
}

func (s *Store) AddAlarm(in storage.AlarmInput) models.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarm := models.Alarm{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Datetime:  in.Datetime,
		Repeat:    in.Repeat,
		Note:      in.Note,
		Active:    true,
		CreatedAt: s.now(),
	}
	if alarm.Title == "" {
		alarm.Title = "Reminder"
	}
	if alarm.Repeat == "" {
		alarm.Repeat = constants.RepeatNone
	}

	_, err := s.db.Exec(`
		INSERT INTO alarms (id, title, datetime, repeat, note, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, alarm.ID, alarm.Title, alarm.Datetime.Format(time.RFC3339Nano),
		string(alarm.Repeat), alarm.Note, 1, alarm.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		s.writeFault(constants.DocAlarms, err)
		return alarm
	}
	s.markOK(constants.DocAlarms)
	return alarm
}

func (s *Store) UpdateAlarm(id string, upd storage.AlarmUpdate) (models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarm, err := s.getAlarm(id)
	if err != nil {
		return models.Alarm{}, err
	}

	if upd.Title != nil {
		alarm.Title = *upd.Title
	}
	if upd.Datetime != nil {
		alarm.Datetime = *upd.Datetime
	}
	if upd.Repeat != nil {
		alarm.Repeat = *upd.Repeat
	}
	if upd.Note != nil {
		alarm.Note = *upd.Note
	}
	if upd.Active != nil {
		alarm.Active = *upd.Active
	}

	if err := s.writeAlarm(alarm); err != nil {
		s.writeFault(constants.DocAlarms, err)
		return alarm, nil
	}
	s.markOK(constants.DocAlarms)
	return alarm, nil
}

func (s *Store) DeleteAlarm(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM alarms WHERE id = ?`, id)
	if err != nil {
		s.writeFault(constants.DocAlarms, err)
		return false
	}
	n, _ := res.RowsAffected()
	s.markOK(constants.DocAlarms)
	return n > 0
}

func (s *Store) ToggleAlarm(id string) (models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarm, err := s.getAlarm(id)
	if err != nil {
		return models.Alarm{}, err
	}
	alarm.Active = !alarm.Active

	if err := s.writeAlarm(alarm); err != nil {
		s.writeFault(constants.DocAlarms, err)
		return alarm, nil
	}
	s.markOK(constants.DocAlarms)
	return alarm, nil
}

func (s *Store) writeAlarm(a models.Alarm) error {
	_, err := s.db.Exec(`
		UPDATE alarms SET title = ?, datetime = ?, repeat = ?, note = ?, active = ?
		WHERE id = ?
	`, a.Title, a.Datetime.Format(time.RFC3339Nano), string(a.Repeat), a.Note,
		boolInt(a.Active), a.ID)
	return err
}

func (s *Store) replaceAlarms(alarms []models.Alarm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM alarms`); err != nil {
		return err
	}
	for _, a := range alarms {
		if _, err := tx.Exec(`
			INSERT INTO alarms (id, title, datetime, repeat, note, active, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, a.ID, a.Title, a.Datetime.Format(time.RFC3339Nano), string(a.Repeat),
			a.Note, boolInt(a.Active), a.CreatedAt.Format(time.RFC3339Nano)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
