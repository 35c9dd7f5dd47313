package sqlite

import (
	"daydesk/internal/constants"
	"daydesk/internal/models"
)

func (s *Store) GetSettings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := models.DefaultSettings()
	var notifications, sound int
	err := s.db.QueryRow(`
		SELECT notifications, sound_enabled, theme, language, time_format
		FROM settings WHERE id = 1
	`).Scan(&notifications, &sound, &settings.Theme, &settings.Language, &settings.TimeFormat)
	if err != nil {
		return models.DefaultSettings()
	}
	settings.Notifications = notifications != 0
	settings.SoundEnabled = sound != 0
	s.markOK(constants.DocSettings)
	return settings
}

func (s *Store) SaveSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO settings (id, notifications, sound_enabled, theme, language, time_format)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			notifications = excluded.notifications,
			sound_enabled = excluded.sound_enabled,
			theme = excluded.theme,
			language = excluded.language,
			time_format = excluded.time_format
	`, boolInt(settings.Notifications), boolInt(settings.SoundEnabled),
		settings.Theme, settings.Language, settings.TimeFormat)
	if err != nil {
		s.writeFault(constants.DocSettings, err)
		return
	}
	s.markOK(constants.DocSettings)
}
