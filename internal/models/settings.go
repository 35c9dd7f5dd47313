package models

// Settings represents application-wide settings
type Settings struct {
	Notifications bool   `json:"notifications"` // whether system notifications are enabled
	SoundEnabled  bool   `json:"sound_enabled"` // whether the alarm sound flag is sent with notifications
	Theme         string `json:"theme"`         // dashboard color theme
	Language      string `json:"language"`      // display language (only "en" is shipped)
	TimeFormat    string `json:"time_format"`   // "12h" or "24h"
}

// DefaultSettings returns the hard-coded defaults used when the settings
// document is absent or unreadable.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		SoundEnabled:  true,
		Theme:         "light",
		Language:      "en",
		TimeFormat:    "12h",
	}
}
