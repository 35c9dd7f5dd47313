package constants

import "time"

// Repeat represents how often an alarm re-fires after going off.
type Repeat string

// DocName identifies one of the independent persisted JSON documents.
type DocName string

const (
	AppName           = "daydesk"
	Version           = "v0.3.1"
	DefaultConfigPath = "~/.config/daydesk"
	DataDirName       = "data"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MonthDayFormat is the recurring calendar key used by wishes (MM-DD)
	MonthDayFormat = "01-02"

	// Repeat kinds
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatMonthly Repeat = "monthly"

	// Persisted document names
	DocNotes    DocName = "notes"
	DocAlarms   DocName = "alarms"
	DocGameData DocName = "gamedata"
	DocQuotes   DocName = "quotes"
	DocWishes   DocName = "wishes"
	DocSettings DocName = "settings"

	// Collection caps
	MaxHighScores     = 10
	MaxFavoriteQuotes = 50

	// Scheduler constants
	ReconcileInterval = 60 * time.Second
	DefaultSnooze     = 10 * time.Minute

	// Notifier constants
	NotifierLockfileName   = "daydesk-notifier.lock"
	NotificationDurationMs = 5000
	BannerDuration         = 10 * time.Second
	TrayAppIdentifier      = "com.daydesk.tray"

	// Game constants
	GameRoundSeconds = 60
	SkipPenaltySec   = 5
	HintPenaltySec   = 3
)

// Docs lists every persisted document, in display order.
var Docs = []DocName{DocNotes, DocAlarms, DocGameData, DocQuotes, DocWishes, DocSettings}

// ValidRepeat reports whether r is one of the known repeat kinds.
func ValidRepeat(r Repeat) bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}
