package storage

import (
	"encoding/json"
	"errors"
	"time"

	"daydesk/internal/constants"
	"daydesk/internal/models"
)

// ErrNotFound signals an update/delete/toggle against an unknown id. No
// state is mutated when it is returned.
var ErrNotFound = errors.New("record not found")

// DocStatus reports the health of one persisted document after the most
// recent read or write touching it.
type DocStatus string

const (
	// StatusOK means the last operation on the document succeeded.
	StatusOK DocStatus = "ok"
	// StatusDefaulted means the document was corrupt or unreadable and the
	// documented default value was substituted.
	StatusDefaulted DocStatus = "defaulted"
	// StatusWriteFailed means the last write did not persist; the
	// operation degraded to a no-op.
	StatusWriteFailed DocStatus = "write-failed"
)

// NoteInput carries user-supplied fields for a new note. Omitted fields
// get documented defaults.
type NoteInput struct {
	Title     string
	Content   string
	Important bool
}

// NoteUpdate merges into an existing note; nil fields are left untouched.
type NoteUpdate struct {
	Title     *string
	Content   *string
	Important *bool
}

// AlarmInput carries user-supplied fields for a new alarm. New alarms are
// always created active.
type AlarmInput struct {
	Title    string
	Datetime time.Time
	Repeat   constants.Repeat
	Note     string
}

// AlarmUpdate merges into an existing alarm; nil fields are left untouched.
type AlarmUpdate struct {
	Title    *string
	Datetime *time.Time
	Repeat   *constants.Repeat
	Note     *string
	Active   *bool
}

// Provider is the durable mapping from named collections to their values.
// Reads never fail: corrupt or absent documents yield the documented
// default for the kind and the degradation is recorded in Health. Writes
// that fail are logged and degrade to no-ops; callers that need certainty
// consult Health afterwards.
type Provider interface {
	Init() error
	Load() error
	Close() error

	// Notes (newest first)
	GetNotes() []models.Note
	AddNote(NoteInput) models.Note
	UpdateNote(id string, upd NoteUpdate) (models.Note, error)
	DeleteNote(id string) bool

	// Alarms (insertion order)
	GetAlarms() []models.Alarm
	GetAlarm(id string) (models.Alarm, error)
	AddAlarm(AlarmInput) models.Alarm
	UpdateAlarm(id string, upd AlarmUpdate) (models.Alarm, error)
	DeleteAlarm(id string) bool
	// ToggleAlarm flips Active without touching Datetime.
	ToggleAlarm(id string) (models.Alarm, error)

	// Game aggregate
	GetGameData() models.GameData
	AddHighScore(score, wordsCompleted int) models.HighScore
	UpdateTodayScore(score int)
	RecordGamePlayed()
	MarkWordCompleted(word string)

	// Quotes aggregate
	GetQuotesData() models.QuotesData
	SetDailyQuote(models.Quote)
	AddFavoriteQuote(models.Quote)

	// Wishes aggregate
	GetWishesData() models.WishesData
	AddCustomWish(models.CustomWish) (models.CustomWish, error)
	MarkWishesChecked()

	// Settings
	GetSettings() models.Settings
	SaveSettings(models.Settings)

	// Health reports per-document status from the most recent operations.
	Health() map[constants.DocName]DocStatus

	// Usage reports the stored size in bytes of each document that
	// currently exists.
	Usage() map[constants.DocName]int64

	// Export/Import move the full document set as one JSON bundle.
	Export() (map[constants.DocName]json.RawMessage, error)
	Import(bundle map[constants.DocName]json.RawMessage) error

	DataPath() string
}
