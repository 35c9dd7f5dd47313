package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"daydesk/internal/constants"
	"daydesk/internal/logger"
	"daydesk/internal/models"
	"daydesk/internal/utils"
)

// JSONStore persists each collection as an independent JSON document under
// a data directory. Every mutation is a full read-modify-write of the
// affected document; atomicity never spans two documents.
type JSONStore struct {
	fs  afero.Fs
	dir string

	mu     sync.Mutex
	health map[constants.DocName]DocStatus
	now    func() time.Time
}

// NewJSONStore returns a store rooted at dir on the given filesystem.
// Production callers pass afero.NewOsFs(); tests use a MemMapFs.
func NewJSONStore(fsys afero.Fs, dir string) *JSONStore {
	return &JSONStore{
		fs:     fsys,
		dir:    dir,
		health: make(map[constants.DocName]DocStatus),
		now:    time.Now,
	}
}

func (s *JSONStore) Init() error {
	if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if ok, _ := afero.Exists(s.fs, s.docPath(constants.DocSettings)); ok {
		return fmt.Errorf("storage already initialized at %s", s.dir)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeDoc(constants.DocSettings, models.DefaultSettings())
	return nil
}

func (s *JSONStore) Load() error {
	if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) DataPath() string {
	return s.dir
}

func (s *JSONStore) docPath(name constants.DocName) string {
	return filepath.Join(s.dir, string(name)+".json")
}

// readDoc deserializes one document into v. It returns false when the
// document is absent, unreadable, or corrupt; the caller then substitutes
// the documented default. Corruption is recorded in health, absence is not.
func (s *JSONStore) readDoc(name constants.DocName, v any) bool {
	data, err := afero.ReadFile(s.fs, s.docPath(name))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read document, using defaults", "doc", name, "error", err)
			s.health[name] = StatusDefaulted
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("Corrupt document, using defaults", "doc", name, "error", err)
		s.health[name] = StatusDefaulted
		return false
	}
	s.health[name] = StatusOK
	return true
}

// writeDoc persists one document. Failures are logged and recorded; the
// call degrades to a no-op per the storage fault policy.
func (s *JSONStore) writeDoc(name constants.DocName, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error("Failed to serialize document", "doc", name, "error", err)
		s.health[name] = StatusWriteFailed
		return
	}
	if err := afero.WriteFile(s.fs, s.docPath(name), data, 0600); err != nil {
		logger.Error("Failed to write document", "doc", name, "error", err)
		s.health[name] = StatusWriteFailed
		return
	}
	s.health[name] = StatusOK
}

// Notes

func (s *JSONStore) GetNotes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadNotes()
}

func (s *JSONStore) loadNotes() []models.Note {
	var notes []models.Note
	if !s.readDoc(constants.DocNotes, &notes) || notes == nil {
		return []models.Note{}
	}
	return notes
}

func (s *JSONStore) AddNote(in NoteInput) models.Note {
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

	notes := append([]models.Note{note}, s.loadNotes()...)
	s.writeDoc(constants.DocNotes, notes)
	return note
}

func (s *JSONStore) UpdateNote(id string, upd NoteUpdate) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.loadNotes()
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		if upd.Title != nil {
			notes[i].Title = *upd.Title
		}
		if upd.Content != nil {
			notes[i].Content = *upd.Content
		}
		if upd.Important != nil {
			notes[i].Important = *upd.Important
		}
		notes[i].UpdatedAt = s.now()
		s.writeDoc(constants.DocNotes, notes)
		return notes[i], nil
	}
	return models.Note{}, ErrNotFound
}

func (s *JSONStore) DeleteNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.loadNotes()
	filtered := notes[:0:0]
	for _, n := range notes {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	if len(filtered) == len(notes) {
		return false
	}
	s.writeDoc(constants.DocNotes, filtered)
	return true
}

// Alarms

func (s *JSONStore) GetAlarms() []models.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAlarms()
}

func (s *JSONStore) loadAlarms() []models.Alarm {
	var alarms []models.Alarm
	if !s.readDoc(constants.DocAlarms, &alarms) || alarms == nil {
		return []models.Alarm{}
	}
	return alarms
}

func (s *JSONStore) GetAlarm(id string) (models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.loadAlarms() {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Alarm{}, ErrNotFound
}

func (s *JSONStore) AddAlarm(in AlarmInput) models.Alarm {
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

	alarms := append(s.loadAlarms(), alarm)
	s.writeDoc(constants.DocAlarms, alarms)
	return alarm
}

func (s *JSONStore) UpdateAlarm(id string, upd AlarmUpdate) (models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms := s.loadAlarms()
	for i := range alarms {
		if alarms[i].ID != id {
			continue
		}
		if upd.Title != nil {
			alarms[i].Title = *upd.Title
		}
		if upd.Datetime != nil {
			alarms[i].Datetime = *upd.Datetime
		}
		if upd.Repeat != nil {
			alarms[i].Repeat = *upd.Repeat
		}
		if upd.Note != nil {
			alarms[i].Note = *upd.Note
		}
		if upd.Active != nil {
			alarms[i].Active = *upd.Active
		}
		s.writeDoc(constants.DocAlarms, alarms)
		return alarms[i], nil
	}
	return models.Alarm{}, ErrNotFound
}

func (s *JSONStore) DeleteAlarm(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms := s.loadAlarms()
	filtered := alarms[:0:0]
	for _, a := range alarms {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(alarms) {
		return false
	}
	s.writeDoc(constants.DocAlarms, filtered)
	return true
}

func (s *JSONStore) ToggleAlarm(id string) (models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms := s.loadAlarms()
	for i := range alarms {
		if alarms[i].ID != id {
			continue
		}
		alarms[i].Active = !alarms[i].Active
		s.writeDoc(constants.DocAlarms, alarms)
		return alarms[i], nil
	}
	return models.Alarm{}, ErrNotFound
}

// Game aggregate

func (s *JSONStore) GetGameData() models.GameData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadGameData()
}

// loadGameData applies the daily reset: on a date change TodayScore and the
// completed-word set start fresh. The reset is not persisted until the next
// mutation.
func (s *JSONStore) loadGameData() models.GameData {
	data := models.DefaultGameData()
	s.readDoc(constants.DocGameData, &data)
	if data.HighScores == nil {
		data.HighScores = []models.HighScore{}
	}
	if data.DailyWordsCompleted == nil {
		data.DailyWordsCompleted = []string{}
	}
	today := utils.DayString(s.now())
	if data.LastPlayedDate != today {
		data.TodayScore = 0
		data.DailyWordsCompleted = []string{}
	}
	return data
}

func (s *JSONStore) AddHighScore(score, wordsCompleted int) models.HighScore {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := models.HighScore{
		Score:          score,
		WordsCompleted: wordsCompleted,
		Date:           now,
		Timestamp:      now.UnixMilli(),
	}

	data := s.loadGameData()
	data.HighScores = append(data.HighScores, entry)
	sort.SliceStable(data.HighScores, func(i, j int) bool {
		return data.HighScores[i].Score > data.HighScores[j].Score
	})
	if len(data.HighScores) > constants.MaxHighScores {
		data.HighScores = data.HighScores[:constants.MaxHighScores]
	}
	s.writeDoc(constants.DocGameData, data)
	return entry
}

func (s *JSONStore) UpdateTodayScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadGameData()
	if score > data.TodayScore {
		data.TodayScore = score
	}
	data.LastPlayedDate = utils.DayString(s.now())
	s.writeDoc(constants.DocGameData, data)
}

func (s *JSONStore) RecordGamePlayed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadGameData()
	data.TotalGamesPlayed++
	data.LastPlayedDate = utils.DayString(s.now())
	s.writeDoc(constants.DocGameData, data)
}

func (s *JSONStore) MarkWordCompleted(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadGameData()
	if data.WordCompletedToday(word) {
		return
	}
	data.DailyWordsCompleted = append(data.DailyWordsCompleted, word)
	data.LastPlayedDate = utils.DayString(s.now())
	s.writeDoc(constants.DocGameData, data)
}

// Quotes aggregate

func (s *JSONStore) GetQuotesData() models.QuotesData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadQuotesData()
}

func (s *JSONStore) loadQuotesData() models.QuotesData {
	data := models.DefaultQuotesData()
	s.readDoc(constants.DocQuotes, &data)
	if data.FavoriteQuotes == nil {
		data.FavoriteQuotes = []models.FavoriteQuote{}
	}
	return data
}

func (s *JSONStore) SetDailyQuote(q models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadQuotesData()
	data.DailyQuote = &q
	data.LastQuoteDate = utils.DayString(s.now())
	s.writeDoc(constants.DocQuotes, data)
}

func (s *JSONStore) AddFavoriteQuote(q models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadQuotesData()
	fav := models.FavoriteQuote{Quote: q, AddedAt: s.now()}
	data.FavoriteQuotes = append([]models.FavoriteQuote{fav}, data.FavoriteQuotes...)
	if len(data.FavoriteQuotes) > constants.MaxFavoriteQuotes {
		data.FavoriteQuotes = data.FavoriteQuotes[:constants.MaxFavoriteQuotes]
	}
	s.writeDoc(constants.DocQuotes, data)
}

// Wishes aggregate

func (s *JSONStore) GetWishesData() models.WishesData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadWishesData()
}

func (s *JSONStore) loadWishesData() models.WishesData {
	data := models.DefaultWishesData()
	s.readDoc(constants.DocWishes, &data)
	if data.CustomWishes == nil {
		data.CustomWishes = []models.CustomWish{}
	}
	return data
}

func (s *JSONStore) AddCustomWish(wish models.CustomWish) (models.CustomWish, error) {
	if err := wish.Validate(); err != nil {
		return models.CustomWish{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wish.ID = uuid.NewString()
	wish.CreatedAt = s.now()

	data := s.loadWishesData()
	data.CustomWishes = append(data.CustomWishes, wish)
	s.writeDoc(constants.DocWishes, data)
	return wish, nil
}

func (s *JSONStore) MarkWishesChecked() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.loadWishesData()
	data.LastCheckedDate = utils.DayString(s.now())
	s.writeDoc(constants.DocWishes, data)
}

// Settings

func (s *JSONStore) GetSettings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := models.DefaultSettings()
	s.readDoc(constants.DocSettings, &settings)
	return settings
}

func (s *JSONStore) SaveSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeDoc(constants.DocSettings, settings)
}

// Health

func (s *JSONStore) Health() map[constants.DocName]DocStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[constants.DocName]DocStatus, len(constants.Docs))
	for _, doc := range constants.Docs {
		if st, ok := s.health[doc]; ok {
			out[doc] = st
		} else {
			out[doc] = StatusOK
		}
	}
	return out
}

// Usage reports the on-disk size of each document that exists.
func (s *JSONStore) Usage() map[constants.DocName]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	usage := make(map[constants.DocName]int64)
	for _, doc := range constants.Docs {
		info, err := s.fs.Stat(s.docPath(doc))
		if err != nil {
			continue
		}
		usage[doc] = info.Size()
	}
	return usage
}

// Export / Import

func (s *JSONStore) Export() (map[constants.DocName]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle := make(map[constants.DocName]json.RawMessage)
	for _, doc := range constants.Docs {
		data, err := afero.ReadFile(s.fs, s.docPath(doc))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", doc, err)
		}
		if !json.Valid(data) {
			continue
		}
		bundle[doc] = json.RawMessage(data)
	}
	return bundle, nil
}

func (s *JSONStore) Import(bundle map[constants.DocName]json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range constants.Docs {
		data, ok := bundle[doc]
		if !ok {
			continue
		}
		if !json.Valid(data) {
			return fmt.Errorf("invalid JSON for document %s", doc)
		}
		if err := afero.WriteFile(s.fs, s.docPath(doc), data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", doc, err)
		}
		s.health[doc] = StatusOK
	}
	return nil
}
