// Package sqlite implements the storage Provider on a single SQLite
// database file instead of per-collection JSON documents.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"daydesk/internal/constants"
	"daydesk/internal/logger"
	"daydesk/internal/models"
	"daydesk/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL DEFAULT '',
	important  INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS alarms (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	datetime   TEXT NOT NULL,
	repeat     TEXT NOT NULL DEFAULT 'none',
	note       TEXT NOT NULL DEFAULT '',
	active     INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS high_scores (
	score           INTEGER NOT NULL,
	words_completed INTEGER NOT NULL,
	date            TEXT NOT NULL,
	timestamp       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS game_meta (
	id                 INTEGER PRIMARY KEY CHECK (id = 1),
	today_score        INTEGER NOT NULL DEFAULT 0,
	total_games_played INTEGER NOT NULL DEFAULT 0,
	daily_words        TEXT NOT NULL DEFAULT '[]',
	last_played_date   TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS quotes_meta (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	daily_quote     TEXT,
	last_quote_date TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS favorite_quotes (
	text     TEXT NOT NULL,
	author   TEXT NOT NULL,
	type     TEXT NOT NULL DEFAULT '',
	date     TEXT NOT NULL DEFAULT '',
	added_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS custom_wishes (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	message    TEXT NOT NULL,
	date       TEXT NOT NULL,
	recurring  INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS wishes_meta (
	id                INTEGER PRIMARY KEY CHECK (id = 1),
	last_checked_date TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS settings (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	notifications INTEGER NOT NULL,
	sound_enabled INTEGER NOT NULL,
	theme         TEXT NOT NULL,
	language      TEXT NOT NULL,
	time_format   TEXT NOT NULL
);
`

// Store is a SQLite-backed storage Provider.
type Store struct {
	path string
	db   *sql.DB

	mu     sync.Mutex
	health map[constants.DocName]storage.DocStatus
	now    func() time.Time
}

func NewStore(path string) *Store {
	return &Store{
		path:   path,
		health: make(map[constants.DocName]storage.DocStatus),
		now:    time.Now,
	}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return s.seedSettings()
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) DataPath() string {
	return s.path
}

func (s *Store) seedSettings() error {
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM settings`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}
	if count == 0 {
		s.SaveSettings(models.DefaultSettings())
	}
	return nil
}

// readFault records a failed read for doc and logs it; callers fall back to
// the documented default.
func (s *Store) readFault(doc constants.DocName, err error) {
	logger.Warn("Failed to read collection, using defaults", "doc", doc, "error", err)
	s.health[doc] = storage.StatusDefaulted
}

// writeFault records a failed write for doc; the operation degrades to a
// no-op per the storage fault policy.
func (s *Store) writeFault(doc constants.DocName, err error) {
	logger.Error("Failed to write collection", "doc", doc, "error", err)
	s.health[doc] = storage.StatusWriteFailed
}

func (s *Store) markOK(doc constants.DocName) {
	s.health[doc] = storage.StatusOK
}

func (s *Store) Health() map[constants.DocName]storage.DocStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[constants.DocName]storage.DocStatus, len(constants.Docs))
	for _, doc := range constants.Docs {
		if st, ok := s.health[doc]; ok {
			out[doc] = st
		} else {
			out[doc] = storage.StatusOK
		}
	}
	return out
}

// Usage reports the serialized size of each collection. Sizes come from
// the JSON document form so the numbers are comparable across backends.
func (s *Store) Usage() map[constants.DocName]int64 {
	usage := make(map[constants.DocName]int64)
	bundle, err := s.Export()
	if err != nil {
		return usage
	}
	for doc, raw := range bundle {
		usage[doc] = int64(len(raw))
	}
	return usage
}

// Export serializes every collection to the same JSON document shapes the
// JSON store persists, so bundles move freely between backends.
func (s *Store) Export() (map[constants.DocName]json.RawMessage, error) {
	bundle := make(map[constants.DocName]json.RawMessage)

	marshal := func(doc constants.DocName, v any) error {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", doc, err)
		}
		bundle[doc] = data
		return nil
	}

	if err := marshal(constants.DocNotes, s.GetNotes()); err != nil {
		return nil, err
	}
	if err := marshal(constants.DocAlarms, s.GetAlarms()); err != nil {
		return nil, err
	}
	if err := marshal(constants.DocGameData, s.GetGameData()); err != nil {
		return nil, err
	}
	if err := marshal(constants.DocQuotes, s.GetQuotesData()); err != nil {
		return nil, err
	}
	if err := marshal(constants.DocWishes, s.GetWishesData()); err != nil {
		return nil, err
	}
	if err := marshal(constants.DocSettings, s.GetSettings()); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Import replaces collections present in the bundle. Documents that fail to
// parse abort the import before any mutation of that collection.
func (s *Store) Import(bundle map[constants.DocName]json.RawMessage) error {
	if data, ok := bundle[constants.DocNotes]; ok {
		var notes []models.Note
		if err := json.Unmarshal(data, &notes); err != nil {
			return fmt.Errorf("invalid notes document: %w", err)
		}
		if err := s.replaceNotes(notes); err != nil {
			return err
		}
	}
	if data, ok := bundle[constants.DocAlarms]; ok {
		var alarms []models.Alarm
		if err := json.Unmarshal(data, &alarms); err != nil {
			return fmt.Errorf("invalid alarms document: %w", err)
		}
		if err := s.replaceAlarms(alarms); err != nil {
			return err
		}
	}
	if data, ok := bundle[constants.DocGameData]; ok {
		var game models.GameData
		if err := json.Unmarshal(data, &game); err != nil {
			return fmt.Errorf("invalid gamedata document: %w", err)
		}
		if err := s.replaceGameData(game); err != nil {
			return err
		}
	}
	if data, ok := bundle[constants.DocQuotes]; ok {
		var quotes models.QuotesData
		if err := json.Unmarshal(data, &quotes); err != nil {
			return fmt.Errorf("invalid quotes document: %w", err)
		}
		if err := s.replaceQuotesData(quotes); err != nil {
			return err
		}
	}
	if data, ok := bundle[constants.DocWishes]; ok {
		var wishes models.WishesData
		if err := json.Unmarshal(data, &wishes); err != nil {
			return fmt.Errorf("invalid wishes document: %w", err)
		}
		if err := s.replaceWishesData(wishes); err != nil {
			return err
		}
	}
	if data, ok := bundle[constants.DocSettings]; ok {
		var settings models.Settings
		if err := json.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("invalid settings document: %w", err)
		}
		s.SaveSettings(settings)
	}
	return nil
}
