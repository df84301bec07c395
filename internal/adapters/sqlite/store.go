package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"compass/internal/domain"
	"compass/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.StateStore on a single SQLite database holding one
// key/value row per state slice, each value a JSON document.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements StateStore
var _ ports.StateStore = (*Store)(nil)

// NewStore creates an unopened store.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store under the given data directory.
func (s *Store) Open(dataPath string) error {
	// Expand ~ in path
	if len(dataPath) > 0 && dataPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dataPath = filepath.Join(home, dataPath[1:])
	}

	s.dbPath = filepath.Join(dataPath, "state.db")

	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode for crash safety; a single logical writer, so no contention
	db, err := sql.Open("sqlite", s.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS slices (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '` + schemaVersion + `');
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// load reads and unmarshals one slice into out. Returns false on missing key
// or parse failure; the caller substitutes the slice default. Failures are
// logged, never surfaced.
func (s *Store) load(key string, out any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM slices WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Printf("store: read %q: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("store: corrupt value for %q, using default: %v", key, err)
		return false
	}
	return true
}

// save marshals and writes one slice. Write failures are logged and dropped;
// the next successful mutation writes the slice again anyway.
func (s *Store) save(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: marshal %q: %v", key, err)
		return
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO slices (key, value) VALUES (?, ?)`, key, string(raw))
	if err != nil {
		log.Printf("store: write %q: %v", key, err)
	}
}

func (s *Store) LoadRadar() domain.RadarState {
	var loaded domain.RadarState
	if s.load(ports.KeyRadar, &loaded) {
		return loaded
	}
	return domain.DefaultRadar()
}

func (s *Store) SaveRadar(r domain.RadarState) {
	s.save(ports.KeyRadar, r)
}

func (s *Store) LoadGoal() domain.GoalState {
	var loaded domain.GoalState
	if s.load(ports.KeyGoal, &loaded) {
		return loaded
	}
	return domain.DefaultGoal()
}

func (s *Store) SaveGoal(g domain.GoalState) {
	s.save(ports.KeyGoal, g)
}

func (s *Store) LoadLogs() []domain.LogEntry {
	var loaded []domain.LogEntry
	if s.load(ports.KeyLogs, &loaded) {
		return loaded
	}
	return nil
}

func (s *Store) SaveLogs(entries []domain.LogEntry) {
	if entries == nil {
		entries = []domain.LogEntry{}
	}
	s.save(ports.KeyLogs, entries)
}

func (s *Store) LoadCrisis() domain.CrisisState {
	var loaded domain.CrisisState
	if s.load(ports.KeyCrisis, &loaded) {
		return loaded
	}
	return domain.DefaultCrisis()
}

func (s *Store) SaveCrisis(c domain.CrisisState) {
	s.save(ports.KeyCrisis, c)
}
