// Package persistence provides SQLite-based storage for generated names.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/npcnames/internal/agents"
	"github.com/talgya/npcnames/internal/names"
)

// ErrNotFound is returned when no name is stored for an agent.
var ErrNotFound = errors.New("name not found")

// NameRecord is a generated name cached for one agent.
type NameRecord struct {
	AgentID    agents.AgentID `db:"agent_id"`
	Definition string         `db:"definition"`
	Sex        names.Sex      `db:"sex"`
	names.Components
	GeneratedAt int64 `db:"generated_at"` // Unix seconds
}

// DB wraps a SQLite connection for name storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS names (
		agent_id INTEGER PRIMARY KEY,
		definition TEXT NOT NULL,
		sex INTEGER NOT NULL,
		first_name TEXT NOT NULL,
		first_prefix TEXT NOT NULL,
		first_suffix TEXT NOT NULL,
		middle_name TEXT NOT NULL,
		middle_prefix TEXT NOT NULL,
		middle_suffix TEXT NOT NULL,
		last_name TEXT NOT NULL,
		last_prefix TEXT NOT NULL,
		last_suffix TEXT NOT NULL,
		conjunction TEXT NOT NULL,
		short_segments INTEGER NOT NULL,
		generated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_names_definition ON names(definition);
	`
	_, err := db.conn.Exec(schema)
	return err
}

const upsertName = `INSERT OR REPLACE INTO names
	(agent_id, definition, sex,
	 first_name, first_prefix, first_suffix,
	 middle_name, middle_prefix, middle_suffix,
	 last_name, last_prefix, last_suffix,
	 conjunction, short_segments, generated_at)
	VALUES (:agent_id, :definition, :sex,
	 :first_name, :first_prefix, :first_suffix,
	 :middle_name, :middle_prefix, :middle_suffix,
	 :last_name, :last_prefix, :last_suffix,
	 :conjunction, :short_segments, :generated_at)`

// SaveName stores or replaces one agent's name.
func (db *DB) SaveName(rec NameRecord) error {
	if _, err := db.conn.NamedExec(upsertName, rec); err != nil {
		return fmt.Errorf("save name %d: %w", rec.AgentID, err)
	}
	return nil
}

// SaveNames stores or replaces a batch of names in one transaction.
func (db *DB) SaveNames(records []NameRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareNamed(upsertName)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec); err != nil {
			return fmt.Errorf("insert name %d: %w", rec.AgentID, err)
		}
	}

	return tx.Commit()
}

// LoadName returns the stored name for an agent, or ErrNotFound.
func (db *DB) LoadName(id agents.AgentID) (NameRecord, error) {
	var rec NameRecord
	err := db.conn.Get(&rec, "SELECT * FROM names WHERE agent_id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return NameRecord{}, fmt.Errorf("agent %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return NameRecord{}, fmt.Errorf("load name %d: %w", id, err)
	}
	return rec, nil
}

// LoadNames returns every stored name ordered by agent.
func (db *DB) LoadNames() ([]NameRecord, error) {
	var records []NameRecord
	if err := db.conn.Select(&records, "SELECT * FROM names ORDER BY agent_id"); err != nil {
		return nil, fmt.Errorf("load names: %w", err)
	}
	return records, nil
}

// CountNames returns the number of stored names.
func (db *DB) CountNames() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM names")
	return n, err
}

// DeleteName forgets one agent's name so it is generated again on demand.
func (db *DB) DeleteName(id agents.AgentID) error {
	_, err := db.conn.Exec("DELETE FROM names WHERE agent_id = ?", id)
	return err
}

// ClearNames forgets every stored name and returns how many were removed.
func (db *DB) ClearNames() (int64, error) {
	res, err := db.conn.Exec("DELETE FROM names")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	slog.Info("name cache cleared", "names", n)
	return n, nil
}

// SaveMeta stores a key-value pair in world metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}
