// # internal/data/catalog/schema.go
package catalog

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 1

func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read catalog schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("catalog schema version %d is newer than supported version %d", version, schemaVersion)
	}
	if version == schemaVersion {
		return nil
	}

	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  source_path TEXT    PRIMARY KEY,
  session_id  TEXT    NOT NULL,
  parsed_at   INTEGER NOT NULL,
  args        TEXT    NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS declarations (
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  source_path    TEXT    NOT NULL REFERENCES runs(source_path) ON DELETE CASCADE,
  name           TEXT    NOT NULL,
  usr            TEXT    NOT NULL DEFAULT '',
  kind           TEXT    NOT NULL,
  parent         TEXT    NOT NULL DEFAULT '',
  type           TEXT    NOT NULL DEFAULT '',
  canonical_type TEXT    NOT NULL DEFAULT '',
  size           INTEGER NOT NULL DEFAULT 0,
  align          INTEGER NOT NULL DEFAULT 0,
  layout_error   TEXT    NOT NULL DEFAULT '',
  bit_width      INTEGER,
  enum_value     INTEGER,
  params         TEXT    NOT NULL DEFAULT '[]',
  return_type    TEXT    NOT NULL DEFAULT '',
  variadic       INTEGER NOT NULL DEFAULT 0,
  file_path      TEXT    NOT NULL DEFAULT '',
  line           INTEGER NOT NULL DEFAULT 0,
  col            INTEGER NOT NULL DEFAULT 0,
  comment        TEXT    NOT NULL DEFAULT '',
  linkage        TEXT    NOT NULL DEFAULT '',
  visibility     TEXT    NOT NULL DEFAULT '',
  access         TEXT    NOT NULL DEFAULT '',
  is_definition  INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_declarations_name ON declarations(name);
CREATE INDEX IF NOT EXISTS idx_declarations_source ON declarations(source_path);
CREATE TABLE IF NOT EXISTS diagnostics (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  source_path TEXT    NOT NULL REFERENCES runs(source_path) ON DELETE CASCADE,
  severity    TEXT    NOT NULL,
  message     TEXT    NOT NULL,
  file_path   TEXT    NOT NULL DEFAULT '',
  line        INTEGER NOT NULL DEFAULT 0,
  col         INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_diagnostics_source ON diagnostics(source_path);
CREATE TABLE IF NOT EXISTS macros (
  id            INTEGER PRIMARY KEY AUTOINCREMENT,
  source_path   TEXT    NOT NULL REFERENCES runs(source_path) ON DELETE CASCADE,
  name          TEXT    NOT NULL,
  function_like INTEGER NOT NULL DEFAULT 0,
  params        TEXT    NOT NULL DEFAULT '',
  body          TEXT    NOT NULL DEFAULT '',
  file_path     TEXT    NOT NULL DEFAULT '',
  line          INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_macros_name ON macros(name);
`)
	if err != nil {
		return fmt.Errorf("create catalog schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion)); err != nil {
		return fmt.Errorf("set catalog schema version: %w", err)
	}
	return nil
}
