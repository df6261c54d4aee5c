// Package catalog persists extracted declarations, macros and diagnostics
// in SQLite, one snapshot per source file.
package catalog

import (
	"clangq/internal/engine/extract"
	"clangq/internal/engine/session"
	"clangq/internal/shared/observability"
	"clangq/internal/shared/util"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// Snapshot is everything recorded for one parse of a source file.
type Snapshot struct {
	Source       string
	SessionID    string
	ParsedAt     time.Time
	Args         []string
	Declarations []extract.Declaration
	Macros       []extract.Macro
	Diagnostics  []session.Diagnostic
}

// Record is a stored declaration together with the source it came from.
type Record struct {
	Source string
	extract.Declaration
}

// StoredDiagnostic is a diagnostic row read back from the catalog.
type StoredDiagnostic struct {
	Severity string
	Message  string
	File     string
	Line     uint32
	Column   uint32
}

type Store struct {
	db         *sql.DB
	lookupStmt *sql.Stmt
}

// Open opens or creates the catalog at path.
func Open(path string, busyTimeout time.Duration) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("catalog path must not be empty")
	}
	if info, err := os.Stat(cleanPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("catalog path %q is a directory, expected file", cleanPath)
	}
	if err := util.EnsureParentDir(cleanPath); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}
	if busyTimeout <= 0 {
		busyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", cleanPath, busyTimeout.Milliseconds())
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog %q: %w", cleanPath, err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite catalog %q: %w", cleanPath, err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	lookupStmt, err := db.Prepare(`SELECT
  source_path, name, usr, kind, parent, type, canonical_type, size, align,
  layout_error, bit_width, enum_value, params, return_type, variadic,
  file_path, line, col, comment, linkage, visibility, access, is_definition
FROM declarations
WHERE name = ?
ORDER BY source_path, file_path, line, col`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare lookup stmt: %w", err)
	}

	return &Store{db: db, lookupStmt: lookupStmt}, nil
}

// ReplaceSession swaps every row for snap.Source with the contents of snap
// in a single transaction.
func (s *Store) ReplaceSession(ctx context.Context, snap Snapshot) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("catalog not initialized")
	}
	start := time.Now()
	defer func() {
		observability.CatalogWriteDuration.Observe(time.Since(start).Seconds())
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog tx: %w", err)
	}
	if err := replaceRows(ctx, tx, snap); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog tx: %w", err)
	}
	slog.Debug("catalog updated",
		"path", snap.Source,
		"session", snap.SessionID,
		"declarations", len(snap.Declarations),
		"diagnostics", len(snap.Diagnostics),
	)
	return nil
}

func replaceRows(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE source_path = ?`, snap.Source); err != nil {
		return fmt.Errorf("delete previous run: %w", err)
	}
	args, err := json.Marshal(snap.Args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (source_path, session_id, parsed_at, args) VALUES (?, ?, ?, ?)`,
		snap.Source, snap.SessionID, snap.ParsedAt.Unix(), string(args)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	declStmt, err := tx.PrepareContext(ctx, `INSERT INTO declarations (
  source_path, name, usr, kind, parent, type, canonical_type, size, align,
  layout_error, bit_width, enum_value, params, return_type, variadic,
  file_path, line, col, comment, linkage, visibility, access, is_definition
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare declaration insert: %w", err)
	}
	defer declStmt.Close()
	for _, d := range snap.Declarations {
		params, err := json.Marshal(d.Params)
		if err != nil {
			return fmt.Errorf("encode params for %s: %w", d.Name, err)
		}
		var bitWidth, enumValue sql.NullInt64
		if d.BitWidth != nil {
			bitWidth = sql.NullInt64{Int64: int64(*d.BitWidth), Valid: true}
		}
		if d.EnumValue != nil {
			enumValue = sql.NullInt64{Int64: *d.EnumValue, Valid: true}
		}
		if _, err := declStmt.ExecContext(ctx,
			snap.Source, d.Name, d.USR, d.Kind, d.Parent, d.Type, d.CanonicalType, d.Size, d.Align,
			d.LayoutError, bitWidth, enumValue, string(params), d.ReturnType, boolInt(d.Variadic),
			d.File, d.Line, d.Column, d.Comment, d.Linkage, d.Visibility, d.Access, boolInt(d.IsDefinition),
		); err != nil {
			return fmt.Errorf("insert declaration %s: %w", d.Name, err)
		}
	}

	for _, m := range snap.Macros {
		if _, err := tx.ExecContext(ctx, `INSERT INTO macros (source_path, name, function_like, params, body, file_path, line) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			snap.Source, m.Name, boolInt(m.FunctionLike), strings.Join(m.Params, ","), m.Body(), m.File, m.Line); err != nil {
			return fmt.Errorf("insert macro %s: %w", m.Name, err)
		}
	}

	for _, d := range snap.Diagnostics {
		if _, err := tx.ExecContext(ctx, `INSERT INTO diagnostics (source_path, severity, message, file_path, line, col) VALUES (?, ?, ?, ?, ?, ?)`,
			snap.Source, d.Severity.String(), d.Message, d.File, d.Line, d.Column); err != nil {
			return fmt.Errorf("insert diagnostic: %w", err)
		}
	}
	return nil
}

// Lookup returns every stored declaration with the given name.
func (s *Store) Lookup(ctx context.Context, name string) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	rows, err := s.lookupStmt.QueryContext(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r                   Record
			bitWidth, enumValue sql.NullInt64
			params              string
			variadic, isDef     int
		)
		if err := rows.Scan(
			&r.Source, &r.Name, &r.USR, &r.Kind, &r.Parent, &r.Type, &r.CanonicalType, &r.Size, &r.Align,
			&r.LayoutError, &bitWidth, &enumValue, &params, &r.ReturnType, &variadic,
			&r.File, &r.Line, &r.Column, &r.Comment, &r.Linkage, &r.Visibility, &r.Access, &isDef,
		); err != nil {
			return nil, fmt.Errorf("scan declaration: %w", err)
		}
		if bitWidth.Valid {
			w := uint32(bitWidth.Int64)
			r.BitWidth = &w
		}
		if enumValue.Valid {
			v := enumValue.Int64
			r.EnumValue = &v
		}
		if err := json.Unmarshal([]byte(params), &r.Params); err != nil {
			return nil, fmt.Errorf("decode params for %s: %w", r.Name, err)
		}
		r.Variadic = variadic != 0
		r.IsDefinition = isDef != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of declarations stored for source, or across all
// sources when source is empty.
func (s *Store) Count(ctx context.Context, source string) (int, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("catalog not initialized")
	}
	var n int
	var err error
	if source == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM declarations`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM declarations WHERE source_path = ?`, source).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count declarations: %w", err)
	}
	return n, nil
}

// Diagnostics returns the diagnostics stored for source in insertion order.
func (s *Store) Diagnostics(ctx context.Context, source string) ([]StoredDiagnostic, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}
	rows, err := s.db.QueryContext(ctx, `SELECT severity, message, file_path, line, col FROM diagnostics WHERE source_path = ? ORDER BY id`, source)
	if err != nil {
		return nil, fmt.Errorf("query diagnostics: %w", err)
	}
	defer rows.Close()

	var out []StoredDiagnostic
	for rows.Next() {
		var d StoredDiagnostic
		if err := rows.Scan(&d.Severity, &d.Message, &d.File, &d.Line, &d.Column); err != nil {
			return nil, fmt.Errorf("scan diagnostic: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Macro returns the stored body of the named macro.
func (s *Store) Macro(ctx context.Context, name string) (body string, found bool, err error) {
	if s == nil || s.db == nil {
		return "", false, fmt.Errorf("catalog not initialized")
	}
	err = s.db.QueryRowContext(ctx, `SELECT body FROM macros WHERE name = ? ORDER BY id LIMIT 1`, name).Scan(&body)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query macro %s: %w", name, err)
	}
	return body, true, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if s.lookupStmt != nil {
		_ = s.lookupStmt.Close()
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
