// internal/dictionary/sqlite.go
//
// SQLite-backed dictionary.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the embedded sql/*.sql migrations (idempotent, recorded in _migrations).
//   - Bulk importing word lists and answering real-word lookups.
//
// The database is a read-mostly word store; no game state is written to it.

package dictionary

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordscramble/internal/normalize"
)

//go:embed sql/*.sql
var migrations embed.FS

// lookupTimeout bounds a single IsRealWord query.
const lookupTimeout = 2 * time.Second

// SQLite is a spell checker backed by a words(locale, word) table.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// OpenSQLite opens (and creates if missing) the dictionary database at dsn
// and applies migrations.
func OpenSQLite(dsn string, logger zerolog.Logger) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db, log: logger}, nil
}

// openDB ensures the parent directory exists and configures the connection.
func openDB(dsn string) (*sql.DB, error) {
	memory := dsn == ":memory:"
	if !memory {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if memory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies embedded migrations in lexical order inside one
// transaction each, skipping files already recorded in _migrations.
func migrate(db *sql.DB, logger zerolog.Logger) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			logger.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		logger.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Import inserts words for locale in a single transaction. Existing rows are
// left untouched. Returns the number of rows actually inserted.
func (d *SQLite) Import(ctx context.Context, locale string, words []string) (int, error) {
	key := normalize.Locale(locale)

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (locale, word) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range words {
		w = normalize.Word(w, locale)
		if w == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, key, w)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	d.log.Info().Str("locale", key).Int("inserted", inserted).Int("submitted", len(words)).Msg("dictionary import")
	return inserted, nil
}

// Count returns the number of words stored for locale.
func (d *SQLite) Count(ctx context.Context, locale string) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM words WHERE locale=?`, normalize.Locale(locale),
	).Scan(&n)
	return n, err
}

// IsRealWord reports whether word is stored for locale. Query failures are
// logged and reported as not real.
func (d *SQLite) IsRealWord(word, locale string) bool {
	w := normalize.Word(word, locale)
	if w == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var one int
	err := d.db.QueryRowContext(ctx,
		`SELECT 1 FROM words WHERE locale=? AND word=?`, normalize.Locale(locale), w,
	).Scan(&one)
	switch {
	case err == nil:
		return true
	case errors.Is(err, sql.ErrNoRows):
		return false
	default:
		d.log.Error().Err(err).Str("word", w).Msg("dictionary lookup")
		return false
	}
}

// Close releases the database handle.
func (d *SQLite) Close() error { return d.db.Close() }

// Seed imports words only when locale has no rows yet.
func (d *SQLite) Seed(ctx context.Context, locale string, words []string) error {
	n, err := d.Count(ctx, locale)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if n > 0 {
		d.log.Debug().Str("locale", normalize.Locale(locale)).Int("words", n).Msg("dictionary already seeded")
		return nil
	}
	_, err = d.Import(ctx, locale, words)
	return err
}
