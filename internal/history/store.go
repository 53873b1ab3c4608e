// Package history persists past conversions and generated signs in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/san-kum/brailler/internal/gateway"
	"github.com/san-kum/brailler/internal/history/migrations"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound     = errors.New("history: record not found")
	ErrNotOpen      = errors.New("history: store is not open")
	ErrInvalidEntry = errors.New("history: invalid entry")
)

// Entry is one stored conversion.
type Entry struct {
	ID        int64             `json:"id"`
	Original  string            `json:"original"`
	Result    string            `json:"result"`
	Direction gateway.Direction `json:"direction"`
	Source    gateway.Source    `json:"source"`
	Elapsed   time.Duration     `json:"elapsed"`
	CreatedAt time.Time         `json:"created_at"`
}

// FromResult turns a gateway result into an entry stamped now.
func FromResult(r gateway.Result) Entry {
	return Entry{
		Original:  r.Original,
		Result:    r.Output,
		Direction: r.Direction,
		Source:    r.Source,
		Elapsed:   r.Elapsed,
		CreatedAt: time.Now().UTC(),
	}
}

// Stats summarizes the stored conversions.
type Stats struct {
	Total          int `json:"total"`
	TextToBraille  int `json:"text_to_braille"`
	BrailleToText  int `json:"braille_to_text"`
	CharsConverted int `json:"chars_converted"`
}

// DayCount is the number of conversions on one UTC day.
type DayCount struct {
	Day   time.Time
	Count int
}

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func toMillis(t time.Time) int64   { return t.UTC().UnixMilli() }
func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dsn := "file:" + clean + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Debug("history store opened", "path", clean)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return ErrNotOpen
	}
	return nil
}

// Save inserts e and returns its id.
func (s *Store) Save(ctx context.Context, e Entry) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if _, err := gateway.ParseDirection(string(e.Direction)); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	if e.Original == "" {
		return 0, fmt.Errorf("%w: original text is required", ErrInvalidEntry)
	}
	if e.Source == "" {
		e.Source = gateway.SourceLocal
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (
		   original, result, direction, source,
		   original_len, result_len, elapsed_us, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Original,
		e.Result,
		string(e.Direction),
		string(e.Source),
		utf8.RuneCountInString(e.Original),
		utf8.RuneCountInString(e.Result),
		e.Elapsed.Microseconds(),
		toMillis(e.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("save conversion: %w", err)
	}
	return res.LastInsertId()
}

const entryColumns = `id, original, result, direction, source, elapsed_us, created_at`

// List returns the newest entries first. limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+`
		   FROM conversions
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	return scanEntries(rows)
}

// ListByDirection is List filtered to one direction.
func (s *Store) ListByDirection(ctx context.Context, dir gateway.Direction, limit int) ([]Entry, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+`
		   FROM conversions
		  WHERE direction = ?
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		string(dir),
		sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list conversions by direction: %w", err)
	}
	return scanEntries(rows)
}

// Get returns one entry by id.
func (s *Store) Get(ctx context.Context, id int64) (Entry, error) {
	if err := s.ready(ctx); err != nil {
		return Entry{}, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM conversions WHERE id = ?`, id)
	if err != nil {
		return Entry{}, fmt.Errorf("get conversion: %w", err)
	}
	entries, err := scanEntries(rows)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNotFound
	}
	return entries[0], nil
}

// Delete removes one entry.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete conversion: %w", err)
	}
	return requireAffected(res)
}

// Clear removes every conversion and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("clear conversions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	s.logger.Info("history cleared", "deleted", n)
	return n, nil
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	if err := s.ready(ctx); err != nil {
		return Stats{}, err
	}
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(CASE WHEN direction = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN direction = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(original_len), 0)
		   FROM conversions`,
		string(gateway.TextToBraille),
		string(gateway.BrailleToText),
	).Scan(&st.Total, &st.TextToBraille, &st.BrailleToText, &st.CharsConverted)
	if err != nil {
		return Stats{}, fmt.Errorf("conversion stats: %w", err)
	}
	return st, nil
}

// Daily returns one count per UTC day for the days ending at now, oldest
// first, including days without conversions.
func (s *Store) Daily(ctx context.Context, days int, now time.Time) ([]DayCount, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, fmt.Errorf("days must be greater than zero")
	}
	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(days - 1))

	rows, err := s.db.QueryContext(ctx,
		`SELECT (created_at - ?) / 86400000 AS day, COUNT(1)
		   FROM conversions
		  WHERE created_at >= ? AND created_at < ?
		  GROUP BY day`,
		toMillis(start),
		toMillis(start),
		toMillis(end.AddDate(0, 0, 1)),
	)
	if err != nil {
		return nil, fmt.Errorf("daily conversions: %w", err)
	}
	defer rows.Close()

	out := make([]DayCount, days)
	for i := range out {
		out[i].Day = start.AddDate(0, 0, i)
	}
	for rows.Next() {
		var idx int64
		var n int
		if err := rows.Scan(&idx, &n); err != nil {
			return nil, err
		}
		if idx >= 0 && idx < int64(days) {
			out[idx].Count = n
		}
	}
	return out, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var dir, src string
		var elapsedUs, created int64
		if err := rows.Scan(&e.ID, &e.Original, &e.Result, &dir, &src, &elapsedUs, &created); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		e.Direction = gateway.Direction(dir)
		e.Source = gateway.Source(src)
		e.Elapsed = time.Duration(elapsedUs) * time.Microsecond
		e.CreatedAt = fromMillis(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
