package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// SignRecord is a stored placard.
type SignRecord struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Text         string     `json:"text"`
	Braille      string     `json:"braille"`
	HighContrast bool       `json:"high_contrast"`
	Downloads    int        `json:"downloads"`
	CreatedAt    time.Time  `json:"created_at"`
	LastDownload *time.Time `json:"last_download,omitempty"`
}

const signColumns = `id, title, text, braille, high_contrast, downloads, created_at, last_download`

func (s *Store) CreateSign(ctx context.Context, sign SignRecord) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	title := strings.TrimSpace(sign.Title)
	if title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrInvalidEntry)
	}
	if strings.TrimSpace(sign.Text) == "" {
		return 0, fmt.Errorf("%w: text is required", ErrInvalidEntry)
	}
	if sign.CreatedAt.IsZero() {
		sign.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO signs (title, text, braille, high_contrast, downloads, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		title,
		sign.Text,
		sign.Braille,
		sign.HighContrast,
		toMillis(sign.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create sign: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetSign(ctx context.Context, id int64) (SignRecord, error) {
	if err := s.ready(ctx); err != nil {
		return SignRecord{}, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+signColumns+` FROM signs WHERE id = ?`, id)
	if err != nil {
		return SignRecord{}, fmt.Errorf("get sign: %w", err)
	}
	signs, err := scanSigns(rows)
	if err != nil {
		return SignRecord{}, err
	}
	if len(signs) == 0 {
		return SignRecord{}, ErrNotFound
	}
	return signs[0], nil
}

// ListSigns returns signs newest first.
func (s *Store) ListSigns(ctx context.Context) ([]SignRecord, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+signColumns+` FROM signs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list signs: %w", err)
	}
	return scanSigns(rows)
}

// PopularSigns returns the most downloaded signs.
func (s *Store) PopularSigns(ctx context.Context, limit int) ([]SignRecord, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+signColumns+`
		   FROM signs
		  ORDER BY downloads DESC, id ASC
		  LIMIT ?`,
		sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("popular signs: %w", err)
	}
	return scanSigns(rows)
}

// RecordDownload bumps the download counter of a sign.
func (s *Store) RecordDownload(ctx context.Context, id int64, at time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE signs SET downloads = downloads + 1, last_download = ? WHERE id = ?`,
		toMillis(at), id)
	if err != nil {
		return fmt.Errorf("record download: %w", err)
	}
	return requireAffected(res)
}

func (s *Store) DeleteSign(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM signs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sign: %w", err)
	}
	return requireAffected(res)
}

func scanSigns(rows *sql.Rows) ([]SignRecord, error) {
	defer rows.Close()
	signs := make([]SignRecord, 0)
	for rows.Next() {
		var r SignRecord
		var created int64
		var last sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Title, &r.Text, &r.Braille, &r.HighContrast,
			&r.Downloads, &created, &last); err != nil {
			return nil, fmt.Errorf("scan sign: %w", err)
		}
		r.CreatedAt = fromMillis(created)
		if last.Valid {
			t := fromMillis(last.Int64)
			r.LastDownload = &t
		}
		signs = append(signs, r)
	}
	return signs, rows.Err()
}
