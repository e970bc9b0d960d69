package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type DecorationRepo struct {
	db DBTX
}

func NewDecorationRepo(db DBTX) *DecorationRepo {
	return &DecorationRepo{db: db}
}

// EnsureExists inserts a catalog decoration if it is not already present.
// Existing rows keep their EXP.
func (r *DecorationRepo) EnsureExists(ctx context.Context, name, room string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO decorations (name, room) VALUES (?, ?)
		ON CONFLICT(name, room) DO NOTHING
	`, name, room)
	if err != nil {
		return fmt.Errorf("decoration ensure: %w", err)
	}
	return nil
}

func (r *DecorationRepo) Get(ctx context.Context, id int64) (*Decoration, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, room, exp FROM decorations WHERE id = ?`, id)
	return scanDecoration(row)
}

func (r *DecorationRepo) GetByName(ctx context.Context, name string) (*Decoration, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, room, exp FROM decorations
		WHERE name = ? COLLATE NOCASE
		ORDER BY id ASC
		LIMIT 1
	`, name)
	return scanDecoration(row)
}

func (r *DecorationRepo) ListAll(ctx context.Context) ([]Decoration, error) {
	return r.list(ctx, `SELECT id, name, room, exp FROM decorations ORDER BY id ASC`)
}

// ListFree returns decorations not currently owned by any habit.
func (r *DecorationRepo) ListFree(ctx context.Context) ([]Decoration, error) {
	return r.list(ctx, `
		SELECT id, name, room, exp FROM decorations
		WHERE id NOT IN (SELECT decoration_id FROM habits)
		ORDER BY id ASC
	`)
}

// InUse reports whether a habit currently owns the decoration.
func (r *DecorationRepo) InUse(ctx context.Context, id int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM habits WHERE decoration_id = ? LIMIT 1`, id)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("decoration in use: %w", err)
	}
	return true, nil
}

func (r *DecorationRepo) UpdateEXP(ctx context.Context, id int64, exp int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE decorations SET exp = ? WHERE id = ?`, exp, id)
	if err != nil {
		return fmt.Errorf("decoration update exp: %w", err)
	}
	return nil
}

// Reset zeroes a decoration's EXP when its owning habit is deleted and the
// decoration returns to the pool.
func (r *DecorationRepo) Reset(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE decorations SET exp = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("decoration reset: %w", err)
	}
	return nil
}

func (r *DecorationRepo) list(ctx context.Context, query string, args ...any) ([]Decoration, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("decoration list: %w", err)
	}
	defer rows.Close()

	var out []Decoration
	for rows.Next() {
		d, err := scanDecoration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("decoration rows: %w", err)
	}
	return out, nil
}

func scanDecoration(row scanner) (*Decoration, error) {
	var d Decoration
	if err := row.Scan(&d.ID, &d.Name, &d.Room, &d.EXP); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("decoration scan: %w", err)
	}
	return &d, nil
}
