package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type HabitRepo struct {
	db DBTX
}

func NewHabitRepo(db DBTX) *HabitRepo {
	return &HabitRepo{db: db}
}

type HabitInsert struct {
	Name         string
	Periodicity  string
	CreatedAt    time.Time
	DecorationID int64
}

func (r *HabitRepo) Insert(ctx context.Context, in HabitInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (name, periodicity, created_at, decoration_id)
		VALUES (?, ?, ?, ?)
	`, in.Name, in.Periodicity, in.CreatedAt, in.DecorationID)
	if err != nil {
		return 0, fmt.Errorf("habit insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("habit last insert id: %w", err)
	}
	return id, nil
}

func (r *HabitRepo) Get(ctx context.Context, id int64) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, periodicity, created_at, last_check_in,
			streak, longest_streak, fails, decoration_id
		FROM habits
		WHERE id = ?
	`, id)
	return scanHabit(row)
}

func (r *HabitRepo) GetByName(ctx context.Context, name string) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, periodicity, created_at, last_check_in,
			streak, longest_streak, fails, decoration_id
		FROM habits
		WHERE name = ? COLLATE NOCASE
	`, name)
	return scanHabit(row)
}

// ListAll returns habits ordered by creation time, which the analytics
// queries rely on for deterministic tie-breaking.
func (r *HabitRepo) ListAll(ctx context.Context) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, periodicity, created_at, last_check_in,
			streak, longest_streak, fails, decoration_id
		FROM habits
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit list rows: %w", err)
	}
	return out, nil
}

// UpdateAfterCheckIn writes the streak counters produced by a successful
// check-in.
func (r *HabitRepo) UpdateAfterCheckIn(ctx context.Context, id int64, checkedAt time.Time, streak, longest, fails int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE habits
		SET last_check_in = ?, streak = ?, longest_streak = ?, fails = ?
		WHERE id = ?
	`, checkedAt, streak, longest, fails, id)
	if err != nil {
		return fmt.Errorf("habit update after check-in: %w", err)
	}
	return nil
}

func (r *HabitRepo) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("habit rename: %w", err)
	}
	return nil
}

func (r *HabitRepo) UpdateDecoration(ctx context.Context, id int64, decorationID int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET decoration_id = ? WHERE id = ?`, decorationID, id)
	if err != nil {
		return fmt.Errorf("habit update decoration: %w", err)
	}
	return nil
}

// UpdatePeriodicity changes the cadence and clears the streak state that no
// longer applies under the new bucket granularity. The longest streak is kept.
func (r *HabitRepo) UpdatePeriodicity(ctx context.Context, id int64, periodicity string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE habits
		SET periodicity = ?, streak = 0, last_check_in = NULL
		WHERE id = ?
	`, periodicity, id)
	if err != nil {
		return fmt.Errorf("habit update periodicity: %w", err)
	}
	return nil
}

func (r *HabitRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("habit delete: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (*Habit, error) {
	var (
		h    Habit
		last sql.NullTime
	)
	if err := row.Scan(
		&h.ID, &h.Name, &h.Periodicity, &h.CreatedAt, &last,
		&h.Streak, &h.LongestStreak, &h.Fails, &h.DecorationID,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit scan: %w", err)
	}
	if last.Valid {
		v := last.Time
		h.LastCheckIn = &v
	}
	return &h, nil
}
