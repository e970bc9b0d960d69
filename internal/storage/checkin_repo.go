package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type CheckInRepo struct {
	db DBTX
}

func NewCheckInRepo(db DBTX) *CheckInRepo {
	return &CheckInRepo{db: db}
}

func (r *CheckInRepo) Insert(ctx context.Context, habitID int64, checkedAt time.Time, expAwarded, missed int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO check_ins (habit_id, checked_at, exp_awarded, missed)
		VALUES (?, ?, ?, ?)
	`, habitID, checkedAt, expAwarded, missed)
	if err != nil {
		return 0, fmt.Errorf("check-in insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("check-in last insert id: %w", err)
	}
	return id, nil
}

func (r *CheckInRepo) ListByHabit(ctx context.Context, habitID int64) ([]CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, habit_id, checked_at, exp_awarded, missed
		FROM check_ins
		WHERE habit_id = ?
		ORDER BY checked_at ASC
	`, habitID)
	if err != nil {
		return nil, fmt.Errorf("check-in list: %w", err)
	}
	defer rows.Close()

	var out []CheckIn
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(&c.ID, &c.HabitID, &c.CheckedAt, &c.EXPAwarded, &c.Missed); err != nil {
			return nil, fmt.Errorf("check-in scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("check-in rows: %w", err)
	}
	return out, nil
}

func (r *CheckInRepo) Last(ctx context.Context, habitID int64) (*CheckIn, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, habit_id, checked_at, exp_awarded, missed
		FROM check_ins
		WHERE habit_id = ?
		ORDER BY checked_at DESC
		LIMIT 1
	`, habitID)
	var c CheckIn
	if err := row.Scan(&c.ID, &c.HabitID, &c.CheckedAt, &c.EXPAwarded, &c.Missed); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("check-in last: %w", err)
	}
	return &c, nil
}

func (r *CheckInRepo) DeleteByHabit(ctx context.Context, habitID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM check_ins WHERE habit_id = ?`, habitID)
	if err != nil {
		return fmt.Errorf("check-in delete by habit: %w", err)
	}
	return nil
}
