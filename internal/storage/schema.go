package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decorations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			room TEXT NOT NULL,
			exp INTEGER NOT NULL DEFAULT 0,

			UNIQUE(name, room)
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			periodicity TEXT NOT NULL,

			created_at DATETIME NOT NULL,
			last_check_in DATETIME,

			streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			fails INTEGER NOT NULL DEFAULT 0,

			decoration_id INTEGER NOT NULL,

			FOREIGN KEY(decoration_id) REFERENCES decorations(id)
		);`,
		// Append-only log of successful check-ins; backs auditing and the
		// dashboard history view.
		`CREATE TABLE IF NOT EXISTS check_ins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			habit_id INTEGER NOT NULL,
			checked_at DATETIME NOT NULL,
			exp_awarded INTEGER NOT NULL,
			missed INTEGER NOT NULL DEFAULT 0,

			FOREIGN KEY(habit_id) REFERENCES habits(id)
		);`,
		`CREATE TABLE IF NOT EXISTS butler (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			appearance TEXT NOT NULL,
			personality TEXT NOT NULL,
			description TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_habits_periodicity ON habits(periodicity);`,
		`CREATE INDEX IF NOT EXISTS idx_habits_decoration_id ON habits(decoration_id);`,
		`CREATE INDEX IF NOT EXISTS idx_check_ins_habit_id_checked_at ON check_ins(habit_id, checked_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
