package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainButlerKey = "main_butler"

type ButlerRepo struct {
	db DBTX
}

func NewButlerRepo(db DBTX) *ButlerRepo {
	return &ButlerRepo{db: db}
}

func (r *ButlerRepo) Get(ctx context.Context, key string) (*Butler, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, name, age, appearance, personality, description
		FROM butler
		WHERE key = ?
	`, key)

	var b Butler
	if err := row.Scan(&b.Key, &b.Name, &b.Age, &b.Appearance, &b.Personality, &b.Description); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("butler get: %w", err)
	}
	return &b, nil
}

func (r *ButlerRepo) Upsert(ctx context.Context, b *Butler) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO butler (key, name, age, appearance, personality, description)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			appearance = excluded.appearance,
			personality = excluded.personality,
			description = excluded.description
	`, b.Key, b.Name, b.Age, b.Appearance, b.Personality, b.Description)
	if err != nil {
		return fmt.Errorf("butler upsert: %w", err)
	}
	return nil
}
