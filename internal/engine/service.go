package engine

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"hearth/internal/catalog"
	"hearth/internal/storage"
)

type Service struct {
	db          *sql.DB
	habits      *storage.HabitRepo
	decorations *storage.DecorationRepo
	checkins    *storage.CheckInRepo
	butlers     *storage.ButlerRepo

	cat *catalog.Catalog
	rng *rand.Rand
	log *zap.Logger
}

type Option func(*Service)

// WithCatalog replaces the builtin catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) { s.cat = c }
}

// WithRand injects the random source used for butler generation and canned
// text selection so output is reproducible under a fixed seed.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:          db,
		habits:      storage.NewHabitRepo(db),
		decorations: storage.NewDecorationRepo(db),
		checkins:    storage.NewCheckInRepo(db),
		butlers:     storage.NewButlerRepo(db),
		cat:         catalog.Builtin(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) HabitRepo() *storage.HabitRepo           { return s.habits }
func (s *Service) DecorationRepo() *storage.DecorationRepo { return s.decorations }
func (s *Service) CheckInRepo() *storage.CheckInRepo       { return s.checkins }
func (s *Service) Catalog() *catalog.Catalog               { return s.cat }

// SyncDecorations inserts catalog decorations that are not in the store yet.
// Called once per session before any habit creation.
func (s *Service) SyncDecorations(ctx context.Context) error {
	for _, d := range s.cat.Decorations {
		if err := s.decorations.EnsureExists(ctx, d.Name, d.Room); err != nil {
			return err
		}
	}
	return nil
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("habit name is required")
	}
	return n, nil
}
