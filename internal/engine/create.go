package engine

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"hearth/internal/storage"
)

type CreateHabitInput struct {
	Name        string
	Periodicity Periodicity
	// Decoration is the catalog name of the decoration to attach. Empty picks
	// the first free one.
	Decoration string
}

type CreateResult struct {
	HabitID    int64
	Decoration storage.Decoration
}

func (s *Service) CreateHabit(ctx context.Context, in CreateHabitInput) (*CreateResult, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	if !in.Periodicity.IsValid() {
		return nil, InvalidPeriodicityError{Input: string(in.Periodicity)}
	}
	if err := s.SyncDecorations(ctx); err != nil {
		return nil, err
	}

	existing, err := s.habits.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, DuplicateNameError{Name: name}
	}

	decor, err := s.pickDecoration(ctx, in.Decoration)
	if err != nil {
		return nil, err
	}

	id, err := s.habits.Insert(ctx, storage.HabitInsert{
		Name:         name,
		Periodicity:  string(in.Periodicity),
		CreatedAt:    time.Now().UTC(),
		DecorationID: decor.ID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("habit created",
		zap.Int64("habit_id", id),
		zap.String("habit", name),
		zap.String("periodicity", string(in.Periodicity)),
		zap.String("decoration", decor.Name),
	)
	return &CreateResult{HabitID: id, Decoration: *decor}, nil
}

func (s *Service) pickDecoration(ctx context.Context, name string) (*storage.Decoration, error) {
	if name != "" {
		d, err := s.decorations.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, EmptyDecorationPoolError{}
		}
		used, err := s.decorations.InUse(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, DecorationInUseError{Name: d.Name}
		}
		return d, nil
	}

	free, err := s.decorations.ListFree(ctx)
	if err != nil {
		return nil, err
	}
	if len(free) == 0 {
		return nil, EmptyDecorationPoolError{}
	}
	return &free[0], nil
}

func (s *Service) RenameHabit(ctx context.Context, id int64, newName string) error {
	name, err := normalizeName(newName)
	if err != nil {
		return err
	}
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return NotFoundError{ID: id}
	}
	other, err := s.habits.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != id {
		return DuplicateNameError{Name: name}
	}
	return s.habits.Rename(ctx, id, name)
}

// ChangeDecoration swaps the habit onto a free decoration and releases the
// old one back to the pool.
func (s *Service) ChangeDecoration(ctx context.Context, id int64, decoration string) error {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return NotFoundError{ID: id}
	}
	next, err := s.pickDecoration(ctx, decoration)
	if err != nil {
		return err
	}
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		habits := storage.NewHabitRepo(tx)
		decorations := storage.NewDecorationRepo(tx)
		if err := habits.UpdateDecoration(ctx, id, next.ID); err != nil {
			return err
		}
		return decorations.Reset(ctx, h.DecorationID)
	})
}

// ChangePeriodicity switches the habit's cadence. The current streak and
// last check-in are cleared because history under the old bucket size no
// longer applies; the longest streak stays as an earned record.
func (s *Service) ChangePeriodicity(ctx context.Context, id int64, p Periodicity) error {
	if !p.IsValid() {
		return InvalidPeriodicityError{Input: string(p)}
	}
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return NotFoundError{ID: id}
	}
	if h.Periodicity == string(p) {
		return nil
	}
	s.log.Info("habit periodicity changed",
		zap.Int64("habit_id", id),
		zap.String("from", h.Periodicity),
		zap.String("to", string(p)),
	)
	return s.habits.UpdatePeriodicity(ctx, id, string(p))
}

// DeleteHabit removes the habit along with its check-in log and releases the
// decoration back to the pool with its EXP reset.
func (s *Service) DeleteHabit(ctx context.Context, id int64) error {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return NotFoundError{ID: id}
	}
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		habits := storage.NewHabitRepo(tx)
		decorations := storage.NewDecorationRepo(tx)
		checkins := storage.NewCheckInRepo(tx)
		if err := checkins.DeleteByHabit(ctx, id); err != nil {
			return err
		}
		if err := habits.Delete(ctx, id); err != nil {
			return err
		}
		return decorations.Reset(ctx, h.DecorationID)
	})
	if err != nil {
		return err
	}
	s.log.Info("habit deleted", zap.Int64("habit_id", id), zap.String("habit", h.Name))
	return nil
}
