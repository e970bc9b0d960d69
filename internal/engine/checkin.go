package engine

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"hearth/internal/storage"
)

type CheckInResult struct {
	HabitID        int64
	AlreadyChecked bool

	StreakBefore  int
	StreakAfter   int
	LongestStreak int
	RecordBeaten  bool
	Missed        int

	EXPAwarded   int
	EXPTotal     int
	TierBefore   Tier
	TierAfter    Tier
	TierUpgraded bool
}

// CheckIn applies a check-in event at time at. It is idempotent within a
// period bucket and is the only mutation path for streak counters and
// decoration EXP. On any error the store is left unchanged.
func (s *Service) CheckIn(ctx context.Context, id int64, at time.Time) (*CheckInResult, error) {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, NotFoundError{ID: id}
	}
	p, err := ParsePeriodicity(h.Periodicity)
	if err != nil {
		return nil, err
	}
	d, err := s.decorations.Get(ctx, h.DecorationID)
	if err != nil {
		return nil, err
	}

	// A habit that was never checked in starts its first streak here.
	rel := Relation{Kind: NextPeriod, Distance: 1}
	if h.LastCheckIn != nil {
		rel, err = Classify(p, *h.LastCheckIn, at)
		if err != nil {
			return nil, err
		}
	}

	res := &CheckInResult{
		HabitID:       id,
		StreakBefore:  h.Streak,
		StreakAfter:   h.Streak,
		LongestStreak: h.LongestStreak,
		EXPTotal:      d.EXP,
		TierBefore:    TierForEXP(d.EXP),
		TierAfter:     TierForEXP(d.EXP),
	}

	if rel.Kind == SamePeriod {
		res.AlreadyChecked = true
		return res, nil
	}

	streak := h.Streak + 1
	fails := h.Fails
	if rel.Kind == GapPeriod {
		res.Missed = rel.Missed()
		fails += res.Missed
		streak = 1
	}
	longest := h.LongestStreak
	if streak > longest {
		longest = streak
		res.RecordBeaten = rel.Kind == NextPeriod
	}

	exp := p.EXPValue()
	newEXP := d.EXP + exp

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		habits := storage.NewHabitRepo(tx)
		decorations := storage.NewDecorationRepo(tx)
		checkins := storage.NewCheckInRepo(tx)

		if err := habits.UpdateAfterCheckIn(ctx, id, at, streak, longest, fails); err != nil {
			return err
		}
		if err := decorations.UpdateEXP(ctx, d.ID, newEXP); err != nil {
			return err
		}
		_, err := checkins.Insert(ctx, id, at, exp, res.Missed)
		return err
	})
	if err != nil {
		return nil, err
	}

	res.StreakAfter = streak
	res.LongestStreak = longest
	res.EXPAwarded = exp
	res.EXPTotal = newEXP
	res.TierAfter = TierForEXP(newEXP)
	res.TierUpgraded = res.TierAfter != res.TierBefore

	s.log.Info("habit checked in",
		zap.Int64("habit_id", id),
		zap.String("habit", h.Name),
		zap.Int("streak", streak),
		zap.Int("missed", res.Missed),
		zap.Int("exp", newEXP),
	)
	if res.TierUpgraded {
		s.log.Info("decoration upgraded",
			zap.String("decoration", d.Name),
			zap.String("tier", res.TierAfter.String()),
		)
	}
	return res, nil
}
