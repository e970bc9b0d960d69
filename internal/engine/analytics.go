package engine

import (
	"time"

	"hearth/internal/storage"
)

// Analytics are pure functions over a habit snapshot (as returned by
// HabitRepo.ListAll, ordered by creation time). Every query is defined on
// the empty snapshot.

// LongestStreakOverall returns the habit holding the longest streak record.
// Ties go to the earliest-created habit; ok is false on an empty snapshot.
func LongestStreakOverall(habits []storage.Habit) (storage.Habit, int, bool) {
	if len(habits) == 0 {
		return storage.Habit{}, 0, false
	}
	best := habits[0]
	for _, h := range habits[1:] {
		// Strictly greater keeps the earliest-created winner on ties.
		if h.LongestStreak > best.LongestStreak {
			best = h
		}
	}
	return best, best.LongestStreak, true
}

// HabitsByPeriodicity filters the snapshot down to one cadence, preserving
// creation order.
func HabitsByPeriodicity(habits []storage.Habit, p Periodicity) []storage.Habit {
	var out []storage.Habit
	for _, h := range habits {
		if h.Periodicity == string(p) {
			out = append(out, h)
		}
	}
	return out
}

// CurrentlyFailing returns habits that, as of now, have already missed at
// least one full period and have not checked in since. A habit whose current
// bucket is merely due (one bucket behind) is not failing yet. Habits never
// checked in are measured from their creation time.
func CurrentlyFailing(habits []storage.Habit, now time.Time) []storage.Habit {
	var out []storage.Habit
	for _, h := range habits {
		p, err := ParsePeriodicity(h.Periodicity)
		if err != nil {
			continue
		}
		since := h.CreatedAt
		if h.LastCheckIn != nil {
			since = *h.LastCheckIn
		}
		rel, err := Classify(p, since, now)
		if err != nil {
			continue
		}
		if rel.Kind == GapPeriod {
			out = append(out, h)
		}
	}
	return out
}

// AggregateFailCount sums fail counts across the snapshot.
func AggregateFailCount(habits []storage.Habit) int {
	total := 0
	for _, h := range habits {
		total += h.Fails
	}
	return total
}

// MostFailed returns the habit with the highest fail count; ok is false when
// the snapshot is empty or no habit has failed yet.
func MostFailed(habits []storage.Habit) (storage.Habit, bool) {
	var best storage.Habit
	found := false
	for _, h := range habits {
		if h.Fails > 0 && (!found || h.Fails > best.Fails) {
			best = h
			found = true
		}
	}
	return best, found
}
