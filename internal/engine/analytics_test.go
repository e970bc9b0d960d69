package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hearth/internal/storage"
)

func snapshot() []storage.Habit {
	last := ts(2026, time.January, 5, 8)
	return []storage.Habit{
		{ID: 1, Name: "running", Periodicity: "daily", CreatedAt: ts(2026, time.January, 1, 8), LastCheckIn: &last, Streak: 3, LongestStreak: 5, Fails: 2},
		{ID: 2, Name: "laundry", Periodicity: "weekly", CreatedAt: ts(2026, time.January, 2, 8), LastCheckIn: &last, Streak: 1, LongestStreak: 5, Fails: 0},
		{ID: 3, Name: "budget", Periodicity: "monthly", CreatedAt: ts(2026, time.January, 3, 8), Streak: 0, LongestStreak: 2, Fails: 7},
	}
}

func TestLongestStreakOverall(t *testing.T) {
	habits := snapshot()

	best, streak, ok := LongestStreakOverall(habits)
	assert.True(t, ok)
	assert.Equal(t, 5, streak)
	// Earliest-created habit wins the tie.
	assert.Equal(t, "running", best.Name)

	_, _, ok = LongestStreakOverall(nil)
	assert.False(t, ok)
}

func TestHabitsByPeriodicity(t *testing.T) {
	habits := snapshot()

	daily := HabitsByPeriodicity(habits, PeriodicityDaily)
	assert.Len(t, daily, 1)
	assert.Equal(t, "running", daily[0].Name)

	assert.Empty(t, HabitsByPeriodicity(habits, PeriodicityYearly))
	assert.Empty(t, HabitsByPeriodicity(nil, PeriodicityDaily))
}

func TestCurrentlyFailing(t *testing.T) {
	habits := snapshot()

	// One day after the last check-in: the daily habit is due, not failing.
	var names []string
	for _, h := range CurrentlyFailing(habits, ts(2026, time.January, 6, 8)) {
		names = append(names, h.Name)
	}
	assert.Empty(t, names)

	// Three days later the daily habit has skipped full days; the weekly one
	// is still inside its next week, and the monthly one (never checked,
	// created in January) is still within reach of February.
	names = nil
	for _, h := range CurrentlyFailing(habits, ts(2026, time.January, 8, 8)) {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"running"}, names)

	// By mid-March everything has lapsed.
	names = nil
	for _, h := range CurrentlyFailing(habits, ts(2026, time.March, 15, 8)) {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"running", "laundry", "budget"}, names)
}

func TestAggregateFailCount(t *testing.T) {
	assert.Equal(t, 9, AggregateFailCount(snapshot()))
	assert.Equal(t, 0, AggregateFailCount(nil))
}

func TestMostFailed(t *testing.T) {
	worst, ok := MostFailed(snapshot())
	assert.True(t, ok)
	assert.Equal(t, "budget", worst.Name)

	_, ok = MostFailed(nil)
	assert.False(t, ok)

	clean := []storage.Habit{{Name: "running", Fails: 0}}
	_, ok = MostFailed(clean)
	assert.False(t, ok)
}
