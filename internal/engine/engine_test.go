package engine

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"hearth/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, WithRand(rand.New(rand.NewSource(1))))
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func mustCreate(t *testing.T, svc *Service, name string, p Periodicity) int64 {
	t.Helper()
	res, err := svc.CreateHabit(context.Background(), CreateHabitInput{Name: name, Periodicity: p})
	if err != nil {
		t.Fatalf("CreateHabit(%q): %v", name, err)
	}
	return res.HabitID
}

func day(d int) time.Time {
	return time.Date(2026, 1, 5+d, 10, 0, 0, 0, time.UTC)
}

func TestFirstCheckInStartsStreak(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)

	res, err := svc.CheckIn(ctx, id, day(0))
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if res.StreakAfter != 1 {
		t.Fatalf("streak=%d, want 1", res.StreakAfter)
	}
	if res.LongestStreak != 1 {
		t.Fatalf("longest=%d, want 1", res.LongestStreak)
	}
	if res.EXPAwarded != PeriodicityDaily.EXPValue() {
		t.Fatalf("exp=%d, want %d", res.EXPAwarded, PeriodicityDaily.EXPValue())
	}
}

func TestCheckInIdempotentWithinPeriod(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)

	if _, err := svc.CheckIn(ctx, id, day(0)); err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	res, err := svc.CheckIn(ctx, id, day(0).Add(5*time.Hour))
	if err != nil {
		t.Fatalf("repeat check-in: %v", err)
	}
	if !res.AlreadyChecked {
		t.Fatalf("expected AlreadyChecked on same-day repeat")
	}
	if res.EXPAwarded != 0 {
		t.Fatalf("repeat awarded exp=%d, want 0", res.EXPAwarded)
	}

	h, err := svc.HabitRepo().Get(ctx, id)
	if err != nil {
		t.Fatalf("get habit: %v", err)
	}
	if h.Streak != 1 || h.Fails != 0 {
		t.Fatalf("streak=%d fails=%d after repeat, want 1/0", h.Streak, h.Fails)
	}
}

func TestConsecutiveCheckInExtendsStreak(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)

	for i := 0; i < 3; i++ {
		res, err := svc.CheckIn(ctx, id, day(i))
		if err != nil {
			t.Fatalf("check-in day %d: %v", i, err)
		}
		if res.StreakAfter != i+1 {
			t.Fatalf("streak after day %d=%d, want %d", i, res.StreakAfter, i+1)
		}
		if res.LongestStreak != i+1 {
			t.Fatalf("longest after day %d=%d, want %d", i, res.LongestStreak, i+1)
		}
	}
}

func TestGapAccountingResetsStreakAndCountsFails(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)

	if _, err := svc.CheckIn(ctx, id, day(0)); err != nil {
		t.Fatalf("check-in day 0: %v", err)
	}
	res, err := svc.CheckIn(ctx, id, day(3))
	if err != nil {
		t.Fatalf("check-in day 3: %v", err)
	}
	if res.Missed != 2 {
		t.Fatalf("missed=%d, want 2", res.Missed)
	}
	if res.StreakAfter != 1 {
		t.Fatalf("streak=%d, want 1", res.StreakAfter)
	}
	if res.EXPAwarded == 0 {
		t.Fatalf("gap check-in should still award exp")
	}

	h, err := svc.HabitRepo().Get(ctx, id)
	if err != nil {
		t.Fatalf("get habit: %v", err)
	}
	if h.Fails != 2 {
		t.Fatalf("fails=%d, want 2", h.Fails)
	}
	if h.LongestStreak != 1 {
		t.Fatalf("longest=%d, want 1", h.LongestStreak)
	}
}

func TestLongestStreakNeverBelowCurrent(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)

	days := []int{0, 1, 2, 5, 6, 7, 8}
	for _, d := range days {
		if _, err := svc.CheckIn(ctx, id, day(d)); err != nil {
			t.Fatalf("check-in day %d: %v", d, err)
		}
		h, err := svc.HabitRepo().Get(ctx, id)
		if err != nil {
			t.Fatalf("get habit: %v", err)
		}
		if h.LongestStreak < h.Streak {
			t.Fatalf("longest %d < current %d", h.LongestStreak, h.Streak)
		}
	}

	h, _ := svc.HabitRepo().Get(ctx, id)
	if h.Streak != 4 {
		t.Fatalf("final streak=%d, want 4", h.Streak)
	}
	if h.LongestStreak != 4 {
		t.Fatalf("final longest=%d, want 4", h.LongestStreak)
	}
}

func TestNonMonotonicCheckInRejected(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)

	if _, err := svc.CheckIn(ctx, id, day(2)); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	_, err := svc.CheckIn(ctx, id, day(1))
	var invalid InvalidTimestampError
	if !errors.As(err, &invalid) {
		t.Fatalf("err=%v, want InvalidTimestampError", err)
	}

	h, _ := svc.HabitRepo().Get(ctx, id)
	if h.Streak != 1 || h.Fails != 0 {
		t.Fatalf("store mutated by rejected check-in: streak=%d fails=%d", h.Streak, h.Fails)
	}
}

func TestTierUpgradeReported(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Weekly check-ins award 8 EXP; the second one crosses the Worn
	// threshold at 16.
	id := mustCreate(t, svc, "laundry", PeriodicityWeekly)

	res1, err := svc.CheckIn(ctx, id, day(0))
	if err != nil {
		t.Fatalf("check-in week 1: %v", err)
	}
	if res1.TierUpgraded {
		t.Fatalf("unexpected upgrade at %d exp", res1.EXPTotal)
	}

	res2, err := svc.CheckIn(ctx, id, day(7))
	if err != nil {
		t.Fatalf("check-in week 2: %v", err)
	}
	if !res2.TierUpgraded {
		t.Fatalf("expected upgrade after 16 exp, tier=%s", res2.TierAfter)
	}
	if res2.TierBefore != TierOld || res2.TierAfter != TierWorn {
		t.Fatalf("tier %s → %s, want Old → Worn", res2.TierBefore, res2.TierAfter)
	}
}

func TestDuplicateNameRejectedAndStoreUnchanged(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	mustCreate(t, svc, "running", PeriodicityDaily)

	before, err := svc.HabitRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	_, err = svc.CreateHabit(ctx, CreateHabitInput{Name: "Running", Periodicity: PeriodicityWeekly})
	var dup DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("err=%v, want DuplicateNameError", err)
	}

	after, err := svc.HabitRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("habit count changed %d → %d on rejected create", len(before), len(after))
	}
}

func TestDeleteReleasesDecoration(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "running", Periodicity: PeriodicityDaily, Decoration: "Sofa"})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	// Occupied decorations cannot back a second habit.
	_, err = svc.CreateHabit(ctx, CreateHabitInput{Name: "reading", Periodicity: PeriodicityDaily, Decoration: "Sofa"})
	var inUse DecorationInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("err=%v, want DecorationInUseError", err)
	}

	if _, err := svc.CheckIn(ctx, res.HabitID, day(0)); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if err := svc.DeleteHabit(ctx, res.HabitID); err != nil {
		t.Fatalf("DeleteHabit: %v", err)
	}

	res2, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "reading", Periodicity: PeriodicityDaily, Decoration: "Sofa"})
	if err != nil {
		t.Fatalf("reuse released decoration: %v", err)
	}
	if res2.Decoration.EXP != 0 {
		t.Fatalf("released decoration kept %d exp, want 0", res2.Decoration.EXP)
	}
}

func TestDeleteUnknownHabit(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	err := svc.DeleteHabit(context.Background(), 42)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestChangePeriodicityResetsCurrentStreakOnly(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)
	for i := 0; i < 3; i++ {
		if _, err := svc.CheckIn(ctx, id, day(i)); err != nil {
			t.Fatalf("check-in day %d: %v", i, err)
		}
	}

	if err := svc.ChangePeriodicity(ctx, id, PeriodicityWeekly); err != nil {
		t.Fatalf("ChangePeriodicity: %v", err)
	}

	h, err := svc.HabitRepo().Get(ctx, id)
	if err != nil {
		t.Fatalf("get habit: %v", err)
	}
	if h.Streak != 0 {
		t.Fatalf("streak=%d after periodicity change, want 0", h.Streak)
	}
	if h.LongestStreak != 3 {
		t.Fatalf("longest=%d after periodicity change, want 3", h.LongestStreak)
	}
	if h.LastCheckIn != nil {
		t.Fatalf("last check-in not cleared")
	}

	// The next check-in starts a fresh streak under the new cadence.
	res, err := svc.CheckIn(ctx, id, day(10))
	if err != nil {
		t.Fatalf("check-in after change: %v", err)
	}
	if res.StreakAfter != 1 {
		t.Fatalf("streak=%d, want 1", res.StreakAfter)
	}
}

func TestCheckInLogRecorded(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)

	if _, err := svc.CheckIn(ctx, id, day(0)); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if _, err := svc.CheckIn(ctx, id, day(0).Add(time.Hour)); err != nil {
		t.Fatalf("repeat check-in: %v", err)
	}
	if _, err := svc.CheckIn(ctx, id, day(3)); err != nil {
		t.Fatalf("gap check-in: %v", err)
	}

	log, err := svc.CheckInRepo().ListByHabit(ctx, id)
	if err != nil {
		t.Fatalf("list check-ins: %v", err)
	}
	if len(log) != 2 {
		t.Fatalf("log entries=%d, want 2 (repeat must not log)", len(log))
	}
	if log[1].Missed != 2 {
		t.Fatalf("logged missed=%d, want 2", log[1].Missed)
	}
}
