package engine

import (
	"context"
	"errors"
	"testing"
)

func TestCreateHabitRejectsBadInput(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "   ", Periodicity: PeriodicityDaily}); err == nil {
		t.Fatalf("blank name accepted")
	}

	_, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "running", Periodicity: "fortnightly"})
	var invalid InvalidPeriodicityError
	if !errors.As(err, &invalid) {
		t.Fatalf("err=%v, want InvalidPeriodicityError", err)
	}
}

func TestCreateHabitTrimsName(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "  running  ", Periodicity: PeriodicityDaily})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	h, err := svc.HabitRepo().Get(ctx, res.HabitID)
	if err != nil {
		t.Fatalf("get habit: %v", err)
	}
	if h.Name != "running" {
		t.Fatalf("name=%q, want trimmed", h.Name)
	}
}

func TestCreateHabitAssignsFreeDecoration(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "running", Periodicity: PeriodicityDaily})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	if res.Decoration.Name == "" {
		t.Fatalf("no decoration assigned: %+v", res)
	}

	res2, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "reading", Periodicity: PeriodicityDaily})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	if res2.Decoration.ID == res.Decoration.ID {
		t.Fatalf("two habits share decoration %q", res.Decoration.Name)
	}
}

func TestCreateHabitExhaustsPool(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	pool := len(svc.Catalog().Decorations)
	for i := 0; i < pool; i++ {
		name := string(rune('a'+i)) + "-habit"
		if _, err := svc.CreateHabit(ctx, CreateHabitInput{Name: name, Periodicity: PeriodicityDaily}); err != nil {
			t.Fatalf("CreateHabit %d: %v", i, err)
		}
	}

	_, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "overflow", Periodicity: PeriodicityDaily})
	var empty EmptyDecorationPoolError
	if !errors.As(err, &empty) {
		t.Fatalf("err=%v, want EmptyDecorationPoolError", err)
	}
}

func TestCreateHabitUnknownDecoration(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.CreateHabit(context.Background(), CreateHabitInput{Name: "running", Periodicity: PeriodicityDaily, Decoration: "Jacuzzi"})
	var empty EmptyDecorationPoolError
	if !errors.As(err, &empty) {
		t.Fatalf("err=%v, want EmptyDecorationPoolError", err)
	}
}

func TestRenameHabit(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	id := mustCreate(t, svc, "running", PeriodicityDaily)
	mustCreate(t, svc, "reading", PeriodicityDaily)

	if err := svc.RenameHabit(ctx, id, "jogging"); err != nil {
		t.Fatalf("RenameHabit: %v", err)
	}
	h, _ := svc.HabitRepo().Get(ctx, id)
	if h.Name != "jogging" {
		t.Fatalf("name=%q, want jogging", h.Name)
	}

	// Renaming onto another habit's name is rejected, case-insensitively.
	err := svc.RenameHabit(ctx, id, "Reading")
	var dup DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("err=%v, want DuplicateNameError", err)
	}

	// Renaming to the current name is a no-op, not a collision.
	if err := svc.RenameHabit(ctx, id, "jogging"); err != nil {
		t.Fatalf("self-rename: %v", err)
	}

	err = svc.RenameHabit(ctx, 999, "anything")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
}

func TestChangeDecoration(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "running", Periodicity: PeriodicityDaily, Decoration: "Sofa"})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	if _, err := svc.CheckIn(ctx, res.HabitID, day(0)); err != nil {
		t.Fatalf("check-in: %v", err)
	}

	if err := svc.ChangeDecoration(ctx, res.HabitID, "Rug"); err != nil {
		t.Fatalf("ChangeDecoration: %v", err)
	}

	h, _ := svc.HabitRepo().Get(ctx, res.HabitID)
	next, err := svc.DecorationRepo().Get(ctx, h.DecorationID)
	if err != nil {
		t.Fatalf("get decoration: %v", err)
	}
	if next.Name != "Rug" {
		t.Fatalf("decoration=%q, want Rug", next.Name)
	}
	// The new decoration starts from scratch and the old one is released
	// with its EXP cleared.
	if next.EXP != 0 {
		t.Fatalf("new decoration exp=%d, want 0", next.EXP)
	}
	old, err := svc.DecorationRepo().Get(ctx, res.Decoration.ID)
	if err != nil {
		t.Fatalf("get old decoration: %v", err)
	}
	if old.EXP != 0 {
		t.Fatalf("released decoration kept %d exp", old.EXP)
	}
	used, err := svc.DecorationRepo().InUse(ctx, old.ID)
	if err != nil {
		t.Fatalf("in use: %v", err)
	}
	if used {
		t.Fatalf("old decoration still in use")
	}
}
