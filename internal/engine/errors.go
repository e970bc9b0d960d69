package engine

import (
	"fmt"
	"time"
)

// NotFoundError indicates an unknown habit id.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("habit %d not found", e.ID)
}

// DuplicateNameError indicates a habit name that is already taken.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("a habit named %q already exists", e.Name)
}

// InvalidPeriodicityError indicates input outside the fixed cadence set.
type InvalidPeriodicityError struct {
	Input string
}

func (e InvalidPeriodicityError) Error() string {
	return fmt.Sprintf("invalid periodicity: %q (want daily|weekly|monthly|yearly)", e.Input)
}

// InvalidTimestampError indicates a check-in earlier than the previous one.
type InvalidTimestampError struct {
	Last time.Time
	At   time.Time
}

func (e InvalidTimestampError) Error() string {
	return fmt.Sprintf("check-in at %s is earlier than the previous one at %s",
		e.At.Format(time.RFC3339), e.Last.Format(time.RFC3339))
}

// EmptyDecorationPoolError indicates no free decoration is left to assign.
type EmptyDecorationPoolError struct{}

func (e EmptyDecorationPoolError) Error() string {
	return "no free decorations left; delete a habit or add decorations to the catalog"
}

// DecorationInUseError indicates the requested decoration already backs a habit.
type DecorationInUseError struct {
	Name string
}

func (e DecorationInUseError) Error() string {
	return fmt.Sprintf("decoration %q is already attached to another habit", e.Name)
}
