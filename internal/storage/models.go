package storage

import "time"

type Habit struct {
	ID            int64
	Name          string
	Periodicity   string
	CreatedAt     time.Time
	LastCheckIn   *time.Time
	Streak        int
	LongestStreak int
	Fails         int
	DecorationID  int64
}

type Decoration struct {
	ID   int64
	Name string
	Room string
	EXP  int
}

type CheckIn struct {
	ID         int64
	HabitID    int64
	CheckedAt  time.Time
	EXPAwarded int
	Missed     int
}

type Butler struct {
	Key         string
	Name        string
	Age         int
	Appearance  string
	Personality string
	Description string
}
