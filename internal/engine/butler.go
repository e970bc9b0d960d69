package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"hearth/internal/storage"
)

// ButlerReport is the structured analytics digest the butler presents,
// combined with a quote and a tip from the catalog.
type ButlerReport struct {
	Persona storage.Butler

	TotalHabits   int
	ByPeriodicity map[Periodicity][]string
	Longest       *storage.Habit
	LongestValue  int
	Failing       []storage.Habit
	TotalFails    int
	MostFailed    string

	Quote string
	Tip   string
}

// ButlerPersona returns the persisted persona, generating and saving one on
// first use.
func (s *Service) ButlerPersona(ctx context.Context) (*storage.Butler, error) {
	b, err := s.butlers.Get(ctx, storage.MainButlerKey)
	if err != nil {
		return nil, err
	}
	if b != nil {
		return b, nil
	}

	opts := s.cat.Butler
	flag := s.pickPersonality()
	b = &storage.Butler{
		Key:         storage.MainButlerKey,
		Name:        opts.Names[s.rng.Intn(len(opts.Names))],
		Age:         opts.AgeMin + s.rng.Intn(opts.AgeMax-opts.AgeMin+1),
		Appearance:  opts.Appearances[s.rng.Intn(len(opts.Appearances))],
		Personality: flag,
		Description: opts.Personalities[flag].Description,
	}
	if err := s.butlers.Upsert(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("butler generated",
		zap.String("name", b.Name),
		zap.String("personality", b.Personality),
	)
	return b, nil
}

// pickPersonality draws a personality flag deterministically under a fixed
// seed: map iteration order is randomized, so the keys are sorted first.
func (s *Service) pickPersonality() string {
	flags := make([]string, 0, len(s.cat.Butler.Personalities))
	for flag := range s.cat.Butler.Personalities {
		flags = append(flags, flag)
	}
	sort.Strings(flags)
	return flags[s.rng.Intn(len(flags))]
}

// ButlerTalk returns a line matching the butler's personality.
func (s *Service) ButlerTalk(ctx context.Context) (string, error) {
	b, err := s.ButlerPersona(ctx)
	if err != nil {
		return "", err
	}
	p, ok := s.cat.Butler.Personalities[b.Personality]
	if !ok || len(p.Replicas) == 0 {
		return "", fmt.Errorf("no replicas for personality %q", b.Personality)
	}
	return fmt.Sprintf("%s says: %s", b.Name, p.Replicas[s.rng.Intn(len(p.Replicas))]), nil
}

// ButlerReport assembles the analytics digest for the current habit store.
// It reads the store but never mutates it.
func (s *Service) ButlerReport(ctx context.Context, now time.Time) (*ButlerReport, error) {
	b, err := s.ButlerPersona(ctx)
	if err != nil {
		return nil, err
	}
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rep := &ButlerReport{
		Persona:       *b,
		TotalHabits:   len(habits),
		ByPeriodicity: map[Periodicity][]string{},
		Failing:       CurrentlyFailing(habits, now),
		TotalFails:    AggregateFailCount(habits),
		Quote:         s.cat.Quotes[s.rng.Intn(len(s.cat.Quotes))],
		Tip:           s.cat.Tips[s.rng.Intn(len(s.cat.Tips))],
	}
	for _, p := range Periodicities() {
		for _, h := range HabitsByPeriodicity(habits, p) {
			rep.ByPeriodicity[p] = append(rep.ByPeriodicity[p], h.Name)
		}
	}
	if h, v, ok := LongestStreakOverall(habits); ok {
		rep.Longest = &h
		rep.LongestValue = v
	}
	if h, ok := MostFailed(habits); ok {
		rep.MostFailed = h.Name
	}
	return rep, nil
}
