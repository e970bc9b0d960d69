package engine

import "time"

// RelationKind classifies how a check-in timestamp relates to the previous
// one under a habit's periodicity.
type RelationKind int

const (
	// SamePeriod: both timestamps fall in the same bucket; the check-in is a
	// repeat and must not double-count.
	SamePeriod RelationKind = iota
	// NextPeriod: the current bucket is exactly one after the previous one.
	NextPeriod
	// GapPeriod: the current bucket is two or more after the previous one.
	GapPeriod
)

type Relation struct {
	Kind RelationKind
	// Distance is the bucket difference (0 for SamePeriod, 1 for NextPeriod,
	// >= 2 for GapPeriod).
	Distance int
}

// Missed returns how many full periods were skipped.
func (r Relation) Missed() int {
	if r.Kind != GapPeriod {
		return 0
	}
	return r.Distance - 1
}

// Classify buckets both timestamps on the UTC calendar and compares them.
// It fails with InvalidTimestampError when at is earlier than prev.
func Classify(p Periodicity, prev, at time.Time) (Relation, error) {
	if at.Before(prev) {
		return Relation{}, InvalidTimestampError{Last: prev, At: at}
	}
	d := bucket(p, at) - bucket(p, prev)
	switch {
	case d == 0:
		return Relation{Kind: SamePeriod, Distance: 0}, nil
	case d == 1:
		return Relation{Kind: NextPeriod, Distance: 1}, nil
	default:
		return Relation{Kind: GapPeriod, Distance: d}, nil
	}
}

// bucket maps a timestamp to its period index. All bucketing happens in UTC
// so boundaries do not shift with the host timezone; weeks are
// Monday-anchored.
func bucket(p Periodicity, t time.Time) int {
	u := t.UTC()
	switch p {
	case PeriodicityWeekly:
		// The Unix epoch fell on a Thursday; +3 shifts the week boundary to
		// Monday.
		return floorDiv(int64(epochDays(u))+3, 7)
	case PeriodicityMonthly:
		return u.Year()*12 + int(u.Month()) - 1
	case PeriodicityYearly:
		return u.Year()
	default:
		return epochDays(u)
	}
}

func epochDays(u time.Time) int {
	return floorDiv(u.Unix(), 86400)
}

func floorDiv(a int64, b int64) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return int(q)
}
