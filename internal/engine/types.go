package engine

import (
	"fmt"
	"strings"
)

type Periodicity string

const (
	PeriodicityDaily   Periodicity = "daily"
	PeriodicityWeekly  Periodicity = "weekly"
	PeriodicityMonthly Periodicity = "monthly"
	PeriodicityYearly  Periodicity = "yearly"
)

func (p Periodicity) IsValid() bool {
	switch p {
	case PeriodicityDaily, PeriodicityWeekly, PeriodicityMonthly, PeriodicityYearly:
		return true
	default:
		return false
	}
}

// EXPValue is the flat EXP awarded per successful check-in. Longer cadences
// pay more per check-in; the award never scales with streak length.
func (p Periodicity) EXPValue() int {
	switch p {
	case PeriodicityWeekly:
		return 8
	case PeriodicityMonthly:
		return 16
	case PeriodicityYearly:
		return 32
	default:
		return 1
	}
}

func ParsePeriodicity(input string) (Periodicity, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	p := Periodicity(s)
	if !p.IsValid() {
		return "", InvalidPeriodicityError{Input: input}
	}
	return p, nil
}

// Periodicities lists the valid cadences in ascending bucket size.
func Periodicities() []Periodicity {
	return []Periodicity{PeriodicityDaily, PeriodicityWeekly, PeriodicityMonthly, PeriodicityYearly}
}

func (p Periodicity) String() string { return string(p) }

// Label returns the user-facing capitalized name.
func (p Periodicity) Label() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return fmt.Sprintf("%s%s", strings.ToUpper(s[:1]), s[1:])
}
