package engine

// Tier is the cosmetic upgrade level of a decoration, derived from its EXP.
type Tier int

const (
	TierOld Tier = iota
	TierWorn
	TierFair
	TierGood
	TierGreat
)

// tierThresholds is the ascending EXP table; a decoration holds the highest
// tier whose threshold it has reached.
var tierThresholds = [...]int{
	TierOld:   0,
	TierWorn:  16,
	TierFair:  32,
	TierGood:  64,
	TierGreat: 128,
}

func (t Tier) String() string {
	switch t {
	case TierWorn:
		return "Worn"
	case TierFair:
		return "Fair"
	case TierGood:
		return "Good"
	case TierGreat:
		return "Great"
	default:
		return "Old"
	}
}

// TierForEXP returns the tier a decoration with the given EXP holds.
func TierForEXP(exp int) Tier {
	tier := TierOld
	for t := TierOld; t <= TierGreat; t++ {
		if exp >= tierThresholds[t] {
			tier = t
		}
	}
	return tier
}

// NextTierEXP returns the threshold of the tier above the given EXP and
// false when the decoration is already at the top tier.
func NextTierEXP(exp int) (int, bool) {
	t := TierForEXP(exp)
	if t == TierGreat {
		return 0, false
	}
	return tierThresholds[t+1], true
}
