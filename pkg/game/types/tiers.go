package types

// Tier is a capability value unlocked at a minimum experience.
type Tier struct {
	Value         float64
	MinExperience float64
}

// Unlocked reports whether a player with the given experience may select the tier.
func (t Tier) Unlocked(experience float64) bool {
	return experience >= t.MinExperience
}

// TierTable is a list of tiers sorted by ascending MinExperience.
type TierTable []Tier

// TierFor returns the value of the highest tier in table whose threshold
// the experience has reached. The first tier is used when none has been
// reached, and an empty table yields zero.
func TierFor(experience float64, table TierTable) float64 {
	if len(table) == 0 {
		return 0
	}
	value := table[0].Value
	for _, tier := range table {
		if experience+Epsilon < tier.MinExperience {
			break
		}
		value = tier.Value
	}
	return value
}
