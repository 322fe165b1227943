package derive

import "fmt"

// Tier classifies a 0-20 rating. The same classification drives display
// colors, statistics buckets and the rating filter.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
	TierPoor      Tier = "poor"
)

// Tiers lists every tier from best to worst.
var Tiers = []Tier{TierExcellent, TierGood, TierAverage, TierPoor}

const (
	MinRating = 0
	MaxRating = 20
)

// RatingTier returns the tier of a rating.
func RatingTier(rating int) Tier {
	switch {
	case rating >= 16:
		return TierExcellent
	case rating >= 12:
		return TierGood
	case rating >= 8:
		return TierAverage
	default:
		return TierPoor
	}
}

// ParseTier validates a tier name.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown rating tier %q", s)
}
