package game

import "math"

// Average is the overall rating a guest gives.
func (r Review) Average() float64 {
	return (r.Cleanliness + r.Food + r.Staff) / 3
}

// Stars is the rating rounded to whole stars, 0..5.
func (r Review) Stars() int {
	stars := int(math.Round(r.Average()))
	return max(0, min(MaxScore, stars))
}

// Summary is the written part of the review.
func (r Review) Summary() string {
	switch avg := r.Average(); {
	case avg >= 4.5:
		return "Outstanding experience! Clean rooms, delicious food, and exceptional staff."
	case avg >= 3.5:
		return "Very good stay. Rooms were clean, food was tasty, and staff was helpful."
	case avg >= 2.5:
		return "Average experience. Some areas need improvement."
	default:
		return "Disappointing stay. Significant improvements needed in cleanliness, food, and service."
	}
}

// Mood buckets a reputation score for display.
type Mood string

const (
	MoodDelighted Mood = "delighted"
	MoodPleased   Mood = "pleased"
	MoodNeutral   Mood = "neutral"
	MoodUnhappy   Mood = "unhappy"
)

func ReputationMood(reputation float64) Mood {
	switch {
	case reputation >= 4.5:
		return MoodDelighted
	case reputation >= 3.5:
		return MoodPleased
	case reputation >= 2.5:
		return MoodNeutral
	default:
		return MoodUnhappy
	}
}
