/*
Package game
File: economy.go
Description:
    Handles the daily economic simulation of the hotel.
    One call to AdvanceDay is one in-game day:
    1. Settling income, payroll and kitchen costs.
    2. Rolling occupancy and wearing down occupied rooms.
    3. Consuming food and rating the kitchen.
    4. Drifting staff happiness.
    5. Recomputing reputation and the guest review.
*/

package game

// Reputation weights of the five quality signals.
const (
	weightQuality     = 0.2
	weightCleanliness = 0.2
	weightSkill       = 0.2
	weightHappiness   = 0.2
	weightFood        = 0.2

	happinessStep = 0.1
)

// AdvanceDay produces the next day's state. The input is not modified.
// Every derived quantity reads the state as it was when the day began.
func AdvanceDay(prev GameState, b Balance, rng Rand) GameState {
	next := prev.Clone()

	// 1. Calendar
	next.Day = prev.Day + 1

	// 2. Settlement (guests of the previous day pay and eat)
	occupied := countOccupied(prev.Rooms)
	income, payroll := 0, 0
	for _, r := range prev.Rooms {
		if r.Occupied {
			income += r.Price
		}
	}
	for _, s := range prev.Staff {
		payroll += s.Salary
	}
	next.Money = prev.Money + income - payroll - occupied*b.Food.CostPerGuest

	// 3. Occupancy roll and wear
	for i, r := range prev.Rooms {
		chance := float64(r.Quality+r.Cleanliness) / 10
		next.Rooms[i].Occupied = rng.Float64() < chance
		if r.Occupied {
			next.Rooms[i].Cleanliness = max(MinScore, r.Cleanliness-uniformInt(rng, 1, 3))
		}
	}

	// 4. Kitchen
	next.FoodStock = max(0, prev.FoodStock-occupied*b.Food.UnitsPerGuest)
	food := foodQuality(prev.FoodStock, b.Food)

	// 5. Staff morale
	for i, s := range prev.Staff {
		delta := -happinessStep
		if rng.Float64() > 0.5 {
			delta = happinessStep
		}
		next.Staff[i].Happiness = clampScore(s.Happiness + delta)
	}

	// 6. Reputation and review from the updated collections
	avgCleanliness := average(len(next.Rooms), func(i int) float64 { return float64(next.Rooms[i].Cleanliness) })
	avgQuality := average(len(next.Rooms), func(i int) float64 { return float64(next.Rooms[i].Quality) })
	avgSkill := average(len(next.Staff), func(i int) float64 { return float64(next.Staff[i].Skill) })
	avgHappiness := average(len(next.Staff), func(i int) float64 { return next.Staff[i].Happiness })

	next.Reputation = clampScore(weightQuality*avgQuality +
		weightCleanliness*avgCleanliness +
		weightSkill*avgSkill +
		weightHappiness*avgHappiness +
		weightFood*food)

	next.LastReview = Review{
		Cleanliness: avgCleanliness,
		Food:        food,
		Staff:       (avgSkill + avgHappiness) / 2,
	}

	return next
}
