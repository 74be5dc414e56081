/*
Package game
File: mechanics.go
Description:
    Helper functions shared by the simulation step and the command handlers:
    score clamping, averages and entity lookups.
*/

package game

import "math"

// Every rating in the model lives on a 1..5 scale.
const (
	MinScore = 1
	MaxScore = 5

	// neutralScore stands in for the average of an empty collection.
	neutralScore = 3.0
)

func clampScore(v float64) float64 {
	return math.Max(MinScore, math.Min(MaxScore, v))
}

func inScale(v float64) bool {
	return v >= MinScore && v <= MaxScore
}

// average returns the mean of n values read through get, or the neutral
// midpoint when there is nothing to average.
func average(n int, get func(i int) float64) float64 {
	if n == 0 {
		return neutralScore
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += get(i)
	}
	return sum / float64(n)
}

func findRoom(rooms []Room, id int) int {
	for i := range rooms {
		if rooms[i].ID == id {
			return i
		}
	}
	return -1
}

func findStaff(staff []Staff, id int) int {
	for i := range staff {
		if staff[i].ID == id {
			return i
		}
	}
	return -1
}

func countOccupied(rooms []Room) int {
	n := 0
	for _, r := range rooms {
		if r.Occupied {
			n++
		}
	}
	return n
}

// foodQuality rates the kitchen from the stock held at the start of the day.
func foodQuality(stock int, food FoodConfig) float64 {
	switch {
	case stock > food.GoodThreshold:
		return 5
	case stock > food.MediumThreshold:
		return 3
	default:
		return 1
	}
}
