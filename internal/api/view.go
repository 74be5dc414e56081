package api

import "github.com/everforgeworks/hotel-tycoon/internal/game"

// ReviewView is the latest review with its derived presentation.
type ReviewView struct {
	game.Review
	Average float64 `json:"average"`
	Stars   int     `json:"stars"`
	Summary string  `json:"summary"`
}

// StateView is what the UI renders: the model plus display helpers.
type StateView struct {
	Day        int          `json:"day"`
	Money      int          `json:"money"`
	Reputation float64      `json:"reputation"`
	Mood       game.Mood    `json:"mood"`
	FoodStock  int          `json:"food_stock"`
	LastReview ReviewView   `json:"last_review"`
	Rooms      []game.Room  `json:"rooms"`
	Staff      []game.Staff `json:"staff"`
	IsRunning  bool         `json:"is_running"`
}

// CommandResponse is returned by every command endpoint.
type CommandResponse struct {
	Result game.Result `json:"result"`
	State  StateView   `json:"state"`
}

func NewStateView(s game.GameState) StateView {
	return StateView{
		Day:        s.Day,
		Money:      s.Money,
		Reputation: s.Reputation,
		Mood:       game.ReputationMood(s.Reputation),
		FoodStock:  s.FoodStock,
		LastReview: ReviewView{
			Review:  s.LastReview,
			Average: s.LastReview.Average(),
			Stars:   s.LastReview.Stars(),
			Summary: s.LastReview.Summary(),
		},
		Rooms:     s.Rooms,
		Staff:     s.Staff,
		IsRunning: s.IsRunning,
	}
}
