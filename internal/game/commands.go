/*
Package game
File: commands.go
Description:
    The player actions. Each command takes the current state and returns
    the next one together with a Result. A command whose precondition
    fails returns the state untouched.
*/

package game

import "fmt"

// Rejection reasons reported in Result.Reason.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonNotFound          = "not_found"
)

// CleanAllNotice is shown to the player when "clean all rooms" is not affordable.
const CleanAllNotice = "Not enough money to clean all rooms!"

// Command names, used in events, logs and metrics.
const (
	CmdUpgradeRoom   = "upgrade_room"
	CmdCleanRoom     = "clean_room"
	CmdTrainStaff    = "train_staff"
	CmdFireStaff     = "fire_staff"
	CmdBuyNewRoom    = "buy_new_room"
	CmdHireEmployee  = "hire_employee"
	CmdBuyFood       = "buy_food"
	CmdCleanAllRooms = "clean_all_rooms"
	CmdResetGame     = "reset_game"
)

// Result reports whether a command changed the state.
type Result struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
	Notice  string `json:"notice,omitempty"` // Set only when the player must be told
}

var (
	applied      = Result{Applied: true}
	cannotAfford = Result{Reason: ReasonInsufficientFunds}
	notFound     = Result{Reason: ReasonNotFound}
)

// NewGameState builds the opening state of a hotel: one room, one employee.
func NewGameState(b Balance) GameState {
	return GameState{
		Day:        1,
		Money:      b.Starting.Money,
		Reputation: b.Starting.Reputation,
		FoodStock:  b.Starting.FoodStock,
		LastReview: Review{Cleanliness: neutralScore, Food: neutralScore, Staff: neutralScore},
		Rooms:      []Room{newRoom(1, b.Room)},
		Staff: []Staff{{
			ID:        1,
			Name:      b.Starting.StaffName,
			Skill:     b.Staff.Skill,
			Salary:    b.Staff.Salary,
			Happiness: b.Staff.Happiness,
		}},
		NextRoomID:  2,
		NextStaffID: 2,
	}
}

func newRoom(id int, t RoomTemplate) Room {
	return Room{ID: id, Quality: t.Quality, Cleanliness: t.Cleanliness, Price: t.Price}
}

// UpgradeRoom raises a room's quality by one (capped) and its nightly price.
func UpgradeRoom(s GameState, b Balance, roomID int) (GameState, Result) {
	i := findRoom(s.Rooms, roomID)
	if i < 0 {
		return s, notFound
	}
	if s.Money < b.Prices.UpgradeRoom {
		return s, cannotAfford
	}
	next := s.Clone()
	next.Money -= b.Prices.UpgradeRoom
	next.Rooms[i].Quality = min(MaxScore, next.Rooms[i].Quality+1)
	next.Rooms[i].Price += b.Prices.UpgradePriceBonus
	return next, applied
}

// CleanRoom restores a single room to full cleanliness.
func CleanRoom(s GameState, b Balance, roomID int) (GameState, Result) {
	i := findRoom(s.Rooms, roomID)
	if i < 0 {
		return s, notFound
	}
	if s.Money < b.Prices.CleanRoom {
		return s, cannotAfford
	}
	next := s.Clone()
	next.Money -= b.Prices.CleanRoom
	next.Rooms[i].Cleanliness = MaxScore
	return next, applied
}

// TrainStaff raises an employee's skill by one (capped).
func TrainStaff(s GameState, b Balance, staffID int) (GameState, Result) {
	i := findStaff(s.Staff, staffID)
	if i < 0 {
		return s, notFound
	}
	if s.Money < b.Prices.TrainStaff {
		return s, cannotAfford
	}
	next := s.Clone()
	next.Money -= b.Prices.TrainStaff
	next.Staff[i].Skill = min(MaxScore, next.Staff[i].Skill+1)
	return next, applied
}

// FireStaff removes the employee with the given id. It is free.
func FireStaff(s GameState, _ Balance, staffID int) (GameState, Result) {
	i := findStaff(s.Staff, staffID)
	if i < 0 {
		return s, notFound
	}
	next := s.Clone()
	next.Staff = append(next.Staff[:i], next.Staff[i+1:]...)
	return next, applied
}

// BuyNewRoom appends a default room.
func BuyNewRoom(s GameState, b Balance) (GameState, Result) {
	if s.Money < b.Prices.NewRoom {
		return s, cannotAfford
	}
	next := s.Clone()
	next.Money -= b.Prices.NewRoom
	next.Rooms = append(next.Rooms, newRoom(next.NextRoomID, b.Room))
	next.NextRoomID++
	return next, applied
}

// HireEmployee appends a default employee named after its id.
func HireEmployee(s GameState, b Balance) (GameState, Result) {
	if s.Money < b.Prices.HireEmployee {
		return s, cannotAfford
	}
	next := s.Clone()
	next.Money -= b.Prices.HireEmployee
	id := next.NextStaffID
	next.Staff = append(next.Staff, Staff{
		ID:        id,
		Name:      fmt.Sprintf("Employee %d", id),
		Skill:     b.Staff.Skill,
		Salary:    b.Staff.Salary,
		Happiness: b.Staff.Happiness,
	})
	next.NextStaffID++
	return next, applied
}

// BuyFood restocks the pantry up to its capacity.
func BuyFood(s GameState, b Balance) (GameState, Result) {
	if s.Money < b.Prices.FoodPack {
		return s, cannotAfford
	}
	next := s.Clone()
	next.Money -= b.Prices.FoodPack
	next.FoodStock = min(next.FoodStock+b.Food.PackUnits, b.Food.MaxStock)
	return next, applied
}

// CleanAllRooms cleans every room, paying only for the dirty ones.
// This is the one command whose failure carries a notice for the player.
func CleanAllRooms(s GameState, b Balance) (GameState, Result) {
	dirty := 0
	for _, r := range s.Rooms {
		if r.Cleanliness < MaxScore {
			dirty++
		}
	}
	cost := dirty * b.Prices.CleanRoom
	if s.Money < cost {
		return s, Result{Reason: ReasonInsufficientFunds, Notice: CleanAllNotice}
	}
	next := s.Clone()
	next.Money -= cost
	for i := range next.Rooms {
		next.Rooms[i].Cleanliness = MaxScore
	}
	return next, applied
}

// ResetGame discards everything and starts over, paused.
func ResetGame(_ GameState, b Balance) (GameState, Result) {
	next := NewGameState(b)
	next.IsRunning = false
	return next, applied
}
