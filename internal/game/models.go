/*
Package game
File: models.go
Description:
    Defines the data structures of the hotel simulation.
    This file is the "schema" of the application, mapping directly to
    the 'hotel.yaml' balance file and to the JSON API responses.

    No logic is performed here beyond trivial copies.
*/

package game

// Room is a single rentable room of the hotel.
type Room struct {
	ID          int  `json:"id"`          // Stable identity, never reused
	Quality     int  `json:"quality"`     // 1..5, raised by upgrades
	Cleanliness int  `json:"cleanliness"` // 1..5, decays while guests stay
	Price       int  `json:"price"`       // Nightly rate charged when occupied
	Occupied    bool `json:"occupied"`    // Result of the last occupancy roll
}

// Staff is one employee on the payroll.
type Staff struct {
	ID        int     `json:"id"`        // Stable identity, never reused
	Name      string  `json:"name"`      // Display name
	Skill     int     `json:"skill"`     // 1..5, raised by training
	Salary    int     `json:"salary"`    // Paid every day
	Happiness float64 `json:"happiness"` // 1..5, drifts randomly each day
}

// Review is the guest feedback generated at the end of each day.
type Review struct {
	Cleanliness float64 `json:"cleanliness"` // Average room cleanliness
	Food        float64 `json:"food"`        // Food quality score (1, 3 or 5)
	Staff       float64 `json:"staff"`       // Mean of average skill and happiness
}

// GameState is the whole economic model of one hotel.
type GameState struct {
	Day        int     `json:"day"`
	Money      int     `json:"money"` // No floor: expenses can push it below zero
	Reputation float64 `json:"reputation"`
	FoodStock  int     `json:"food_stock"`
	LastReview Review  `json:"last_review"`
	Rooms      []Room  `json:"rooms"`
	Staff      []Staff `json:"staff"`
	IsRunning  bool    `json:"is_running"`

	// Id generators. Monotonic, independent of collection size.
	NextRoomID  int `json:"-"`
	NextStaffID int `json:"-"`
}

// Clone returns a deep copy so callers can mutate the result freely.
func (s GameState) Clone() GameState {
	out := s
	out.Rooms = append([]Room(nil), s.Rooms...)
	out.Staff = append([]Staff(nil), s.Staff...)
	if out.Rooms == nil {
		out.Rooms = []Room{}
	}
	if out.Staff == nil {
		out.Staff = []Staff{}
	}
	return out
}

// RoomTemplate describes a freshly bought room.
type RoomTemplate struct {
	Quality     int `yaml:"quality" json:"quality"`
	Cleanliness int `yaml:"cleanliness" json:"cleanliness"`
	Price       int `yaml:"price" json:"price"`
}

// StaffTemplate describes a freshly hired employee.
type StaffTemplate struct {
	Skill     int     `yaml:"skill" json:"skill"`
	Salary    int     `yaml:"salary" json:"salary"`
	Happiness float64 `yaml:"happiness" json:"happiness"`
}

// StartingConfig is the state a new (or reset) hotel begins with.
type StartingConfig struct {
	Money      int     `yaml:"money" json:"money"`
	Reputation float64 `yaml:"reputation" json:"reputation"`
	FoodStock  int     `yaml:"food_stock" json:"food_stock"`
	StaffName  string  `yaml:"staff_name" json:"staff_name"` // Name of the first employee
}

// PriceList holds the cost of every player action.
type PriceList struct {
	UpgradeRoom       int `yaml:"upgrade_room" json:"upgrade_room"`
	UpgradePriceBonus int `yaml:"upgrade_price_bonus" json:"upgrade_price_bonus"` // Nightly rate increase per upgrade
	CleanRoom         int `yaml:"clean_room" json:"clean_room"`                   // Also the per-room cost of "clean all"
	TrainStaff        int `yaml:"train_staff" json:"train_staff"`
	NewRoom           int `yaml:"new_room" json:"new_room"`
	HireEmployee      int `yaml:"hire_employee" json:"hire_employee"`
	FoodPack          int `yaml:"food_pack" json:"food_pack"`
}

// FoodConfig controls the kitchen.
type FoodConfig struct {
	PackUnits       int `yaml:"pack_units" json:"pack_units"`               // Units added by one purchase
	MaxStock        int `yaml:"max_stock" json:"max_stock"`                 // Pantry capacity
	UnitsPerGuest   int `yaml:"units_per_guest" json:"units_per_guest"`     // Consumed per occupied room per day
	CostPerGuest    int `yaml:"cost_per_guest" json:"cost_per_guest"`       // Money spent per occupied room per day
	GoodThreshold   int `yaml:"good_threshold" json:"good_threshold"`       // Stock above this rates food 5
	MediumThreshold int `yaml:"medium_threshold" json:"medium_threshold"`   // Stock above this rates food 3
}

// Balance is the root configuration struct, mapping to the entire 'hotel.yaml' file.
type Balance struct {
	Starting StartingConfig `yaml:"starting" json:"starting"`
	Room     RoomTemplate   `yaml:"room" json:"room"`
	Staff    StaffTemplate  `yaml:"staff" json:"staff"`
	Prices   PriceList      `yaml:"prices" json:"prices"`
	Food     FoodConfig     `yaml:"food" json:"food"`
}
