/*
Package game
File: balance.go
Description:
    Loads the tuning constants of the hotel from 'hotel.yaml'.
    Every key is optional: anything missing from the file keeps the
    built-in default returned by DefaultBalance.
*/

package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidBalance is returned when a balance file holds values the simulation cannot run with.
var ErrInvalidBalance = errors.New("invalid balance")

// DefaultBalance returns the opening tuning of the hotel.
func DefaultBalance() Balance {
	return Balance{
		Starting: StartingConfig{
			Money:      10000,
			Reputation: 3,
			FoodStock:  100,
			StaffName:  "John Doe",
		},
		Room: RoomTemplate{
			Quality:     3,
			Cleanliness: 5,
			Price:       700,
		},
		Staff: StaffTemplate{
			Skill:     3,
			Salary:    100,
			Happiness: 3,
		},
		Prices: PriceList{
			UpgradeRoom:       500,
			UpgradePriceBonus: 50,
			CleanRoom:         50,
			TrainStaff:        200,
			NewRoom:           5000,
			HireEmployee:      1000,
			FoodPack:          1000,
		},
		Food: FoodConfig{
			PackUnits:       100,
			MaxStock:        200,
			UnitsPerGuest:   5,
			CostPerGuest:    10,
			GoodThreshold:   50,
			MediumThreshold: 25,
		},
	}
}

// LoadBalance reads a YAML balance file on top of DefaultBalance.
func LoadBalance(path string) (Balance, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("read balance %s: %w", path, err)
	}
	return ParseBalance(f)
}

// ParseBalance decodes YAML bytes on top of DefaultBalance and validates the result.
func ParseBalance(data []byte) (Balance, error) {
	b := DefaultBalance()
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Balance{}, fmt.Errorf("parse balance: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// Validate checks that every template stays inside the model's bounds.
func (b Balance) Validate() error {
	switch {
	case !inScale(float64(b.Room.Quality)) || !inScale(float64(b.Room.Cleanliness)):
		return fmt.Errorf("%w: room quality and cleanliness must be within [%d,%d]", ErrInvalidBalance, MinScore, MaxScore)
	case !inScale(float64(b.Staff.Skill)) || !inScale(b.Staff.Happiness):
		return fmt.Errorf("%w: staff skill and happiness must be within [%d,%d]", ErrInvalidBalance, MinScore, MaxScore)
	case !inScale(b.Starting.Reputation):
		return fmt.Errorf("%w: starting reputation must be within [%d,%d]", ErrInvalidBalance, MinScore, MaxScore)
	case b.Food.MaxStock < 0 || b.Starting.FoodStock < 0 || b.Starting.FoodStock > b.Food.MaxStock:
		return fmt.Errorf("%w: starting food stock must be within [0,%d]", ErrInvalidBalance, b.Food.MaxStock)
	case b.Food.MediumThreshold > b.Food.GoodThreshold:
		return fmt.Errorf("%w: medium food threshold above good threshold", ErrInvalidBalance)
	case b.Food.PackUnits < 0 || b.Food.UnitsPerGuest < 0 || b.Food.CostPerGuest < 0:
		return fmt.Errorf("%w: food quantities must not be negative", ErrInvalidBalance)
	}

	p := b.Prices
	for _, cost := range []int{p.UpgradeRoom, p.UpgradePriceBonus, p.CleanRoom, p.TrainStaff, p.NewRoom, p.HireEmployee, p.FoodPack} {
		if cost < 0 {
			return fmt.Errorf("%w: prices must not be negative", ErrInvalidBalance)
		}
	}
	return nil
}
