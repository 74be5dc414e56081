package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceDay_VacantRoomAndUnhappyStaff(t *testing.T) {
	b := DefaultBalance()
	start := NewGameState(b)

	// 0.9: the room stays vacant (chance 0.8). 0.1: happiness drops.
	next := AdvanceDay(start, b, NewScriptedRand(0.9, 0.1))

	assert.Equal(t, 2, next.Day)
	assert.Equal(t, 9900, next.Money)
	require.Len(t, next.Rooms, 1)
	assert.False(t, next.Rooms[0].Occupied)
	assert.Equal(t, 5, next.Rooms[0].Cleanliness)
	assert.Equal(t, 100, next.FoodStock)
	require.Len(t, next.Staff, 1)
	assert.InDelta(t, 2.9, next.Staff[0].Happiness, 1e-9)
	assert.InDelta(t, 3.58, next.Reputation, 1e-9)

	assert.InDelta(t, 5.0, next.LastReview.Cleanliness, 1e-9)
	assert.InDelta(t, 5.0, next.LastReview.Food, 1e-9)
	assert.InDelta(t, 2.95, next.LastReview.Staff, 1e-9)
}

func TestAdvanceDay_DoesNotMutateInput(t *testing.T) {
	b := DefaultBalance()
	start := NewGameState(b)
	start.Rooms[0].Occupied = true

	_ = AdvanceDay(start, b, NewScriptedRand(0.0, 0.99, 0.7))

	assert.Equal(t, 1, start.Day)
	assert.Equal(t, 10000, start.Money)
	assert.True(t, start.Rooms[0].Occupied)
	assert.Equal(t, 5, start.Rooms[0].Cleanliness)
	assert.InDelta(t, 3.0, start.Staff[0].Happiness, 1e-9)
}

func TestAdvanceDay_UsesStartOfDayValues(t *testing.T) {
	b := DefaultBalance()
	s := NewGameState(b)
	s.Rooms[0].Occupied = true
	s.FoodStock = 30

	// 0.0: occupied again. 0.99: wear of 3. 0.7: happiness rises.
	next := AdvanceDay(s, b, NewScriptedRand(0.0, 0.99, 0.7))

	// 700 rent - 100 salary - 10 food for the guest who stayed.
	assert.Equal(t, 10590, next.Money)
	assert.True(t, next.Rooms[0].Occupied)
	assert.Equal(t, 2, next.Rooms[0].Cleanliness)
	assert.Equal(t, 25, next.FoodStock)

	// Food is rated from the 30 units held at dawn, not the 25 left.
	assert.InDelta(t, 3.0, next.LastReview.Food, 1e-9)
	assert.InDelta(t, 3.1, next.Staff[0].Happiness, 1e-9)
	assert.InDelta(t, 0.2*(3+2+3+3.1+3), next.Reputation, 1e-9)
}

func TestAdvanceDay_CleanlinessNeverBelowOne(t *testing.T) {
	b := DefaultBalance()
	s := NewGameState(b)
	s.Rooms[0].Occupied = true
	s.Rooms[0].Cleanliness = 2

	next := AdvanceDay(s, b, NewScriptedRand(0.99, 0.99, 0.99))

	assert.False(t, next.Rooms[0].Occupied)
	assert.Equal(t, 1, next.Rooms[0].Cleanliness)
}

func TestAdvanceDay_EmptyHotelKeepsMoney(t *testing.T) {
	b := DefaultBalance()
	s := NewGameState(b)
	s.Rooms[0].Occupied = false
	s.Staff = nil

	next := AdvanceDay(s, b, NewScriptedRand(0.99))

	assert.Equal(t, s.Money, next.Money)
	assert.Empty(t, next.Staff)
	// Staff averages fall back to the neutral midpoint.
	assert.InDelta(t, 3.0, next.LastReview.Staff, 1e-9)
}

func TestAdvanceDay_NoRoomsNoStaff(t *testing.T) {
	b := DefaultBalance()
	s := NewGameState(b)
	s.Rooms = nil
	s.Staff = nil

	next := AdvanceDay(s, b, NewScriptedRand(0.5))

	assert.Equal(t, s.Money, next.Money)
	assert.InDelta(t, 0.2*(3+3+3+3+5), next.Reputation, 1e-9)
	assert.NotNil(t, next.Rooms)
	assert.NotNil(t, next.Staff)
}

func TestAdvanceDay_MoneyCanGoNegative(t *testing.T) {
	b := DefaultBalance()
	s := NewGameState(b)
	s.Money = 50

	next := AdvanceDay(s, b, NewScriptedRand(0.99))

	assert.Equal(t, -50, next.Money)
}

func TestAdvanceDay_HappinessStaysOnScale(t *testing.T) {
	b := DefaultBalance()
	s := NewGameState(b)
	s.Staff = []Staff{
		{ID: 1, Skill: 5, Salary: 100, Happiness: 5},
		{ID: 2, Skill: 1, Salary: 100, Happiness: 1},
	}

	// room vacant, first employee happier, second sadder
	next := AdvanceDay(s, b, NewScriptedRand(0.99, 0.99, 0.0))

	assert.InDelta(t, 5.0, next.Staff[0].Happiness, 1e-9)
	assert.InDelta(t, 1.0, next.Staff[1].Happiness, 1e-9)
}

func TestAdvanceDay_InvariantsHoldOverManyDays(t *testing.T) {
	b := DefaultBalance()
	rng := NewRand(42)
	s := NewGameState(b)
	s.Money = 1_000_000
	for i := 0; i < 4; i++ {
		s, _ = BuyNewRoom(s, b)
		s, _ = HireEmployee(s, b)
	}

	for day := 0; day < 500; day++ {
		prev := s
		s = AdvanceDay(s, b, rng)

		require.Equal(t, prev.Day+1, s.Day)
		require.GreaterOrEqual(t, s.FoodStock, 0)
		require.LessOrEqual(t, s.FoodStock, prev.FoodStock)
		require.GreaterOrEqual(t, s.Reputation, 1.0)
		require.LessOrEqual(t, s.Reputation, 5.0)
		for _, r := range s.Rooms {
			require.True(t, inScale(float64(r.Quality)), "room %d quality %d", r.ID, r.Quality)
			require.True(t, inScale(float64(r.Cleanliness)), "room %d cleanliness %d", r.ID, r.Cleanliness)
		}
		for _, m := range s.Staff {
			require.True(t, inScale(m.Happiness), "staff %d happiness %f", m.ID, m.Happiness)
		}

		// keep the hotel busy so every branch is exercised
		if day%7 == 0 {
			s, _ = CleanAllRooms(s, b)
			s, _ = BuyFood(s, b)
		}
	}
}
