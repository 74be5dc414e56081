/*
Package game
File: state.go
Description:
    Owns the runtime state of the application.
    A Hotel holds the single live GameState together with the balance
    constants and the random source. Every read and write goes through
    it, so a day tick and a player command never interleave.

    Listeners are told about every change once the lock is released,
    one event at a time and in commit order. A listener may read the
    hotel but must not mutate it.
*/

package game

import (
	"sync"

	"github.com/charmbracelet/log"
)

// EventKind classifies a state change.
type EventKind string

const (
	EventDayAdvanced EventKind = "day_advanced"
	EventCommand     EventKind = "command"
	EventRunning     EventKind = "running_changed"
)

// Event describes one state change and carries a copy of the resulting state.
type Event struct {
	Seq     uint64 // Commit order, starting at 1
	Kind    EventKind
	Command string // Set for EventCommand
	Result  Result
	State   GameState
}

// Listener receives events after the change is committed.
type Listener func(Event)

// Hotel is the state owner.
type Hotel struct {
	// mu protects state, balance, rng and seq.
	mu      sync.RWMutex
	state   GameState
	balance Balance
	rng     Rand
	seq     uint64

	// delivered is the Seq of the last event handed to every listener.
	deliverMu   sync.Mutex
	deliverCond *sync.Cond
	delivered   uint64

	listenersMu sync.RWMutex
	listeners   []Listener

	logger *log.Logger
}

// NewHotel creates a hotel in its opening state.
func NewHotel(b Balance, rng Rand, logger *log.Logger) *Hotel {
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = log.Default()
	}
	h := &Hotel{
		state:   NewGameState(b),
		balance: b,
		rng:     rng,
		logger:  logger,
	}
	h.deliverCond = sync.NewCond(&h.deliverMu)
	return h
}

// Subscribe registers a listener for every future change.
func (h *Hotel) Subscribe(l Listener) {
	h.listenersMu.Lock()
	h.listeners = append(h.listeners, l)
	h.listenersMu.Unlock()
}

// commitLocked stamps the next sequence number. Caller holds mu.
func (h *Hotel) commitLocked() uint64 {
	h.seq++
	return h.seq
}

// emit waits until every earlier commit has been delivered, so listeners
// never see an older state after a newer one.
func (h *Hotel) emit(ev Event) {
	h.deliverMu.Lock()
	for h.delivered+1 != ev.Seq {
		h.deliverCond.Wait()
	}
	h.deliverMu.Unlock()

	h.listenersMu.RLock()
	ls := append([]Listener(nil), h.listeners...)
	h.listenersMu.RUnlock()
	for _, l := range ls {
		l(ev)
	}

	h.deliverMu.Lock()
	h.delivered = ev.Seq
	h.deliverCond.Broadcast()
	h.deliverMu.Unlock()
}

// Snapshot returns a deep copy of the current state.
func (h *Hotel) Snapshot() GameState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Clone()
}

// Balance returns the constants currently in force.
func (h *Hotel) Balance() Balance {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.balance
}

// SetBalance swaps the constants. The current state is kept as is.
func (h *Hotel) SetBalance(b Balance) {
	h.mu.Lock()
	h.balance = b
	h.mu.Unlock()
	h.logger.Info("balance updated")
}

// SetRunning flips the isRunning flag. The runner is the only caller.
func (h *Hotel) SetRunning(running bool) GameState {
	h.mu.Lock()
	changed := h.state.IsRunning != running
	h.state.IsRunning = running
	var seq uint64
	if changed {
		seq = h.commitLocked()
	}
	snap := h.state.Clone()
	h.mu.Unlock()

	if changed {
		h.emit(Event{Seq: seq, Kind: EventRunning, Result: applied, State: snap})
	}
	return snap
}

// AdvanceDay runs one day of the simulation.
func (h *Hotel) AdvanceDay() GameState {
	h.mu.Lock()
	prevMoney := h.state.Money
	h.state = AdvanceDay(h.state, h.balance, h.rng)
	seq := h.commitLocked()
	snap := h.state.Clone()
	h.mu.Unlock()

	h.logger.Info("day advanced",
		"day", snap.Day,
		"money", snap.Money,
		"reputation", snap.Reputation,
		"food", snap.FoodStock,
	)
	if snap.Money < 0 && prevMoney >= 0 {
		h.logger.Warn("hotel is in debt", "day", snap.Day, "money", snap.Money)
	}

	h.emit(Event{Seq: seq, Kind: EventDayAdvanced, Result: applied, State: snap})
	return snap
}

// apply runs a command atomically and reports it.
func (h *Hotel) apply(name string, cmd func(GameState, Balance) (GameState, Result)) (GameState, Result) {
	h.mu.Lock()
	next, res := cmd(h.state, h.balance)
	if res.Applied {
		h.state = next
	}
	seq := h.commitLocked()
	snap := h.state.Clone()
	h.mu.Unlock()

	h.logger.Debug("command", "name", name, "applied", res.Applied, "reason", res.Reason, "money", snap.Money)
	h.emit(Event{Seq: seq, Kind: EventCommand, Command: name, Result: res, State: snap})
	return snap, res
}

func (h *Hotel) UpgradeRoom(roomID int) (GameState, Result) {
	return h.apply(CmdUpgradeRoom, func(s GameState, b Balance) (GameState, Result) {
		return UpgradeRoom(s, b, roomID)
	})
}

func (h *Hotel) CleanRoom(roomID int) (GameState, Result) {
	return h.apply(CmdCleanRoom, func(s GameState, b Balance) (GameState, Result) {
		return CleanRoom(s, b, roomID)
	})
}

func (h *Hotel) TrainStaff(staffID int) (GameState, Result) {
	return h.apply(CmdTrainStaff, func(s GameState, b Balance) (GameState, Result) {
		return TrainStaff(s, b, staffID)
	})
}

func (h *Hotel) FireStaff(staffID int) (GameState, Result) {
	return h.apply(CmdFireStaff, func(s GameState, b Balance) (GameState, Result) {
		return FireStaff(s, b, staffID)
	})
}

func (h *Hotel) BuyNewRoom() (GameState, Result) {
	return h.apply(CmdBuyNewRoom, BuyNewRoom)
}

func (h *Hotel) HireEmployee() (GameState, Result) {
	return h.apply(CmdHireEmployee, HireEmployee)
}

func (h *Hotel) BuyFood() (GameState, Result) {
	return h.apply(CmdBuyFood, BuyFood)
}

func (h *Hotel) CleanAllRooms() (GameState, Result) {
	return h.apply(CmdCleanAllRooms, CleanAllRooms)
}

// Reset restores the opening state. Callers running a Runner should use
// Runner.Reset so the timer is stopped as well.
func (h *Hotel) Reset() (GameState, Result) {
	return h.apply(CmdResetGame, ResetGame)
}
