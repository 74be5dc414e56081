/*
Package api
File: handlers.go
Description:
    Contains the HTTP handlers for the REST API.
    These functions parse the request, call the hotel (imported from
    internal/game) and return the command Result with the new state.

    Key Responsibilities:
    - Input Validation (Is the id a number?)
    - Dispatch to the state owner, which serialises every mutation
    - Mapping command results onto HTTP status codes
*/

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/everforgeworks/hotel-tycoon/internal/game"
	"github.com/gorilla/mux"
)

// Handler serves the hotel over HTTP.
type Handler struct {
	hotel  *game.Hotel
	runner *game.Runner

	// baseCtx outlives requests; the day timer is started from it.
	baseCtx context.Context
}

func NewHandler(ctx context.Context, hotel *game.Hotel, runner *game.Runner) *Handler {
	return &Handler{hotel: hotel, runner: runner, baseCtx: ctx}
}

type errorResponse struct {
	Error string `json:"error"`
}

type toggleResponse struct {
	Running bool      `json:"running"`
	State   StateView `json:"state"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeResult maps a command outcome to a status code.
// Silent rejections still answer 200: the UI decides what to show.
func writeResult(w http.ResponseWriter, s game.GameState, res game.Result) {
	status := http.StatusOK
	switch {
	case res.Reason == game.ReasonNotFound:
		status = http.StatusNotFound
	case res.Notice != "":
		status = http.StatusPaymentRequired
	}
	writeJSON(w, status, CommandResponse{Result: res, State: NewStateView(s)})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// HandleGetState returns the hotel as the UI renders it.
func (h *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NewStateView(h.hotel.Snapshot()))
}

// HandleUpgradeRoom raises a room's quality and nightly rate.
func (h *Handler) HandleUpgradeRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, res := h.hotel.UpgradeRoom(id)
	writeResult(w, s, res)
}

// HandleCleanRoom cleans a single room.
func (h *Handler) HandleCleanRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, res := h.hotel.CleanRoom(id)
	writeResult(w, s, res)
}

// HandleTrainStaff improves an employee's skill.
func (h *Handler) HandleTrainStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, res := h.hotel.TrainStaff(id)
	writeResult(w, s, res)
}

// HandleFireStaff lets an employee go.
func (h *Handler) HandleFireStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, res := h.hotel.FireStaff(id)
	writeResult(w, s, res)
}

func (h *Handler) HandleBuyRoom(w http.ResponseWriter, r *http.Request) {
	s, res := h.hotel.BuyNewRoom()
	writeResult(w, s, res)
}

func (h *Handler) HandleHireEmployee(w http.ResponseWriter, r *http.Request) {
	s, res := h.hotel.HireEmployee()
	writeResult(w, s, res)
}

func (h *Handler) HandleBuyFood(w http.ResponseWriter, r *http.Request) {
	s, res := h.hotel.BuyFood()
	writeResult(w, s, res)
}

// HandleCleanAllRooms answers 402 with a notice when the hotel cannot pay.
func (h *Handler) HandleCleanAllRooms(w http.ResponseWriter, r *http.Request) {
	s, res := h.hotel.CleanAllRooms()
	writeResult(w, s, res)
}

// HandleReset stops the day timer and restores the opening state.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	s, res := h.runner.Reset()
	writeResult(w, s, res)
}

// HandleToggle starts or pauses the day timer.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	running := h.runner.Toggle(h.baseCtx)
	writeJSON(w, http.StatusOK, toggleResponse{Running: running, State: NewStateView(h.hotel.Snapshot())})
}

// HandleAdvance simulates one day immediately.
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	s := h.runner.Advance()
	writeJSON(w, http.StatusOK, NewStateView(s))
}
