/*
Package telemetry
File: metrics.go
Description:
    Prometheus instrumentation of the hotel. Metrics subscribes to the
    hotel's events and mirrors the economic model into gauges, and counts
    day ticks and player commands by outcome.
*/

package telemetry

import (
	"github.com/everforgeworks/hotel-tycoon/internal/game"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotel"

// Metrics holds every collector exported on /metrics.
type Metrics struct {
	Day        prometheus.Gauge
	Money      prometheus.Gauge
	Reputation prometheus.Gauge
	FoodStock  prometheus.Gauge
	Rooms      prometheus.Gauge
	Occupied   prometheus.Gauge
	Staff      prometheus.Gauge
	Running    prometheus.Gauge

	DayTicks prometheus.Counter
	Commands *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	m := &Metrics{
		Day:        gauge("day", "Current in-game day."),
		Money:      gauge("money", "Cash on hand; negative means debt."),
		Reputation: gauge("reputation", "Reputation on the 1-5 scale."),
		FoodStock:  gauge("food_stock_units", "Units of food in the pantry."),
		Rooms:      gauge("rooms", "Number of rooms owned."),
		Occupied:   gauge("rooms_occupied", "Number of rooms occupied tonight."),
		Staff:      gauge("staff", "Number of employees."),
		Running:    gauge("simulation_running", "1 while the day timer runs."),
		DayTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "day_ticks_total",
			Help:      "Days simulated since start.",
		}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Player commands by name and outcome.",
		}, []string{"command", "outcome"}),
	}
	reg.MustRegister(m.Day, m.Money, m.Reputation, m.FoodStock, m.Rooms, m.Occupied, m.Staff, m.Running, m.DayTicks, m.Commands)
	return m
}

// Observe implements game.Listener.
func (m *Metrics) Observe(ev game.Event) {
	switch ev.Kind {
	case game.EventDayAdvanced:
		m.DayTicks.Inc()
	case game.EventCommand:
		m.Commands.WithLabelValues(ev.Command, outcome(ev.Result)).Inc()
	}
	m.setState(ev.State)
}

// Sync copies a state into the gauges without counting anything.
func (m *Metrics) Sync(s game.GameState) {
	m.setState(s)
}

func (m *Metrics) setState(s game.GameState) {
	occupied := 0
	for _, r := range s.Rooms {
		if r.Occupied {
			occupied++
		}
	}
	running := 0.0
	if s.IsRunning {
		running = 1
	}

	m.Day.Set(float64(s.Day))
	m.Money.Set(float64(s.Money))
	m.Reputation.Set(s.Reputation)
	m.FoodStock.Set(float64(s.FoodStock))
	m.Rooms.Set(float64(len(s.Rooms)))
	m.Occupied.Set(float64(occupied))
	m.Staff.Set(float64(len(s.Staff)))
	m.Running.Set(running)
}

func outcome(r game.Result) string {
	if r.Applied {
		return "applied"
	}
	return r.Reason
}
