package api

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/everforgeworks/hotel-tycoon/internal/game"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options wires the router to the rest of the process.
type Options struct {
	Context  context.Context // Lifetime of the day timer started from the API
	Hotel    *game.Hotel
	Runner   *game.Runner
	Hub      *Hub
	Gatherer prometheus.Gatherer // Served on /metrics when set
	Limiter  *RateLimiter        // Applied to /api when set
	Logger   *log.Logger
}

// NewRouter builds the full HTTP surface.
func NewRouter(opts Options) http.Handler {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	h := NewHandler(opts.Context, opts.Hotel, opts.Runner)

	r := mux.NewRouter()
	r.Use(RequestID, Recover(opts.Logger), AccessLog(opts.Logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "day": opts.Hotel.Snapshot().Day})
	}).Methods(http.MethodGet)

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	if opts.Hub != nil {
		r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			ServeWs(opts.Hub, opts.Hotel, w, r)
		})
	}

	api := r.PathPrefix("/api").Subrouter()
	if opts.Limiter != nil {
		api.Use(opts.Limiter.Middleware)
	}

	api.HandleFunc("/state", h.HandleGetState).Methods(http.MethodGet)

	api.HandleFunc("/rooms", h.HandleBuyRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms/clean", h.HandleCleanAllRooms).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/upgrade", h.HandleUpgradeRoom).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/clean", h.HandleCleanRoom).Methods(http.MethodPost)

	api.HandleFunc("/staff", h.HandleHireEmployee).Methods(http.MethodPost)
	api.HandleFunc("/staff/{id}/train", h.HandleTrainStaff).Methods(http.MethodPost)
	api.HandleFunc("/staff/{id}", h.HandleFireStaff).Methods(http.MethodDelete)

	api.HandleFunc("/food", h.HandleBuyFood).Methods(http.MethodPost)
	api.HandleFunc("/reset", h.HandleReset).Methods(http.MethodPost)
	api.HandleFunc("/simulation/toggle", h.HandleToggle).Methods(http.MethodPost)
	api.HandleFunc("/simulation/advance", h.HandleAdvance).Methods(http.MethodPost)

	// CORS wraps the router so preflight requests are answered before route matching.
	return CORS(r)
}
