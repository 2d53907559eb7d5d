// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/pitch"
	"github.com/eyamansouri/matchboard/internal/domain/view"
)

// Dependencies required by the HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Data source operations.
	MatchSnapshot(ctx context.Context) (model.Match, bool)
	AddEvent(ctx context.Context, e model.Event) (model.Event, error)
	Player(ctx context.Context, id int64) (model.Player, error)

	// Engine reads. Each call recomputes from the current snapshot.
	Rows(ctx context.Context, minuteMax int, team view.TeamFilter, search string, key view.OrderKey) []view.Row
	PlayerCard(ctx context.Context, id int64, minuteMax int) (view.Row, error)
	Pitch(ctx context.Context, minuteMax int, team view.TeamFilter, search string) pitch.Model
	Series(ctx context.Context, playerID int64, minuteMax int) ([]float64, error)
	Sparkline(ctx context.Context, playerID int64, minuteMax int) (string, error)

	// DefaultMinuteMax is the cutoff used when the request has none.
	DefaultMinuteMax() int
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	deps          Dependencies
	statsProvider StatsProvider
	ratePerMinute int
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithRateLimit caps requests per client IP per minute. Zero disables
// the limiter.
func WithRateLimit(perMinute int) Option {
	return func(s *Server) {
		if perMinute >= 0 {
			s.ratePerMinute = perMinute
		}
	}
}

// NewServer creates a new API server.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		deps:          deps,
		statsProvider: statsProvider,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	if s.ratePerMinute > 0 {
		r.Use(RateLimitMiddleware(s.ratePerMinute))
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/stats", MetricsMiddleware(s.handleStats, "stats"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/match", MetricsMiddleware(s.handleGetMatch, "match"))
		r.Post("/event", MetricsMiddleware(s.handlePostEvent, "event"))
		r.Get("/rows", MetricsMiddleware(s.handleGetRows, "rows"))
		r.Get("/pitch", MetricsMiddleware(s.handleGetPitch, "pitch"))
		r.Get("/player/{id}", MetricsMiddleware(s.handleGetPlayer, "player"))
		r.Get("/player/{id}/series", MetricsMiddleware(s.handleGetSeries, "series"))
		r.Get("/player/{id}/sparkline", MetricsMiddleware(s.handleGetSparkline, "sparkline"))
	})
	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
