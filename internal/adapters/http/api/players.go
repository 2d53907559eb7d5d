package api

import (
	"errors"
	"net/http"

	"github.com/eyamansouri/matchboard/internal/adapters/repository"
	"github.com/eyamansouri/matchboard/internal/domain/trend"
)

// playerError maps store lookup failures onto HTTP statuses.
func playerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrPlayerNotFound), errors.Is(err, repository.ErrNoMatch):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// handleGetPlayer handles GET /api/player/{id}?minute=: one player's
// row (counters, rating, impact) at the requested cutoff.
func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	minute, err := s.minuteParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	row, err := s.deps.PlayerCard(r.Context(), id, minute)
	if err != nil {
		playerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// seriesResponse pairs sample minutes with the rating values.
type seriesResponse struct {
	PlayerID int64     `json:"playerId"`
	Minutes  []int     `json:"minutes"`
	Ratings  []float64 `json:"ratings"`
}

// handleGetSeries handles GET /api/player/{id}/series?minute=.
func (s *Server) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	minute, err := s.minuteParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	ratings, err := s.deps.Series(r.Context(), id, minute)
	if err != nil {
		playerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seriesResponse{
		PlayerID: id,
		Minutes:  trend.SampleMinutes(minute),
		Ratings:  ratings,
	})
}

// handleGetSparkline handles GET /api/player/{id}/sparkline?minute= and
// responds with an inline SVG fragment.
func (s *Server) handleGetSparkline(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	minute, err := s.minuteParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	svg, err := s.deps.Sparkline(r.Context(), id, minute)
	if err != nil {
		playerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
