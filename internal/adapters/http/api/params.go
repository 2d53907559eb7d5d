package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eyamansouri/matchboard/internal/domain/view"
)

// minuteParam reads the optional minute cutoff query parameter, falling
// back to the configured default.
func (s *Server) minuteParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("minute")
	if raw == "" {
		return s.deps.DefaultMinuteMax(), nil
	}
	minute, err := strconv.Atoi(raw)
	if err != nil || minute < 0 {
		return 0, fmt.Errorf("%w: invalid minute %q", ErrBadRequest, raw)
	}
	return minute, nil
}

// filterParams reads the team filter and search text. Unrecognized team
// values fall back to ALL rather than failing.
func filterParams(r *http.Request) (view.TeamFilter, string) {
	q := r.URL.Query()
	return view.ParseTeamFilter(q.Get("team")), q.Get("q")
}

// idParam reads the {id} path parameter.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid player id %q", ErrBadRequest, raw)
	}
	return id, nil
}
