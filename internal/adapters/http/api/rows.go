package api

import (
	"net/http"

	"github.com/eyamansouri/matchboard/internal/domain/view"
)

// handleGetRows handles GET /api/rows?minute=&team=&q=&sort=. The
// response is the ordered row set for the table; unknown team or sort
// values fall back to their documented defaults.
func (s *Server) handleGetRows(w http.ResponseWriter, r *http.Request) {
	minute, err := s.minuteParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	team, search := filterParams(r)
	key := view.ParseOrderKey(r.URL.Query().Get("sort"))

	rows := s.deps.Rows(r.Context(), minute, team, search, key)
	writeJSON(w, http.StatusOK, rows)
}
