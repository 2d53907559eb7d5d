package api

import "net/http"

// handleGetPitch handles GET /api/pitch?minute=&team=&q=. The response
// carries the placed nodes, pass-network edges, and shot/goal markers.
func (s *Server) handleGetPitch(w http.ResponseWriter, r *http.Request) {
	minute, err := s.minuteParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	team, search := filterParams(r)

	writeJSON(w, http.StatusOK, s.deps.Pitch(r.Context(), minute, team, search))
}
