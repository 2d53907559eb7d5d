package api

import (
	"net/http"
	"time"

	"github.com/eyamansouri/matchboard/internal/domain/model"
)

// matchInfo is the fixture metadata part of the match envelope.
type matchInfo struct {
	ID        int64     `json:"id"`
	DateUTC   time.Time `json:"dateUtc"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
}

// matchEnvelope mirrors the shape the dashboard shell loads on startup:
// fixture metadata, the roster, and the raw event log.
type matchEnvelope struct {
	Match   *matchInfo     `json:"match"`
	Players []model.Player `json:"players"`
	Events  []model.Event  `json:"events"`
}

// handleGetMatch handles GET /api/match. A missing match yields a null
// fixture with empty collections rather than an error.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	env := matchEnvelope{Players: []model.Player{}, Events: []model.Event{}}
	if m, ok := s.deps.MatchSnapshot(r.Context()); ok {
		env.Match = &matchInfo{
			ID:        m.ID,
			DateUTC:   m.DateUTC,
			HomeTeam:  m.HomeTeam,
			AwayTeam:  m.AwayTeam,
			HomeScore: m.HomeScore,
			AwayScore: m.AwayScore,
		}
		env.Players = m.Players
		env.Events = m.Events
	}
	writeJSON(w, http.StatusOK, env)
}
