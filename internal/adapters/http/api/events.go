package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/eyamansouri/matchboard/internal/adapters/repository"
	"github.com/eyamansouri/matchboard/internal/domain/model"
)

// eventRequest mirrors the POST /api/event payload. The id is assigned
// by the store; a client-supplied id is ignored.
type eventRequest struct {
	PlayerID int64      `json:"playerId"`
	Minute   int        `json:"minute"`
	Type     string     `json:"type"`
	Meta     model.Meta `json:"meta"`
}

func (e eventRequest) validate() error {
	if e.PlayerID == 0 {
		return errors.New("missing playerId")
	}
	if e.Minute < 0 {
		return errors.New("minute must not be negative")
	}
	if _, ok := model.ParseEventType(e.Type); !ok {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}

// handlePostEvent handles POST /api/event: validates, appends to the
// event log, and returns the stored event with its server-assigned id.
func (s *Server) handlePostEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	saved, err := s.deps.AddEvent(r.Context(), model.Event{
		PlayerID: req.PlayerID,
		Minute:   req.Minute,
		Type:     model.EventType(req.Type),
		Meta:     req.Meta,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, saved)
	case errors.Is(err, repository.ErrNoMatch), errors.Is(err, repository.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrUnknownEventType), errors.Is(err, repository.ErrInvalidMinute):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
