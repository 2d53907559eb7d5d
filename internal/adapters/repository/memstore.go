package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/pkg/metrics"
)

// MemStore implements Store with a single in-memory snapshot guarded by
// a RWMutex. Appending builds a new Match value via WithEvent, so
// previously handed-out snapshots stay valid: a reader holding an old
// snapshot never observes the append.
type MemStore struct {
	mu       sync.RWMutex
	match    model.Match
	hasMatch bool
	nextID   int64
}

// NewMemStore creates a new in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{}
	for _, opt := range opts {
		opt(s)
	}
	if s.hasMatch {
		s.nextID = maxEventID(s.match.Events) + 1
		s.publishGauges()
	}
	return s
}

// Snapshot returns the current match value.
func (s *MemStore) Snapshot(ctx context.Context) (model.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasMatch {
		return model.Match{}, false
	}
	return s.snapshotLocked(), true
}

// SetMatch replaces the stored snapshot and resets the id sequence past
// the highest event id already present.
func (s *MemStore) SetMatch(ctx context.Context, m model.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.match = m
	s.hasMatch = true
	s.nextID = maxEventID(m.Events) + 1
	s.publishGauges()
}

// AppendEvent validates e, assigns the next server id, and appends it.
func (s *MemStore) AppendEvent(ctx context.Context, e model.Event) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasMatch {
		return model.Event{}, ErrNoMatch
	}
	t, ok := model.ParseEventType(string(e.Type))
	if !ok {
		metrics.RecordEventRejected()
		return model.Event{}, fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}
	if e.Minute < 0 {
		metrics.RecordEventRejected()
		return model.Event{}, fmt.Errorf("%w: %d", ErrInvalidMinute, e.Minute)
	}
	if _, ok := s.match.PlayerByID(e.PlayerID); !ok {
		metrics.RecordEventRejected()
		return model.Event{}, fmt.Errorf("%w: id %d", ErrPlayerNotFound, e.PlayerID)
	}

	e.Type = t
	e.ID = s.nextID
	s.nextID++

	s.match = s.match.WithEvent(e)
	metrics.RecordEventAppended()
	s.publishGauges()
	return e, nil
}

// Player returns the roster player with the given id.
func (s *MemStore) Player(ctx context.Context, id int64) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasMatch {
		return model.Player{}, ErrNoMatch
	}
	p, ok := s.match.PlayerByID(id)
	if !ok {
		return model.Player{}, fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
	}
	return p, nil
}

// RosterSize reports the number of roster players.
func (s *MemStore) RosterSize(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.match.Players)
}

// EventCount reports the current event log length.
func (s *MemStore) EventCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.match.Events)
}

// snapshotLocked copies the slices so callers can hold the value beyond
// the lock. Meta maps are shared; they are treated as read-only by
// every consumer.
func (s *MemStore) snapshotLocked() model.Match {
	m := s.match
	m.Players = make([]model.Player, len(s.match.Players))
	copy(m.Players, s.match.Players)
	m.Events = make([]model.Event, len(s.match.Events))
	copy(m.Events, s.match.Events)
	return m
}

func (s *MemStore) publishGauges() {
	metrics.UpdateRosterSize(len(s.match.Players))
	metrics.UpdateEventLogSize(len(s.match.Events))
}

func maxEventID(events []model.Event) int64 {
	var max int64
	for _, e := range events {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}
