// Package repository defines the match snapshot store interface and errors.
package repository

import (
	"context"

	"github.com/eyamansouri/matchboard/internal/domain/model"
)

// Store provides access to the current match snapshot and the
// append-only event log. Reads return value copies safe to use without
// coordination; the engine never sees shared mutable state.
type Store interface {
	// Snapshot returns the current match value. ok is false when no
	// match has been loaded yet.
	Snapshot(ctx context.Context) (m model.Match, ok bool)

	// SetMatch replaces the stored snapshot wholesale (initial load or
	// fixture seeding).
	SetMatch(ctx context.Context, m model.Match)

	// AppendEvent validates e, assigns the next server id, and appends
	// it to the event log. Returns the stored event.
	AppendEvent(ctx context.Context, e model.Event) (model.Event, error)

	// Player returns the roster player with the given id.
	// Returns ErrPlayerNotFound if the id is unknown.
	Player(ctx context.Context, id int64) (model.Player, error)

	// RosterSize and EventCount report store sizes for monitoring.
	RosterSize(ctx context.Context) int
	EventCount(ctx context.Context) int
}
