// Package model contains the match snapshot types passed between layers.
//
// A Match is an immutable value: the engine never mutates one, and
// appending an event produces a new Match with the event log extended.
package model

import (
	"strings"
	"time"
)

// EventType enumerates the recognized event kinds.
type EventType string

// Recognized event types. Anything else is rejected at the ingestion
// boundary; the engine itself never fails on an unknown type, it just
// ignores it.
const (
	Goal   EventType = "GOAL"
	Assist EventType = "ASSIST"
	Shot   EventType = "SHOT"
	Tackle EventType = "TACKLE"
	Pass   EventType = "PASS"
)

// ParseEventType normalizes a raw type string. Returns false when the
// value is not part of the vocabulary.
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Goal, Assist, Shot, Tackle, Pass:
		return t, true
	default:
		return "", false
	}
}

// Position codes. Players may carry any string; consumers fall back to
// a default placement for codes outside this vocabulary.
const (
	PosGoalkeeper         = "GK"
	PosLeftBack           = "LB"
	PosRightBack          = "RB"
	PosCenterBack         = "CB"
	PosCentralMidfield    = "CM"
	PosDefensiveMidfield  = "DM"
	PosAttackingMidfield  = "AM"
	PosLeftWing           = "LW"
	PosRightWing          = "RW"
	PosStriker            = "ST"
)

// Player is a roster entry. Derived stats (goals, rating, ...) are not
// part of the model; they are recomputed by the engine on every call.
type Player struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position,omitempty"`
}

// NormalizedPosition returns the upper-cased position code, defaulting
// to central midfield when the player has none.
func (p Player) NormalizedPosition() string {
	if strings.TrimSpace(p.Position) == "" {
		return PosCentralMidfield
	}
	return strings.ToUpper(strings.TrimSpace(p.Position))
}

// Event is a single entry of the append-only match event log. Meta is a
// best-effort bag; every consumer must tolerate absent or malformed keys.
type Event struct {
	ID       int64     `json:"id"`
	PlayerID int64     `json:"playerId"`
	Minute   int       `json:"minute"`
	Type     EventType `json:"type"`
	Meta     Meta      `json:"meta,omitempty"`
}

// Match is one immutable snapshot of a fixture: metadata, the full
// roster, and the ordered event log. Team names (not ids) are the join
// key between players and the home/away sides.
type Match struct {
	ID        int64     `json:"id"`
	DateUTC   time.Time `json:"dateUtc"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Players   []Player  `json:"players"`
	Events    []Event   `json:"events"`
}

// PlayerByID looks up a roster player.
func (m *Match) PlayerByID(id int64) (Player, bool) {
	for _, p := range m.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// WithEvent returns a copy of the match with e appended to the event
// log. The receiver is left untouched.
func (m Match) WithEvent(e Event) Match {
	events := make([]Event, len(m.Events), len(m.Events)+1)
	copy(events, m.Events)
	m.Events = append(events, e)
	return m
}
