package model

import (
	"encoding/json"
	"strconv"
)

// Meta keys with externally meaningful semantics. Everything else in the
// bag is carried but ignored by the engine.
const (
	MetaAssistID       = "assistId"
	MetaTargetPlayerID = "targetPlayerId"
	MetaX              = "x"
	MetaY              = "y"
	MetaOnTarget       = "onTarget"
)

// Meta is the open-ended per-event metadata bag. Values arrive through
// JSON, so numbers are usually float64, but upstream sources have been
// seen sending ids as strings; the accessors tolerate both and report
// absence instead of failing on a type mismatch.
type Meta map[string]any

// Int64 reads key as an integer id. Returns false when the key is
// absent or the value cannot be read as an integer.
func (m Meta) Int64(key string) (int64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// Float64 reads key as a numeric value with the same tolerance as Int64.
func (m Meta) Float64(key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AssistID returns the player credited with the assist on a GOAL.
func (m Meta) AssistID() (int64, bool) {
	return m.Int64(MetaAssistID)
}

// TargetPlayerID returns the pass receiver for a PASS event.
func (m Meta) TargetPlayerID() (int64, bool) {
	return m.Int64(MetaTargetPlayerID)
}

// XY returns the stored pitch coordinates. Both must be present for the
// event to yield a marker.
func (m Meta) XY() (x, y float64, ok bool) {
	x, okX := m.Float64(MetaX)
	y, okY := m.Float64(MetaY)
	return x, y, okX && okY
}
