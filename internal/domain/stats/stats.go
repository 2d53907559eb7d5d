// Package stats derives per-player counters and ratings from the match
// event log. Everything here is a pure function of its inputs: the
// aggregation is re-run from scratch on every call and never mutates
// the match it reads.
package stats

import (
	"math"

	"github.com/eyamansouri/matchboard/internal/domain/model"
)

// Rating formula constants.
const (
	baseRating   = 6.5
	goalWeight   = 1.5
	assistWeight = 0.8
	tackleWeight = 0.2
	maxRating    = 10
)

// Line holds the counters derived for one player within a minute cutoff.
type Line struct {
	Goals   int
	Assists int
	Tackles int
	// Impact is the earliest minute of a goal/assist/tackle
	// contribution, nil when the player never contributed.
	Impact *int
}

// Rating converts counters into the bounded form rating.
func Rating(goals, assists, tackles int) float64 {
	r := baseRating + float64(goals)*goalWeight + float64(assists)*assistWeight + float64(tackles)*tackleWeight
	return math.Min(maxRating, r)
}

// Round1 rounds half-up to one decimal, the precision used for
// aggregate ratings.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds half-up to two decimals, the precision used for
// time-series samples.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Aggregate folds the event log into per-player lines, skipping events
// past minuteCutoff. The result carries exactly one entry per roster
// player; players absent from the log get zero counters and a nil
// impact. Events referencing ids outside the roster accumulate nothing
// visible in the output.
//
// A GOAL credits the scorer and, when meta carries an assistId, the
// assisting player too. An upstream log that records the same assist
// both ways (explicit ASSIST event plus assistId on the GOAL) is
// counted twice on purpose: the aggregator reflects the log as stored.
func Aggregate(m *model.Match, minuteCutoff int) map[int64]Line {
	goals := make(map[int64]int)
	assists := make(map[int64]int)
	tackles := make(map[int64]int)
	impact := make(map[int64]int)

	mark := func(id int64, minute int) {
		if _, ok := impact[id]; !ok {
			impact[id] = minute
		}
	}

	for _, e := range m.Events {
		if e.Minute > minuteCutoff {
			continue
		}
		switch e.Type {
		case model.Goal:
			goals[e.PlayerID]++
			if aID, ok := e.Meta.AssistID(); ok {
				assists[aID]++
				mark(aID, e.Minute)
			}
			mark(e.PlayerID, e.Minute)
		case model.Assist:
			assists[e.PlayerID]++
			mark(e.PlayerID, e.Minute)
		case model.Tackle:
			tackles[e.PlayerID]++
			mark(e.PlayerID, e.Minute)
		case model.Shot, model.Pass:
			// not counted; PASS feeds the pitch model only
		}
	}

	out := make(map[int64]Line, len(m.Players))
	for _, p := range m.Players {
		line := Line{
			Goals:   goals[p.ID],
			Assists: assists[p.ID],
			Tackles: tackles[p.ID],
		}
		if minute, ok := impact[p.ID]; ok {
			v := minute
			line.Impact = &v
		}
		out[p.ID] = line
	}
	return out
}

// PlayerLine recomputes the counters for a single player at a given
// minute, using the same inclusion rule as Aggregate. It exists for the
// trajectory sampler, which calls it once per time bucket.
func PlayerLine(m *model.Match, playerID int64, minute int) Line {
	var line Line
	for _, e := range m.Events {
		if e.Minute > minute {
			continue
		}
		switch e.Type {
		case model.Goal:
			if e.PlayerID == playerID {
				line.Goals++
			}
			if aID, ok := e.Meta.AssistID(); ok && aID == playerID {
				line.Assists++
			}
		case model.Assist:
			if e.PlayerID == playerID {
				line.Assists++
			}
		case model.Tackle:
			if e.PlayerID == playerID {
				line.Tackles++
			}
		}
	}
	return line
}

// RatingAt is the point-in-time rating for one player, unrounded.
func RatingAt(m *model.Match, playerID int64, minute int) float64 {
	line := PlayerLine(m, playerID, minute)
	return Rating(line.Goals, line.Assists, line.Tackles)
}
