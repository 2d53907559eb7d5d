// Package view composes aggregated stats with team/search filters and
// a sort order into the ordered row set the dashboard table displays.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/stats"
)

// TeamFilter selects which side of the fixture passes the filter.
type TeamFilter string

// Team filter values.
const (
	TeamAll  TeamFilter = "ALL"
	TeamHome TeamFilter = "HOME"
	TeamAway TeamFilter = "AWAY"
)

// ParseTeamFilter normalizes a raw filter value, defaulting to ALL.
func ParseTeamFilter(s string) TeamFilter {
	switch t := TeamFilter(strings.ToUpper(strings.TrimSpace(s))); t {
	case TeamHome, TeamAway:
		return t
	default:
		return TeamAll
	}
}

// OrderKey selects the sort order for the row set.
type OrderKey string

// Sort keys. Anything unrecognized behaves as ByRating.
const (
	ByRating  OrderKey = "rating"
	ByGoals   OrderKey = "goals"
	ByAssists OrderKey = "assists"
	ByTackles OrderKey = "tackles"
	ByName    OrderKey = "name"
)

// ParseOrderKey normalizes a raw sort key, defaulting to rating.
func ParseOrderKey(s string) OrderKey {
	switch k := OrderKey(strings.ToLower(strings.TrimSpace(s))); k {
	case ByGoals, ByAssists, ByTackles, ByName, ByRating:
		return k
	default:
		return ByRating
	}
}

// Row is one table row: a roster player plus the stats derived for the
// current minute cutoff.
type Row struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Position string  `json:"position,omitempty"`
	Goals    int     `json:"goals"`
	Assists  int     `json:"assists"`
	Tackles  int     `json:"tackles"`
	Rating   float64 `json:"rating"`
	Impact   *int    `json:"impact"`
}

// Rows produces one row per roster player with counters bounded by
// minuteMax and the aggregate rating rounded to one decimal. Roster
// order is preserved. A nil match yields an empty set.
func Rows(m *model.Match, minuteMax int) []Row {
	if m == nil {
		return []Row{}
	}
	lines := stats.Aggregate(m, minuteMax)
	rows := make([]Row, 0, len(m.Players))
	for _, p := range m.Players {
		line := lines[p.ID]
		rows = append(rows, Row{
			ID:       p.ID,
			Name:     p.Name,
			Team:     p.Team,
			Position: p.Position,
			Goals:    line.Goals,
			Assists:  line.Assists,
			Tackles:  line.Tackles,
			Rating:   stats.Round1(stats.Rating(line.Goals, line.Assists, line.Tackles)),
			Impact:   line.Impact,
		})
	}
	return rows
}

// Filter keeps rows whose team passes the HOME/AWAY filter (matched by
// team name against the fixture) and whose player name contains the
// trimmed, lower-cased search text. Both predicates are ANDed and the
// input order is preserved.
func Filter(rows []Row, m *model.Match, team TeamFilter, search string) []Row {
	q := strings.ToLower(strings.TrimSpace(search))
	var home, away string
	if m != nil {
		home, away = m.HomeTeam, m.AwayTeam
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		teamOK := team == TeamAll ||
			(team == TeamHome && r.Team == home) ||
			(team == TeamAway && r.Team == away)
		searchOK := q == "" || strings.Contains(strings.ToLower(r.Name), q)
		if teamOK && searchOK {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders rows by key without touching the input slice. Numeric
// keys sort descending with ties broken by ascending name; the name key
// sorts ascending. Name comparison uses a fixed collation so the order
// does not depend on the process locale, and the tie-break makes every
// order total: resorting a sorted slice is a no-op.
func Sort(rows []Row, key OrderKey) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	coll := collate.New(language.Und)
	byName := func(a, b Row) bool { return coll.CompareString(a.Name, b.Name) < 0 }

	var less func(a, b Row) bool
	switch key {
	case ByName:
		less = byName
	case ByGoals:
		less = func(a, b Row) bool {
			if a.Goals != b.Goals {
				return a.Goals > b.Goals
			}
			return byName(a, b)
		}
	case ByAssists:
		less = func(a, b Row) bool {
			if a.Assists != b.Assists {
				return a.Assists > b.Assists
			}
			return byName(a, b)
		}
	case ByTackles:
		less = func(a, b Row) bool {
			if a.Tackles != b.Tackles {
				return a.Tackles > b.Tackles
			}
			return byName(a, b)
		}
	case ByRating:
		fallthrough
	default:
		less = func(a, b Row) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return byName(a, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
