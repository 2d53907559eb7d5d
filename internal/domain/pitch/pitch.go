// Package pitch builds the spatial model behind the pitch plot: player
// node placement, shot/goal markers, and the pass network. Placement is
// a pure function of roster data; only markers and edges read the event
// log.
package pitch

import (
	"fmt"
	"strings"

	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/view"
)

// Placement constants, in pitch percent coordinates.
const (
	homeBaseX       = 65
	awayBaseX       = 35
	attackingOffset = 12
	defaultRoleY    = 50
	minY            = 8
	maxY            = 92
	jitterSpan      = 9
	jitterShift     = 4
	maxEdgeCount    = 6
	baseEdgeWidth   = 0.8
)

// roleY maps a position code to its base vertical placement.
var roleY = map[string]float64{
	model.PosGoalkeeper:        10,
	model.PosLeftBack:          25,
	model.PosCenterBack:        40,
	model.PosRightBack:         25,
	model.PosCentralMidfield:   50,
	model.PosDefensiveMidfield: 58,
	model.PosAttackingMidfield: 42,
	model.PosLeftWing:          30,
	model.PosRightWing:         70,
	model.PosStriker:           50,
}

// attacking position codes get pushed further toward the opposing half.
var attacking = map[string]bool{
	model.PosStriker:           true,
	model.PosRightWing:         true,
	model.PosLeftWing:          true,
	model.PosAttackingMidfield: true,
}

// Node is a placed roster player.
type Node struct {
	ID   int64   `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
}

// Marker is a plotted GOAL or SHOT event.
type Marker struct {
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	Class string  `json:"cls"`
	Title string  `json:"title"`
}

// Edge is one directed pass-network connection with its aggregate count
// encoded in the stroke width.
type Edge struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"w"`
	Title string  `json:"title"`
}

// Model is the full spatial output consumed by the pitch plot.
type Model struct {
	Nodes  []Node   `json:"nodes"`
	Edges  []Edge   `json:"edges"`
	Events []Marker `json:"events"`
}

type vec2 struct {
	x, y float64
}

// jitter derives a small signed vertical offset from the player name:
// sum of character codes modulo 9, shifted to [-4, 4]. Specified as an
// explicit character sum (not a library hash) so the placement is
// reproducible across implementations.
func jitter(name string) float64 {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	return float64(sum%jitterSpan - jitterShift)
}

// place computes the coordinate for one player given its side.
func place(p model.Player, isHome bool) vec2 {
	pos := p.NormalizedPosition()
	base, ok := roleY[pos]
	if !ok {
		base = defaultRoleY
	}
	y := base + jitter(p.Name)
	if y < minY {
		y = minY
	}
	if y > maxY {
		y = maxY
	}

	var x float64
	if isHome {
		x = homeBaseX
		if attacking[pos] {
			x += attackingOffset
		}
	} else {
		x = awayBaseX
		if attacking[pos] {
			x -= attackingOffset
		}
	}
	return vec2{x: x, y: y}
}

// Compute builds the spatial model for the given cutoff and filters.
// A nil match yields empty collections.
func Compute(m *model.Match, minuteMax int, team view.TeamFilter, search string) Model {
	out := Model{Nodes: []Node{}, Edges: []Edge{}, Events: []Marker{}}
	if m == nil {
		return out
	}

	q := strings.ToLower(strings.TrimSpace(search))
	home, away := m.HomeTeam, m.AwayTeam

	nameOf := make(map[int64]string, len(m.Players))
	teamOf := make(map[int64]string, len(m.Players))
	pos := make(map[int64]vec2, len(m.Players))
	for _, p := range m.Players {
		nameOf[p.ID] = p.Name
		teamOf[p.ID] = p.Team
		pos[p.ID] = place(p, p.Team == home)
	}

	matchesSearch := func(name string) bool {
		return q == "" || strings.Contains(strings.ToLower(name), q)
	}
	onSide := func(teamName string) bool {
		switch team {
		case view.TeamHome:
			return teamName == home
		case view.TeamAway:
			return teamName == away
		default:
			return true
		}
	}

	// GOAL/SHOT markers with stored coordinates.
	for _, e := range m.Events {
		if e.Minute > minuteMax {
			continue
		}
		if e.Type != model.Goal && e.Type != model.Shot {
			continue
		}
		if !onSide(teamOf[e.PlayerID]) {
			continue
		}
		name := nameOf[e.PlayerID]
		if !matchesSearch(name) {
			continue
		}
		x, y, ok := e.Meta.XY()
		if !ok {
			// no coordinates stored, nothing to plot
			continue
		}
		cls := "shot"
		if e.Type == model.Goal {
			cls = "goal"
		}
		out.Events = append(out.Events, Marker{
			CX:    x,
			CY:    y,
			Class: cls,
			Title: fmt.Sprintf("%s — %s — %d′", e.Type, name, e.Minute),
		})
	}

	// Pass network: count directed (source, target) pairs in first-seen
	// order so the edge list is deterministic.
	type pair struct {
		src, dst int64
	}
	counts := make(map[pair]int)
	order := make([]pair, 0)
	for _, e := range m.Events {
		if e.Type != model.Pass || e.Minute > minuteMax {
			continue
		}
		dstID, ok := e.Meta.TargetPlayerID()
		if !ok {
			continue
		}
		srcTeam, srcOK := teamOf[e.PlayerID]
		dstTeam, dstOK := teamOf[dstID]
		if !srcOK || !dstOK {
			// pass to or from an unknown player is dropped
			continue
		}
		if team == view.TeamHome && (srcTeam != home || dstTeam != home) {
			continue
		}
		if team == view.TeamAway && (srcTeam != away || dstTeam != away) {
			continue
		}
		if !matchesSearch(nameOf[e.PlayerID]) && !matchesSearch(nameOf[dstID]) {
			continue
		}
		k := pair{src: e.PlayerID, dst: dstID}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	for _, k := range order {
		count := counts[k]
		a, b := pos[k.src], pos[k.dst]
		width := float64(count)
		if width > maxEdgeCount {
			width = maxEdgeCount
		}
		out.Edges = append(out.Edges, Edge{
			X1:    a.x,
			Y1:    a.y,
			X2:    b.x,
			Y2:    b.y,
			Width: baseEdgeWidth + width,
			Title: fmt.Sprintf("%s → %s : %d passes", nameOf[k.src], nameOf[k.dst], count),
		})
	}

	// Player nodes, same filters as the row view.
	for _, p := range m.Players {
		if !onSide(p.Team) || !matchesSearch(p.Name) {
			continue
		}
		v := pos[p.ID]
		out.Nodes = append(out.Nodes, Node{ID: p.ID, X: v.x, Y: v.y, Name: p.Name})
	}

	return out
}
