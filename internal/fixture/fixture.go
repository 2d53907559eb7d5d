// Package fixture loads and generates match snapshots for seeding the
// store: a JSON file for real data, or a built-in demo fixture so the
// dashboard has something to show out of the box.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/eyamansouri/matchboard/internal/domain/model"
)

// Load reads a match snapshot from a JSON file.
func Load(path string) (model.Match, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Match{}, fmt.Errorf("read fixture: %w", err)
	}
	var m model.Match
	if err := json.Unmarshal(raw, &m); err != nil {
		return model.Match{}, fmt.Errorf("parse fixture: %w", err)
	}
	return m, nil
}

// Demo returns a deterministic demo fixture: two full sides and an
// event log exercising every event type, including goal coordinates,
// assist credits, and pass-network traffic.
func Demo() model.Match {
	players := []model.Player{
		{ID: 1, Name: "Theo Marchand", Team: "Blue FC", Position: model.PosGoalkeeper},
		{ID: 2, Name: "Iker Sandoval", Team: "Blue FC", Position: model.PosLeftBack},
		{ID: 3, Name: "Karim Belaid", Team: "Blue FC", Position: model.PosCenterBack},
		{ID: 4, Name: "Milo Verstraete", Team: "Blue FC", Position: model.PosRightBack},
		{ID: 5, Name: "Santi Ferreyra", Team: "Blue FC", Position: model.PosCentralMidfield},
		{ID: 6, Name: "Youssef Amrani", Team: "Blue FC", Position: model.PosAttackingMidfield},
		{ID: 7, Name: "Dani Costa", Team: "Blue FC", Position: model.PosStriker},
		{ID: 8, Name: "Oleg Petrov", Team: "Red United", Position: model.PosGoalkeeper},
		{ID: 9, Name: "Jonas Lindqvist", Team: "Red United", Position: model.PosCenterBack},
		{ID: 10, Name: "Marco Deluca", Team: "Red United", Position: model.PosDefensiveMidfield},
		{ID: 11, Name: "Pavel Horak", Team: "Red United", Position: model.PosCentralMidfield},
		{ID: 12, Name: "Ayo Adebayo", Team: "Red United", Position: model.PosLeftWing},
		{ID: 13, Name: "Luka Brekalo", Team: "Red United", Position: model.PosRightWing},
		{ID: 14, Name: "Emil Johansen", Team: "Red United", Position: model.PosStriker},
	}

	events := []model.Event{
		{ID: 1, PlayerID: 5, Minute: 3, Type: model.Pass, Meta: model.Meta{model.MetaTargetPlayerID: float64(6)}},
		{ID: 2, PlayerID: 6, Minute: 4, Type: model.Pass, Meta: model.Meta{model.MetaTargetPlayerID: float64(7)}},
		{ID: 3, PlayerID: 7, Minute: 5, Type: model.Shot, Meta: model.Meta{model.MetaX: 88.0, model.MetaY: 46.0, model.MetaOnTarget: true}},
		{ID: 4, PlayerID: 10, Minute: 9, Type: model.Tackle},
		{ID: 5, PlayerID: 12, Minute: 14, Type: model.Shot, Meta: model.Meta{model.MetaX: 12.0, model.MetaY: 60.0, model.MetaOnTarget: false}},
		{ID: 6, PlayerID: 5, Minute: 17, Type: model.Pass, Meta: model.Meta{model.MetaTargetPlayerID: float64(7)}},
		{ID: 7, PlayerID: 7, Minute: 18, Type: model.Goal, Meta: model.Meta{model.MetaAssistID: float64(5), model.MetaX: 90.0, model.MetaY: 50.0}},
		{ID: 8, PlayerID: 3, Minute: 24, Type: model.Tackle},
		{ID: 9, PlayerID: 11, Minute: 31, Type: model.Pass, Meta: model.Meta{model.MetaTargetPlayerID: float64(14)}},
		{ID: 10, PlayerID: 14, Minute: 33, Type: model.Goal, Meta: model.Meta{model.MetaAssistID: float64(11), model.MetaX: 8.0, model.MetaY: 52.0}},
		{ID: 11, PlayerID: 6, Minute: 41, Type: model.Shot, Meta: model.Meta{model.MetaX: 82.0, model.MetaY: 38.0, model.MetaOnTarget: true}},
		{ID: 12, PlayerID: 5, Minute: 47, Type: model.Pass, Meta: model.Meta{model.MetaTargetPlayerID: float64(6)}},
		{ID: 13, PlayerID: 5, Minute: 52, Type: model.Pass, Meta: model.Meta{model.MetaTargetPlayerID: float64(6)}},
		{ID: 14, PlayerID: 10, Minute: 58, Type: model.Tackle},
		{ID: 15, PlayerID: 2, Minute: 63, Type: model.Tackle},
		{ID: 16, PlayerID: 13, Minute: 69, Type: model.Pass, Meta: model.Meta{model.MetaTargetPlayerID: float64(14)}},
		{ID: 17, PlayerID: 14, Minute: 71, Type: model.Shot, Meta: model.Meta{model.MetaX: 14.0, model.MetaY: 44.0, model.MetaOnTarget: true}},
		{ID: 18, PlayerID: 6, Minute: 78, Type: model.Goal, Meta: model.Meta{model.MetaAssistID: float64(7), model.MetaX: 86.0, model.MetaY: 42.0}},
		{ID: 19, PlayerID: 9, Minute: 84, Type: model.Tackle},
		{ID: 20, PlayerID: 12, Minute: 89, Type: model.Shot},
	}

	return model.Match{
		ID:        1,
		DateUTC:   time.Date(2025, time.May, 17, 19, 45, 0, 0, time.UTC),
		HomeTeam:  "Blue FC",
		AwayTeam:  "Red United",
		HomeScore: 2,
		AwayScore: 1,
		Players:   players,
		Events:    events,
	}
}
