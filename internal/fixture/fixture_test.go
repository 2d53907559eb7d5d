package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/stats"
	"github.com/eyamansouri/matchboard/internal/fixture"
)

func TestDemo(t *testing.T) {
	Convey("Given the built-in demo fixture", t, func() {
		m := fixture.Demo()

		Convey("Both sides field a full roster", func() {
			var home, away int
			for _, p := range m.Players {
				switch p.Team {
				case m.HomeTeam:
					home++
				case m.AwayTeam:
					away++
				}
			}
			So(home+away, ShouldEqual, len(m.Players))
			So(home, ShouldEqual, 7)
			So(away, ShouldEqual, 7)
		})

		Convey("Every event references a roster player", func() {
			for _, e := range m.Events {
				_, ok := m.PlayerByID(e.PlayerID)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Event ids are unique and minutes non-negative", func() {
			seen := make(map[int64]bool)
			for _, e := range m.Events {
				So(seen[e.ID], ShouldBeFalse)
				seen[e.ID] = true
				So(e.Minute, ShouldBeGreaterThanOrEqualTo, 0)
			}
		})

		Convey("The goal count matches the recorded score", func() {
			lines := stats.Aggregate(&m, 120)
			var home, away int
			for _, p := range m.Players {
				if p.Team == m.HomeTeam {
					home += lines[p.ID].Goals
				} else {
					away += lines[p.ID].Goals
				}
			}
			So(home, ShouldEqual, m.HomeScore)
			So(away, ShouldEqual, m.AwayScore)
		})

		Convey("The fixture is deterministic", func() {
			So(fixture.Demo(), ShouldResemble, m)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a match fixture on disk", t, func() {
		path := filepath.Join(t.TempDir(), "match.json")
		raw := `{
			"id": 9,
			"homeTeam": "Blue FC",
			"awayTeam": "Red United",
			"players": [{"id": 1, "name": "Ana", "team": "Blue FC", "position": "ST"}],
			"events": [{"id": 1, "playerId": 1, "minute": 12, "type": "GOAL", "meta": {"x": 80, "y": 44}}]
		}`
		So(os.WriteFile(path, []byte(raw), 0o644), ShouldBeNil)

		Convey("Load decodes the snapshot", func() {
			m, err := fixture.Load(path)
			So(err, ShouldBeNil)
			So(m.ID, ShouldEqual, 9)
			So(m.Players, ShouldHaveLength, 1)
			So(m.Events[0].Type, ShouldEqual, model.Goal)
			x, y, ok := m.Events[0].Meta.XY()
			So(ok, ShouldBeTrue)
			So(x, ShouldAlmostEqual, 80)
			So(y, ShouldAlmostEqual, 44)
		})

		Convey("A missing file reports the read error", func() {
			_, err := fixture.Load(filepath.Join(t.TempDir(), "nope.json"))
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed JSON reports the parse error", func() {
			bad := filepath.Join(t.TempDir(), "bad.json")
			So(os.WriteFile(bad, []byte("{"), 0o644), ShouldBeNil)
			_, err := fixture.Load(bad)
			So(err, ShouldNotBeNil)
		})
	})
}
