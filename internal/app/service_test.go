package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eyamansouri/matchboard/internal/adapters/repository"
	"github.com/eyamansouri/matchboard/internal/app"
	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/view"
	"github.com/eyamansouri/matchboard/pkg/logger"
)

func init() {
	_ = logger.Init()
}

func serviceMatch() model.Match {
	return model.Match{
		ID:       1,
		HomeTeam: "Blue FC",
		AwayTeam: "Red United",
		Players: []model.Player{
			{ID: 1, Name: "Ana", Team: "Blue FC", Position: "ST"},
			{ID: 2, Name: "Bruno", Team: "Blue FC", Position: "CM"},
			{ID: 3, Name: "Carla", Team: "Red United", Position: "CB"},
		},
		Events: []model.Event{
			{ID: 1, PlayerID: 1, Minute: 10, Type: model.Goal, Meta: model.Meta{"assistId": float64(2), "x": float64(80), "y": float64(45)}},
			{ID: 2, PlayerID: 3, Minute: 40, Type: model.Tackle},
		},
	}
}

func startedService(opts ...app.Option) *app.Service {
	svc := app.New(append([]app.Option{app.WithSeedMatch(serviceMatch())}, opts...)...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a service seeded with a match", t, func() {
		ctx := context.Background()
		svc := startedService()
		defer svc.Stop()

		Convey("The snapshot is available after Start", func() {
			m, ok := svc.MatchSnapshot(ctx)
			So(ok, ShouldBeTrue)
			So(m.ID, ShouldEqual, 1)
		})

		Convey("Start is idempotent", func() {
			So(svc.Start(ctx), ShouldBeNil)
		})

		Convey("Stats report the roster and log sizes", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["rosterSize"], ShouldEqual, 3)
			So(stats["eventCount"], ShouldEqual, 2)
			So(stats["homeTeam"], ShouldEqual, "Blue FC")
		})
	})

	Convey("A service without a seed starts empty", t, func() {
		ctx := context.Background()
		svc := app.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		_, ok := svc.MatchSnapshot(ctx)
		So(ok, ShouldBeFalse)
		So(svc.Rows(ctx, 90, view.TeamAll, "", view.ByRating), ShouldBeEmpty)
	})

	Convey("The default cutoff is configurable", t, func() {
		svc := app.New(app.WithDefaultMinuteMax(45))
		So(svc.DefaultMinuteMax(), ShouldEqual, 45)
	})
}

func TestServiceRows(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService()
		defer svc.Stop()

		Convey("Rows come back filtered and sorted", func() {
			rows := svc.Rows(ctx, 90, view.TeamAll, "", view.ByRating)
			So(rows, ShouldHaveLength, 3)
			So(rows[0].Name, ShouldEqual, "Ana")
			So(rows[0].Rating, ShouldAlmostEqual, 8.0)

			home := svc.Rows(ctx, 90, view.TeamHome, "", view.ByName)
			So(home, ShouldHaveLength, 2)
		})

		Convey("An appended event shows up in the next recompute", func() {
			_, err := svc.AddEvent(ctx, model.Event{PlayerID: 3, Minute: 60, Type: model.Goal})
			So(err, ShouldBeNil)

			rows := svc.Rows(ctx, 90, view.TeamAll, "", view.ByGoals)
			So(rows[0].Goals, ShouldEqual, 1)
			So(rows[1].Goals, ShouldEqual, 1)
		})

		Convey("Invalid events are refused with the store's error", func() {
			_, err := svc.AddEvent(ctx, model.Event{PlayerID: 99, Minute: 10, Type: model.Goal})
			So(errors.Is(err, repository.ErrPlayerNotFound), ShouldBeTrue)
		})
	})
}

func TestServicePlayerViews(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService()
		defer svc.Stop()

		Convey("PlayerCard returns the player's row at the cutoff", func() {
			row, err := svc.PlayerCard(ctx, 2, 90)
			So(err, ShouldBeNil)
			So(row.Name, ShouldEqual, "Bruno")
			So(row.Assists, ShouldEqual, 1)
			So(row.Rating, ShouldAlmostEqual, 7.3)
		})

		Convey("PlayerCard rejects unknown players", func() {
			_, err := svc.PlayerCard(ctx, 99, 90)
			So(errors.Is(err, repository.ErrPlayerNotFound), ShouldBeTrue)
		})

		Convey("Series samples the rating trajectory", func() {
			s, err := svc.Series(ctx, 1, 90)
			So(err, ShouldBeNil)
			So(s, ShouldHaveLength, 7)
			So(s[0], ShouldAlmostEqual, 6.5)
			So(s[6], ShouldAlmostEqual, 8.0)
		})

		Convey("Series rejects unknown players", func() {
			_, err := svc.Series(ctx, 99, 90)
			So(errors.Is(err, repository.ErrPlayerNotFound), ShouldBeTrue)
		})

		Convey("Sparkline renders the series as SVG", func() {
			svg, err := svc.Sparkline(ctx, 1, 90)
			So(err, ShouldBeNil)
			So(strings.Contains(svg, "<svg"), ShouldBeTrue)
			So(svg, ShouldContainSubstring, `viewBox="0 0 90 24"`)
		})

		Convey("Pitch exposes the spatial model", func() {
			p := svc.Pitch(ctx, 90, view.TeamAll, "")
			So(p.Nodes, ShouldHaveLength, 3)
			So(p.Events, ShouldHaveLength, 1)
		})
	})
}
