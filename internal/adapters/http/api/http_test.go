package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eyamansouri/matchboard/internal/adapters/http/api"
	"github.com/eyamansouri/matchboard/internal/app"
	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/pkg/logger"
)

func init() {
	_ = logger.Init()
}

func apiMatch() model.Match {
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

func testRouter(opts ...api.Option) http.Handler {
	ctx := context.Background()
	svc := app.New(app.WithSeedMatch(apiMatch()))
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}
	return api.NewServer(svc, svc, opts...).Router(ctx)
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetMatch(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := testRouter()

		Convey("GET /api/match returns the full envelope", func() {
			rec := do(router, http.MethodGet, "/api/match", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var env struct {
				Match   *map[string]any `json:"match"`
				Players []model.Player  `json:"players"`
				Events  []model.Event   `json:"events"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &env), ShouldBeNil)
			So(env.Match, ShouldNotBeNil)
			So((*env.Match)["homeTeam"], ShouldEqual, "Blue FC")
			So(env.Players, ShouldHaveLength, 3)
			So(env.Events, ShouldHaveLength, 2)
		})

		Convey("Without a loaded match the envelope degrades to null", func() {
			ctx := context.Background()
			svc := app.New()
			So(svc.Start(ctx), ShouldBeNil)
			empty := api.NewServer(svc, svc).Router(ctx)

			rec := do(empty, http.MethodGet, "/api/match", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var env struct {
				Match   *map[string]any `json:"match"`
				Players []model.Player  `json:"players"`
				Events  []model.Event   `json:"events"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &env), ShouldBeNil)
			So(env.Match, ShouldBeNil)
			So(env.Players, ShouldBeEmpty)
			So(env.Events, ShouldBeEmpty)
		})
	})
}

func TestPostEvent(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := testRouter()

		Convey("A valid event is stored with a server-assigned id", func() {
			rec := do(router, http.MethodPost, "/api/event",
				`{"playerId": 1, "minute": 55, "type": "goal", "meta": {"x": 70, "y": 50}}`)
			So(rec.Code, ShouldEqual, http.StatusCreated)

			var saved model.Event
			So(json.Unmarshal(rec.Body.Bytes(), &saved), ShouldBeNil)
			So(saved.ID, ShouldEqual, 3)
			So(saved.Type, ShouldEqual, model.Goal)

			rec = do(router, http.MethodGet, "/api/match", "")
			var env struct {
				Events []model.Event `json:"events"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &env), ShouldBeNil)
			So(env.Events, ShouldHaveLength, 3)
		})

		Convey("Malformed JSON is a 400", func() {
			rec := do(router, http.MethodPost, "/api/event", `{"playerId":`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A missing playerId is a 400", func() {
			rec := do(router, http.MethodPost, "/api/event", `{"minute": 10, "type": "GOAL"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("An unknown type is a 400", func() {
			rec := do(router, http.MethodPost, "/api/event", `{"playerId": 1, "minute": 10, "type": "OWN_GOAL"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("An unknown player is a 404", func() {
			rec := do(router, http.MethodPost, "/api/event", `{"playerId": 99, "minute": 10, "type": "GOAL"}`)
			So(rec.Code, ShouldEqual, http.StatusNotFound)

			var resp struct {
				Code string `json:"code"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Code, ShouldEqual, "not_found")
		})
	})
}

func TestGetRows(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := testRouter()

		Convey("GET /api/rows returns the sorted row set", func() {
			rec := do(router, http.MethodGet, "/api/rows", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var rows []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &rows), ShouldBeNil)
			So(rows, ShouldHaveLength, 3)
			So(rows[0]["name"], ShouldEqual, "Ana")
			So(rows[0]["rating"], ShouldAlmostEqual, 8.0)
			So(rows[0]["impact"], ShouldAlmostEqual, 10)
		})

		Convey("Query parameters drive cutoff, filters and sort", func() {
			rec := do(router, http.MethodGet, "/api/rows?minute=5&team=home&sort=name", "")
			var rows []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &rows), ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0]["name"], ShouldEqual, "Ana")
			So(rows[0]["rating"], ShouldAlmostEqual, 6.5)
			So(rows[0]["impact"], ShouldBeNil)
		})

		Convey("The search filter narrows by name", func() {
			rec := do(router, http.MethodGet, "/api/rows?q=carla", "")
			var rows []map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &rows), ShouldBeNil)
			So(rows, ShouldHaveLength, 1)
		})

		Convey("A malformed minute is a 400", func() {
			So(do(router, http.MethodGet, "/api/rows?minute=abc", "").Code, ShouldEqual, http.StatusBadRequest)
			So(do(router, http.MethodGet, "/api/rows?minute=-4", "").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestGetPitch(t *testing.T) {
	Convey("GET /api/pitch returns nodes, edges and markers", t, func() {
		router := testRouter()
		rec := do(router, http.MethodGet, "/api/pitch", "")
		So(rec.Code, ShouldEqual, http.StatusOK)

		var m struct {
			Nodes  []map[string]any `json:"nodes"`
			Edges  []map[string]any `json:"edges"`
			Events []map[string]any `json:"events"`
		}
		So(json.Unmarshal(rec.Body.Bytes(), &m), ShouldBeNil)
		So(m.Nodes, ShouldHaveLength, 3)
		So(m.Events, ShouldHaveLength, 1)
		So(m.Events[0]["cls"], ShouldEqual, "goal")
	})
}

func TestPlayerEndpoints(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := testRouter()

		Convey("GET /api/player/{id} returns the player's card", func() {
			rec := do(router, http.MethodGet, "/api/player/2", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var row map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &row), ShouldBeNil)
			So(row["name"], ShouldEqual, "Bruno")
			So(row["assists"], ShouldAlmostEqual, 1)
			So(row["rating"], ShouldAlmostEqual, 7.3)
		})

		Convey("GET /api/player/{id}/series pairs minutes with ratings", func() {
			rec := do(router, http.MethodGet, "/api/player/1/series?minute=40", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var resp struct {
				PlayerID int64     `json:"playerId"`
				Minutes  []int     `json:"minutes"`
				Ratings  []float64 `json:"ratings"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.PlayerID, ShouldEqual, 1)
			So(resp.Minutes, ShouldResemble, []int{0, 15, 30})
			So(resp.Ratings, ShouldHaveLength, 3)
			So(resp.Ratings[0], ShouldAlmostEqual, 6.5)
			So(resp.Ratings[1], ShouldAlmostEqual, 8.0)
		})

		Convey("GET /api/player/{id}/sparkline serves SVG", func() {
			rec := do(router, http.MethodGet, "/api/player/1/sparkline", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "image/svg+xml")
			So(rec.Body.String(), ShouldContainSubstring, "<svg")
		})

		Convey("An unknown player is a 404 on every player endpoint", func() {
			So(do(router, http.MethodGet, "/api/player/99", "").Code, ShouldEqual, http.StatusNotFound)
			So(do(router, http.MethodGet, "/api/player/99/series", "").Code, ShouldEqual, http.StatusNotFound)
			So(do(router, http.MethodGet, "/api/player/99/sparkline", "").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("A non-numeric id is a 400", func() {
			So(do(router, http.MethodGet, "/api/player/abc", "").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := testRouter()

		Convey("GET /stats reports service state", func() {
			rec := do(router, http.MethodGet, "/stats", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var stats map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
			So(stats["rosterSize"], ShouldAlmostEqual, 3)
		})

		Convey("GET /healthz serves the metrics registry", func() {
			rec := do(router, http.MethodGet, "/healthz", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})
}

func TestRateLimit(t *testing.T) {
	Convey("Given a router with a tight rate limit", t, func() {
		router := testRouter(api.WithRateLimit(2))

		Convey("Requests past the burst are refused with 429", func() {
			// burst is perMinute/2, floored to 1
			first := do(router, http.MethodGet, "/api/rows", "")
			So(first.Code, ShouldEqual, http.StatusOK)

			second := do(router, http.MethodGet, "/api/rows", "")
			So(second.Code, ShouldEqual, http.StatusTooManyRequests)
			So(second.Header().Get("Retry-After"), ShouldEqual, "60")
		})
	})
}
