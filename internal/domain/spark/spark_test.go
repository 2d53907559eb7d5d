package spark_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/eyamansouri/matchboard/internal/domain/spark"
)

func TestBuild(t *testing.T) {
	Convey("Given a full regulation-time series", t, func() {
		values := []float64{6.5, 8.0, 8.0, 8.0, 8.2, 8.2, 8.2}
		svg := spark.Build(values, 90)

		Convey("The default geometry is a 90x24 viewBox", func() {
			So(svg, ShouldContainSubstring, `viewBox="0 0 90 24"`)
			So(svg, ShouldContainSubstring, `aria-label="rating trend"`)
		})

		Convey("Reference gridlines sit at ratings 7 and 8", func() {
			// scaleY(7) = 2 + 20*0.3, scaleY(8) = 2 + 20*0.2
			So(svg, ShouldContainSubstring, `d="M0 8.0 H 90"`)
			So(svg, ShouldContainSubstring, `d="M0 6.0 H 90"`)
		})

		Convey("The data path starts at the left pad with the base rating", func() {
			// scaleX(0) = 2, scaleY(6.5) = 2 + 20*0.35
			So(svg, ShouldContainSubstring, `d="M2.0,9.0 `)
		})

		Convey("The path has one point per sample", func() {
			So(strings.Count(svg, "L"), ShouldEqual, len(values)-1)
		})
	})

	Convey("An empty series draws a flat baseline", t, func() {
		svg := spark.Build(nil, 90)
		So(svg, ShouldContainSubstring, `d="M2.0,22.0 L88.0,22.0"`)
	})

	Convey("A single sample is anchored at the left edge", t, func() {
		svg := spark.Build([]float64{10}, 90)
		So(svg, ShouldContainSubstring, `d="M2.0,2.0"`)
	})

	Convey("Out-of-range ratings clamp to the drawable band", t, func() {
		svg := spark.Build([]float64{-3, 15}, 90)
		So(svg, ShouldContainSubstring, "M2.0,22.0")
		So(svg, ShouldContainSubstring, "L88.0,2.0")
	})

	Convey("Custom geometry flows into the viewBox", t, func() {
		svg := spark.BuildSized([]float64{6.5}, 90, 180, 48)
		So(svg, ShouldContainSubstring, `viewBox="0 0 180 48"`)
	})

	Convey("Rendering is deterministic", t, func() {
		values := []float64{6.5, 7.3, 9.0}
		So(spark.Build(values, 90), ShouldEqual, spark.Build(values, 90))
	})
}
