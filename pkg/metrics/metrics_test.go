package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording event metrics", func() {
			Convey("Then it should record appended events", func() {
				So(func() {
					RecordEventAppended()
					RecordEventAppended()
				}, ShouldNotPanic)
			})

			Convey("And it should record rejected events", func() {
				So(func() {
					RecordEventRejected()
				}, ShouldNotPanic)
			})

			Convey("And it should record recompute durations", func() {
				So(func() {
					RecordRecomputeDuration("rows", 0.5)
					RecordRecomputeDuration("pitch", 1.2)
					RecordRecomputeDuration("series", 0.1)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording operational metrics", func() {
			Convey("Then it should update the snapshot gauges", func() {
				So(func() {
					UpdateRosterSize(22)
					UpdateEventLogSize(120)
					UpdateEventLogSize(121)
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP metrics", func() {
				So(func() {
					RecordHTTPRequest("rows", "GET", "200")
					RecordHTTPRequestDuration("rows", "GET", "200", 3.5)
					RecordRateLimited()
				}, ShouldNotPanic)
			})
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("The package exposes a scrapeable registry", t, func() {
		registry := GetRegistry()
		So(registry, ShouldNotBeNil)

		RecordEventAppended()
		families, err := registry.Gather()
		So(err, ShouldBeNil)
		So(len(families), ShouldBeGreaterThan, 0)
	})
}
