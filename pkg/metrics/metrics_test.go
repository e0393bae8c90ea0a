package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

			Convey("Then it should be created with defaults", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "tuiermo")
				So(manager.subsystem, ShouldEqual, "session")
				So(manager.enabled, ShouldBeTrue)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithAttemptBuckets([]float64{1, 2, 3}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)
			manager.RecordSessionStarted()

			Convey("Then metric names use them", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_namespace_test_subsystem_sessions_started_total"], ShouldBeTrue)
			})
		})

		Convey("When empty options are given", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "tuiermo")
				So(manager.subsystem, ShouldEqual, "session")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When a session is played", func() {
			m.RecordSessionStarted()
			m.RecordEvent("submit", "accepted")
			m.RecordEvent("submit", "accepted")
			m.RecordEvent("submit", "rejected")
			m.RecordGuessAccepted(1)
			m.RecordGuessRejected()
			m.RecordGuessAccepted(2)
			m.RecordGuessRepeated()
			m.RecordSolved(2)

			Convey("Then counters reflect it", func() {
				So(testutil.ToFloat64(m.sessionsStarted), ShouldEqual, 1)
				So(testutil.ToFloat64(m.guessesAccepted), ShouldEqual, 2)
				So(testutil.ToFloat64(m.guessesRejected), ShouldEqual, 1)
				So(testutil.ToFloat64(m.guessesRepeated), ShouldEqual, 1)
				So(testutil.ToFloat64(m.sessionsSolved), ShouldEqual, 1)
				So(testutil.ToFloat64(m.historyLength), ShouldEqual, 2)
				So(testutil.ToFloat64(m.events.WithLabelValues("submit", "accepted")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.events.WithLabelValues("submit", "rejected")), ShouldEqual, 1)
			})
		})

		Convey("When HTTP requests are recorded", func() {
			m.RecordHTTPRequest("metrics", "GET", "200")
			m.RecordHTTPRequestDuration("metrics", "GET", "200", 1.5)

			Convey("Then the request counter increments", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("metrics", "GET", "200")), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))
		m.RecordSessionStarted()
		m.RecordGuessAccepted(3)

		Convey("Then nothing is recorded", func() {
			So(testutil.ToFloat64(m.sessionsStarted), ShouldEqual, 0)
			So(testutil.ToFloat64(m.guessesAccepted), ShouldEqual, 0)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then the helpers do not panic", func() {
			So(func() {
				RecordSessionStarted()
				RecordEvent("begin_edit", "edit_started")
				RecordGuessAccepted(1)
				RecordGuessRejected()
				RecordGuessRepeated()
				RecordSolved(1)
				RecordHTTPRequest("healthz", "GET", "200")
				RecordHTTPRequestDuration("healthz", "GET", "200", 0.2)
			}, ShouldNotPanic)
		})

		Convey("Then the registry is the custom one", func() {
			So(GetRegistry(), ShouldEqual, customRegistry)
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
