package metrics_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/jamhacks/jamsched/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSnapshot(t *testing.T) {
	Convey("Given a manager with recorded run counters", t, func() {
		m := metrics.NewManager()
		m.AddRowsRead(42)
		m.RecordRowSkipped()
		m.RecordTeamLoaded()
		m.RecordTeamRouted()
		m.RecordTeamUnrouted()
		m.AddSlots(57)
		m.AddUnmatchedCategories(3)
		m.AddDroppedTeams(2)
		m.SetOverrun(9 * time.Minute)
		m.SetScheduleEnd(time.Date(2025, 5, 18, 13, 9, 0, 0, time.UTC))

		Convey("When writing a snapshot", func() {
			var buf bytes.Buffer
			err := m.Snapshot(&buf)
			out := buf.String()

			Convey("Then the text exposition carries every metric", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "jamsched_input_rows_total 42")
				So(out, ShouldContainSubstring, "jamsched_input_rows_skipped_total 1")
				So(out, ShouldContainSubstring, "jamsched_teams_loaded_total 1")
				So(out, ShouldContainSubstring, "jamsched_slots_allocated_total 57")
				So(out, ShouldContainSubstring, "jamsched_unmatched_categories_total 3")
				So(out, ShouldContainSubstring, "jamsched_dropped_teams_total 2")
				So(out, ShouldContainSubstring, "jamsched_schedule_overrun_minutes 9")
				So(out, ShouldContainSubstring, "jamsched_schedule_end_timestamp_seconds")
			})
		})
	})

	Convey("Given a custom namespace", t, func() {
		m := metrics.NewManager(metrics.WithNamespace("rehearsal"))
		m.AddSlots(1)

		var buf bytes.Buffer
		So(m.Snapshot(&buf), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "rehearsal_slots_allocated_total 1")
	})

	Convey("A zero schedule end leaves the gauge untouched", t, func() {
		m := metrics.NewManager()
		m.SetScheduleEnd(time.Time{})

		var buf bytes.Buffer
		So(m.Snapshot(&buf), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "jamsched_schedule_end_timestamp_seconds 0")
	})
}
