package charting_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jamhacks/jamsched/internal/adapters/charting"
	"github.com/jamhacks/jamsched/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func bucket(name string, teams ...string) model.BucketSchedule {
	start := time.Date(2025, 5, 18, 11, 5, 0, 0, time.UTC)
	bs := model.BucketSchedule{Bucket: model.Bucket{Name: name}}
	for i, team := range teams {
		s := start.Add(time.Duration(i) * 8 * time.Minute)
		bs.Slots = append(bs.Slots, model.ScheduledSlot{
			TeamID:   team,
			TeamName: "Team " + team,
			Bucket:   name,
			Start:    s,
			End:      s.Add(8 * time.Minute),
		})
	}
	return bs
}

func TestRenderBucketTimeline(t *testing.T) {
	runStart := time.Date(2025, 5, 18, 11, 5, 0, 0, time.UTC)

	Convey("A populated bucket renders to a PNG", t, func() {
		png, err := charting.RenderBucketTimeline(bucket("Room 1", "1", "2", "3"), runStart)

		So(err, ShouldBeNil)
		So(bytes.HasPrefix(png, pngMagic), ShouldBeTrue)
	})

	Convey("An empty bucket is an error", t, func() {
		_, err := charting.RenderBucketTimeline(bucket("Room 9"), runStart)
		So(err, ShouldNotBeNil)
	})
}

func TestWriteBucketTimelines(t *testing.T) {
	runStart := time.Date(2025, 5, 18, 11, 5, 0, 0, time.UTC)

	Convey("Given two populated buckets and one empty", t, func() {
		dir := t.TempDir()
		buckets := []model.BucketSchedule{
			bucket("Room 1", "1", "2"),
			bucket("MLH", "1"),
			bucket("Best Use of Warp"),
		}

		paths, err := charting.WriteBucketTimelines(dir, buckets, runStart)

		Convey("Then one PNG per populated bucket is written", func() {
			So(err, ShouldBeNil)
			So(paths, ShouldHaveLength, 2)
			So(filepath.Base(paths[0]), ShouldEqual, "room_1_timeline.png")
			So(filepath.Base(paths[1]), ShouldEqual, "mlh_timeline.png")

			data, err := os.ReadFile(paths[0])
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(data, pngMagic), ShouldBeTrue)
		})
	})
}
