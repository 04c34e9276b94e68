package allocate_test

import (
	"context"
	"testing"
	"time"

	"github.com/jamhacks/jamsched/internal/domain/allocate"
	"github.com/jamhacks/jamsched/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var runStart = time.Date(2025, 5, 18, 11, 5, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2025, 5, 18, hour, min, 0, 0, time.UTC)
}

func queue(name string, duration time.Duration, teams ...string) model.BucketQueue {
	q := model.BucketQueue{Bucket: model.Bucket{Name: name, Duration: duration}}
	for _, t := range teams {
		q.Teams = append(q.Teams, &model.Assignment{
			Team: model.TeamRecord{ID: t, Name: "Team " + t},
		})
	}
	return q
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given an allocator with 8 minute slots and buffer", t, func() {
		alloc := allocate.New(runStart)

		Convey("When one room holds three teams", func() {
			res := alloc.Run(ctx, []model.BucketQueue{
				queue("Room 1", 8*time.Minute, "1", "2", "3"),
			})

			Convey("Then the slots are back to back from the start time", func() {
				slots := res.Schedules[0].Slots
				So(slots, ShouldHaveLength, 3)
				So(slots[0].Start, ShouldEqual, at(11, 5))
				So(slots[0].End, ShouldEqual, at(11, 13))
				So(slots[1].Start, ShouldEqual, at(11, 13))
				So(slots[2].Start, ShouldEqual, at(11, 21))
				So(slots[2].End, ShouldEqual, at(11, 29))
				So(res.SlotCount, ShouldEqual, 3)
				So(res.LatestEnd, ShouldEqual, at(11, 29))
			})
		})

		Convey("When a team appears in two buckets", func() {
			res := alloc.Run(ctx, []model.BucketQueue{
				queue("Room 1", 8*time.Minute, "1"),
				queue("MLH", 8*time.Minute, "1"),
			})

			Convey("Then the second slot waits out the buffer", func() {
				room := res.Schedules[0].Slots[0]
				mlh := res.Schedules[1].Slots[0]
				So(room.End, ShouldEqual, at(11, 13))
				So(mlh.Start, ShouldEqual, at(11, 21))
				So(mlh.Start.Sub(room.End), ShouldEqual, 8*time.Minute)
			})
		})

		Convey("When the bucket is already free past the team's buffer", func() {
			res := alloc.Run(ctx, []model.BucketQueue{
				queue("Room 1", 8*time.Minute, "1", "2", "3"),
				queue("MLH", 8*time.Minute, "3", "1"),
			})

			Convey("Then the later of next-free and buffered-ready wins", func() {
				mlh := res.Schedules[1].Slots
				// team 3 finished Room 1 at 11:29, so its MLH slot starts 11:37
				So(mlh[0].TeamID, ShouldEqual, "3")
				So(mlh[0].Start, ShouldEqual, at(11, 37))
				// team 1 was ready at 11:21 but the room is busy until 11:45
				So(mlh[1].TeamID, ShouldEqual, "1")
				So(mlh[1].Start, ShouldEqual, at(11, 45))
			})
		})

		Convey("When a bucket has a start offset", func() {
			q := queue("Best Use of Warp", 8*time.Minute, "5")
			q.Bucket.StartOffset = 30 * time.Minute
			res := alloc.Run(ctx, []model.BucketQueue{q})

			Convey("Then its first slot begins at start plus offset", func() {
				So(res.Schedules[0].Slots[0].Start, ShouldEqual, at(11, 35))
			})
		})

		Convey("When a bucket has zero duration", func() {
			res := alloc.Run(ctx, []model.BucketQueue{
				queue("Broken", 0, "1", "2"),
				queue("Room 1", 8*time.Minute, "3"),
			})

			Convey("Then its teams are dropped and the bucket reported", func() {
				So(res.Dropped, ShouldEqual, 2)
				So(res.DroppedBuckets, ShouldResemble, []string{"Broken"})
				So(res.Schedules, ShouldHaveLength, 1)
				So(res.SlotCount, ShouldEqual, 1)
			})
		})

		Convey("When every queue is empty", func() {
			res := alloc.Run(ctx, []model.BucketQueue{
				queue("Room 1", 8*time.Minute),
			})

			Convey("Then the run ends where it started", func() {
				So(res.SlotCount, ShouldEqual, 0)
				So(res.LatestEnd, ShouldEqual, runStart)
			})
		})
	})

	Convey("Given an allocator with a target end", t, func() {
		alloc := allocate.New(runStart, allocate.WithTargetEnd(at(11, 20)))

		Convey("When allocation runs past the target", func() {
			res := alloc.Run(ctx, []model.BucketQueue{
				queue("Room 1", 8*time.Minute, "1", "2"),
			})

			Convey("Then the overrun is reported, not truncated", func() {
				So(res.Schedules[0].Slots, ShouldHaveLength, 2)
				So(res.LatestEnd, ShouldEqual, at(11, 21))
				So(res.Overrun, ShouldEqual, time.Minute)
			})
		})
	})

	Convey("Given an allocator with a custom buffer", t, func() {
		alloc := allocate.New(runStart, allocate.WithBuffer(20*time.Minute))

		Convey("Slots inside a bucket stay contiguous regardless", func() {
			res := alloc.Run(ctx, []model.BucketQueue{
				queue("Room 1", 8*time.Minute, "1", "2"),
				queue("MLH", 8*time.Minute, "1"),
			})

			room := res.Schedules[0].Slots
			So(room[1].Start, ShouldEqual, room[0].End)

			Convey("And the buffer only widens cross-bucket gaps", func() {
				mlh := res.Schedules[1].Slots[0]
				So(mlh.Start, ShouldEqual, room[0].End.Add(20*time.Minute))
			})
		})
	})
}
