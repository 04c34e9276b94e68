// Package schedule aggregates allocated slots into the views the writers
// consume: per-bucket, master, and per-team.
package schedule

import (
	"sort"
	"time"

	"github.com/jamhacks/jamsched/internal/domain/model"
)

// Board holds a finished allocation. It never mutates the slots it is given;
// views are derived copies.
type Board struct {
	buckets []model.BucketSchedule
}

// NewBoard creates a Board over the allocator's bucket schedules.
func NewBoard(buckets []model.BucketSchedule) *Board {
	return &Board{buckets: buckets}
}

// Buckets returns every bucket schedule in allocation order, including empty
// ones.
func (b *Board) Buckets() []model.BucketSchedule {
	return b.buckets
}

// NonEmpty returns only buckets that received at least one slot.
func (b *Board) NonEmpty() []model.BucketSchedule {
	var out []model.BucketSchedule
	for _, bs := range b.buckets {
		if len(bs.Slots) > 0 {
			out = append(out, bs)
		}
	}
	return out
}

// Master returns the union of all slots sorted by start time, ties broken by
// bucket name then team id, for a readable master schedule.
func (b *Board) Master() []model.ScheduledSlot {
	var out []model.ScheduledSlot
	for _, bs := range b.buckets {
		out = append(out, bs.Slots...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		if out[i].Bucket != out[j].Bucket {
			return out[i].Bucket < out[j].Bucket
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

// TeamView returns all slots sorted by team id then start time, so each
// team's judging day reads top to bottom.
func (b *Board) TeamView() []model.ScheduledSlot {
	var out []model.ScheduledSlot
	for _, bs := range b.buckets {
		out = append(out, bs.Slots...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TeamID != out[j].TeamID {
			return out[i].TeamID < out[j].TeamID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// LatestEnd returns the end of the last slot on the board, or the zero time
// for an empty board.
func (b *Board) LatestEnd() time.Time {
	var latest time.Time
	for _, bs := range b.buckets {
		if end := bs.End(); end.After(latest) {
			latest = end
		}
	}
	return latest
}

// SlotCount returns the total number of slots on the board.
func (b *Board) SlotCount() int {
	n := 0
	for _, bs := range b.buckets {
		n += len(bs.Slots)
	}
	return n
}
