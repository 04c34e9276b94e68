// Package allocate assigns sequential judging slots to bucket queues.
package allocate

import (
	"context"
	"time"

	"github.com/jamhacks/jamsched/internal/domain/model"
)

// Default pacing matching the JAMHacks 9 run of show.
const (
	// DefaultBuffer is the minimum gap between two slots of the same team.
	DefaultBuffer = 8 * time.Minute
)

// Allocator produces non-overlapping sequential slots per bucket while
// keeping the cross-bucket per-team buffer. Greedy, single pass, no
// backtracking: teams are never re-ordered and rooms never re-balanced.
type Allocator struct {
	start     time.Time
	buffer    time.Duration
	targetEnd time.Time
}

// Option applies a configuration option to the Allocator.
type Option func(*Allocator)

// WithBuffer sets the minimum per-team gap between slots in different buckets.
func WithBuffer(d time.Duration) Option {
	return func(a *Allocator) {
		if d >= 0 {
			a.buffer = d
		}
	}
}

// WithTargetEnd sets the preferred end of judging. Allocation past it is
// permitted and reported, never truncated.
func WithTargetEnd(t time.Time) Option {
	return func(a *Allocator) {
		a.targetEnd = t
	}
}

// New creates an Allocator starting the first slot of each bucket at start
// plus the bucket's own offset.
func New(start time.Time, opts ...Option) *Allocator {
	a := &Allocator{
		start:  start,
		buffer: DefaultBuffer,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result summarizes one allocation pass.
type Result struct {
	Schedules      []model.BucketSchedule
	SlotCount      int
	Dropped        int      // teams dropped from misconfigured buckets
	DroppedBuckets []string // bucket names with zero duration
	LatestEnd      time.Time
	Overrun        time.Duration // how far past the target end, zero if within
}

// Run walks the bucket queues in the given order and assigns slots. For each
// team the start time is the later of the bucket's next-free time and the
// team's latest end in any earlier bucket plus the buffer; the bucket's
// next-free time then advances to the slot end. The per-team latest-end map
// lives only for the duration of this call.
func (a *Allocator) Run(_ context.Context, queues []model.BucketQueue) Result {
	teamLatest := make(map[string]time.Time)
	res := Result{LatestEnd: a.start}

	for _, q := range queues {
		if q.Bucket.Duration <= 0 {
			if len(q.Teams) > 0 {
				res.Dropped += len(q.Teams)
				res.DroppedBuckets = append(res.DroppedBuckets, q.Bucket.Name)
			}
			continue
		}

		nextFree := a.start.Add(q.Bucket.StartOffset)
		bs := model.BucketSchedule{Bucket: q.Bucket}

		for _, asn := range q.Teams {
			start := nextFree
			if last, ok := teamLatest[asn.Team.ID]; ok {
				if earliest := last.Add(a.buffer); earliest.After(start) {
					start = earliest
				}
			}
			end := start.Add(q.Bucket.Duration)

			bs.Slots = append(bs.Slots, model.ScheduledSlot{
				TeamID:     asn.Team.ID,
				TeamName:   asn.Team.Name,
				Bucket:     q.Bucket.Name,
				Categories: asn.Labels,
				Start:      start,
				End:        end,
			})

			nextFree = end
			teamLatest[asn.Team.ID] = end
			res.SlotCount++
			if end.After(res.LatestEnd) {
				res.LatestEnd = end
			}
		}

		res.Schedules = append(res.Schedules, bs)
	}

	if !a.targetEnd.IsZero() && res.LatestEnd.After(a.targetEnd) {
		res.Overrun = res.LatestEnd.Sub(a.targetEnd)
	}
	return res
}
