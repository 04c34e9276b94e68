// Package model contains domain models passed between layers.
package model

import "time"

// TeamRecord represents one normalized submission row from the export.
// Immutable once parsed.
type TeamRecord struct {
	ID       string   // unique team identifier, e.g. "142"
	Name     string   // team/project name
	Contact  string   // contact email
	Members  []string // member names in export order
	Track    string   // general track the team submitted under
	Bounties []string // cleaned bounty/category strings
}

// BucketKind distinguishes the three judging queue flavors.
type BucketKind int

const (
	// GeneralBucket is a general judging room fed from the track rotation.
	GeneralBucket BucketKind = iota
	// MLHBucket is the single shared queue covering all MLH categories.
	MLHBucket
	// SponsorBucket is one sponsor prize category with its own queue.
	SponsorBucket
)

// String returns a human label for the bucket kind.
func (k BucketKind) String() string {
	switch k {
	case GeneralBucket:
		return "general"
	case MLHBucket:
		return "mlh"
	case SponsorBucket:
		return "sponsor"
	default:
		return "unknown"
	}
}

// Bucket is a named judging queue: one room or one prize category.
// Static configuration, never derived from input.
type Bucket struct {
	Name        string        // display name, e.g. "Room 3" or "Best Use of MongoDB"
	Kind        BucketKind    // general, mlh, or sponsor
	Room        string        // room label for the master schedule
	Duration    time.Duration // length of one judging slot
	StartOffset time.Duration // delay of the bucket's first slot after run start
}

// Assignment is one team queued in one bucket, with the category labels the
// slot will cover. The MLH bucket accumulates several labels on one entry.
type Assignment struct {
	Team   TeamRecord
	Labels []string
}

// BucketQueue is a bucket together with its ordered team queue, handed from
// the router to the allocator.
type BucketQueue struct {
	Bucket Bucket
	Teams  []*Assignment
}

// ScheduledSlot is one judging appointment. Created by the allocator and
// never mutated after creation.
type ScheduledSlot struct {
	TeamID     string
	TeamName   string
	Bucket     string
	Categories []string
	Start      time.Time
	End        time.Time
}

// BucketSchedule holds a bucket's allocated slots in assignment order.
type BucketSchedule struct {
	Bucket Bucket
	Slots  []ScheduledSlot
}

// End returns the end time of the bucket's last slot, or the zero time for
// an empty bucket.
func (b BucketSchedule) End() time.Time {
	if len(b.Slots) == 0 {
		return time.Time{}
	}
	return b.Slots[len(b.Slots)-1].End
}
