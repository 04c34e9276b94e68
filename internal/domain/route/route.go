// Package route classifies each team's categories into judging buckets.
package route

import (
	"github.com/jamhacks/jamsched/internal/domain/dedupe"
	"github.com/jamhacks/jamsched/internal/domain/model"
)

// generalKey is the shared membership key for the whole room rotation, so a
// duplicated input row cannot land one team in two different rooms.
const generalKey = "general rotation"

// Router buckets teams by track and bounty. Matching is case-sensitive exact
// match against the configured names; a bounty that matches nothing is
// counted and otherwise ignored.
type Router struct {
	general  []model.Bucket
	mlh      *model.Bucket
	sponsors []model.Bucket

	tracks     map[string]struct{}
	mlhCats    map[string]struct{}
	sponsorIdx map[string]int

	queues    map[string][]*model.Assignment
	mlhByTeam map[string]*model.Assignment
	seen      *dedupe.Set
	nextRoom  int
	unmatched int
}

// New creates a Router. Buckets and category lists come from static
// configuration; teams are routed in the order Route is called.
func New(opts ...Option) *Router {
	r := &Router{
		tracks:     make(map[string]struct{}),
		mlhCats:    make(map[string]struct{}),
		sponsorIdx: make(map[string]int),
		queues:     make(map[string][]*model.Assignment),
		mlhByTeam:  make(map[string]*model.Assignment),
		seen:       dedupe.NewSet(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route enqueues the team into every bucket it matches, at most once per
// bucket. It returns the number of buckets the team landed in; zero means
// the team matched no configured category.
func (r *Router) Route(team model.TeamRecord) int {
	matched := 0

	// General track: one slot in the room rotation.
	if _, ok := r.tracks[team.Track]; ok && len(r.general) > 0 {
		room := r.general[r.nextRoom%len(r.general)]
		if !r.seen.SeenAndRecord(generalKey, team.ID) {
			r.queues[room.Name] = append(r.queues[room.Name], &model.Assignment{
				Team:   team,
				Labels: []string{team.Track},
			})
			r.nextRoom++
			matched++
		}
	}

	for _, bounty := range team.Bounties {
		if _, ok := r.mlhCats[bounty]; ok && r.mlh != nil {
			// All MLH bounties merge into one combined slot per team.
			if a, queued := r.mlhByTeam[team.ID]; queued {
				a.Labels = append(a.Labels, bounty)
				continue
			}
			if !r.seen.SeenAndRecord(r.mlh.Name, team.ID) {
				a := &model.Assignment{Team: team, Labels: []string{bounty}}
				r.queues[r.mlh.Name] = append(r.queues[r.mlh.Name], a)
				r.mlhByTeam[team.ID] = a
				matched++
			}
			continue
		}
		if idx, ok := r.sponsorIdx[bounty]; ok {
			sponsor := r.sponsors[idx]
			if !r.seen.SeenAndRecord(sponsor.Name, team.ID) {
				r.queues[sponsor.Name] = append(r.queues[sponsor.Name], &model.Assignment{
					Team:   team,
					Labels: []string{bounty},
				})
				matched++
			}
			continue
		}
		r.unmatched++
	}

	return matched
}

// Queues returns every bucket with its team queue in allocation order:
// general rooms first, then MLH, then sponsors in configured order. Buckets
// that attracted no teams are included with an empty queue.
func (r *Router) Queues() []model.BucketQueue {
	out := make([]model.BucketQueue, 0, len(r.general)+1+len(r.sponsors))
	for _, b := range r.general {
		out = append(out, model.BucketQueue{Bucket: b, Teams: r.queues[b.Name]})
	}
	if r.mlh != nil {
		out = append(out, model.BucketQueue{Bucket: *r.mlh, Teams: r.queues[r.mlh.Name]})
	}
	for _, b := range r.sponsors {
		out = append(out, model.BucketQueue{Bucket: b, Teams: r.queues[b.Name]})
	}
	return out
}

// Unmatched returns how many bounty strings failed to match any configured
// category across all routed teams.
func (r *Router) Unmatched() int {
	return r.unmatched
}
