// Package dedupe tracks which team already sits in which judging queue.
package dedupe

// Set records (bucket, team) pairs so the router enqueues a team at most
// once per bucket. The run is single-writer by construction, so no locking.
type Set struct {
	seen map[string]map[string]struct{} // bucket -> team ids
	size int
}

// NewSet creates an empty membership set.
func NewSet() *Set {
	return &Set{seen: make(map[string]map[string]struct{})}
}

// SeenAndRecord checks whether the team is already queued in the bucket and
// records it if not. Returns true if the pair was already present.
func (s *Set) SeenAndRecord(bucket, teamID string) bool {
	teams, ok := s.seen[bucket]
	if !ok {
		teams = make(map[string]struct{})
		s.seen[bucket] = teams
	}
	if _, exists := teams[teamID]; exists {
		return true
	}
	teams[teamID] = struct{}{}
	s.size++
	return false
}

// Size returns the number of recorded (bucket, team) pairs.
func (s *Set) Size() int {
	return s.size
}
