package route

import "github.com/jamhacks/jamsched/internal/domain/model"

// Option applies a configuration option to the Router.
type Option func(*Router)

// WithGeneralRooms sets the general judging rooms, in rotation order.
func WithGeneralRooms(rooms []model.Bucket) Option {
	return func(r *Router) {
		r.general = rooms
	}
}

// WithGeneralTracks sets the track names that route into the general rooms.
func WithGeneralTracks(tracks []string) Option {
	return func(r *Router) {
		for _, t := range tracks {
			r.tracks[t] = struct{}{}
		}
	}
}

// WithMLHBucket sets the single shared MLH bucket.
func WithMLHBucket(b model.Bucket) Option {
	return func(r *Router) {
		r.mlh = &b
	}
}

// WithMLHCategories sets the category names judged together in the MLH bucket.
func WithMLHCategories(cats []string) Option {
	return func(r *Router) {
		for _, c := range cats {
			r.mlhCats[c] = struct{}{}
		}
	}
}

// WithSponsorBuckets sets the sponsor buckets. Each bucket's Name doubles as
// the category name it matches.
func WithSponsorBuckets(buckets []model.Bucket) Option {
	return func(r *Router) {
		r.sponsors = buckets
		for i, b := range buckets {
			r.sponsorIdx[b.Name] = i
		}
	}
}
