// Package config defines run configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Defaults carry the event's static data (rooms, categories, pacing);
//   file and env layers only override.
// - External errors must be wrapped via this package's error helpers.
package config

// TimeLayout is the wall-clock layout used for start_time and
// target_end_time values, e.g. "2025-05-18 10:30".
const TimeLayout = "2006-01-02 15:04"

// Config contains one scheduling run's configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// StartTime is when judging begins, in TimeLayout.
	StartTime string `koanf:"start_time"`

	// TargetEndTime is when judging should ideally be over, in TimeLayout.
	// Allocation past it is reported, not prevented.
	TargetEndTime string `koanf:"target_end_time"`

	// BufferMinutes is the minimum gap between two slots of the same team.
	BufferMinutes int `koanf:"buffer_minutes"`

	// DurationMinutes is the length of one judging slot
	// (setup + pitch + Q&A + scoring).
	DurationMinutes int `koanf:"duration_minutes"`

	// GeneralRooms is the number of general judging rooms in the rotation.
	GeneralRooms int `koanf:"general_rooms"`

	// CategoryStartOffsetMinutes delays the first slot of the MLH and
	// sponsor buckets relative to StartTime.
	CategoryStartOffsetMinutes int `koanf:"category_start_offset_minutes"`

	// CategoryDelimiter separates entries inside the bounty cell.
	CategoryDelimiter string `koanf:"category_delimiter"`

	// MemberDelimiter separates names inside the team members cell.
	MemberDelimiter string `koanf:"member_delimiter"`

	// GeneralTracks are the track names routed into the general rotation.
	GeneralTracks []string `koanf:"general_tracks"`

	// MLHCategories are judged together in one combined slot per team.
	MLHCategories []string `koanf:"mlh_categories"`

	// SponsorCategories each get their own judging bucket.
	SponsorCategories []string `koanf:"sponsor_categories"`

	// Input column names, matching the submission export.
	IDColumn       string `koanf:"id_column"`
	NameColumn     string `koanf:"name_column"`
	ContactColumn  string `koanf:"contact_column"`
	MembersColumn  string `koanf:"members_column"`
	TrackColumn    string `koanf:"track_column"`
	BountiesColumn string `koanf:"bounties_column"`
}

// New creates a Config with the JAMHacks 9 defaults.
func New() *Config {
	return &Config{
		LogLevel:                   "info",
		StartTime:                  "2025-05-18 10:30",
		TargetEndTime:              "2025-05-18 13:00",
		BufferMinutes:              8,
		DurationMinutes:            8,
		GeneralRooms:               6,
		CategoryStartOffsetMinutes: 0,
		CategoryDelimiter:          ",",
		MemberDelimiter:            ",",
		GeneralTracks: []string{
			"General",
			"Beginner",
			"Hardware",
		},
		MLHCategories: []string{
			"MLH || Best Use of MongoDB",
			"MLH || Best GenAI",
			"MLH || Best .Tech Domain Name",
		},
		SponsorCategories: []string{
			"Best Use of Vellum AI",
			"Best Use of Defang",
			"Best Use of Warp",
		},
		IDColumn:       "BUIDL ID",
		NameColumn:     "BUIDL name",
		ContactColumn:  "Contact email",
		MembersColumn:  "Team members",
		TrackColumn:    "Track",
		BountiesColumn: "Bounties",
	}
}
