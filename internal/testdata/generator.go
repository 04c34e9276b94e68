// Package testdata generates synthetic submission exports for rehearsing a
// judging run before the real export lands.
package testdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Default generation parameters.
const (
	defaultTeamCount = 40
	defaultSeed      = 42

	maxMembers     = 4
	maxBounties    = 3
	firstTeamID    = 101
	pctNoTrack     = 10 // percent of teams submitted without a track
	pctQuotedCell  = 20 // percent of bounty cells wrapped in stray quotes
	pctExtraSpaces = 25 // percent of bounty entries padded with spaces
)

// Generator produces deterministic fake team rows. The same seed always
// yields the same export, so rehearsal schedules are reproducible.
type Generator struct {
	faker    *gofakeit.Faker
	teams    int
	tracks   []string
	mlh      []string
	sponsors []string
	header   []string
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the deterministic seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.faker = gofakeit.New(seed)
	}
}

// WithTeamCount sets how many teams to generate.
func WithTeamCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.teams = n
		}
	}
}

// WithTracks sets the track names teams may submit under.
func WithTracks(tracks []string) Option {
	return func(g *Generator) {
		if len(tracks) > 0 {
			g.tracks = tracks
		}
	}
}

// WithMLHCategories sets the MLH bounty strings to sprinkle in.
func WithMLHCategories(cats []string) Option {
	return func(g *Generator) {
		if len(cats) > 0 {
			g.mlh = cats
		}
	}
}

// WithSponsorCategories sets the sponsor bounty strings to sprinkle in.
func WithSponsorCategories(cats []string) Option {
	return func(g *Generator) {
		if len(cats) > 0 {
			g.sponsors = cats
		}
	}
}

// WithHeader sets the six column names, in export order:
// id, name, contact, members, track, bounties.
func WithHeader(header []string) Option {
	return func(g *Generator) {
		if len(header) == 6 {
			g.header = header
		}
	}
}

// New creates a Generator with deterministic defaults.
func New(opts ...Option) *Generator {
	g := &Generator{
		faker:    gofakeit.New(defaultSeed),
		teams:    defaultTeamCount,
		tracks:   []string{"General", "Beginner", "Hardware"},
		mlh:      []string{"MLH || Best Use of MongoDB", "MLH || Best GenAI"},
		sponsors: []string{"Best Use of Vellum AI", "Best Use of Warp"},
		header:   []string{"BUIDL ID", "BUIDL name", "Contact email", "Team members", "Track", "Bounties"},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rows returns the header plus one row per team. Some rows carry the messy
// quoting and spacing seen in real exports so the normalizer gets exercised.
func (g *Generator) Rows() [][]string {
	rows := make([][]string, 0, g.teams+1)
	rows = append(rows, g.header)
	for i := 0; i < g.teams; i++ {
		rows = append(rows, g.teamRow(firstTeamID+i))
	}
	return rows
}

// WriteCSV writes the generated export to path.
func (g *Generator) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(g.Rows()); err != nil {
		f.Close()
		return fmt.Errorf("write export: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush export: %w", err)
	}
	return f.Close()
}

func (g *Generator) teamRow(id int) []string {
	memberCount := g.faker.Number(1, maxMembers)
	members := make([]string, memberCount)
	for i := range members {
		members[i] = g.faker.Name()
	}

	track := ""
	if g.faker.Number(1, 100) > pctNoTrack {
		track = g.tracks[g.faker.Number(0, len(g.tracks)-1)]
	}

	return []string{
		strconv.Itoa(id),
		g.faker.AppName(),
		g.faker.Email(),
		strings.Join(members, ", "),
		track,
		g.bountyCell(),
	}
}

func (g *Generator) bountyCell() string {
	pool := make([]string, 0, len(g.mlh)+len(g.sponsors))
	pool = append(pool, g.mlh...)
	pool = append(pool, g.sponsors...)

	count := g.faker.Number(0, maxBounties)
	if count == 0 || len(pool) == 0 {
		return ""
	}

	picked := make([]string, 0, count)
	seen := make(map[string]struct{})
	for len(picked) < count && len(seen) < len(pool) {
		c := pool[g.faker.Number(0, len(pool)-1)]
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if g.faker.Number(1, 100) <= pctExtraSpaces {
			c = " " + c + " "
		}
		picked = append(picked, c)
	}

	cell := strings.Join(picked, ", ")
	if g.faker.Number(1, 100) <= pctQuotedCell {
		cell = "\"" + cell + "\""
	}
	return cell
}
