// Package normalize turns raw CSV rows into typed team records.
package normalize

import (
	"strings"

	"github.com/jamhacks/jamsched/internal/domain/model"
)

// Default input layout matching the Devfolio/BUIDL export format.
const (
	defaultIDColumn       = "BUIDL ID"
	defaultNameColumn     = "BUIDL name"
	defaultContactColumn  = "Contact email"
	defaultMembersColumn  = "Team members"
	defaultTrackColumn    = "Track"
	defaultBountiesColumn = "Bounties"

	defaultCategoryDelimiter = ","
	defaultMemberDelimiter   = ","
)

// Columns names the input columns a record is read from.
type Columns struct {
	ID       string
	Name     string
	Contact  string
	Members  string
	Track    string
	Bounties string
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithColumns overrides the default column layout. Empty fields keep their
// defaults.
func WithColumns(cols Columns) Option {
	return func(n *Normalizer) {
		if cols.ID != "" {
			n.cols.ID = cols.ID
		}
		if cols.Name != "" {
			n.cols.Name = cols.Name
		}
		if cols.Contact != "" {
			n.cols.Contact = cols.Contact
		}
		if cols.Members != "" {
			n.cols.Members = cols.Members
		}
		if cols.Track != "" {
			n.cols.Track = cols.Track
		}
		if cols.Bounties != "" {
			n.cols.Bounties = cols.Bounties
		}
	}
}

// WithCategoryDelimiter sets the separator used inside the bounty cell.
func WithCategoryDelimiter(delim string) Option {
	return func(n *Normalizer) {
		if delim != "" {
			n.categoryDelim = delim
		}
	}
}

// WithMemberDelimiter sets the separator used inside the members cell.
func WithMemberDelimiter(delim string) Option {
	return func(n *Normalizer) {
		if delim != "" {
			n.memberDelim = delim
		}
	}
}

// Normalizer parses raw rows into TeamRecords.
type Normalizer struct {
	cols          Columns
	categoryDelim string
	memberDelim   string
}

// New creates a Normalizer with the default export layout.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		cols: Columns{
			ID:       defaultIDColumn,
			Name:     defaultNameColumn,
			Contact:  defaultContactColumn,
			Members:  defaultMembersColumn,
			Track:    defaultTrackColumn,
			Bounties: defaultBountiesColumn,
		},
		categoryDelim: defaultCategoryDelimiter,
		memberDelim:   defaultMemberDelimiter,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Columns returns the column layout in use.
func (n *Normalizer) Columns() Columns {
	return n.cols
}

// Record parses one raw row into a TeamRecord. The id and name cells must be
// present and non-empty; contact, members, track and bounties may be empty,
// in which case the team simply routes into fewer buckets. line is the
// 1-based CSV line for error reporting.
func (n *Normalizer) Record(row map[string]string, line int) (model.TeamRecord, error) {
	id, ok := row[n.cols.ID]
	if !ok {
		return model.TeamRecord{}, &RowError{Line: line, Column: n.cols.ID, Err: ErrMissingColumn}
	}
	if strings.TrimSpace(id) == "" {
		return model.TeamRecord{}, &RowError{Line: line, Column: n.cols.ID, Err: ErrEmptyField}
	}
	name, ok := row[n.cols.Name]
	if !ok {
		return model.TeamRecord{}, &RowError{Line: line, Column: n.cols.Name, Err: ErrMissingColumn}
	}
	if strings.TrimSpace(name) == "" {
		return model.TeamRecord{}, &RowError{Line: line, Column: n.cols.Name, Err: ErrEmptyField}
	}

	return model.TeamRecord{
		ID:       strings.TrimSpace(id),
		Name:     strings.TrimSpace(name),
		Contact:  strings.TrimSpace(row[n.cols.Contact]),
		Members:  splitList(row[n.cols.Members], n.memberDelim),
		Track:    CleanCategory(row[n.cols.Track]),
		Bounties: n.SplitCategories(row[n.cols.Bounties]),
	}, nil
}

// SplitCategories splits a delimited bounty cell into cleaned category
// strings. Duplicates are dropped keeping first occurrence; an empty or
// "n/a" cell yields nil.
func (n *Normalizer) SplitCategories(cell string) []string {
	// Exports sometimes quote the whole cell; strip that layer before
	// splitting so the first and last entries do not keep a stray quote.
	cell = CleanCategory(cell)
	if cell == "" || strings.EqualFold(cell, "n/a") {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(cell, n.categoryDelim) {
		cat := CleanCategory(part)
		if cat == "" {
			continue
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// CleanCategory trims whitespace and strips one layer of surrounding quote
// characters so cells match configured category names. Matching downstream
// stays case-sensitive and exact; variants beyond whitespace and quoting are
// left alone on purpose.
func CleanCategory(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

func splitList(cell, delim string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(cell, delim) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
