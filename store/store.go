// Package store materializes INI text into an ordered, queryable structure.
package store

import (
	"errors"

	"github.com/4nd3r5on/go-inifile/common"
	"github.com/4nd3r5on/go-inifile/parser"
)

var (
	// ErrEmptyInput is returned by Build for a zero-length buffer.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoValidEntries is returned when scanning the whole buffer produced
	// no sections at all (comments, blank and invalid lines only).
	ErrNoValidEntries = errors.New("no valid entries")
)

// Entry is a single key/value pair. Duplicate keys within a section are
// allowed and kept in insertion order.
type Entry struct {
	Key   string
	Value string
}

// Section is a named group of entries introduced by a [name] header line.
// Every header line opens a new Section, so duplicate names may coexist.
type Section struct {
	Name    string
	Entries []Entry
}

// Store is the materialized result of an eager parse. All strings are
// independent copies of the input, so the Store outlives the caller's buffer.
// A Store is immutable after Build; concurrent readers need no locking.
type Store struct {
	cfg      *Config
	sections []Section
}

// Build scans data line by line and materializes a queryable Store.
//
// A section header appends a new Section and makes it current; a key-value
// line appends an Entry to the current Section. Key-value lines seen before
// any section header, comments and invalid lines contribute nothing. Callers
// that need per-line diagnostics should use parser.Dispatch instead.
func Build(data []byte, options ...Option) (*Store, error) {
	cfg := *DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	p := parser.New(
		parser.WithLogger(cfg.Logger),
		parser.WithMaxLineLength(cfg.MaxLineLength),
		parser.WithAllowEmptyValues(cfg.AllowEmptyValues),
	)

	st := &Store{cfg: &cfg}
	scanner := common.NewLineScanner(data, cfg.MaxLineLength)
	current := -1
	entries := 0

	for {
		line, ok := scanner.Next()
		if !ok {
			break
		}

		parsed := p.Classify(line)
		switch parsed.Type {
		case common.LineTypeSection:
			st.sections = append(st.sections, Section{Name: parsed.Section})
			current = len(st.sections) - 1
		case common.LineTypeKeyValue:
			if current < 0 {
				cfg.Logger.Debug("key-value line before any section, dropped", "key", parsed.Key)
				continue
			}

			st.sections[current].Entries = append(st.sections[current].Entries, Entry{
				Key:   parsed.Key,
				Value: parsed.Value,
			})
			entries++
		}
	}

	if len(st.sections) == 0 {
		return nil, ErrNoValidEntries
	}

	cfg.Logger.Debug("store built", "sections", len(st.sections), "entries", entries)

	return st, nil
}

// Sections returns the parsed sections in input order. The slice is shared
// with the Store and must not be modified.
func (s *Store) Sections() []Section { return s.sections }

// Len returns the number of sections, duplicates counted individually.
func (s *Store) Len() int { return len(s.sections) }

// Release drops all parsed data. It is idempotent: calling it again is a
// no-op. Lookups on a released Store report not found. Release must not run
// concurrently with lookups on the same Store.
func (s *Store) Release() {
	s.sections = nil
}
