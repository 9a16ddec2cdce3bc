//revive:disable:var-naming
package common

//revive:enable:var-naming

// Parser

type LineType int

const (
	LineTypeEmpty LineType = iota
	LineTypeComment
	LineTypeSection
	LineTypeKeyValue
	LineTypeInvalid
)

// ParsedLine represents one classified line of INI text.
// Section, Key and Value are only set for the line types that carry them;
// RawLine always holds the line as it came out of the scanner.
type ParsedLine struct {
	Type    LineType
	RawLine string

	Section string
	Key     string
	Value   string
}

// Streaming

type EventType int

const (
	EventSection EventType = iota
	EventKeyValue
	EventComment
	EventError
)

// Event is delivered to a stream handler for every classified line.
// Comment and Error events carry the raw line text in Value.
type Event struct {
	Type    EventType
	Section string
	Key     string
	Value   string
}
