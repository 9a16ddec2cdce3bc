package parser

import "github.com/4nd3r5on/go-inifile/common"

// Handler receives one event per classified line.
// Returning false aborts the dispatch.
type Handler func(e common.Event) bool

// Dispatch classifies data line by line and invokes handler for every line
// that produces an event (empty lines produce none). The only state carried
// between lines is the name of the most recently seen section, which is
// attached to key-value events. Nothing is retained after the call.
//
// Returns false when the handler aborted or handler is nil; a zero-length
// buffer dispatches zero events and returns true.
func (p *Parser) Dispatch(data []byte, handler Handler) bool {
	if handler == nil {
		return false
	}

	section := ""
	scanner := common.NewLineScanner(data, p.MaxLineLength)

	for {
		line, ok := scanner.Next()
		if !ok {
			return true
		}

		parsed := p.Classify(line)
		switch parsed.Type {
		case common.LineTypeSection:
			section = parsed.Section
			if !handler(common.Event{Type: common.EventSection, Section: section}) {
				return false
			}
		case common.LineTypeKeyValue:
			ev := common.Event{
				Type:    common.EventKeyValue,
				Section: section,
				Key:     parsed.Key,
				Value:   parsed.Value,
			}
			if !handler(ev) {
				return false
			}
		case common.LineTypeComment:
			if !handler(common.Event{Type: common.EventComment, Value: parsed.RawLine}) {
				return false
			}
		case common.LineTypeInvalid:
			p.Logger.Debug("invalid line", "line", parsed.RawLine)

			if !handler(common.Event{Type: common.EventError, Value: parsed.RawLine}) {
				return false
			}
		}
	}
}

// Dispatch is a convenience wrapper constructing a one-shot Parser.
func Dispatch(data []byte, handler Handler, options ...Option) bool {
	return New(options...).Dispatch(data, handler)
}
