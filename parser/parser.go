package parser

import (
	"strings"

	"github.com/4nd3r5on/go-inifile/common"
)

// Parser classifies single lines of INI text.
type Parser struct {
	*Config
}

func New(options ...Option) *Parser {
	cfg := *DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	return &Parser{Config: &cfg}
}

// Classify takes one physical line (already stripped of its terminator by the
// line scanner) and reports its kind together with the extracted fields.
// Classification looks only at the first non-whitespace character to decide
// between comment, section and key-value; a `;` or `#` inside a value is
// ordinary value text, not a comment.
func (p *Parser) Classify(line string) common.ParsedLine {
	start := common.SkipSpaces(line, 0)
	if start >= len(line) {
		return common.ParsedLine{Type: common.LineTypeEmpty, RawLine: line}
	}

	switch line[start] {
	case ';', '#':
		return common.ParsedLine{Type: common.LineTypeComment, RawLine: line}
	case '[':
		return p.classifySection(line, start)
	default:
		return p.classifyKeyValue(line, start)
	}
}

// classifySection extracts the name between '[' and the next ']'. Anything
// after the closing bracket is ignored. A missing bracket or a name that
// trims to nothing makes the line invalid.
func (p *Parser) classifySection(line string, start int) common.ParsedLine {
	closing := strings.IndexByte(line[start+1:], ']')
	if closing < 0 {
		return invalidLine(line)
	}

	name := common.Trim(line[start+1 : start+1+closing])
	if name == "" {
		return invalidLine(line)
	}

	return common.ParsedLine{
		Type:    common.LineTypeSection,
		RawLine: line,
		Section: name,
	}
}

// classifyKeyValue splits the line on whichever of '=' or ':' appears first.
// The key must not trim to nothing. The value runs to the end of the line,
// stopping before a literal CR or LF if the caller passed one in.
func (p *Parser) classifyKeyValue(line string, start int) common.ParsedLine {
	sep := strings.IndexAny(line[start:], "=:")
	if sep < 0 {
		return invalidLine(line)
	}
	sep += start

	key := common.Trim(line[start:sep])
	if key == "" {
		return invalidLine(line)
	}

	value := line[sep+1:]
	if cut := strings.IndexAny(value, "\r\n"); cut >= 0 {
		value = value[:cut]
	}
	value = common.Trim(value)

	if value == "" && !p.AllowEmptyValues {
		return invalidLine(line)
	}

	return common.ParsedLine{
		Type:    common.LineTypeKeyValue,
		RawLine: line,
		Key:     key,
		Value:   value,
	}
}

func invalidLine(line string) common.ParsedLine {
	return common.ParsedLine{Type: common.LineTypeInvalid, RawLine: line}
}
