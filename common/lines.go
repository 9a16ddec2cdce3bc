package common

// DefaultMaxLineLength caps the size of a single physical line. One byte of
// the budget is reserved for a terminator, so line content is capped at
// DefaultMaxLineLength-1 bytes.
const DefaultMaxLineLength = 256

// LineScanner splits a byte buffer into physical lines. `\n`, `\r\n` and a
// lone `\r` each end a line; runs of terminators collapse into a single line
// boundary, so the scanner never yields empty lines. A NUL byte is ordinary
// line content. The scanner is one-shot: it cannot be reset or rewound.
type LineScanner struct {
	data []byte
	pos  int
	max  int
}

func NewLineScanner(data []byte, maxLen int) *LineScanner {
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}

	return &LineScanner{data: data, max: maxLen}
}

// Next returns the next physical line with terminator characters stripped.
// Lines longer than the configured maximum are truncated; the excess bytes
// are dropped and scanning resumes after the next terminator. Returns
// ok=false once the buffer is exhausted.
func (s *LineScanner) Next() (line string, ok bool) {
	for s.pos < len(s.data) && isTerminator(s.data[s.pos]) {
		s.pos++
	}

	if s.pos >= len(s.data) {
		return "", false
	}

	start := s.pos
	for s.pos < len(s.data) && !isTerminator(s.data[s.pos]) {
		s.pos++
	}

	raw := s.data[start:s.pos]
	if len(raw) > s.max-1 {
		raw = raw[:s.max-1]
	}

	return string(raw), true
}

func isTerminator(c byte) bool { return c == '\n' || c == '\r' }
