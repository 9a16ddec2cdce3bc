package store

import "github.com/4nd3r5on/go-inifile/common"

// resolve scans for the first section whose name matches and returns the
// value of the last matching entry inside it. Later sections with the same
// name are never consulted, while duplicate keys inside the matched section
// resolve last-write-wins.
func (s *Store) resolve(section, key string) (string, bool) {
	for i := range s.sections {
		if !common.Equal(s.sections[i].Name, section, s.cfg.CaseSensitive) {
			continue
		}

		value, found := "", false
		for _, e := range s.sections[i].Entries {
			if common.Equal(e.Key, key, s.cfg.CaseSensitive) {
				value, found = e.Value, true
			}
		}

		return value, found
	}

	return "", false
}

// SectionExists reports whether any section with the given name was parsed.
func (s *Store) SectionExists(name string) bool {
	for i := range s.sections {
		if common.Equal(s.sections[i].Name, name, s.cfg.CaseSensitive) {
			return true
		}
	}

	return false
}

// KeyExists reports whether key is present in the named section.
func (s *Store) KeyExists(section, key string) bool {
	_, found := s.resolve(section, key)
	return found
}

// HasValue reports whether key is present and its resolved value is non-empty.
func (s *Store) HasValue(section, key string) bool {
	value, found := s.resolve(section, key)
	return found && value != ""
}

// Value returns the resolved value for (section, key), or false when no
// entry matches. Not finding a match is not an error.
func (s *Store) Value(section, key string) (string, bool) {
	return s.resolve(section, key)
}

// GetValue copies the resolved value into dst, truncating to len(dst)-1
// bytes and writing a NUL terminator inside dst. Returns false when nothing
// matched or dst has no room. The copy never overflows dst.
func (s *Store) GetValue(section, key string, dst []byte) bool {
	if len(dst) == 0 {
		return false
	}

	value, found := s.resolve(section, key)
	if !found {
		return false
	}

	n := copy(dst, value)
	if n == len(dst) {
		n--
	}
	dst[n] = 0

	return true
}
