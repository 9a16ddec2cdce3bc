// Package inifile decodes INI formatted text (sections, key-value pairs,
// comments) either into a queryable in-memory store or into a stream of
// per-line events. The core operates on byte buffers only; this package adds
// the file-loading glue on top of the store and parser packages.
package inifile

import (
	"os"

	"github.com/safeblock-dev/werr"

	"github.com/4nd3r5on/go-inifile/parser"
	"github.com/4nd3r5on/go-inifile/store"
)

// Load reads the file at path and builds a Store from its contents.
func Load(path string, options ...store.Option) (*store.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, werr.Wrap(err)
	}

	st, err := store.Build(data, options...)
	if err != nil {
		return nil, werr.Wrap(err)
	}

	return st, nil
}

// DispatchFile reads the file at path and streams its lines to handler.
// The returned bool is false when the handler aborted the dispatch.
func DispatchFile(path string, handler parser.Handler, options ...parser.Option) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, werr.Wrap(err)
	}

	return parser.Dispatch(data, handler, options...), nil
}
