// inidump prints the contents of an INI file, either as the materialized
// section/key structure or as a trace of parse events (--stream).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	inifile "github.com/4nd3r5on/go-inifile"
	"github.com/4nd3r5on/go-inifile/common"
	"github.com/4nd3r5on/go-inifile/parser"
	"github.com/4nd3r5on/go-inifile/store"
)

type options struct {
	Stream        bool `long:"stream" short:"s" description:"Print one parse event per line instead of building a store"`
	CaseSensitive bool `long:"case-sensitive" description:"Compare section names and keys with exact case"`
	NoEmptyValues bool `long:"no-empty-values" description:"Treat key-value lines with an empty value as invalid"`
	MaxLineLength int  `long:"max-line-length" description:"Maximum physical line length in bytes" default:"256"`
	Verbose       bool `long:"verbose" short:"v" description:"Enable debug logging"`

	Args struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if opts.Stream {
		runStream(opts, logger)
		return
	}
	runDump(opts, logger)
}

func runDump(opts options, logger *slog.Logger) {
	st, err := inifile.Load(opts.Args.File,
		store.WithLogger(logger),
		store.WithMaxLineLength(opts.MaxLineLength),
		store.WithAllowEmptyValues(!opts.NoEmptyValues),
		store.WithCaseSensitive(opts.CaseSensitive),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "inidump:", err)
		os.Exit(1)
	}
	defer st.Release()

	for _, section := range st.Sections() {
		fmt.Printf("[%s]\n", section.Name)
		for _, entry := range section.Entries {
			fmt.Printf("%s = %s\n", entry.Key, entry.Value)
		}
		fmt.Println()
	}
}

func runStream(opts options, logger *slog.Logger) {
	var sections, keys, comments, errs int

	ok, err := inifile.DispatchFile(opts.Args.File, func(e common.Event) bool {
		switch e.Type {
		case common.EventSection:
			sections++
			fmt.Printf("section  %s\n", e.Section)
		case common.EventKeyValue:
			keys++
			fmt.Printf("keyvalue [%s] %s = %s\n", e.Section, e.Key, e.Value)
		case common.EventComment:
			comments++
			fmt.Printf("comment  %s\n", e.Value)
		case common.EventError:
			errs++
			fmt.Printf("error    %s\n", e.Value)
		}
		return true
	},
		parser.WithLogger(logger),
		parser.WithMaxLineLength(opts.MaxLineLength),
		parser.WithAllowEmptyValues(!opts.NoEmptyValues),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "inidump:", err)
		os.Exit(1)
	}

	state := "completed"
	if !ok {
		state = "aborted"
	}
	fmt.Printf("\nparse %s: %d sections, %d keys, %d comments, %d errors\n",
		state, sections, keys, comments, errs)
}
