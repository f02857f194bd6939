/*
symtab loads a text file into an ordered symbol table and reports on it.

Modes:
	load:      builds the table and prints its size, min, max, height and invariant check.
	frequency: prints the most frequent token of at least --min_len characters.
	repl:      reads commands such as "get k", "put k v", "floor k" or "keys lo hi" from stdin.

Formats:
	tokens: every whitespace separated token is a key, its 0 based position is the value.
	pairs:  every line is "key value". Blank lines and lines starting with # are skipped.

With --watch, load and repl rebuild the table every time the file changes.

Example:
	symtab --file=tale.txt --mode=frequency --min_len=8
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	_ "github.com/johnsiilver/symtab/filewatcher/local"
)

var (
	file   = pflag.String("file", "", "The file to load into the symbol table")
	format = pflag.String("format", formatTokens, "The input format: tokens or pairs")
	minLen = pflag.Int("min_len", 1, "Tokens shorter than this are ignored in frequency mode")
	mode   = pflag.String("mode", modeLoad, "What to do with the table: load, frequency or repl")
	watch  = pflag.Bool("watch", false, "Rebuild the table when --file changes (load and repl modes)")
	stats  = pflag.Bool("stats", false, "Log the process RSS after each load")
)

const (
	modeLoad      = "load"
	modeFrequency = "frequency"
	modeRepl      = "repl"
)

// config holds the parsed flags.
type config struct {
	file   string
	format string
	minLen int
	mode   string
	watch  bool
	stats  bool
}

func (c config) validate() error {
	if c.file == "" {
		return errors.New("--file must be set")
	}
	switch c.format {
	case formatTokens, formatPairs:
	default:
		return errors.New("--format must be tokens or pairs")
	}
	switch c.mode {
	case modeLoad, modeFrequency, modeRepl:
	default:
		return errors.New("--mode must be load, frequency or repl")
	}
	return nil
}

func main() {
	// glog registers its flags on the standard flag set.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	cfg := config{
		file:   *file,
		format: *format,
		minLen: *minLen,
		mode:   *mode,
		watch:  *watch,
		stats:  *stats,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		glog.Errorf("symtab: %s", err)
		glog.Flush()
		os.Exit(1)
	}
}
