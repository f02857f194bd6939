package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"
	"github.com/johnsiilver/symtab/filewatcher"
	"github.com/johnsiilver/symtab/tree"
	"github.com/johnsiilver/symtab/tree/redblack"
)

const (
	formatTokens = "tokens"
	formatPairs  = "pairs"
)

// maxLine is the longest line accepted in the pairs format.
const maxLine = 1024 * 1024

// parse builds a table from "b" in "format". "b" is never written to.
func parse(b []byte, format string) (*redblack.Tree[string, string], error) {
	t := redblack.New[string, string]()

	switch format {
	case formatTokens:
		for i, tok := range strings.Fields(string(b)) {
			t.Set(tok, strconv.Itoa(i))
		}
	case formatPairs:
		sc := bufio.NewScanner(bytes.NewReader(b))
		sc.Buffer(make([]byte, 0, 4096), maxLine)
		for line := 1; sc.Scan(); line++ {
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			fields := strings.Fields(text)
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: want \"key value\", got %q", line, text)
			}
			t.Set(fields[0], strings.Join(fields[1:], " "))
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return t, nil
}

// frequency returns the token of at least "minLen" characters that occurs most often in "b" and
// how often it occurs. Ties go to the smallest token. ok is false if no token qualified.
func frequency(b []byte, minLen int) (key string, count int, ok bool) {
	t := redblack.New[string, int]()
	for _, tok := range strings.Fields(string(b)) {
		if utf8.RuneCountInString(tok) < minLen {
			continue
		}
		n, _, _ := t.Get(tok)
		t.Set(tok, n+1)
	}

	glog.V(1).Infof("frequency: %d distinct tokens, tree height %d", t.Size(), t.Height())

	for k, n := range t.All() {
		if n > count {
			key, count, ok = k, n, true
		}
	}
	return key, count, ok
}

// summarize writes the size, bounds, height and invariant check of "t" to "out".
func summarize(out io.Writer, t tree.SymbolTable[string, string]) {
	fmt.Fprintf(out, "size: %d\n", t.Size())

	lo, hi := "(none)", "(none)"
	if !t.IsEmpty() {
		lo, _ = t.Min()
		hi, _ = t.Max()
	}
	fmt.Fprintf(out, "min: %s\n", lo)
	fmt.Fprintf(out, "max: %s\n", hi)
	fmt.Fprintf(out, "height: %d\n", t.Height())

	if err := t.Check(); err != nil {
		fmt.Fprintf(out, "check: %s\n", err)
		return
	}
	fmt.Fprintln(out, "check: ok")
}

// open loads cfg.file into a Synced table. With cfg.watch, the table is rebuilt and swapped in
// every time the file changes until ctx is cancelled or the returned closer is called. "onReload"
// is called with the Synced table after each swap and may be nil. A file that fails to parse on reload is logged and the
// current table is kept.
func open(ctx context.Context, cfg config, onReload func(t tree.SymbolTable[string, string])) (*redblack.Synced[string, string], func(), error) {
	if !cfg.watch {
		b, err := os.ReadFile(cfg.file)
		if err != nil {
			return nil, nil, err
		}
		t, err := parse(b, cfg.format)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", cfg.file, err)
		}
		loaded(cfg, t)
		return redblack.NewSynced(t), func() {}, nil
	}

	ch, closer, err := filewatcher.Get(ctx, filewatcher.Local+cfg.file)
	if err != nil {
		return nil, nil, err
	}

	t, err := parse(<-ch, cfg.format)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("%s: %w", cfg.file, err)
	}
	loaded(cfg, t)
	s := redblack.NewSynced(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for b := range ch {
			t, err := parse(b, cfg.format)
			if err != nil {
				glog.Errorf("reload of %q failed, keeping the current table: %s", cfg.file, err)
				continue
			}
			loaded(cfg, t)
			s.Swap(t)
			if onReload != nil {
				onReload(s)
			}
		}
	}()

	return s, func() {
		closer()
		<-done
	}, nil
}

// loaded logs that "t" was built from cfg.file.
func loaded(cfg config, t *redblack.Tree[string, string]) {
	glog.Infof("loaded %q: %d keys", cfg.file, t.Size())
	if cfg.stats {
		logRSS()
	}
}
