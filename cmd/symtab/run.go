package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/johnsiilver/symtab/tree"
)

// run executes cfg.mode, reading REPL commands from "in" and writing results to "out".
func run(ctx context.Context, cfg config, in io.Reader, out io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	switch cfg.mode {
	case modeFrequency:
		if cfg.watch {
			glog.Warning("--watch is ignored in frequency mode")
		}
		b, err := os.ReadFile(cfg.file)
		if err != nil {
			return err
		}
		key, n, found := frequency(b, cfg.minLen)
		if !found {
			fmt.Fprintf(out, "no tokens of at least %d characters\n", cfg.minLen)
			return nil
		}
		fmt.Fprintf(out, "%s %d\n", key, n)
		return nil

	case modeLoad:
		s, closer, err := open(ctx, cfg, func(t tree.SymbolTable[string, string]) { summarize(out, t) })
		if err != nil {
			return err
		}
		defer closer()

		summarize(out, s)
		if cfg.watch {
			<-ctx.Done()
		}
		return nil

	case modeRepl:
		s, closer, err := open(ctx, cfg, nil)
		if err != nil {
			return err
		}
		defer closer()

		return repl(ctx, s, in, out)
	}
	return fmt.Errorf("unknown mode %q", cfg.mode)
}
