package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/johnsiilver/symtab/statemachine"
	"github.com/johnsiilver/symtab/tree"
)

// session is the state shared by the REPL's StateFn's.
type session struct {
	table tree.SymbolTable[string, string]
	in    *bufio.Scanner
	out   io.Writer

	// args is the command currently being run, split on whitespace.
	args []string
}

// command is a REPL command.
type command struct {
	usage string
	// nargs is the valid number of arguments.
	nargs []int
	// variadic allows any number of arguments above the largest in nargs.
	variadic bool
	run      func(t tree.SymbolTable[string, string], args []string) (string, error)
}

func (c command) accepts(n int) bool {
	if slices.Contains(c.nargs, n) {
		return true
	}
	return c.variadic && n > slices.Max(c.nargs)
}

const (
	respNotFound = "(not found)"
	respNone     = "(none)"
	respOK       = "ok"
)

var commands = map[string]command{
	"get": {
		usage: "get <key>",
		nargs: []int{1},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			v, found, err := t.Get(args[0])
			if err != nil || !found {
				return respNotFound, err
			}
			return v, nil
		},
	},
	"put": {
		usage:    "put <key> <value>",
		nargs:    []int{2},
		variadic: true,
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return respOK, t.Set(args[0], strings.Join(args[1:], " "))
		},
	},
	"del": {
		usage: "del <key>",
		nargs: []int{1},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return respOK, t.Delete(args[0])
		},
	},
	"delmin": {
		usage: "delmin",
		nargs: []int{0},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return respOK, t.DeleteMin()
		},
	},
	"delmax": {
		usage: "delmax",
		nargs: []int{0},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return respOK, t.DeleteMax()
		},
	},
	"min": {
		usage: "min",
		nargs: []int{0},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return t.Min()
		},
	},
	"max": {
		usage: "max",
		nargs: []int{0},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return t.Max()
		},
	},
	"floor": {
		usage: "floor <key>",
		nargs: []int{1},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return orNone(t.Floor(args[0]))
		},
	},
	"ceil": {
		usage: "ceil <key>",
		nargs: []int{1},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return orNone(t.Ceiling(args[0]))
		},
	},
	"rank": {
		usage: "rank <key>",
		nargs: []int{1},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			r, err := t.Rank(args[0])
			return strconv.Itoa(r), err
		},
	},
	"select": {
		usage: "select <rank>",
		nargs: []int{1},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("rank %q is not an integer", args[0])
			}
			return t.Select(i)
		},
	},
	"keys": {
		usage: "keys [<lo> <hi>]",
		nargs: []int{0, 2},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			keys := t.Keys()
			if len(args) == 2 {
				var err error
				if keys, err = t.KeysRange(args[0], args[1]); err != nil {
					return "", err
				}
			}
			if len(keys) == 0 {
				return respNone, nil
			}
			return strings.Join(keys, " "), nil
		},
	},
	"size": {
		usage: "size [<lo> <hi>]",
		nargs: []int{0, 2},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			if len(args) == 2 {
				n, err := t.SizeRange(args[0], args[1])
				return strconv.Itoa(n), err
			}
			return strconv.Itoa(t.Size()), nil
		},
	},
	"height": {
		usage: "height",
		nargs: []int{0},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return strconv.Itoa(t.Height()), nil
		},
	},
	"check": {
		usage: "check",
		nargs: []int{0},
		run: func(t tree.SymbolTable[string, string], args []string) (string, error) {
			return respOK, t.Check()
		},
	},
}

// orNone converts the results of Floor() or Ceiling() into a REPL response.
func orNone(k string, found bool, err error) (string, error) {
	if err != nil || !found {
		return respNone, err
	}
	return k, nil
}

// readCmd implements statemachine.StateFn. It reads the next command line.
func readCmd(ctx context.Context, s *session) (statemachine.StateFn[*session], error) {
	if !s.in.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, s.in.Err()
	}

	s.args = strings.Fields(s.in.Text())
	if len(s.args) == 0 {
		return readCmd, nil
	}
	return runCmd, nil
}

// runCmd implements statemachine.StateFn. It runs the command read by readCmd and writes the result.
func runCmd(ctx context.Context, s *session) (statemachine.StateFn[*session], error) {
	name, args := s.args[0], s.args[1:]
	if name == "quit" {
		return nil, nil
	}

	c, found := commands[name]
	switch {
	case !found:
		fmt.Fprintf(s.out, "error: unknown command %q\n", name)
	case !c.accepts(len(args)):
		fmt.Fprintf(s.out, "error: usage: %s\n", c.usage)
	default:
		resp, err := c.run(s.table, args)
		if err != nil {
			fmt.Fprintf(s.out, "error: %s\n", err)
			break
		}
		fmt.Fprintln(s.out, resp)
	}
	return readCmd, nil
}

// repl runs commands read from "in" against "t" until "quit", the end of "in" or ctx is cancelled.
func repl(ctx context.Context, t tree.SymbolTable[string, string], in io.Reader, out io.Writer) error {
	// A blocked read can only be interrupted by closing the input.
	if c, ok := in.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { c.Close() })
		defer stop()
	}

	s := &session{table: t, in: bufio.NewScanner(in), out: out}
	exec := statemachine.New("repl", readCmd, statemachine.LogFacility(glog.V(2).Infof), statemachine.TraceLimit(16))
	return exec.Execute(ctx, s)
}
