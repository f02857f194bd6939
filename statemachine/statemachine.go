/*
Package statemachine provides a generalized state machine. It is based on a talk by Rob Pike (though I'm sure any similar
implementation by him would be infinitely better).

This statemachine does not use a state type to go from state to state, but instead uses state functions to determine the next
state to execute directly. Each StateFn receives the same value "s", which holds whatever data the states share.

Example usage:
	// session holds the data shared by our StateFn's.
	type session struct {
		in *bufio.Scanner
		line string
	}

	// read implements StateFn. This will be our starting state.
	func read(ctx context.Context, s *session) (statemachine.StateFn[*session], error) {
		if !s.in.Scan() {
			return nil, s.in.Err()
		}
		s.line = s.in.Text()
		return print, nil
	}

	// print implements StateFn.
	func print(ctx context.Context, s *session) (statemachine.StateFn[*session], error) {
		fmt.Println(s.line)
		return read, nil
	}

	func main() {
		// Creates a new statemachine executor that will start execution with read().
		exec := statemachine.New("echo", read)

		// This begins execution and gets our final error state.
		if err := exec.Execute(context.Background(), &session{in: bufio.NewScanner(os.Stdin)}); err != nil {
			// Do something with the error.
		}
	}

The Executor records the names of the StateFn's it ran, which can be retrieved with Executor.Nodes().

If you would like to have a running diagnostic mixed with your other logs, provide a logger:
	exec := statemachine.New("echo", read, statemachine.LogFacility(glog.Infof))
*/
package statemachine

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// StateFn represents a function that executes at a given state. It returns the next StateFn to execute,
// or nil when execution should stop.
type StateFn[S any] func(ctx context.Context, s S) (StateFn[S], error)

// LogFn represents some logging function. It should do variable substitution similar to fmt.Sprintf() does.
type LogFn func(s string, i ...interface{})

// DefaultTraceLimit is the number of StateFn names kept by Executor.Nodes() when TraceLimit() isn't passed.
const DefaultTraceLimit = 100

type options struct {
	logger     LogFn
	traceLimit int
}

// Option provides an optional argument for New().
type Option func(o *options)

// LogFacility sets a function that receives a log line before and after every StateFn runs.
func LogFacility(l LogFn) Option {
	return func(o *options) {
		o.logger = l
	}
}

// TraceLimit sets how many of the most recent StateFn names are kept for Nodes(). Machines that
// loop, such as a command reader, would otherwise grow the trace without bound.
func TraceLimit(n int) Option {
	return func(o *options) {
		o.traceLimit = n
	}
}

// Executor executes a state machine. Execute() must not be called concurrently.
type Executor[S any] struct {
	// name is used to prepend logging messages.
	name string

	// start is the StateFn that starts the execution.
	start StateFn[S]

	opts options

	// nodes are the StateFn names executed during the last execution, protected by mu.
	nodes []string
	mu    sync.Mutex
}

// New is the constructor for Executor. "start" is the StateFn that is first called when Executor.Execute() is called.
// "name" is used to prepend logging messages as a unique identifier.
func New[S any](name string, start StateFn[S], opts ...Option) *Executor[S] {
	e := &Executor[S]{name: name, start: start, opts: options{traceLimit: DefaultTraceLimit}}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Execute runs the state machine with "s" passed to every StateFn. It stops the first time a StateFn returns
// an error or returns nil for the next StateFn. If ctx is cancelled, Execute stops before running the next
// StateFn and returns ctx.Err().
func (e *Executor[S]) Execute(ctx context.Context, s S) error {
	e.mu.Lock()
	e.nodes = e.nodes[:0]
	e.mu.Unlock()

	f := e.start
	for f != nil {
		if err := ctx.Err(); err != nil {
			e.log("Execute() cancelled: %s", err)
			return err
		}

		var err error
		f, err = e.run(ctx, f, s)
		if err != nil {
			e.log("Execute() completed with an error: %q", err)
			return err
		}
	}
	e.log("Execute() completed with no issues")
	return nil
}

// run does some internal tracking before executing "f".
func (e *Executor[S]) run(ctx context.Context, f StateFn[S], s S) (StateFn[S], error) {
	name := fNameScrub(f)

	e.mu.Lock()
	e.nodes = append(e.nodes, name)
	if e.opts.traceLimit > 0 && len(e.nodes) > e.opts.traceLimit {
		e.nodes = append(e.nodes[:0], e.nodes[len(e.nodes)-e.opts.traceLimit:]...)
	}
	e.mu.Unlock()

	e.log("StateFn(%s) starting", name)
	next, err := f(ctx, s)
	e.log("StateFn(%s) finished", name)

	return next, err
}

// Nodes returns the names of the StateFn's run during the last call to Execute(), oldest first, limited
// to the most recent TraceLimit() entries.
func (e *Executor[S]) Nodes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, len(e.nodes))
	copy(out, e.nodes)
	return out
}

func (e *Executor[S]) log(s string, i ...interface{}) {
	if e.opts.logger != nil {
		e.opts.logger(fmt.Sprintf("StateMachine[%s]: %s", e.name, s), i...)
	}
}

// fNameScrub gets the name of function "f", removes package information and trailing stuff we
// don't care about and returns it.
func fNameScrub[S any](f StateFn[S]) string {
	v := reflect.ValueOf(f)
	pc := runtime.FuncForPC(v.Pointer())
	return fScrub(pc.Name())
}

// fScrub does the actual name scrub for fNameScrub. It is split out to allow the tests to scrub
// the name. The tests use a different way to get the function name.
func fScrub(s string) string {
	// Generic functions carry their type arguments, such as "pkg.read[...]".
	if i := strings.Index(s, "["); i > 0 {
		s = s[:i]
	}
	sp := strings.SplitAfter(s, ".")
	return strings.TrimSuffix(sp[len(sp)-1], "-fm")
}
