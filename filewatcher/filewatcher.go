/*
Package filewatcher provides facilities for watching a single file for changes.

When To Use

This package is meant to provide abstraction for watching a single file, be it on a local filesystem or remote system.
cmd/symtab uses it to rebuild its symbol table whenever the input file is rewritten.
For watching multiple files on a local filesystem, use fsnotify.

Usage Note

All file paths must be prepended with a *marker* that indicates what type of filesystem the
file is on so it can be routed to the right handler.

For example:
	"local:/path/to/file"

SideEffect Imports

To use the filewatcher, you must side-effect import a filesystem implementation, such as "local" in your main.
*/
package filewatcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

const (
	// Local indicates the local filesystem.
	Local = "local:"
)

var (
	mu sync.Mutex
	// registry holds all the file markers to the type of watcher that can watch that file system.
	registry = map[string]func() Watch{}
)

// Register registers a filewatcher for files with "marker" using "watcher". Panics if "marker"
// is already registered.
func Register(marker string, watcher func() Watch) {
	mu.Lock()
	defer mu.Unlock()

	name, _, _ := strings.Cut(marker, ":")
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("filewatcher marker %q has already been registered", name))
	}
	registry[name] = watcher
}

// Get watches a file and sends its content on the returned channel each time it changes. The file
// content when starting the watcher is always the first result. "f" must be prepended with a
// marker that indicates the file system that will be accessed. The channel is closed when ctx
// is cancelled or closer() is called.
func Get(ctx context.Context, f string) (results <-chan []byte, closer func(), err error) {
	marker, path, ok := strings.Cut(f, ":")
	if !ok || path == "" {
		return nil, nil, fmt.Errorf("could not locate the file system marker that should be prepended: %q", f)
	}

	mu.Lock()
	v, ok := registry[marker]
	mu.Unlock()
	if !ok {
		return nil, nil, fmt.Errorf("could not locate an implementation that can read the file system designated by marker %q", marker)
	}

	w := v()

	ch, err := w.File(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return ch, w.Close, nil
}

// Watch watches a file and sends changes on the returned channel.
type Watch interface {
	// File watches the file at "f". "f" WILL NOT contain the marker. The current content
	// of the file is the first value on the channel.
	File(ctx context.Context, f string) (<-chan []byte, error)

	// Close stops the watcher from watching the file and closes the channel. It is safe
	// to call more than once.
	Close()
}
