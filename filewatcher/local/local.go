// Package local implements a filewatcher for the local filesystem via fsnotify.
package local

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/johnsiilver/symtab/filewatcher"

	log "github.com/golang/glog"
)

// local implements filewatcher.Watch for the local file system.
type local struct {
	file    string
	watcher *fsnotify.Watcher
	content chan []byte
	done    chan struct{}
	stopped chan struct{}
	sync.Mutex
}

// File implements filewatcher.Watch.File().
// The directory holding "f" is watched, not "f" itself, so editors that replace the file
// with a rename are still seen.
func (l *local) File(ctx context.Context, f string) (<-chan []byte, error) {
	l.Lock()
	defer l.Unlock()

	if l.watcher != nil {
		return nil, fmt.Errorf("file watcher already running")
	}

	abs, err := filepath.Abs(f)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("problem reading file %q: %w", abs, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	l.file = abs
	l.watcher = watcher
	l.content = make(chan []byte, 1)
	l.done = make(chan struct{})
	l.stopped = make(chan struct{})
	l.content <- b

	go l.listen(ctx, b)

	return l.content, nil
}

// listen sends the file content each time an event changes it. "last" is the content last sent.
func (l *local) listen(ctx context.Context, last []byte) {
	defer close(l.stopped)
	defer close(l.content)

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != l.file || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.V(1).Infof("filewatcher: saw %s on %s", event.Op, l.file)

			b, err := os.ReadFile(l.file)
			if err != nil {
				log.Errorf("filewatcher: problem reading %q: %s", l.file, err)
				continue
			}
			// A single save often produces several events.
			if bytes.Equal(b, last) {
				continue
			}
			last = b

			select {
			case l.content <- b:
			case <-ctx.Done():
				return
			case <-l.done:
				return
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("problem with filewatcher on %q: %s", l.file, err)
		}
	}
}

// Close implements filewatcher.Watch.Close().
func (l *local) Close() {
	l.Lock()
	defer l.Unlock()

	if l.watcher == nil {
		return
	}
	close(l.done)
	<-l.stopped
	if err := l.watcher.Close(); err != nil {
		log.Errorf("filewatcher: problem closing watcher for %q: %s", l.file, err)
	}
	l.watcher = nil
}

func init() {
	filewatcher.Register(filewatcher.Local, func() filewatcher.Watch { return &local{} })
}
