package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/johnsiilver/symtab/filewatcher"
)

func setupFile(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "filewatcher_tmp")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// next returns the next content on "ch", failing the test if it takes too long.
func next(t *testing.T, ch <-chan []byte) (string, bool) {
	t.Helper()

	select {
	case b, ok := <-ch:
		return string(b), ok
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for the filewatcher")
	}
	return "", false
}

func Test(t *testing.T) {
	p := setupFile(t, "hello")

	ch, closer, err := filewatcher.Get(context.Background(), filewatcher.Local+p)
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	if got, _ := next(t, ch); got != "hello" {
		t.Fatalf("file content: got %q, want %q", got, "hello")
	}

	if err := os.WriteFile(p, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A rewrite can be seen as a truncate followed by a write.
	for {
		got, ok := next(t, ch)
		if !ok {
			t.Fatal("channel closed before the change was seen")
		}
		if got == "hello world" {
			break
		}
	}
}

func TestReplace(t *testing.T) {
	p := setupFile(t, "first")

	ch, closer, err := filewatcher.Get(context.Background(), filewatcher.Local+p)
	if err != nil {
		t.Fatal(err)
	}
	defer closer()
	next(t, ch)

	tmp := p + ".new"
	if err := os.WriteFile(tmp, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, p); err != nil {
		t.Fatal(err)
	}

	if got, _ := next(t, ch); got != "second" {
		t.Fatalf("file content: got %q, want %q", got, "second")
	}
}

func TestClose(t *testing.T) {
	p := setupFile(t, "hello")

	ctx, cancel := context.WithCancel(context.Background())
	ch, closer, err := filewatcher.Get(ctx, filewatcher.Local+p)
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	next(t, ch)
	cancel()

	if _, ok := next(t, ch); ok {
		t.Fatal("channel was not closed after the context was cancelled")
	}
	closer()
}

func TestErrors(t *testing.T) {
	tests := []struct {
		desc string
		file string
	}{
		{desc: "No marker", file: "/no/marker"},
		{desc: "Unknown marker", file: "remote:/some/file"},
		{desc: "Missing file", file: filewatcher.Local + filepath.Join(t.TempDir(), "missing")},
	}

	for _, test := range tests {
		if _, _, err := filewatcher.Get(context.Background(), test.file); err == nil {
			t.Errorf("Test %q: got err == nil, want err != nil", test.desc)
		}
	}
}
