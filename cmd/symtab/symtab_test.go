package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
	"github.com/lukechampine/freeze"

	"github.com/johnsiilver/symtab/tree"
)

const pairsFile = `# fruit and their colors
apple red

banana yellow
cherry dark red
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParse(t *testing.T) {
	tests := []struct {
		desc    string
		content string
		format  string
		want    map[string]string
		err     bool
	}{
		{
			desc:    "Tokens",
			content: "it was the best of\ntimes it was",
			format:  formatTokens,
			want:    map[string]string{"it": "6", "was": "7", "the": "2", "best": "3", "of": "4", "times": "5"},
		},
		{
			desc:    "Pairs",
			content: pairsFile,
			format:  formatPairs,
			want:    map[string]string{"apple": "red", "banana": "yellow", "cherry": "dark red"},
		},
		{
			desc:    "Pairs with a missing value",
			content: "a 1\n\nlonely\n",
			format:  formatPairs,
			err:     true,
		},
		{
			desc:   "Unknown format",
			format: "csv",
			err:    true,
		},
	}

	for _, test := range tests {
		// parse must never write to the file content it is handed.
		b := freeze.Slice(append([]byte(test.content), ' ')).([]byte)

		tr, err := parse(b, test.format)
		switch {
		case err == nil && test.err:
			t.Errorf("Test %q: got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("Test %q: got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			continue
		}

		if err := tr.Check(); err != nil {
			t.Errorf("Test %q: Check(): %s", test.desc, err)
		}

		got := map[string]string{}
		for k, v := range tr.All() {
			got[k] = v
		}
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("Test %q: -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := parse([]byte("a 1\n\nlonely\n"), formatPairs)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("got err == %v, want an error naming line 3", err)
	}
}

func TestFrequency(t *testing.T) {
	const text = "it was the best of times it was the worst of times"

	tests := []struct {
		minLen int
		key    string
		count  int
		ok     bool
	}{
		{minLen: 1, key: "it", count: 2, ok: true},
		{minLen: 3, key: "the", count: 2, ok: true},
		{minLen: 5, key: "times", count: 2, ok: true},
		{minLen: 6},
	}

	for _, test := range tests {
		key, count, ok := frequency([]byte(text), test.minLen)
		if key != test.key || count != test.count || ok != test.ok {
			t.Errorf("frequency(min_len=%d): got (%q, %d, %v), want (%q, %d, %v)", test.minLen, key, count, ok, test.key, test.count, test.ok)
		}
	}
}

func TestRunLoad(t *testing.T) {
	p := writeFile(t, "S E A R C H E X A M P L E")

	out := &bytes.Buffer{}
	if err := run(context.Background(), config{file: p, format: formatTokens, mode: modeLoad}, nil, out); err != nil {
		t.Fatal(err)
	}

	want := "size: 10\nmin: A\nmax: X\nheight: 3\ncheck: ok\n"
	if diff := pretty.Compare(want, out.String()); diff != "" {
		t.Errorf("-want/+got:\n%s", diff)
	}
}

func TestRunLoadEmpty(t *testing.T) {
	p := writeFile(t, "# nothing here\n")

	out := &bytes.Buffer{}
	if err := run(context.Background(), config{file: p, format: formatPairs, mode: modeLoad}, nil, out); err != nil {
		t.Fatal(err)
	}

	want := "size: 0\nmin: (none)\nmax: (none)\nheight: -1\ncheck: ok\n"
	if diff := pretty.Compare(want, out.String()); diff != "" {
		t.Errorf("-want/+got:\n%s", diff)
	}
}

func TestRunFrequency(t *testing.T) {
	p := writeFile(t, "it was the best of times it was the worst of times")

	tests := []struct {
		minLen int
		want   string
	}{
		{minLen: 5, want: "times 2\n"},
		{minLen: 10, want: "no tokens of at least 10 characters\n"},
	}

	for _, test := range tests {
		out := &bytes.Buffer{}
		cfg := config{file: p, format: formatTokens, mode: modeFrequency, minLen: test.minLen}
		if err := run(context.Background(), cfg, nil, out); err != nil {
			t.Fatal(err)
		}
		if out.String() != test.want {
			t.Errorf("min_len=%d: got %q, want %q", test.minLen, out.String(), test.want)
		}
	}
}

func TestRunRepl(t *testing.T) {
	p := writeFile(t, pairsFile)

	script := []struct {
		cmd  string
		want string
	}{
		{"get apple", "red"},
		{"get kiwi", "(not found)"},
		{"put kiwi green", "ok"},
		{"size", "4"},
		{"keys", "apple banana cherry kiwi"},
		{"floor b", "apple"},
		{"ceil d", "kiwi"},
		{"floor a", "(none)"},
		{"rank cherry", "2"},
		{"select 1", "banana"},
		{"select 9", "error: Select(9) on tree of size 4: rank out of range"},
		{"get cherry", "dark red"},
		{"keys b d", "banana cherry"},
		{"keys d b", "(none)"},
		{"size b d", "2"},
		{"del banana", "ok"},
		{"min", "apple"},
		{"max", "kiwi"},
		{"delmin", "ok"},
		{"delmax", "ok"},
		{"keys", "cherry"},
		{"height", "0"},
		{"check", "ok"},
		{"del cherry", "ok"},
		{"min", "error: Min(): symbol table underflow"},
		{"delmax", "error: DeleteMax(): symbol table underflow"},
		{"bogus", `error: unknown command "bogus"`},
		{"keys a", "error: usage: keys [<lo> <hi>]"},
		{"select x", `error: rank "x" is not an integer`},
	}

	var in, want strings.Builder
	for _, line := range script {
		in.WriteString(line.cmd + "\n\n")
		want.WriteString(line.want + "\n")
	}
	in.WriteString("quit\nget apple\n")

	out := &bytes.Buffer{}
	cfg := config{file: p, format: formatPairs, mode: modeRepl}
	if err := run(context.Background(), cfg, strings.NewReader(in.String()), out); err != nil {
		t.Fatal(err)
	}

	if diff := pretty.Compare(strings.Split(want.String(), "\n"), strings.Split(out.String(), "\n")); diff != "" {
		t.Errorf("-want/+got:\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	p := writeFile(t, "lonely\n")

	tests := []struct {
		desc string
		cfg  config
	}{
		{desc: "No file", cfg: config{format: formatTokens, mode: modeLoad}},
		{desc: "Bad format", cfg: config{file: p, format: "csv", mode: modeLoad}},
		{desc: "Bad mode", cfg: config{file: p, format: formatTokens, mode: "dump"}},
		{desc: "Missing file", cfg: config{file: p + ".missing", format: formatTokens, mode: modeLoad}},
		{desc: "Bad pairs", cfg: config{file: p, format: formatPairs, mode: modeLoad}},
	}

	for _, test := range tests {
		if err := run(context.Background(), test.cfg, nil, &bytes.Buffer{}); err == nil {
			t.Errorf("Test %q: got err == nil, want err != nil", test.desc)
		}
	}
}

func TestOpenWatch(t *testing.T) {
	p := writeFile(t, "apple red\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan int, 10)
	s, closer, err := open(ctx, config{file: p, format: formatPairs, watch: true}, func(tbl tree.SymbolTable[string, string]) {
		select {
		case reloads <- tbl.Size():
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	if s.Size() != 1 {
		t.Fatalf("Size() after the first load: got %d, want 1", s.Size())
	}

	// A bad file is skipped and the table is kept.
	if err := os.WriteFile(p, []byte("apple\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("apple red\nbanana yellow\ncherry red\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(10 * time.Second)
	for {
		select {
		case n := <-reloads:
			if n != 3 {
				continue
			}
		case <-timeout:
			t.Fatalf("table was not reloaded, Size() == %d", s.Size())
		}
		break
	}

	if got, ok, _ := s.Get("banana"); !ok || got != "yellow" {
		t.Errorf("Get(banana) after reload: got (%q, %v), want (\"yellow\", true)", got, ok)
	}
}
