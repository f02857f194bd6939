package redblack

import (
	"cmp"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestReverse(t *testing.T) {
	tr := NewFunc[int, int](Reverse(cmp.Compare[int]))
	for i := 0; i < 10; i++ {
		tr.Set(i, i)
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check(): %s", err)
	}

	if diff := pretty.Compare([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, tr.Keys()); diff != "" {
		t.Errorf("Keys(): -want/+got:\n%s", diff)
	}
	if min, _ := tr.Min(); min != 9 {
		t.Errorf("Min(): got %d, want 9", min)
	}
	// Floor in reverse order is the smallest key >= 5.
	if got, ok, _ := tr.Floor(5); !ok || got != 5 {
		t.Errorf("Floor(5): got (%d, %v), want (5, true)", got, ok)
	}
}

func TestFoldString(t *testing.T) {
	tr := NewFunc[string, int](FoldString)
	tr.Set("Hello", 1)
	tr.Set("HELLO", 2)
	tr.Set("apple", 3)
	tr.Set("Banana", 4)

	if tr.Size() != 3 {
		t.Errorf("Size(): got %d, want 3", tr.Size())
	}
	if v, ok, _ := tr.Get("hello"); !ok || v != 2 {
		t.Errorf("Get(\"hello\"): got (%d, %v), want (2, true)", v, ok)
	}
	if diff := pretty.Compare([]string{"apple", "Banana", "Hello"}, tr.Keys()); diff != "" {
		t.Errorf("Keys(): -want/+got:\n%s", diff)
	}
}
