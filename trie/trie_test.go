package trie

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExactMatchAndPrefixSearch(t *testing.T) {
	b := NewBuilder()
	for _, k := range []string{"わたし", "わたしの", "わた", "に", "にほん", "にっぽん"} {
		b.Add([]byte(k))
	}
	tr := b.Build()

	if !tr.ExactMatch([]byte("わたし")) {
		t.Fatalf("expected わたし to be an exact match")
	}
	if tr.ExactMatch([]byte("わ")) {
		t.Fatalf("わ alone was never added, must not match")
	}

	lens := tr.CommonPrefixSearch([]byte("わたしの"))
	want := []int{len("わた"), len("わたし"), len("わたしの")}
	if len(lens) != len(want) {
		t.Fatalf("got %v, want %v", lens, want)
	}
	for i := range want {
		if lens[i] != want[i] {
			t.Fatalf("got %v, want %v", lens, want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := NewBuilder()
	for _, k := range []string{"あ", "あい", "あいう", "ん"} {
		b.Add([]byte(k))
	}
	tr := b.Build()

	path := filepath.Join(t.TempDir(), "test.trie")
	if err := tr.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.ExactMatch([]byte("あいう")) {
		t.Fatalf("expected あいう to survive round trip")
	}
	if loaded.ExactMatch([]byte("あいうえ")) {
		t.Fatalf("あいうえ was never added")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.trie")
	if err := os.WriteFile(path, []byte("not a trie file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error loading a corrupt file")
	}
}

func TestFindSuffix(t *testing.T) {
	b := NewBuilder()
	// simulate a bigram-style key: 2-byte prefix + 2-byte suffix
	b.Add([]byte{1, 2, 9, 9})
	tr := b.Build()

	s, ok := tr.Descend([]byte{1, 2})
	if !ok {
		t.Fatal("expected prefix to be a path")
	}
	suffix, ok := tr.FindSuffix(s, 2)
	if !ok || len(suffix) != 2 || suffix[0] != 9 || suffix[1] != 9 {
		t.Fatalf("got %v, %v", suffix, ok)
	}
}
