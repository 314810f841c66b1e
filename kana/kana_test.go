package kana

import "testing"

func TestHiraToKata(t *testing.T) {
	got := HiraToKata("わたしのなまえ")
	want := "ワタシノナマエ"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestHiraToKataLeavesUnknownRunesAlone(t *testing.T) {
	got := HiraToKata("私123")
	if got != "私123" {
		t.Errorf("got %s, want unchanged input", got)
	}
}

func TestIsValidYomi(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"わたしは", true},
		{"", true},
		{"私", false},
		{"わたし1", false},
	}
	for _, c := range cases {
		if got := IsValidYomi(c.in); got != c.want {
			t.Errorf("IsValidYomi(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
