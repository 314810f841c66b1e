package segment

import (
	"testing"

	"akazakana/dict"
)

func newTestSegmenter() *Segmenter {
	b := dict.NewBuilder()
	b.Add("わたし", []string{"私"})
	b.Add("わたしの", []string{"私の"})
	b.Add("の", []string{"の"})
	return New(b.Build())
}

func TestSegmentsIncludesDictionaryReadings(t *testing.T) {
	seg := newTestSegmenter()
	ends := seg.Segments("わたしの")

	start0 := ends[0]
	wantEnds := map[int]bool{
		len("わた"):   false, // わた is not a dict entry nor single char span
		len("わたし"):  true,
		len("わたしの"): true,
	}
	got := map[int]bool{}
	for _, e := range start0 {
		got[e] = true
	}
	for end, want := range wantEnds {
		if got[end] != want {
			t.Fatalf("end offset %d reachable from 0: got %v, want %v (ends=%v)", end, got[end], want, start0)
		}
	}
}

func TestSingleCharFallbackAlwaysPresent(t *testing.T) {
	seg := newTestSegmenter()
	ends := seg.Segments("ん")
	if len(ends[0]) == 0 {
		t.Fatalf("expected single hiragana character to have a fallback segmentation")
	}
	found := false
	for _, e := range ends[0] {
		if e == len("ん") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected end offset %d reachable for single-char ん, got %v", len("ん"), ends[0])
	}
}

func TestUnknownSequenceStillSegmentsCharByChar(t *testing.T) {
	seg := newTestSegmenter()
	ends := seg.Segments("ふろ")
	for i := range "ふろ" {
		if len(ends[i]) == 0 {
			t.Fatalf("offset %d has no outgoing edge at all", i)
		}
	}
}
