// Package segment implements the kana-trie segmenter (component F): given
// an input yomi, it returns, for every byte offset, the set of byte
// offsets reachable by a known dictionary reading or a single hiragana
// character fallback.
package segment

import (
	"akazakana/dict"
	"akazakana/kana"
	"akazakana/logger"
	"akazakana/trie"
)

// Segmenter answers common-prefix segmentation queries over a fixed
// vocabulary of known readings.
type Segmenter struct {
	t *trie.Trie
}

// New builds a Segmenter whose vocabulary is every yomi known to d, plus
// every single hiragana character — the latter guarantees a path exists
// through any input that is valid hiragana, even if no dictionary entry
// covers it (spec.md §4.F's single-char fallback).
func New(d *dict.Dict) *Segmenter {
	tb := trie.NewBuilder()
	for _, y := range d.Yomis() {
		tb.Add([]byte(y))
	}
	for r := rune(0x3040); r <= 0x309F; r++ {
		if kana.IsHiragana(r) {
			tb.Add([]byte(string(r)))
		}
	}
	logger.Component("segment").Debug().Int("vocab", tb.Len()).Msg("kana-trie built")
	return &Segmenter{t: tb.Build()}
}

// Segments returns, for every byte offset that begins a rune in s, the
// set of byte offsets one could segment to from there — i.e. the ends of
// every known reading starting at that offset.
func (s *Segmenter) Segments(yomi string) map[int][]int {
	ends := make(map[int][]int)
	for i := range yomi {
		lens := s.t.CommonPrefixSearch([]byte(yomi[i:]))
		if len(lens) == 0 {
			continue
		}
		offsets := make([]int, len(lens))
		for j, l := range lens {
			offsets[j] = i + l
		}
		ends[i] = offsets
	}
	return ends
}
