// Package refcheck is an offline cross-validation harness: it runs the
// IPADIC morphological analyzer (kagome) over a surface string and
// reports its morpheme boundaries and readings, for comparing against
// this module's own segmenter/resolver output during development. It is
// never imported by package convert — the decoder implements its own
// segmentation and must not depend on an external analyzer at runtime.
package refcheck

import (
	"fmt"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"akazakana/logger"
)

var (
	once    sync.Once
	kg      *tokenizer.Tokenizer
	initErr error
)

func instance() (*tokenizer.Tokenizer, error) {
	once.Do(func() {
		kg, initErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	return kg, initErr
}

// Boundary is one morpheme as reported by the reference tokenizer.
type Boundary struct {
	Surface string
	Reading string
	Start   int
	End     int
}

// Tokenize runs the reference analyzer over surface and returns its
// morpheme boundaries, for offline comparison against a graph's own
// segmentation.
func Tokenize(surface string) ([]Boundary, error) {
	tk, err := instance()
	if err != nil {
		return nil, fmt.Errorf("refcheck: initialising reference tokenizer: %w", err)
	}
	if surface == "" {
		return nil, nil
	}
	toks := tk.Tokenize(surface)
	out := make([]Boundary, 0, len(toks))
	for _, t := range toks {
		reading, ok := t.Reading()
		if !ok {
			reading = ""
		}
		out = append(out, Boundary{Surface: t.Surface, Reading: reading, Start: t.Start, End: t.End})
	}
	return out, nil
}

// CompareSegmentEnds reports the byte offsets where this module's own
// segmenter produced an end-of-word boundary at position p but the
// reference tokenizer did not, or vice versa — a coarse divergence
// signal for manual inspection, not a pass/fail oracle (the two are
// different morphological theories and will legitimately disagree on
// plenty of real input).
func CompareSegmentEnds(surface string, ourEnds map[int]bool) (onlyOurs, onlyReference []int, err error) {
	boundaries, err := Tokenize(surface)
	if err != nil {
		return nil, nil, err
	}
	referenceEnds := make(map[int]bool, len(boundaries))
	for _, b := range boundaries {
		referenceEnds[b.End] = true
	}
	for end := range ourEnds {
		if !referenceEnds[end] {
			onlyOurs = append(onlyOurs, end)
		}
	}
	for end := range referenceEnds {
		if !ourEnds[end] {
			onlyReference = append(onlyReference, end)
		}
	}
	if len(onlyOurs) > 0 || len(onlyReference) > 0 {
		logger.Component("refcheck").Debug().
			Strs("onlyOurs", intsToStrings(onlyOurs)).
			Strs("onlyReference", intsToStrings(onlyReference)).
			Msg("segmentation boundary divergence")
	}
	return onlyOurs, onlyReference, nil
}

func intsToStrings(ints []int) []string {
	out := make([]string, len(ints))
	for i, v := range ints {
		out[i] = fmt.Sprintf("%d", v)
	}
	return out
}
