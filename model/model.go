// Package model holds the value types shared across the conversion core:
// word identifiers and lattice nodes used by the unigram/bigram LMs, the
// dictionary, the segmenter, the graph builder, and the resolver.
package model

import "strconv"

// WordID is the dense 24-bit identifier assigned to a unigram entry at
// build time. The valid range is [0, MaxWordID]; values above that are
// reserved sentinels.
type WordID uint32

const (
	// MaxWordID is the largest assignable word id (a vocabulary of at most
	// 2^23 entries); the 24-bit values above it hold the sentinels below.
	MaxWordID WordID = 1<<23 - 1

	// UnknownID marks a node whose surface/yomi pair has no unigram entry.
	UnknownID WordID = 1<<24 - 1
	// BosID is the reserved id of the begin-of-sentence sentinel node.
	BosID WordID = 1<<24 - 2
	// EosID is the reserved id of the end-of-sentence sentinel node.
	EosID WordID = 1<<24 - 3
)

// Node is one lattice vertex: a candidate surface form spanning
// yomi[start : start+len(yomi)] in the input reading.
type Node struct {
	Start       int    // byte offset into the input yomi
	Yomi        string // the reading this node spans
	Surface     string // the candidate output text
	WordID      WordID
	UnigramCost float32
	// DictRank is the candidate's position in the dictionary's ordered
	// surface list for Yomi (0 = most frequent); used as the resolver's
	// tie-break. Sentinels and the all-kana identity candidate use -1.
	DictRank int
}

// End returns the byte offset one past the node's span.
func (n Node) End() int {
	return n.Start + len(n.Yomi)
}

// Key returns the canonical unigram lookup key "surface/yomi" for this
// node. This is the single canonical form chosen for both all-kanji and
// all-kana entries (see SPEC_FULL.md §3).
func (n Node) Key() string {
	return n.Surface + "/" + n.Yomi
}

// IsBOS reports whether n is the begin-of-sentence sentinel.
func (n Node) IsBOS() bool { return n.WordID == BosID }

// IsEOS reports whether n is the end-of-sentence sentinel.
func (n Node) IsEOS() bool { return n.WordID == EosID }

// NewBOS builds the sentinel node that starts every lattice.
func NewBOS() Node {
	return Node{Start: 0, Yomi: "", Surface: "", WordID: BosID, DictRank: -1}
}

// NewEOS builds the sentinel node that ends every lattice at byte offset n.
func NewEOS(n int) Node {
	return Node{Start: n, Yomi: "", Surface: "", WordID: EosID, DictRank: -1}
}

// String renders a node for debug logging.
func (n Node) String() string {
	var id string
	switch n.WordID {
	case UnknownID:
		id = "UNK"
	case BosID:
		id = "BOS"
	case EosID:
		id = "EOS"
	default:
		id = strconv.Itoa(int(n.WordID))
	}
	return n.Surface + "(" + n.Yomi + ")#" + id
}
