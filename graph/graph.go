// Package graph builds the conversion lattice (component G): every
// candidate (start, yomi, surface) node reachable by the segmenter,
// indexed by both its start and end byte offset, with BOS/EOS sentinels
// bracketing the whole input.
package graph

import (
	"akazakana/dict"
	"akazakana/model"
	"akazakana/segment"
	"akazakana/unigram"
)

// Graph is the lattice built for a single conversion call. It is
// discarded once the resolver produces a result (spec.md §3's per-node
// lifecycle).
type Graph struct {
	ByStart map[int][]model.Node
	ByEnd   map[int][]model.Node
	Length  int // byte length of the input yomi
}

// Build constructs the lattice for yomi using seg to find valid spans, d
// to look up kanji candidates, and u to score each candidate node.
func Build(yomi string, seg *segment.Segmenter, d *dict.Dict, u *unigram.Unigram) *Graph {
	g := &Graph{
		ByStart: make(map[int][]model.Node),
		ByEnd:   make(map[int][]model.Node),
		Length:  len(yomi),
	}

	bos := model.NewBOS()
	eos := model.NewEOS(len(yomi))
	g.ByEnd[bos.End()] = append(g.ByEnd[bos.End()], bos)
	g.ByStart[eos.Start] = append(g.ByStart[eos.Start], eos)

	segs := seg.Segments(yomi)
	for start, ends := range segs {
		for _, end := range ends {
			span := yomi[start:end]
			for _, node := range candidateNodes(start, span, d, u) {
				g.ByStart[node.Start] = append(g.ByStart[node.Start], node)
				g.ByEnd[node.End()] = append(g.ByEnd[node.End()], node)
			}
		}
	}
	return g
}

// candidateNodes builds every node spanning [start, start+len(span)): one
// per dictionary candidate surface, plus the all-kana identity candidate
// if it isn't already among them.
func candidateNodes(start int, span string, d *dict.Dict, u *unigram.Unigram) []model.Node {
	candidates := d.Find(span)
	hasIdentity := false
	nodes := make([]model.Node, 0, len(candidates)+1)
	for rank, surface := range candidates {
		if surface == span {
			hasIdentity = true
		}
		nodes = append(nodes, newNode(start, span, surface, rank, u))
	}
	if !hasIdentity {
		nodes = append(nodes, newNode(start, span, span, -1, u))
	}
	return nodes
}

func newNode(start int, yomi, surface string, dictRank int, u *unigram.Unigram) model.Node {
	n := model.Node{
		Start:    start,
		Yomi:     yomi,
		Surface:  surface,
		DictRank: dictRank,
	}
	id, cost, ok := u.Find(n.Key())
	if !ok {
		id, cost = model.UnknownID, unigram.DefaultCost
	}
	n.WordID = id
	n.UnigramCost = cost
	return n
}
