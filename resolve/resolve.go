// Package resolve implements the graph resolver (component H): Viterbi
// shortest-path search over a lattice built by package graph, combining
// unigram, bigram, and per-user costs into a single additive score.
package resolve

import (
	"strings"

	"akazakana/bigram"
	"akazakana/graph"
	"akazakana/model"
	"akazakana/userdata"
)

// DefaultAlpha and DefaultBeta are the default mixing weights for the base LM and the
// user-data overlay, respectively (spec.md §4.H).
const (
	DefaultAlpha float32 = 1.0
	DefaultBeta  float32 = 1.0
)

// Resolver computes minimum-cost paths over lattices built for a shared
// bigram model and user-data overlay.
type Resolver struct {
	bg         *bigram.Bigram
	user       *userdata.Store
	alpha, beta float32
}

// New returns a Resolver scoring with the given bigram model and
// per-user overlay, mixed with the default weights.
func New(bg *bigram.Bigram, user *userdata.Store) *Resolver {
	return &Resolver{bg: bg, user: user, alpha: DefaultAlpha, beta: DefaultBeta}
}

// WithWeights returns a copy of r using custom mixing weights, for
// calibration experiments.
func (r *Resolver) WithWeights(alpha, beta float32) *Resolver {
	cp := *r
	cp.alpha, cp.beta = alpha, beta
	return &cp
}

// Result is the outcome of resolving a lattice.
type Result struct {
	Surface string
	// NoPath is true when BOS could not reach EOS; Surface then holds the
	// caller's original yomi unchanged (spec.md §4.H/§7).
	NoPath bool
	// Cost is the total path cost recorded at EOS.
	Cost float32
}

// nodeState tracks the Viterbi bookkeeping for one lattice node across the
// resolution of a single lattice.
type nodeState struct {
	node     model.Node
	reached  bool
	bestCost float32
	prev     *nodeState
}

// Resolve finds the minimum-cost BOS→EOS path through g and renders it as
// a surface string. yomi is the original input, returned unchanged (with
// NoPath set) if no path exists.
func (r *Resolver) Resolve(g *graph.Graph, yomi string) Result {
	byStart, byEnd, bos, eos := flatten(g)
	bos.reached = true
	bos.bestCost = 0

	for p := 0; p <= g.Length; p++ {
		for _, v := range byStart[p] {
			r.finalize(v, byEnd[p])
		}
	}

	if !eos.reached {
		return Result{Surface: yomi, NoPath: true}
	}

	var surfaces []string
	for n := eos.prev; n != nil && !n.node.IsBOS(); n = n.prev {
		surfaces = append(surfaces, n.node.Surface)
	}
	for i, j := 0, len(surfaces)-1; i < j; i, j = i+1, j-1 {
		surfaces[i], surfaces[j] = surfaces[j], surfaces[i]
	}
	return Result{Surface: strings.Join(surfaces, ""), Cost: eos.bestCost}
}

// finalize computes v's best incoming edge among candidates (the nodes
// ending exactly where v starts), applying the algorithm's tie-break
// rules: shorter predecessor span first, then the predecessor's rank in
// the dictionary's candidate ordering.
func (r *Resolver) finalize(v *nodeState, candidates []*nodeState) {
	nCost := r.nodeCost(v.node)
	var best *nodeState
	var bestCost float32
	for _, u := range candidates {
		if !u.reached {
			continue
		}
		cand := u.bestCost + r.edgeCost(u.node, v.node) + nCost
		if best == nil || less(cand, u, bestCost, best) {
			best, bestCost = u, cand
		}
	}
	if best == nil {
		return
	}
	v.reached = true
	v.bestCost = bestCost
	v.prev = best
}

// less reports whether (cand, u) beats (bestCost, incumbent) under the
// resolver's ordering: lower cost wins outright; a tie prefers the
// shorter predecessor span (higher Start), then the predecessor's
// earlier position in the dictionary's candidate ordering.
func less(cand float32, u *nodeState, bestCost float32, incumbent *nodeState) bool {
	if cand != bestCost {
		return cand < bestCost
	}
	if u.node.Start != incumbent.node.Start {
		return u.node.Start > incumbent.node.Start
	}
	return u.node.DictRank >= 0 && (incumbent.node.DictRank < 0 || u.node.DictRank < incumbent.node.DictRank)
}

func (r *Resolver) nodeCost(v model.Node) float32 {
	if v.IsBOS() || v.IsEOS() {
		return 0
	}
	return r.alpha*v.UnigramCost + r.beta*r.user.UnigramCost(v.Key())
}

func (r *Resolver) edgeCost(u, v model.Node) float32 {
	bgCost, _ := r.bg.Find(u.WordID, v.WordID)
	return r.alpha*bgCost + r.beta*r.user.BigramCost(u.Key(), v.Key())
}

// flatten collects every node in g into pointer-identified nodeStates,
// grouped by both start and end position, and returns the distinguished
// BOS/EOS states.
func flatten(g *graph.Graph) (byStart, byEnd map[int][]*nodeState, bos, eos *nodeState) {
	byStart = make(map[int][]*nodeState)
	byEnd = make(map[int][]*nodeState)

	for start, nodes := range g.ByStart {
		for _, n := range nodes {
			st := &nodeState{node: n}
			byStart[start] = append(byStart[start], st)
			byEnd[st.node.End()] = append(byEnd[st.node.End()], st)
			if n.IsEOS() {
				eos = st
			}
		}
	}
	for _, n := range g.ByEnd[0] {
		if n.IsBOS() {
			st := &nodeState{node: n}
			byEnd[0] = append(byEnd[0], st)
			bos = st
		}
	}
	return byStart, byEnd, bos, eos
}
