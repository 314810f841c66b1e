// Package bigram implements the bigram language model (component C): a
// cost lookup keyed by consecutive word-id pairs, stored as a double-array
// trie whose keys pack both ids and the cost itself, so no separate value
// stream is needed. The key layout is ported directly from the original
// implementation's SystemBigramLMBuilder (akaza-core/libakaza/src/lm/system_bigram.rs).
package bigram

import (
	"encoding/binary"
	"math"

	"akazakana/logger"
	"akazakana/model"
	"akazakana/trie"
)

// DefaultCost is returned by Find for any word-id pair absent from the
// model.
const DefaultCost float32 = 20.0

const (
	idBytes  = 4
	keyBytes = idBytes*2 + 4 // two little-endian ids + a little-endian float32 cost
)

// Bigram is an immutable, loaded-once bigram LM.
type Bigram struct {
	t *trie.Trie
}

// Find returns the cost of the (word1, word2) transition, or
// (DefaultCost, false) if the pair was never observed.
func (bg *Bigram) Find(word1, word2 model.WordID) (float32, bool) {
	prefix := encodeIDPair(word1, word2)
	s, ok := bg.t.Descend(prefix)
	if !ok {
		return DefaultCost, false
	}
	suffix, ok := bg.t.FindSuffix(s, 4)
	if !ok {
		return DefaultCost, false
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(suffix)), true
}

func encodeIDPair(word1, word2 model.WordID) []byte {
	buf := make([]byte, idBytes*2)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(word1))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(word2))
	return buf
}

// Builder accumulates (word1, word2, cost) triples before a single Build
// call packs them into a trie. Costs are held in a plain map until Build,
// not fed straight to trie.Builder: the trie keys on the full 12-byte
// id+cost string, so two different costs for the same id pair would
// otherwise become two distinct accepting leaves sharing an 8-byte
// prefix rather than one overwritten entry.
type Builder struct {
	pending map[[idBytes * 2]byte]float32
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{pending: make(map[[idBytes * 2]byte]float32)}
}

// Add records a transition cost. Calling Add twice for the same pair keeps
// whichever cost was added last.
func (b *Builder) Add(word1, word2 model.WordID, cost float32) {
	var key [idBytes * 2]byte
	copy(key[:], encodeIDPair(word1, word2))
	b.pending[key] = cost
}

// Len returns the number of distinct (word1, word2) pairs added so far.
func (b *Builder) Len() int { return len(b.pending) }

// Build packs the accumulated transitions into an immutable Bigram.
func (b *Builder) Build() *Bigram {
	tb := trie.NewBuilder()
	for idPair, cost := range b.pending {
		key := make([]byte, 0, keyBytes)
		key = append(key, idPair[:]...)
		costBytes := make([]byte, 4)
		binary.LittleEndian.PutUint32(costBytes, math.Float32bits(cost))
		key = append(key, costBytes...)
		tb.Add(key)
	}
	logger.Component("bigram").Info().Int("pairs", tb.Len()).Msg("bigram model built")
	return &Bigram{t: tb.Build()}
}

// Save persists the model using the trie's own binary format; the bigram
// LM has no data beyond the trie itself, since costs are packed into the
// keys.
func (bg *Bigram) Save(path string) error {
	return bg.t.Save(path)
}

// Load reads a model previously written by Save.
func Load(path string) (*Bigram, error) {
	t, err := trie.Load(path)
	if err != nil {
		return nil, err
	}
	return &Bigram{t: t}, nil
}
