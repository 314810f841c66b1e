// Package unigram implements the unigram language model (component B):
// a surface/yomi → (word id, cost) map backed by the trie substrate for
// presence checks, with costs and the id→cost reverse array stored
// alongside it. Build-time behaviour (frequency threshold, homograph and
// score heuristics) is grounded on the original implementation's
// akaza-data/src/subcmd/make_stats_system_unigram_lm.rs.
package unigram

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"akazakana/logger"
	"akazakana/model"
	"akazakana/trie"
)

// DefaultCost is the calibration fallback cost (natural-log units) applied
// to any surface/yomi pair absent from the model.
const DefaultCost float32 = 20.0

// FrequencyThreshold is the minimum corpus occurrence count an entry must
// clear to be included in the built model (ported from the original's
// `threshold = 16_u32`).
const FrequencyThreshold = 16

// ErrVocabularyOverflow is returned by Build when more than model.MaxWordID+1
// entries would need an id; word ids must fit in 24 bits (spec.md §3/§9).
var ErrVocabularyOverflow = fmt.Errorf("unigram: vocabulary exceeds %d entries", model.MaxWordID+1)

// Unigram is an immutable, loaded-once unigram LM.
type Unigram struct {
	t      *trie.Trie
	byWord map[string]entry
	costs  []float32 // indexed by word id
}

type entry struct {
	id   model.WordID
	cost float32
}

// Find performs an exact lookup of "surface/yomi". ok is false for an
// out-of-vocabulary pair.
func (u *Unigram) Find(word string) (id model.WordID, cost float32, ok bool) {
	if !u.t.ExactMatch([]byte(word)) {
		return model.UnknownID, DefaultCost, false
	}
	e, found := u.byWord[word]
	if !found {
		return model.UnknownID, DefaultCost, false
	}
	return e.id, e.cost, true
}

// Cost returns the cost associated with id, or DefaultCost if id is
// unknown/out of range.
func (u *Unigram) Cost(id model.WordID) float32 {
	if int(id) < 0 || int(id) >= len(u.costs) {
		return DefaultCost
	}
	return u.costs[id]
}

// Len returns the number of distinct vocabulary entries.
func (u *Unigram) Len() int { return len(u.costs) }

// Builder accumulates raw corpus frequency counts before a single Build
// call computes costs and assigns dense word ids.
type Builder struct {
	counts map[string]uint32
	order  []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{counts: make(map[string]uint32)}
}

// AddCount records (or accumulates onto) a raw corpus occurrence count for
// the canonical "surface/yomi" key. All-kana entries must pass
// surface == yomi, per the canonical-form decision in SPEC_FULL.md §3.
func (b *Builder) AddCount(surface, yomi string, count uint32) {
	key := surface + "/" + yomi
	if _, seen := b.counts[key]; !seen {
		b.order = append(b.order, key)
	}
	b.counts[key] += count
}

// homographPairs copies a count from src to dst when dst is missing,
// so that both readings of a homograph surface are equally likely
// candidates. Ported from make_stats_system_unigram_lm.rs's
// homograph_hack (the 日本/にほん ↔ 日本/にっぽん case).
var homographPairs = [][2]string{
	{"日本/にほん", "日本/にっぽん"},
}

// scoreFloors raises a's count to be no less than b's count + 1, so that
// the Wikipedia-derived corpus's occasional skew doesn't let an obscure
// reading of a common word outrank the common one. Ported from
// make_stats_system_unigram_lm.rs's score_hack.
var scoreFloors = [][2]string{
	{"今日/きょう", "卿/きょう"},
	{"大事/だいじ", "大字/だいじ"},
}

func (b *Builder) applyHomographHack() {
	for _, pair := range homographPairs {
		b.copyIfMissing(pair[0], pair[1])
		b.copyIfMissing(pair[1], pair[0])
	}
}

func (b *Builder) copyIfMissing(src, dst string) {
	if _, ok := b.counts[dst]; ok {
		return
	}
	if c, ok := b.counts[src]; ok {
		b.counts[dst] = c
		b.order = append(b.order, dst)
	}
}

func (b *Builder) applyScoreHack() {
	for _, pair := range scoreFloors {
		a, okA := b.counts[pair[0]]
		bb, okB := b.counts[pair[1]]
		if !okA || !okB {
			continue
		}
		if floor := bb + 1; a < floor {
			b.counts[pair[0]] = floor
		}
	}
}

// Build applies the frequency threshold and build-time heuristics, then
// assigns dense word ids in first-insertion order and computes
// -log(count/total) costs.
func (b *Builder) Build() (*Unigram, error) {
	log := logger.Component("unigram")
	b.applyHomographHack()
	b.applyScoreHack()

	var total uint64
	kept := make([]string, 0, len(b.order))
	for _, key := range b.order {
		if b.counts[key] > FrequencyThreshold {
			kept = append(kept, key)
			total += uint64(b.counts[key])
		}
	}
	if len(kept) > int(model.MaxWordID)+1 {
		log.Error().Int("vocab_size", len(kept)).Msg("vocabulary overflow")
		return nil, ErrVocabularyOverflow
	}

	tb := trie.NewBuilder()
	byWord := make(map[string]entry, len(kept))
	costs := make([]float32, len(kept))
	for i, key := range kept {
		tb.Add([]byte(key))
		p := float64(b.counts[key]) / float64(total)
		cost := float32(-math.Log(p))
		byWord[key] = entry{id: model.WordID(i), cost: cost}
		costs[i] = cost
	}
	log.Info().Int("vocab_size", len(kept)).Msg("unigram model built")

	return &Unigram{t: tb.Build(), byWord: byWord, costs: costs}, nil
}

const (
	magic         = "AKZU"
	formatVersion = uint32(1)
)

// Save persists the model as two files: the underlying trie (presence
// substrate) at path+".sub", and at path a header followed by a record
// list of (keyLen, key, cost) in id order — the id→(word,cost) reverse
// table the spec calls for reconstructing at load.
func (u *Unigram) Save(path string) error {
	words := make([]string, len(u.costs))
	for w, e := range u.byWord {
		words[e.id] = w
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unigram: create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	if _, err := w.WriteString(magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, formatVersion); err != nil {
		return err
	}
	triePath := path + ".sub"
	if err := u.t.Save(triePath); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(words))); err != nil {
		return err
	}
	for i, word := range words {
		if err := binary.Write(w, binary.LittleEndian, uint16(len(word))); err != nil {
			return err
		}
		if _, err := w.WriteString(word); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, u.costs[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Load reads a model written by Save. A missing or malformed file is an
// InitialisationFailure per spec.md §7.
func Load(path string) (*Unigram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unigram: open %s: %w", path, err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	hdr := make([]byte, len(magic))
	if _, err := readFull(r, hdr); err != nil || string(hdr) != magic {
		return nil, fmt.Errorf("unigram: bad header in %s", path)
	}
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil || version != formatVersion {
		return nil, fmt.Errorf("unigram: unsupported version in %s", path)
	}
	t, err := trie.Load(path + ".sub")
	if err != nil {
		return nil, fmt.Errorf("unigram: loading trie substrate: %w", err)
	}
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("unigram: truncated record count in %s", path)
	}
	byWord := make(map[string]entry, n)
	costs := make([]float32, n)
	for i := uint32(0); i < n; i++ {
		var klen uint16
		if err := binary.Read(r, binary.LittleEndian, &klen); err != nil {
			return nil, fmt.Errorf("unigram: truncated record %d in %s", i, path)
		}
		kb := make([]byte, klen)
		if _, err := readFull(r, kb); err != nil {
			return nil, fmt.Errorf("unigram: truncated key %d in %s", i, path)
		}
		var cost float32
		if err := binary.Read(r, binary.LittleEndian, &cost); err != nil {
			return nil, fmt.Errorf("unigram: truncated cost %d in %s", i, path)
		}
		byWord[string(kb)] = entry{id: model.WordID(i), cost: cost}
		costs[i] = cost
	}
	return &Unigram{t: t, byWord: byWord, costs: costs}, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
