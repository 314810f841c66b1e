// Package dict implements the kana→kanji dictionary (component D): a yomi
// → ordered candidate-surfaces lookup backed by the trie substrate, with
// ordering preserved exactly as supplied at build time (the resolver uses
// it as a tie-break).
package dict

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"akazakana/logger"
	"akazakana/trie"
)

const candidateSep = "/"

const (
	magic         = "AKZD"
	formatVersion = uint32(1)
)

// Dict is an immutable, loaded-once kana→kanji dictionary.
type Dict struct {
	t          *trie.Trie
	candidates map[string][]string
}

// Find returns the ordered candidate surfaces for yomi, or nil if yomi is
// unknown to the dictionary. Membership is authoritative via the trie
// substrate; the candidate list is the parallel value record it indexes.
func (d *Dict) Find(yomi string) []string {
	if !d.t.ExactMatch([]byte(yomi)) {
		return nil
	}
	return d.candidates[yomi]
}

// Yomis returns every distinct yomi key the dictionary knows about. The
// segmenter uses this to seed its kana-trie (SPEC_FULL.md §4.F).
func (d *Dict) Yomis() []string {
	out := make([]string, 0, len(d.candidates))
	for y := range d.candidates {
		out = append(out, y)
	}
	return out
}

// Builder accumulates (yomi, candidates) entries before a single Build
// call packs them into a Dict.
type Builder struct {
	candidates map[string][]string
	order      []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{candidates: make(map[string][]string)}
}

// Add records the ordered candidate surfaces for yomi. A repeated yomi
// overwrites the previous candidate list.
func (b *Builder) Add(yomi string, surfaces []string) {
	if _, seen := b.candidates[yomi]; !seen {
		b.order = append(b.order, yomi)
	}
	b.candidates[yomi] = surfaces
}

// Build packs the accumulated entries into an immutable Dict.
func (b *Builder) Build() *Dict {
	tb := trie.NewBuilder()
	out := make(map[string][]string, len(b.order))
	for _, yomi := range b.order {
		tb.Add([]byte(yomi))
		out[yomi] = b.candidates[yomi]
	}
	logger.Component("dict").Info().Int("entries", len(out)).Msg("dictionary built")
	return &Dict{t: tb.Build(), candidates: out}
}

// Save persists the dictionary as two files: the yomi trie (for presence
// checks) at path+".sub", and at path a header followed by a record list
// of (yomiLen, yomi, candidateList) where candidates are joined with "/",
// per SPEC_FULL.md's file format.
func (d *Dict) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dict: create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	if _, err := w.WriteString(magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, formatVersion); err != nil {
		return err
	}
	if err := d.t.Save(path + ".sub"); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(d.candidates))); err != nil {
		return err
	}
	for yomi, surfaces := range d.candidates {
		joined := strings.Join(surfaces, candidateSep)
		if err := binary.Write(w, binary.LittleEndian, uint16(len(yomi))); err != nil {
			return err
		}
		if _, err := w.WriteString(yomi); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(joined))); err != nil {
			return err
		}
		if _, err := w.WriteString(joined); err != nil {
			return err
		}
	}
	return w.Flush()
}

// LoadAll loads and merges the dictionaries at paths, in order, into a
// single Dict. A yomi present in more than one file accumulates the
// candidate surfaces of every file that defines it, later files'
// candidates appended after earlier ones with exact duplicates dropped —
// the same multi-dictionary shape as the original implementation's
// `dicts: Vec<DictConfig>` (original_source/akaza-core/libakaza/src/config.rs),
// where a user dictionary and one or more system dictionaries are merged
// at engine construction time rather than collapsed to a single file.
// paths must contain at least one entry.
func LoadAll(paths []string) (*Dict, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("dict: no dictionary paths configured")
	}
	b := NewBuilder()
	for _, path := range paths {
		d, err := Load(path)
		if err != nil {
			return nil, err
		}
		for _, yomi := range d.Yomis() {
			b.merge(yomi, d.candidates[yomi])
		}
	}
	logger.Component("dict").Info().Int("files", len(paths)).Msg("merged dictionaries")
	return b.Build(), nil
}

// merge appends surfaces to yomi's candidate list, preserving existing
// order and dropping surfaces already present.
func (b *Builder) merge(yomi string, surfaces []string) {
	existing := b.candidates[yomi]
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s] = true
	}
	merged := existing
	for _, s := range surfaces {
		if seen[s] {
			continue
		}
		seen[s] = true
		merged = append(merged, s)
	}
	b.Add(yomi, merged)
}

// Load reads a dictionary previously written by Save.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: open %s: %w", path, err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	hdr := make([]byte, len(magic))
	if _, err := readFull(r, hdr); err != nil || string(hdr) != magic {
		return nil, fmt.Errorf("dict: bad header in %s", path)
	}
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil || version != formatVersion {
		return nil, fmt.Errorf("dict: unsupported version in %s", path)
	}
	t, err := trie.Load(path + ".sub")
	if err != nil {
		return nil, fmt.Errorf("dict: loading trie substrate: %w", err)
	}
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("dict: truncated record count in %s", path)
	}
	out := make(map[string][]string, n)
	for i := uint32(0); i < n; i++ {
		yomi, err := readString16(r)
		if err != nil {
			return nil, fmt.Errorf("dict: truncated yomi %d in %s", i, path)
		}
		joined, err := readString16(r)
		if err != nil {
			return nil, fmt.Errorf("dict: truncated candidates %d in %s", i, path)
		}
		out[yomi] = strings.Split(joined, candidateSep)
	}
	return &Dict{t: t, candidates: out}, nil
}

func readString16(r *bufio.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := readFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
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
