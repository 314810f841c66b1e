// Package convert implements the conversion facade (component I): it
// wires the trie-backed artifacts (unigram LM, bigram LM, dictionary),
// the segmenter, graph builder, and resolver behind a single convert/
// learn/flush surface, applying the per-user learning overlay.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"

	"akazakana/bigram"
	"akazakana/config"
	"akazakana/dict"
	"akazakana/graph"
	"akazakana/ingest"
	"akazakana/kana"
	"akazakana/logger"
	"akazakana/resolve"
	"akazakana/segment"
	"akazakana/unigram"
	"akazakana/userdata"
)

// ErrInvalidYomi is returned by Convert when its input is not a plain
// hiragana sequence. Mixed-script input is out of scope (spec.md §1's
// "no support for mixed-script input" Non-goal), so Convert refuses it
// rather than silently feeding garbage into the segmenter.
var ErrInvalidYomi = errors.New("convert: yomi must be plain hiragana")

// ConvertResult is the outcome of a single conversion.
type ConvertResult struct {
	Surface string
	// NoPath is true when no path existed through the lattice; Surface
	// then holds the original yomi unchanged (spec.md §7).
	NoPath bool
}

// Facade is the synchronous, single-threaded conversion surface described
// by spec.md §4.I/§5. A *Facade is not safe for concurrent use; callers
// that need to share one across goroutines should route calls through a
// Service instead.
type Facade struct {
	dict *dict.Dict
	uni  *unigram.Unigram
	seg  *segment.Segmenter
	res  *resolve.Resolver
	user *userdata.Store

	userDataPath string
}

// NewFacade loads every artifact named by cfg and returns a ready-to-use
// Facade. A missing or corrupt LM/dictionary artifact is an
// InitialisationFailure and aborts construction; a missing or corrupt
// user-data file is not — it degrades to an empty learning store.
func NewFacade(cfg *config.Config) (*Facade, error) {
	log := logger.Component("convert")

	u, err := unigram.Load(cfg.UnigramPath)
	if err != nil {
		return nil, fmt.Errorf("convert: loading unigram LM: %w", err)
	}
	bg, err := bigram.Load(cfg.BigramPath)
	if err != nil {
		return nil, fmt.Errorf("convert: loading bigram LM: %w", err)
	}
	d, err := dict.LoadAll(cfg.DictPaths)
	if err != nil {
		return nil, fmt.Errorf("convert: loading dictionaries: %w", err)
	}

	userPath := filepath.Join(cfg.UserDataDir, "user")
	user, err := userdata.Load(userPath)
	if err != nil {
		// UserDataCorruption is never fatal to facade construction; fall
		// back to an empty learning store (spec.md §7).
		log.Warn().Err(err).Msg("failed to load user data, starting with an empty store")
		user = userdata.New()
	}

	res := resolve.New(bg, user).WithWeights(nonZero(cfg.Alpha, resolve.DefaultAlpha), nonZero(cfg.Beta, resolve.DefaultBeta))

	log.Info().Msg("conversion facade initialised")
	return &Facade{
		dict:         d,
		uni:          u,
		seg:          segment.New(d),
		res:          res,
		user:         user,
		userDataPath: userPath,
	}, nil
}

func nonZero(v, fallback float32) float32 {
	if v == 0 {
		return fallback
	}
	return v
}

// Convert performs the segment → build-lattice → resolve pipeline for
// yomi and returns the best surface form found. It returns ErrInvalidYomi
// without touching the lattice if yomi is not plain hiragana.
func (f *Facade) Convert(yomi string) (ConvertResult, error) {
	if yomi == "" {
		return ConvertResult{Surface: ""}, nil
	}
	if !kana.IsValidYomi(yomi) {
		return ConvertResult{}, ErrInvalidYomi
	}

	reqID := ingest.NewRequestID()
	g := graph.Build(yomi, f.seg, f.dict, f.uni)
	result := f.res.Resolve(g, yomi)
	if result.NoPath {
		logger.Component("convert").Warn().
			Str("request_id", reqID).
			Str("yomi", yomi).
			Msg("no path found through lattice")
	}
	return ConvertResult{Surface: result.Surface, NoPath: result.NoPath}, nil
}

// Learn records that the user committed cur immediately after prev (both
// in "surface/yomi" form), updating both the unigram and bigram learning
// tables.
func (f *Facade) Learn(prev, cur string) {
	f.user.RecordUnigram(cur)
	f.user.RecordBigram(prev, cur)
}

// FlushUserData persists the learning store to disk. A failure here is a
// PersistenceFailure: logged, non-fatal, and safe to retry on the next
// call.
func (f *Facade) FlushUserData() error {
	if err := f.user.Save(f.userDataPath); err != nil {
		logger.Component("convert").Warn().Err(err).Msg("failed to persist user data")
		return err
	}
	return nil
}
