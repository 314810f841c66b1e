package resolve

import (
	"testing"

	"akazakana/bigram"
	"akazakana/dict"
	"akazakana/graph"
	"akazakana/model"
	"akazakana/segment"
	"akazakana/unigram"
	"akazakana/userdata"
)

type fixture struct {
	d  *dict.Dict
	u  *unigram.Unigram
	bg *bigram.Bigram
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dict.NewBuilder()
	db.Add("わたし", []string{"私", "渡し"})
	db.Add("の", []string{"の"})
	db.Add("なまえ", []string{"名前"})
	db.Add("は", []string{"は"})
	d := db.Build()

	ub := unigram.NewBuilder()
	ub.AddCount("私", "わたし", 1000)
	ub.AddCount("渡し", "わたし", 20)
	ub.AddCount("の", "の", 5000)
	ub.AddCount("名前", "なまえ", 800)
	ub.AddCount("は", "は", 6000)
	u, err := ub.Build()
	if err != nil {
		t.Fatalf("unigram build: %v", err)
	}

	bb := bigram.NewBuilder()
	id := func(surface, yomi string) model.WordID {
		wid, _, ok := u.Find(surface + "/" + yomi)
		if !ok {
			t.Fatalf("expected %s/%s in vocabulary", surface, yomi)
		}
		return wid
	}
	bb.Add(id("私", "わたし"), id("の", "の"), 0.5)
	bb.Add(id("の", "の"), id("名前", "なまえ"), 0.5)
	bb.Add(id("名前", "なまえ"), id("は", "は"), 0.5)
	bg := bb.Build()

	return &fixture{d: d, u: u, bg: bg}
}

func (f *fixture) resolve(t *testing.T, yomi string) Result {
	t.Helper()
	seg := segment.New(f.d)
	g := graph.Build(yomi, seg, f.d, f.u)
	r := New(f.bg, userdata.New())
	return r.Resolve(g, yomi)
}

func TestResolvePrefersStrongBigramPath(t *testing.T) {
	f := newFixture(t)
	got := f.resolve(t, "わたしのなまえは")
	want := "私の名前は"
	if got.Surface != want {
		t.Fatalf("got %q, want %q", got.Surface, want)
	}
	if got.NoPath {
		t.Fatalf("expected a path to be found")
	}
}

func TestEmptyInput(t *testing.T) {
	f := newFixture(t)
	got := f.resolve(t, "")
	if got.Surface != "" || got.NoPath {
		t.Fatalf("got %+v, want empty non-NoPath result", got)
	}
}

func TestSingleCharacterFallback(t *testing.T) {
	f := newFixture(t)
	got := f.resolve(t, "あ")
	if got.Surface != "あ" {
		t.Fatalf("got %q, want the bare kana fallback", got.Surface)
	}
}

func TestLearnedBigramShiftsPreference(t *testing.T) {
	// 渡し starts out far more frequent than 私, so it wins by default;
	// after heavily learning the 私/わたし→は/は transition, it should flip.
	db := dict.NewBuilder()
	db.Add("わたし", []string{"渡し", "私"})
	db.Add("は", []string{"は"})
	d := db.Build()

	ub := unigram.NewBuilder()
	ub.AddCount("渡し", "わたし", 2000)
	ub.AddCount("私", "わたし", 500)
	ub.AddCount("は", "は", 6000)
	u, err := ub.Build()
	if err != nil {
		t.Fatalf("unigram build: %v", err)
	}
	bg := bigram.NewBuilder().Build()

	seg := segment.New(d)
	without := New(bg, userdata.New())
	baseline := without.Resolve(graph.Build("わたしは", seg, d, u), "わたしは")
	if baseline.Surface != "渡しは" {
		t.Fatalf("got %q, want 渡しは before learning", baseline.Surface)
	}

	user := userdata.New()
	for i := 0; i < 200; i++ {
		user.RecordBigram("私/わたし", "は/は")
	}
	trained := New(bg, user)
	got := trained.Resolve(graph.Build("わたしは", seg, d, u), "わたしは")
	if got.Surface != "私は" {
		t.Fatalf("got %q, want 私は after learning", got.Surface)
	}
}
