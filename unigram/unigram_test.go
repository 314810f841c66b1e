package unigram

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFindAndCost(t *testing.T) {
	b := NewBuilder()
	b.AddCount("私", "わたし", 100)
	b.AddCount("渡し", "わたし", 30)
	b.AddCount("の", "の", 500)

	u, err := b.Build()
	require.NoError(t, err)

	id, cost, ok := u.Find("私/わたし")
	require.True(t, ok)
	assert.Greater(t, cost, float32(0))
	assert.Equal(t, cost, u.Cost(id))

	_, _, ok = u.Find("存在しない/ないよう")
	assert.False(t, ok)
}

func TestFrequencyThresholdDrops(t *testing.T) {
	b := NewBuilder()
	b.AddCount("稀", "まれ", FrequencyThreshold)
	b.AddCount("良く", "よく", FrequencyThreshold+1)

	u, err := b.Build()
	require.NoError(t, err)

	_, _, ok := u.Find("稀/まれ")
	assert.False(t, ok, "entries at or below the threshold must be dropped")

	_, _, ok = u.Find("良く/よく")
	assert.True(t, ok)
}

func TestHomographHackFillsMissingReading(t *testing.T) {
	b := NewBuilder()
	b.AddCount("日本", "にほん", 1000)

	u, err := b.Build()
	require.NoError(t, err)

	_, _, ok := u.Find("日本/にっぽん")
	assert.True(t, ok, "homograph hack should have populated the second reading")
}

func TestScoreHackRaisesCommonReading(t *testing.T) {
	b := NewBuilder()
	b.AddCount("今日", "きょう", 50)
	b.AddCount("卿", "きょう", 200)

	u, err := b.Build()
	require.NoError(t, err)

	_, commonCost, ok := u.Find("今日/きょう")
	require.True(t, ok)
	_, rareCost, ok := u.Find("卿/きょう")
	require.True(t, ok)
	assert.LessOrEqual(t, commonCost, rareCost, "score hack must not leave 今日 costlier than 卿")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.AddCount("私", "わたし", 100)
	b.AddCount("の", "の", 500)
	u, err := b.Build()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "unigram.bin")
	require.NoError(t, u.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	wantID, wantCost, ok := u.Find("私/わたし")
	require.True(t, ok)
	gotID, gotCost, ok := loaded.Find("私/わたし")
	require.True(t, ok)
	assert.Equal(t, wantID, gotID)
	assert.Equal(t, wantCost, gotCost)
	assert.Equal(t, u.Len(), loaded.Len())
}
