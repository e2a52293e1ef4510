package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/npcnames/internal/agents"
	"github.com/talgya/npcnames/internal/names"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "names.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func record(id uint64, first string) NameRecord {
	return NameRecord{
		AgentID:    agents.AgentID(id),
		Definition: "nord",
		Sex:        names.SexFemale,
		Components: names.Components{
			FirstName:     first,
			LastPrefix:    "Mac",
			LastName:      "Voss",
			LastSuffix:    "-son",
			Conjunction:   " ",
			ShortSegments: names.SegmentFirst | names.SegmentLast,
		},
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC).Unix(),
	}
}

func TestSaveAndLoadName(t *testing.T) {
	db := openTestDB(t)
	want := record(7, "Astrid")
	require.NoError(t, db.SaveName(want))

	got, err := db.LoadName(7)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	full, ok := got.Assemble()
	require.True(t, ok)
	assert.Equal(t, "Astrid MacVoss-son", full)
}

func TestSaveNameReplaces(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveName(record(1, "Astrid")))
	require.NoError(t, db.SaveName(record(1, "Freya")))

	got, err := db.LoadName(1)
	require.NoError(t, err)
	assert.Equal(t, "Freya", got.FirstName)

	n, err := db.CountNames()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadNameNotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := db.LoadName(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveNamesDeleteAndClear(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveNames(nil))
	require.NoError(t, db.SaveNames([]NameRecord{record(3, "C"), record(1, "A"), record(2, "B")}))

	all, err := db.LoadNames()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].FirstName)
	assert.Equal(t, "C", all[2].FirstName)

	require.NoError(t, db.DeleteName(2))
	_, err = db.LoadName(2)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := db.ClearNames()
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	n, err := db.CountNames()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMeta(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveMeta("seed", "42"))
	require.NoError(t, db.SaveMeta("seed", "43"))
	v, err := db.GetMeta("seed")
	require.NoError(t, err)
	assert.Equal(t, "43", v)

	_, err = db.GetMeta("missing")
	assert.Error(t, err)
}
