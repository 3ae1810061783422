package store_test

import (
	"path/filepath"
	"testing"

	"github.com/msarica/untangle-game/geom"
	"github.com/msarica/untangle-game/store"
	"github.com/stretchr/testify/require"
)

func openTempSQLite(t *testing.T) (*store.SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levels.db")
	st, err := store.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st, path
}

func TestSQLiteStore_MissThenHit(t *testing.T) {
	st, _ := openTempSQLite(t)

	_, ok, err := st.Load(1, snapExtent)
	require.NoError(t, err)
	require.False(t, ok)

	lv := generatedLevel(t, 1)
	require.NoError(t, st.Save(lv))

	got, ok, err := st.Load(1, snapExtent)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, lv, got)

	// Extent participates in the key.
	_, ok, err = st.Load(1, geom.Extent{Width: 1024, Height: 768})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	st, path := openTempSQLite(t)
	lv := generatedLevel(t, 4)
	require.NoError(t, st.Save(lv))
	require.NoError(t, st.Close())

	reopened, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, ok, err := reopened.Load(4, snapExtent)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, lv, got)
}

func TestSQLiteStore_Upsert(t *testing.T) {
	st, _ := openTempSQLite(t)
	first := generatedLevel(t, 2)
	require.NoError(t, st.Save(first))

	second := first.Clone()
	second.Circles[0].Pos = geom.Point{X: 222, Y: 111}
	require.NoError(t, st.Save(second))

	got, ok, err := st.Load(2, snapExtent)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, geom.Point{X: 222, Y: 111}, got.Circles[0].Pos)
}

func TestSQLiteStore_SaveNil(t *testing.T) {
	st, _ := openTempSQLite(t)
	require.ErrorIs(t, st.Save(nil), store.ErrNilLevel)
}
