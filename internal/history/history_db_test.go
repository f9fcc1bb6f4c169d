package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiowebux/notepad/internal/types"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "history", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	m.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return m
}

func recentPaths(t *testing.T, m *Manager) []string {
	t.Helper()
	recent, err := m.Recent(0)
	require.NoError(t, err)
	paths := make([]string, 0, len(recent))
	for _, r := range recent {
		paths = append(paths, r.Path)
	}
	return paths
}

func TestRecord_AndLoad(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")

	require.NoError(t, m.Record(types.EventOpen, a, "", 10))
	require.NoError(t, m.Record(types.EventExport, a, filepath.Join(dir, "a.pdf"), 900))

	entries, err := m.Load(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, types.EventExport, entries[0].Kind)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), entries[0].Target)
	assert.Equal(t, 900, entries[0].Size)
	assert.Equal(t, types.EventOpen, entries[1].Kind)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))

	count, err := m.GetCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecent_MostRecentFirstAndDeduplicated(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	c := filepath.Join(dir, "c.txt")

	require.NoError(t, m.Record(types.EventOpen, a, "", 0))
	require.NoError(t, m.Record(types.EventSaveAs, b, "", 0))
	require.NoError(t, m.Record(types.EventOpen, c, "", 0))
	require.NoError(t, m.Record(types.EventSave, a, "", 0))

	assert.Equal(t, []string{a, c, b}, recentPaths(t, m))
}

func TestRecent_IgnoresExports(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	require.NoError(t, m.Record(types.EventOpen, a, "", 0))
	require.NoError(t, m.Record(types.EventOpen, b, "", 0))
	require.NoError(t, m.Record(types.EventExport, a, filepath.Join(dir, "a.pdf"), 0))

	assert.Equal(t, []string{b, a}, recentPaths(t, m))
}

func TestRecent_Capped(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()

	for i := 0; i < MaxRecentFiles+5; i++ {
		require.NoError(t, m.Record(types.EventOpen, filepath.Join(dir, fmt.Sprintf("%02d.txt", i)), "", 0))
	}

	paths := recentPaths(t, m)
	require.Len(t, paths, MaxRecentFiles)
	assert.Equal(t, filepath.Join(dir, fmt.Sprintf("%02d.txt", MaxRecentFiles+4)), paths[0])
}

func TestHide_AndReuse(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	require.NoError(t, m.Record(types.EventOpen, a, "", 0))
	require.NoError(t, m.Record(types.EventOpen, b, "", 0))
	require.NoError(t, m.Hide(a))

	assert.Equal(t, []string{b}, recentPaths(t, m))

	entries, err := m.LoadForFile(a)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, m.Record(types.EventSave, a, "", 0))
	assert.Equal(t, []string{a, b}, recentPaths(t, m))
}

func TestClear(t *testing.T) {
	m := newTestManager(t)
	a := filepath.Join(t.TempDir(), "a.txt")

	require.NoError(t, m.Record(types.EventOpen, a, "", 0))
	require.NoError(t, m.Clear())

	count, err := m.GetCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, recentPaths(t, m))
}

func TestRecord_StoresAbsolutePaths(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, m.Record(types.EventOpen, "rel.txt", "", 0))

	want, err := filepath.Abs("rel.txt")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(want))
	assert.Equal(t, []string{want}, recentPaths(t, m))
}
