package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_IsRealWord(t *testing.T) {
	// Given: an English set with a few words
	s := NewSet()
	s.Add("en", "bat", " Table ", "", "ALPHA")

	// Then: lookups are case- and padding-insensitive within the locale
	assert.True(t, s.IsRealWord("bat", "en"))
	assert.True(t, s.IsRealWord("BAT ", "en-US"))
	assert.True(t, s.IsRealWord("table", "en"))
	assert.True(t, s.IsRealWord("alpha", "en"))
	assert.False(t, s.IsRealWord("phal", "en"))
	assert.False(t, s.IsRealWord("", "en"))

	// Then: other locales do not see the words
	assert.False(t, s.IsRealWord("bat", "fr"))
	assert.Equal(t, 3, s.Len("en"))
	assert.Equal(t, 0, s.Len("fr"))

	// Then: empty or malformed locales do not fall through to English
	assert.False(t, s.IsRealWord("bat", ""))
	assert.False(t, s.IsRealWord("bat", "!!"))
	assert.Equal(t, 0, s.Len(""))
}

func TestLoadSet(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		s, err := LoadSet("", "en")
		require.NoError(t, err)
		assert.True(t, s.IsRealWord("bat", "en"))
		assert.False(t, s.IsRealWord("phal", "en"))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("# list\nChat\nchien\n"), 0o644))

		s, err := LoadSet(path, "fr")

		require.NoError(t, err)
		assert.True(t, s.IsRealWord("chat", "fr"))
		assert.Equal(t, 2, s.Len("fr"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSet(filepath.Join(t.TempDir(), "missing.txt"), "en")
		require.Error(t, err)
	})
}

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	d, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "dict.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestSQLite_ImportAndLookup(t *testing.T) {
	ctx := context.Background()
	d := newTestSQLite(t)

	// Given: an import with a duplicate and a blank
	n, err := d.Import(ctx, "en", []string{"bat", "BAT", "table", "  "})

	// Then: two distinct words are stored
	require.NoError(t, err)
	require.Equal(t, 2, n)

	count, err := d.Count(ctx, "en-GB")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	assert.True(t, d.IsRealWord("Bat", "en"))
	assert.True(t, d.IsRealWord("table", "en-US"))
	assert.False(t, d.IsRealWord("phal", "en"))
	assert.False(t, d.IsRealWord("bat", "fr"))
	assert.False(t, d.IsRealWord(" ", "en"))

	// When: the same words are imported again
	n, err = d.Import(ctx, "en", []string{"bat", "alpha"})

	// Then: only the new word counts
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSQLite_Seed(t *testing.T) {
	ctx := context.Background()
	d := newTestSQLite(t)

	require.NoError(t, d.Seed(ctx, "en", []string{"bat"}))
	// A second seed is ignored because the locale already has rows.
	require.NoError(t, d.Seed(ctx, "en", []string{"alpha"}))

	assert.True(t, d.IsRealWord("bat", "en"))
	assert.False(t, d.IsRealWord("alpha", "en"))
}

func TestSQLite_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dict.db")

	d, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	_, err = d.Import(ctx, "en", []string{"bat"})
	require.NoError(t, err)
	require.NoError(t, d.Close())

	// When: the database is reopened
	d, err = OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	defer d.Close()

	// Then: data survives and migrations are not re-applied
	assert.True(t, d.IsRealWord("bat", "en"))
	var applied int
	require.NoError(t, d.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestSQLite_InMemory(t *testing.T) {
	d, err := OpenSQLite(":memory:", zerolog.Nop())
	require.NoError(t, err)
	defer d.Close()

	_, err = d.Import(context.Background(), "en", []string{"bat"})
	require.NoError(t, err)
	assert.True(t, d.IsRealWord("bat", "en"))
}
