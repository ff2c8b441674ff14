package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	// Given: a list with comments, blanks, padding and mixed case
	in := "# header\n\n  Alpha \nBETA\n\t\n#skip\ngamma"

	// When: the list is parsed
	got, err := ReadLines(strings.NewReader(in))

	// Then: only normalized words remain, in order
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}

func TestEmbeddedLists(t *testing.T) {
	start, err := StartList()
	require.NoError(t, err)
	require.NotEmpty(t, start)
	require.Contains(t, start, "silkworm")

	dict, err := DictionaryList()
	require.NoError(t, err)
	require.Contains(t, dict, "bat")

	// Every root candidate is itself a dictionary word.
	set := make(map[string]struct{}, len(dict))
	for _, w := range dict {
		set[w] = struct{}{}
	}
	for _, w := range start {
		_, ok := set[w]
		require.Truef(t, ok, "root word %q missing from dictionary", w)
	}
}
