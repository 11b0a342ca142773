package fsops

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchTree builds the directory layout used by most search tests:
//
//	root/
//	  a.txt
//	  b.log
//	  sub/
//	    c.txt
func searchTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "b.log"))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0755))
	writeFile(t, filepath.Join(root, "sub", "c.txt"))
	return root
}

func TestSearchSubstring(t *testing.T) {
	m := NewManager()
	root := searchTree(t)

	status, results := m.Search(root, ".txt")
	assert.Equal(t, Success, status)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "c.txt"),
	}, results)
}

func TestSearchEmptySubstringMatchesEverything(t *testing.T) {
	m := NewManager()
	root := searchTree(t)

	status, results := m.Search(root, "")
	assert.Equal(t, Success, status)
	// Every entry under root, directories included, root excluded
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.log"),
		filepath.Join(root, "sub"),
		filepath.Join(root, "sub", "c.txt"),
	}, results)
}

func TestSearchNoMatches(t *testing.T) {
	m := NewManager()
	root := searchTree(t)

	status, results := m.Search(root, "xyz_no_such_file")
	assert.Equal(t, NoMatches, status)
	assert.Empty(t, results)
}

func TestSearchIsCaseSensitive(t *testing.T) {
	m := NewManager()
	root := searchTree(t)

	status, _ := m.Search(root, ".TXT")
	assert.Equal(t, NoMatches, status)
}

func TestSearchMatchesDirectoryNames(t *testing.T) {
	m := NewManager()
	root := searchTree(t)

	status, results := m.Search(root, "sub")
	assert.Equal(t, Success, status)
	assert.Equal(t, []string{filepath.Join(root, "sub")}, results)
}

func TestSearchMissingRoot(t *testing.T) {
	m := NewManager()

	status, results := m.Search(filepath.Join(t.TempDir(), "missing"), "x")
	assert.Equal(t, NotFound, status)
	assert.Empty(t, results)
}

func TestSearchRootNotADirectory(t *testing.T) {
	m := NewManager()
	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file)

	status, _ := m.Search(file, "x")
	assert.Equal(t, InvalidRequest, status)
}

func TestSearchResultsAreSorted(t *testing.T) {
	m := NewManager()
	root := t.TempDir()
	for _, name := range []string{"zz.txt", "aa.txt", "mm.txt"} {
		writeFile(t, filepath.Join(root, name))
	}

	status, results := m.Search(root, ".txt")
	require.Equal(t, Success, status)
	assert.True(t, sort.StringsAreSorted(results))
}
