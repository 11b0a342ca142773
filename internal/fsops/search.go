package fsops

import (
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Search walks root and every subdirectory, collecting each entry
// (files and directories alike, the root itself excluded) whose base
// name contains substring as a literal case-sensitive match. Entries
// the process cannot read are skipped rather than failing the walk.
// An empty result set reports NoMatches; the result order is sorted
// because the traversal order itself is not stable.
func (m *Manager) Search(root, substring string) (Status, []string) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return NotFound, nil
	}
	if err != nil {
		return InternalError, nil
	}
	if !info.IsDir() {
		return InvalidRequest, nil
	}

	var (
		mu      sync.Mutex
		matches []string
	)

	conf := fastwalk.Config{Follow: false}
	walkErr := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// The root itself became inaccessible; fail the walk.
				return err
			}
			// Unreadable entry: skip it, keep walking.
			return nil
		}
		if path == root {
			return nil
		}
		if strings.Contains(d.Name(), substring) {
			mu.Lock()
			matches = append(matches, path)
			mu.Unlock()
		}
		return nil
	})
	if walkErr != nil {
		return InternalError, nil
	}

	if len(matches) == 0 {
		return NoMatches, nil
	}
	sort.Strings(matches)
	return Success, matches
}
