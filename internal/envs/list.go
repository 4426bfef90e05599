package envs

import (
	"fmt"
	"os"
)

// List returns the names of the immediate subdirectories of root. Plain files
// are skipped. An empty result is not an error.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading envs folder %s: %w", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isDir(root, e) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// isDir follows symlinks so a linked environment still counts.
func isDir(root string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(joinName(root, e.Name()))
	return err == nil && info.IsDir()
}
