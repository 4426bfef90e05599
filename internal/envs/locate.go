package envs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned by Locate when no ancestor holds the envs folder.
var ErrRootNotFound = errors.New("envs folder not found")

// statDir is replaced in tests to observe lookups.
var statDir = os.Stat

// FindRoot walks upward from start looking for a directory named dirName.
// At each level it tests <dir>/<dirName>; the filesystem root itself is not
// tested, so at most depth(start) lookups are made. The boolean is false when
// nothing was found.
func FindRoot(start, dirName string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		candidate := filepath.Join(dir, dirName)
		if info, err := statDir(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		dir = parent
	}
}

// Locate is FindRoot with an error for the not-found case.
func Locate(start, dirName string) (string, error) {
	root, ok := FindRoot(start, dirName)
	if !ok {
		return "", fmt.Errorf("no %q folder in %s or its parents: %w", dirName, start, ErrRootNotFound)
	}
	return root, nil
}
