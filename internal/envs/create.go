package envs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Builder materializes a virtual environment at path.
type Builder interface {
	Build(ctx context.Context, path string) error
}

// Outcome describes what Ensure did.
type Outcome int

const (
	// OutcomeExisting means the target already existed; nothing was built.
	OutcomeExisting Outcome = iota
	// OutcomeCreated means the builder ran successfully.
	OutcomeCreated
	// OutcomeDeclined means the user chose not to create the environment.
	OutcomeDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExisting:
		return "existing"
	case OutcomeCreated:
		return "created"
	case OutcomeDeclined:
		return "declined"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// BuildError wraps a failure reported by a Builder.
type BuildError struct {
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("creating virtual environment at %s: %v", e.Path, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// ConfirmFunc is asked before a missing environment is built.
type ConfirmFunc func(path string) (bool, error)

// ValidateName rejects names that are empty or are not a single path element.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("environment name must not be empty")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("invalid environment name %q: must be a single folder name", name)
	}
	return nil
}

// Target returns the path an environment named name would occupy.
func Target(root, name string) string {
	return joinName(root, name)
}

// Exists reports whether anything already occupies path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Ensure makes sure an environment named name exists under root. An existing
// entry is reported as OutcomeExisting without calling the builder. Otherwise
// confirm is asked (nil means yes) and the builder runs. Builder failures are
// returned as *BuildError.
func Ensure(ctx context.Context, b Builder, root, name string, confirm ConfirmFunc) (Outcome, string, error) {
	if err := ValidateName(name); err != nil {
		return 0, "", err
	}

	path := Target(root, name)
	if Exists(path) {
		return OutcomeExisting, path, nil
	}

	if confirm != nil {
		ok, err := confirm(path)
		if err != nil {
			return 0, path, fmt.Errorf("confirming creation: %w", err)
		}
		if !ok {
			return OutcomeDeclined, path, nil
		}
	}

	if err := b.Build(ctx, path); err != nil {
		return 0, path, &BuildError{Path: path, Err: err}
	}
	return OutcomeCreated, path, nil
}

func joinName(root, name string) string {
	return filepath.Join(root, name)
}
