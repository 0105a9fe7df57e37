package refs

import (
	"errors"
	"fmt"
)

// ErrNotRepository is returned by NewReader when the git directory or its
// HEAD file does not exist.
var ErrNotRepository = errors.New("not a git repository")

// RepoStateError reports a git service file that could not be read or parsed.
type RepoStateError struct {
	Path string
	Err  error
}

func (e *RepoStateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *RepoStateError) Unwrap() error {
	return e.Err
}
