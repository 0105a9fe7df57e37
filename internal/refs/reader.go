// Package refs reads the checkout state and branches of a git repository
// straight from the files in its .git directory.
//
// The reader never writes and never runs git. Every call reads the disk
// afresh, and apart from NewReader no method returns an error: failures are
// logged and the best available answer is returned.
package refs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/gitrefs/internal/models"
)

const packedRefsFile = "packed-refs"

// Reader reads refs from a single .git directory. It holds no mutable state
// and is safe for concurrent use.
type Reader struct {
	gitDir         string
	headFile       string
	refsHeadsDir   string
	refsRemotesDir string
	packedRefsFile string
	logger         *slog.Logger
}

// NewReader returns a reader for gitDir. It fails with ErrNotRepository
// when gitDir or gitDir/HEAD does not exist. A nil logger discards output.
func NewReader(gitDir string, logger *slog.Logger) (*Reader, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	abs, err := filepath.Abs(gitDir)
	if err != nil {
		return nil, fmt.Errorf("resolve git directory: %w", err)
	}
	if err := mustExist(abs, ".git directory not found"); err != nil {
		return nil, err
	}
	headPath := filepath.Join(abs, headFile)
	if err := mustExist(headPath, ".git/HEAD file not found"); err != nil {
		return nil, err
	}

	return &Reader{
		gitDir:         abs,
		headFile:       headPath,
		refsHeadsDir:   filepath.Join(abs, "refs", "heads"),
		refsRemotesDir: filepath.Join(abs, "refs", "remotes"),
		packedRefsFile: filepath.Join(abs, packedRefsFile),
		logger:         logger.With("git_dir", abs),
	}, nil
}

func mustExist(path, msg string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &RepoStateError{Path: path, Err: fmt.Errorf("%w: %s", ErrNotRepository, msg)}
	}
	return &RepoStateError{Path: path, Err: err}
}

// GitDir returns the absolute path of the .git directory.
func (r *Reader) GitDir() string {
	return r.gitDir
}

// createHash validates hash text. Invalid text is logged at info level.
func (r *Reader) createHash(text string) (models.Hash, bool) {
	h, err := models.ParseHash(strings.TrimSpace(text))
	if err != nil {
		r.logger.Info("cannot parse hash", "error", err)
		return models.Hash{}, false
	}
	return h, true
}

// ReadState returns the repository state. A merge in progress wins over a
// rebase, since git can leave both markers behind during conflict resolution.
func (r *Reader) ReadState() models.RepositoryState {
	if r.isMergeInProgress() {
		return models.StateMerging
	}
	if r.isRebaseInProgress() {
		return models.StateRebasing
	}
	if !r.readHead().IsBranch() {
		return models.StateDetached
	}
	return models.StateNormal
}

// ReadCurrentRevision returns the commit hash HEAD resolves to. ok is false
// when it is unknown, e.g. on an unborn branch in a fresh repository.
func (r *Reader) ReadCurrentRevision() (string, bool) {
	return r.currentRevision(r.readHead())
}

func (r *Reader) currentRevision(head models.HeadState) (string, bool) {
	switch head.Kind {
	case models.HeadDirect:
		return head.Commit, true
	case models.HeadInvalid:
		return "", false
	}

	for name, path := range r.walkLooseRefs(r.refsHeadsDir, false) {
		if models.StripRefsPrefix(name) != head.Branch {
			continue
		}
		content, ok := r.readRefFile(path)
		if !ok || content == "" {
			return "", false
		}
		return content, true
	}

	return r.findBranchRevisionInPackedRefs(head.Branch)
}

// findBranchRevisionInPackedRefs returns the hash of the first packed ref
// whose name ends with branch. The suffix match also accepts refs such as
// refs/heads/feature/<branch>; file order decides.
func (r *Reader) findBranchRevisionInPackedRefs(branch string) (string, bool) {
	refs, err := r.scanPackedRefs(r.packedRefsFile, func(ref packedRef) bool {
		return strings.HasSuffix(ref.name, branch)
	})
	if err != nil {
		r.logger.Error("cannot read packed-refs", "error", err)
		return "", false
	}
	if len(refs) == 0 {
		return "", false
	}
	return refs[0].hash, true
}

// ReadCurrentBranch returns the branch HEAD points to, or the branch being
// rebased when HEAD is detached by a rebase. It returns nil when detached
// otherwise or when the branch has no commits yet. The name is the short
// branch name.
func (r *Reader) ReadCurrentBranch() *models.LocalBranch {
	head := r.readHead()
	if head.IsBranch() {
		revision, ok := r.currentRevision(head)
		if !ok || head.Branch == "" {
			return nil
		}
		hash, ok := r.createHash(revision)
		if !ok {
			return nil
		}
		return &models.LocalBranch{Name: head.Branch, Hash: hash}
	}

	if r.isRebaseInProgress() {
		if branch := r.readRebaseBranch(rebaseApplyDir); branch != nil {
			return branch
		}
		return r.readRebaseBranch(rebaseMergeDir)
	}
	return nil
}
