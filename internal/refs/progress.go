package refs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/gitrefs/internal/models"
)

const (
	mergeHeadFile  = "MERGE_HEAD"
	rebaseApplyDir = "rebase-apply"
	rebaseMergeDir = "rebase-merge"
	headNameFile   = "head-name"
)

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *Reader) isMergeInProgress() bool {
	return exists(filepath.Join(r.gitDir, mergeHeadFile))
}

func (r *Reader) isRebaseInProgress() bool {
	return exists(filepath.Join(r.gitDir, rebaseApplyDir)) ||
		exists(filepath.Join(r.gitDir, rebaseMergeDir))
}

// readRebaseBranch returns the branch being rebased according to
// <rebaseDir>/head-name, or nil when it cannot be determined. When the rebase
// started from a detached HEAD the named ref does not exist.
func (r *Reader) readRebaseBranch(rebaseDir string) *models.LocalBranch {
	headName := filepath.Join(r.gitDir, rebaseDir, headNameFile)
	data, err := os.ReadFile(headName)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Error("cannot read rebase head-name", "error", &RepoStateError{Path: headName, Err: err})
		}
		return nil
	}

	branchName := strings.TrimSpace(string(data))
	if branchName == "" {
		return nil
	}
	branchFile := filepath.Join(r.gitDir, filepath.FromSlash(branchName))
	if !strings.HasPrefix(branchFile, r.gitDir+string(filepath.Separator)) {
		r.logger.Warn("rebase head-name points outside the git directory", "path", headName, "content", branchName)
		return nil
	}

	content, ok := r.readRefFile(branchFile)
	if !ok {
		return nil
	}
	hash, ok := r.createHash(content)
	if !ok {
		return nil
	}
	return &models.LocalBranch{
		Name: strings.TrimPrefix(branchName, models.RefsHeadsPrefix),
		Hash: hash,
	}
}
