package refs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const headFile = "HEAD"

// walkLooseRefs lists the regular files under root, keyed by their path
// relative to gitDir with forward slashes (e.g. "refs/heads/feature/x").
// When skipHEAD is set, files named HEAD in any case are left out; under
// refs/remotes/ those are symbolic pointers to a remote's default branch.
// A missing root yields an empty map.
func (r *Reader) walkLooseRefs(root string, skipHEAD bool) map[string]string {
	refs := make(map[string]string)
	if _, err := os.Stat(root); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("cannot stat refs directory", "path", root, "error", err)
		}
		return refs
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Entries can vanish while git rewrites refs; keep going.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if skipHEAD && strings.EqualFold(d.Name(), headFile) {
			return nil
		}
		rel, err := filepath.Rel(r.gitDir, path)
		if err != nil {
			return nil
		}
		refs[filepath.ToSlash(rel)] = path
		return nil
	})
	if err != nil {
		r.logger.Warn("failed to walk refs directory", "path", root, "error", err)
	}
	return refs
}

// readRefFile returns the trimmed content of a ref file. Failures are logged
// at debug level since a ref may be deleted between listing and reading it.
func (r *Reader) readRefFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Debug("cannot read ref file", "path", path, "error", err)
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}
