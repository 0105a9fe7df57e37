package refs

import (
	"sort"
	"strings"

	"github.com/kilupskalvis/gitrefs/internal/models"
)

// ReadBranches returns all local and remote-tracking branches. Loose refs
// override packed ones. Remote refs whose remote is not in remotes get a
// synthetic remote of that name; refs with an invalid hash are dropped.
func (r *Reader) ReadBranches(remotes []*models.Remote) *models.BranchesCollection {
	data := r.readBranchRefs()

	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	var local []models.LocalBranch
	var remote []models.RemoteBranch
	for _, name := range names {
		value := data[name]
		hash, err := models.ParseHash(value)
		if err != nil {
			r.logger.Warn("cannot parse hash of ref", "ref", name, "value", value)
			continue
		}

		switch {
		case strings.HasPrefix(name, models.RefsHeadsPrefix):
			local = append(local, models.LocalBranch{Name: name, Hash: hash})
		case strings.HasPrefix(name, models.RefsRemotesPrefix):
			remote = append(remote, r.parseRemoteBranch(name, hash, remotes))
		}
	}

	return models.NewBranchesCollection(local, remote)
}

// readBranchRefs maps full ref names to hash text. packed-refs is read first
// so that loose refs overwrite it.
func (r *Reader) readBranchRefs() map[string]string {
	result := make(map[string]string)

	packed, err := r.scanPackedRefs(r.packedRefsFile, nil)
	if err != nil {
		r.logger.Error("cannot read packed-refs", "error", err)
	}
	for _, ref := range packed {
		if strings.HasPrefix(ref.name, models.RefsHeadsPrefix) || strings.HasPrefix(ref.name, models.RefsRemotesPrefix) {
			result[ref.name] = ref.hash
		}
	}

	for name, path := range r.walkLooseRefs(r.refsHeadsDir, false) {
		if value, ok := r.readRefFile(path); ok {
			result[name] = value
		}
	}
	for name, path := range r.walkLooseRefs(r.refsRemotesDir, true) {
		if value, ok := r.readRefFile(path); ok {
			result[name] = value
		}
	}
	return result
}

func (r *Reader) parseRemoteBranch(fullName string, hash models.Hash, remotes []*models.Remote) models.RemoteBranch {
	stdName := models.StripRefsPrefix(fullName)

	remoteName, branchName, found := strings.Cut(stdName, "/")
	if !found {
		// refs/remotes/<branch>: git-svn layout
		return models.SvnRemoteBranch{Name: fullName, Hash: hash}
	}

	remote := models.FindRemote(remotes, remoteName)
	if remote == nil {
		// The remote section may be gone from .git/config while its refs stay.
		r.logger.Debug("no remote found for ref", "remote", remoteName, "ref", fullName)
		remote = models.NewSyntheticRemote(remoteName)
	}
	return models.StandardRemoteBranch{Remote: remote, Branch: branchName, Hash: hash}
}
