package core

import (
	"github.com/kilupskalvis/gitrefs/internal/models"
)

// BranchFilter selects which branches ListBranches returns.
type BranchFilter int

const (
	BranchesLocal BranchFilter = iota
	BranchesRemote
	BranchesAll
)

// BranchList holds the branches of a repository and the checked-out one.
type BranchList struct {
	Current *models.LocalBranch
	Local   []models.LocalBranch
	Remote  []models.RemoteBranch
}

// IsCurrent reports whether b is the checked-out branch.
func (l *BranchList) IsCurrent(b models.LocalBranch) bool {
	return l.Current != nil && l.Current.Equal(b)
}

// ListBranches returns the branches selected by filter, sorted by name,
// together with the current branch.
func ListBranches(repo *Repository, filter BranchFilter) *BranchList {
	branches := repo.Reader.ReadBranches(repo.Remotes)

	list := &BranchList{Current: repo.Reader.ReadCurrentBranch()}
	if filter != BranchesRemote {
		list.Local = branches.Local()
	}
	if filter != BranchesLocal {
		list.Remote = branches.Remote()
	}
	return list
}
