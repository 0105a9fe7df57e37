package models

import (
	"encoding/json"
	"strings"
)

const (
	RefsPrefix        = "refs/"
	RefsHeadsPrefix   = "refs/heads/"
	RefsRemotesPrefix = "refs/remotes/"
)

// StripRefsPrefix removes refs/heads/, refs/remotes/ or refs/ from a ref name.
func StripRefsPrefix(name string) string {
	switch {
	case strings.HasPrefix(name, RefsHeadsPrefix):
		return name[len(RefsHeadsPrefix):]
	case strings.HasPrefix(name, RefsRemotesPrefix):
		return name[len(RefsRemotesPrefix):]
	case strings.HasPrefix(name, RefsPrefix):
		return name[len(RefsPrefix):]
	}
	return name
}

// LocalBranch is a branch under refs/heads/.
// Name is either the full ref name or the short name; identity is the full name.
type LocalBranch struct {
	Name string `json:"name"`
	Hash Hash   `json:"hash"`
}

// FullName returns the name with the refs/heads/ prefix.
func (b LocalBranch) FullName() string {
	if strings.HasPrefix(b.Name, RefsHeadsPrefix) {
		return b.Name
	}
	return RefsHeadsPrefix + b.Name
}

// ShortName returns the name without the refs/heads/ prefix.
func (b LocalBranch) ShortName() string {
	return strings.TrimPrefix(b.Name, RefsHeadsPrefix)
}

// Equal reports whether both values name the same branch.
func (b LocalBranch) Equal(other LocalBranch) bool {
	return b.FullName() == other.FullName()
}

// RemoteBranch is a remote-tracking branch under refs/remotes/.
// Implementations are StandardRemoteBranch and SvnRemoteBranch.
type RemoteBranch interface {
	// FullName returns the full ref name, starting with refs/remotes/.
	FullName() string
	// NameForRemoteOperations returns the branch name as the remote knows it.
	NameForRemoteOperations() string
	// CommitHash returns the commit the ref points at.
	CommitHash() Hash

	remoteBranch()
}

// StandardRemoteBranch is refs/remotes/<remote>/<branch>.
type StandardRemoteBranch struct {
	Remote *Remote
	Branch string
	Hash   Hash
}

func (b StandardRemoteBranch) FullName() string {
	return RefsRemotesPrefix + b.Remote.Name + "/" + b.Branch
}

func (b StandardRemoteBranch) NameForRemoteOperations() string {
	return b.Branch
}

func (b StandardRemoteBranch) CommitHash() Hash {
	return b.Hash
}

func (StandardRemoteBranch) remoteBranch() {}

func (b StandardRemoteBranch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string `json:"kind"`
		Name   string `json:"name"`
		Remote string `json:"remote"`
		Branch string `json:"branch"`
		Hash   Hash   `json:"hash"`
	}{"standard", b.FullName(), b.Remote.Name, b.Branch, b.Hash})
}

// SvnRemoteBranch is a ref directly under refs/remotes/ with no remote
// namespace, as created by git-svn. Name keeps the full ref name.
type SvnRemoteBranch struct {
	Name string
	Hash Hash
}

func (b SvnRemoteBranch) FullName() string {
	return b.Name
}

func (b SvnRemoteBranch) NameForRemoteOperations() string {
	return StripRefsPrefix(b.Name)
}

func (b SvnRemoteBranch) CommitHash() Hash {
	return b.Hash
}

func (SvnRemoteBranch) remoteBranch() {}

func (b SvnRemoteBranch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
		Hash Hash   `json:"hash"`
	}{"svn", b.Name, b.Hash})
}
