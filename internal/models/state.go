package models

// RepositoryState is the checkout state of a repository.
type RepositoryState string

const (
	StateNormal   RepositoryState = "NORMAL"
	StateDetached RepositoryState = "DETACHED"
	StateMerging  RepositoryState = "MERGING"
	StateRebasing RepositoryState = "REBASING"
)

func (s RepositoryState) String() string {
	return string(s)
}
