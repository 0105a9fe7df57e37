package models

// HeadKind classifies the content of the HEAD file.
type HeadKind int

const (
	HeadInvalid  HeadKind = iota // unreadable or unrecognised HEAD
	HeadSymbolic                 // HEAD names a local branch
	HeadDirect                   // HEAD is detached at a commit
)

func (k HeadKind) String() string {
	switch k {
	case HeadSymbolic:
		return "symbolic"
	case HeadDirect:
		return "direct"
	default:
		return "invalid"
	}
}

// HeadState represents the parsed HEAD file
type HeadState struct {
	Kind   HeadKind
	Branch string // short branch name, set when Kind is HeadSymbolic
	Commit string // commit hash text, set when Kind is HeadDirect
}

// SymbolicHead returns a HEAD pointing at the given short branch name.
func SymbolicHead(branch string) HeadState {
	return HeadState{Kind: HeadSymbolic, Branch: branch}
}

// DirectHead returns a HEAD detached at the given commit.
func DirectHead(commit string) HeadState {
	return HeadState{Kind: HeadDirect, Commit: commit}
}

// IsBranch reports whether HEAD points to a branch.
func (h HeadState) IsBranch() bool {
	return h.Kind == HeadSymbolic
}
