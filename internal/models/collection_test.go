package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHash(t *testing.T, text string) Hash {
	t.Helper()
	h, err := ParseHash(text)
	require.NoError(t, err)
	return h
}

func TestStripRefsPrefix(t *testing.T) {
	assert.Equal(t, "main", StripRefsPrefix("refs/heads/main"))
	assert.Equal(t, "origin/main", StripRefsPrefix("refs/remotes/origin/main"))
	assert.Equal(t, "tags/v1", StripRefsPrefix("refs/tags/v1"))
	assert.Equal(t, "main", StripRefsPrefix("main"))
}

func TestLocalBranch_Names(t *testing.T) {
	h := mustHash(t, "abc")

	short := LocalBranch{Name: "feature/x", Hash: h}
	full := LocalBranch{Name: "refs/heads/feature/x", Hash: h}

	assert.Equal(t, "refs/heads/feature/x", short.FullName())
	assert.Equal(t, "feature/x", full.ShortName())
	assert.True(t, short.Equal(full))
}

func TestRemoteBranch_Names(t *testing.T) {
	h := mustHash(t, "abc")

	std := StandardRemoteBranch{Remote: NewSyntheticRemote("origin"), Branch: "feature/x", Hash: h}
	assert.Equal(t, "refs/remotes/origin/feature/x", std.FullName())
	assert.Equal(t, "feature/x", std.NameForRemoteOperations())
	assert.Equal(t, h, std.CommitHash())

	svn := SvnRemoteBranch{Name: "refs/remotes/trunk", Hash: h}
	assert.Equal(t, "refs/remotes/trunk", svn.FullName())
	assert.Equal(t, "trunk", svn.NameForRemoteOperations())
}

func TestBranchesCollection_SortedAndDeduplicated(t *testing.T) {
	h1 := mustHash(t, "1111")
	h2 := mustHash(t, "2222")
	origin := &Remote{Name: "origin", URLs: []string{"https://example.com/repo.git"}}

	c := NewBranchesCollection(
		[]LocalBranch{
			{Name: "refs/heads/main", Hash: h1},
			{Name: "refs/heads/dev", Hash: h2},
			{Name: "main", Hash: h2},
		},
		[]RemoteBranch{
			StandardRemoteBranch{Remote: origin, Branch: "main", Hash: h1},
			SvnRemoteBranch{Name: "refs/remotes/trunk", Hash: h2},
			nil,
		},
	)

	local := c.Local()
	require.Len(t, local, 2)
	assert.Equal(t, "refs/heads/dev", local[0].FullName())
	assert.Equal(t, "refs/heads/main", local[1].FullName())
	assert.Equal(t, h1, local[1].Hash, "first branch added for a name wins")

	remote := c.Remote()
	require.Len(t, remote, 2)
	assert.Equal(t, "refs/remotes/origin/main", remote[0].FullName())
	assert.Equal(t, "refs/remotes/trunk", remote[1].FullName())
	assert.Equal(t, 4, c.Len())
}

func TestBranchesCollection_Find(t *testing.T) {
	h := mustHash(t, "abc")
	c := NewBranchesCollection(
		[]LocalBranch{{Name: "refs/heads/main", Hash: h}},
		[]RemoteBranch{StandardRemoteBranch{Remote: NewSyntheticRemote("origin"), Branch: "main", Hash: h}},
	)

	b, ok := c.FindLocal("main")
	require.True(t, ok)
	assert.Equal(t, "refs/heads/main", b.Name)

	_, ok = c.FindLocal("refs/heads/main")
	assert.True(t, ok)

	_, ok = c.FindLocal("missing")
	assert.False(t, ok)

	rb, ok := c.FindRemote("origin/main")
	require.True(t, ok)
	assert.Equal(t, "main", rb.NameForRemoteOperations())

	_, ok = c.FindRemote("refs/remotes/origin/main")
	assert.True(t, ok)
}

func TestBranchesCollection_Equal(t *testing.T) {
	h := mustHash(t, "abc")
	a := NewBranchesCollection(
		[]LocalBranch{{Name: "refs/heads/a", Hash: h}, {Name: "refs/heads/b", Hash: h}},
		nil,
	)
	b := NewBranchesCollection(
		[]LocalBranch{{Name: "refs/heads/b", Hash: h}, {Name: "refs/heads/a", Hash: h}},
		nil,
	)
	c := NewBranchesCollection([]LocalBranch{{Name: "refs/heads/a", Hash: h}}, nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestBranchesCollection_ReturnsCopies(t *testing.T) {
	h := mustHash(t, "abc")
	c := NewBranchesCollection([]LocalBranch{{Name: "refs/heads/main", Hash: h}}, nil)

	local := c.Local()
	local[0].Name = "refs/heads/changed"

	_, ok := c.FindLocal("main")
	assert.True(t, ok)
}

func TestBranchesCollection_JSON(t *testing.T) {
	h := mustHash(t, "abc")
	c := NewBranchesCollection(
		[]LocalBranch{{Name: "refs/heads/main", Hash: h}},
		[]RemoteBranch{
			StandardRemoteBranch{Remote: NewSyntheticRemote("origin"), Branch: "main", Hash: h},
			SvnRemoteBranch{Name: "refs/remotes/trunk", Hash: h},
		},
	)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"local": [{"name": "refs/heads/main", "hash": "abc"}],
		"remote": [
			{"kind": "standard", "name": "refs/remotes/origin/main", "remote": "origin", "branch": "main", "hash": "abc"},
			{"kind": "svn", "name": "refs/remotes/trunk", "hash": "abc"}
		]
	}`, string(data))
}
