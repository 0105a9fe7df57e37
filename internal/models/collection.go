package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// BranchesCollection is an immutable set of local and remote-tracking branches.
// Branches are keyed by full ref name; the first branch added for a name wins.
type BranchesCollection struct {
	local  map[string]LocalBranch
	remote map[string]RemoteBranch
}

// NewBranchesCollection builds a collection from the given branches.
func NewBranchesCollection(local []LocalBranch, remote []RemoteBranch) *BranchesCollection {
	c := &BranchesCollection{
		local:  make(map[string]LocalBranch, len(local)),
		remote: make(map[string]RemoteBranch, len(remote)),
	}
	for _, b := range local {
		if _, ok := c.local[b.FullName()]; !ok {
			c.local[b.FullName()] = b
		}
	}
	for _, b := range remote {
		if b == nil {
			continue
		}
		if _, ok := c.remote[b.FullName()]; !ok {
			c.remote[b.FullName()] = b
		}
	}
	return c
}

// Local returns the local branches sorted by full name.
func (c *BranchesCollection) Local() []LocalBranch {
	out := make([]LocalBranch, 0, len(c.local))
	for _, b := range c.local {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName() < out[j].FullName()
	})
	return out
}

// Remote returns the remote-tracking branches sorted by full name.
func (c *BranchesCollection) Remote() []RemoteBranch {
	out := make([]RemoteBranch, 0, len(c.remote))
	for _, b := range c.remote {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName() < out[j].FullName()
	})
	return out
}

// FindLocal looks up a local branch by short or full name.
func (c *BranchesCollection) FindLocal(name string) (LocalBranch, bool) {
	b, ok := c.local[LocalBranch{Name: name}.FullName()]
	return b, ok
}

// FindRemote looks up a remote-tracking branch by full name or by
// "<remote>/<branch>".
func (c *BranchesCollection) FindRemote(name string) (RemoteBranch, bool) {
	if !strings.HasPrefix(name, RefsRemotesPrefix) {
		name = RefsRemotesPrefix + name
	}
	b, ok := c.remote[name]
	return b, ok
}

// Len returns the total number of branches.
func (c *BranchesCollection) Len() int {
	return len(c.local) + len(c.remote)
}

// Equal reports set equality by full ref name.
func (c *BranchesCollection) Equal(other *BranchesCollection) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.local) != len(other.local) || len(c.remote) != len(other.remote) {
		return false
	}
	for name := range c.local {
		if _, ok := other.local[name]; !ok {
			return false
		}
	}
	for name := range c.remote {
		if _, ok := other.remote[name]; !ok {
			return false
		}
	}
	return true
}

func (c *BranchesCollection) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Local  []LocalBranch  `json:"local"`
		Remote []RemoteBranch `json:"remote"`
	}{c.Local(), c.Remote()})
}
