package models

// Remote represents a remote configured in .git/config.
type Remote struct {
	Name          string   `json:"name"`
	URLs          []string `json:"urls,omitempty"`
	PushURLs      []string `json:"push_urls,omitempty"`
	FetchRefSpecs []string `json:"fetch,omitempty"`
	PushRefSpecs  []string `json:"push,omitempty"`
}

// NewSyntheticRemote returns a remote with no URLs or refspecs. It stands in
// for a remote whose tracking refs are on disk but whose config section is gone.
func NewSyntheticRemote(name string) *Remote {
	return &Remote{Name: name}
}

// FirstURL returns the first fetch URL, or "" if none is configured.
func (r *Remote) FirstURL() string {
	if len(r.URLs) == 0 {
		return ""
	}
	return r.URLs[0]
}

// FindRemote returns the remote with the given name, or nil.
func FindRemote(remotes []*Remote, name string) *Remote {
	for _, r := range remotes {
		if r != nil && r.Name == name {
			return r
		}
	}
	return nil
}
