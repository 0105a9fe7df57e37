// Package gitconfig reads the remotes declared in a repository's .git/config.
package gitconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/gitrefs/internal/models"
	"gopkg.in/ini.v1"
)

// ConfigFile is the name of the config file inside the git directory.
const ConfigFile = "config"

var loadOptions = ini.LoadOptions{
	// A repository without a config file simply has no remotes.
	Loose: true,
	// Variable names are case-insensitive in git; subsection names are not.
	InsensitiveKeys: true,
	// Refspecs contain ':'.
	KeyValueDelimiters:      "=",
	AllowShadows:            true,
	AllowBooleanKeys:        true,
	SkipUnrecognizableLines: true,
}

// ReadRemotes returns the remotes in gitDir/config in file order.
func ReadRemotes(gitDir string) ([]*models.Remote, error) {
	path := filepath.Join(gitDir, ConfigFile)
	cfg, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var remotes []*models.Remote
	for _, sec := range cfg.Sections() {
		name, ok := remoteName(sec.Name())
		if !ok {
			continue
		}
		if r := models.FindRemote(remotes, name); r != nil {
			// Repeated sections add to the same remote.
			appendValues(r, sec)
			continue
		}
		r := &models.Remote{Name: name}
		appendValues(r, sec)
		remotes = append(remotes, r)
	}
	return remotes, nil
}

// remoteName extracts <name> from `remote "<name>"` or the legacy `remote.<name>`.
func remoteName(section string) (string, bool) {
	if rest, ok := strings.CutPrefix(section, `remote "`); ok {
		name, ok := strings.CutSuffix(rest, `"`)
		return name, ok && name != ""
	}
	if rest, ok := strings.CutPrefix(section, "remote."); ok && rest != "" {
		return rest, true
	}
	return "", false
}

func appendValues(r *models.Remote, sec *ini.Section) {
	r.URLs = append(r.URLs, values(sec, "url")...)
	r.PushURLs = append(r.PushURLs, values(sec, "pushurl")...)
	r.FetchRefSpecs = append(r.FetchRefSpecs, values(sec, "fetch")...)
	r.PushRefSpecs = append(r.PushRefSpecs, values(sec, "push")...)
}

func values(sec *ini.Section, key string) []string {
	if !sec.HasKey(key) {
		return nil
	}
	var out []string
	for _, v := range sec.Key(key).ValueWithShadows() {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
