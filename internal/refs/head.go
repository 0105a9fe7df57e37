package refs

import (
	"os"
	"regexp"
	"strings"

	"github.com/kilupskalvis/gitrefs/internal/models"
)

var (
	// branchPattern is the form git writes: "ref: refs/heads/<name>".
	branchPattern = regexp.MustCompile(`^ref: refs/heads/(\S+)$`)
	// commitPattern is a detached HEAD.
	commitPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	// branchWeakPattern accepts stray spaces and a missing "ref:" or a leading slash.
	branchWeakPattern = regexp.MustCompile(`^ *(?:ref:)? */?refs/heads/(\S+)$`)
)

// parseHead classifies HEAD content. lenient is true when the content only
// matched the non-standard symbolic form.
func parseHead(content string) (head models.HeadState, lenient bool) {
	if m := branchPattern.FindStringSubmatch(content); m != nil {
		return models.SymbolicHead(m[1]), false
	}
	if commitPattern.MatchString(content) {
		return models.DirectHead(content), false
	}
	if m := branchWeakPattern.FindStringSubmatch(content); m != nil {
		return models.SymbolicHead(m[1]), true
	}
	return models.HeadState{Kind: models.HeadInvalid}, false
}

// readHead reads and parses the HEAD file. Unreadable or unrecognised
// content is logged at error level and yields an invalid head.
func (r *Reader) readHead() models.HeadState {
	data, err := os.ReadFile(r.headFile)
	if err != nil {
		r.logger.Error("cannot read HEAD", "error", &RepoStateError{Path: r.headFile, Err: err})
		return models.HeadState{Kind: models.HeadInvalid}
	}

	content := strings.TrimSpace(string(data))
	head, lenient := parseHead(content)
	switch {
	case head.Kind == models.HeadInvalid:
		r.logger.Error("invalid format of HEAD", "path", r.headFile, "content", content)
	case lenient:
		r.logger.Info("HEAD has non-standard format", "path", r.headFile, "content", content, "branch", head.Branch)
	}
	return head
}
