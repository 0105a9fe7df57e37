package refs

import (
	"testing"

	"github.com/kilupskalvis/gitrefs/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseHead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    models.HeadState
		lenient bool
	}{
		{"symbolic", "ref: refs/heads/main", models.SymbolicHead("main"), false},
		{"nested branch", "ref: refs/heads/feature/x", models.SymbolicHead("feature/x"), false},
		{"direct", hashA, models.DirectHead(hashA), false},
		{"direct mixed case", "ABCdef012", models.DirectHead("ABCdef012"), false},
		{"no space after ref", "ref:refs/heads/weird", models.SymbolicHead("weird"), true},
		{"leading spaces", "  ref: refs/heads/main", models.SymbolicHead("main"), true},
		{"no ref prefix", "refs/heads/main", models.SymbolicHead("main"), true},
		{"leading slash", "ref: /refs/heads/main", models.SymbolicHead("main"), true},
		{"tag", "ref: refs/tags/v1", models.HeadState{Kind: models.HeadInvalid}, false},
		{"garbage", "hello world", models.HeadState{Kind: models.HeadInvalid}, false},
		{"empty", "", models.HeadState{Kind: models.HeadInvalid}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, lenient := parseHead(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.lenient, lenient)
		})
	}
}

func TestReadHead_LenientIsLoggedAtInfo(t *testing.T) {
	gitDir := setupGitDir(t, "  ref:refs/heads/weird\n")
	r, logs := newTestReader(t, gitDir)

	head := r.readHead()
	assert.Equal(t, models.SymbolicHead("weird"), head)
	assert.Contains(t, logs.String(), "level=INFO")
	assert.Contains(t, logs.String(), "non-standard")
}

func TestReadHead_InvalidIsLoggedAtError(t *testing.T) {
	gitDir := setupGitDir(t, "what is this\n")
	r, logs := newTestReader(t, gitDir)

	head := r.readHead()
	assert.Equal(t, models.HeadInvalid, head.Kind)
	assert.Contains(t, logs.String(), "level=ERROR")
}
