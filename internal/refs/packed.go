package refs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

var errInvalidPackedLine = errors.New("invalid packed-refs line")

// packedRef is one entry of the packed-refs file.
type packedRef struct {
	hash string
	name string
}

// parsePackedRefsLine parses a line of the packed-refs file.
// ok is false for blank lines, comments and peeled-tag lines ("^<hash>").
// A non-nil error means the line is malformed and should be skipped.
// Content after the ref name is ignored.
func parsePackedRefsLine(line string) (ref packedRef, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return packedRef{}, false, nil
	}
	switch line[0] {
	case '#', '^':
		return packedRef{}, false, nil
	}

	hashEnd := strings.IndexFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if hashEnd <= 0 || line[hashEnd] != ' ' {
		return packedRef{}, false, fmt.Errorf("%w: [%s]", errInvalidPackedLine, line)
	}

	rest := line[hashEnd+1:]
	nameEnd := strings.IndexFunc(rest, unicode.IsSpace)
	if nameEnd < 0 {
		nameEnd = len(rest)
	}
	if nameEnd == 0 {
		return packedRef{}, false, fmt.Errorf("%w: [%s]", errInvalidPackedLine, line)
	}

	// Clone so the entries don't keep the whole line alive.
	return packedRef{
		hash: strings.Clone(line[:hashEnd]),
		name: strings.Clone(rest[:nameEnd]),
	}, true, nil
}

// scanPackedRefs reads the packed-refs file at path.
// With a nil match every valid entry is returned in file order. Otherwise the
// scan stops at the first entry for which match returns true and only that
// entry is returned. A missing file yields no entries.
func (r *Reader) scanPackedRefs(path string, match func(packedRef) bool) ([]packedRef, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &RepoStateError{Path: path, Err: err}
	}
	defer f.Close()

	var refs []packedRef
	br := bufio.NewReader(f)
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			ref, ok, err := parsePackedRefsLine(line)
			if err != nil {
				r.logger.Warn("ignoring packed-refs line", "path", path, "error", err)
			}
			if ok {
				if match == nil {
					refs = append(refs, ref)
				} else if match(ref) {
					return []packedRef{ref}, nil
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, &RepoStateError{Path: path, Err: readErr}
		}
	}

	if match != nil {
		return nil, nil
	}
	return refs, nil
}
