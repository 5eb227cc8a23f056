package mdgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange reports a malformed document where the resolved end tag
// precedes the resolved begin tag. Splicing such a document would corrupt
// it, so callers must treat this as fatal.
var ErrInvalidRange = errors.New("begin tag appears after end tag")

// TagError reports which marker tags were not found in a document.
// It is recoverable: the document is returned unchanged alongside it.
type TagError struct {
	Tags []string
}

func (e *TagError) Error() string {
	quoted := make([]string, len(e.Tags))
	for i, t := range e.Tags {
		quoted[i] = fmt.Sprintf("'%s'", t)
	}
	return "could not find " + strings.Join(quoted, " and ")
}

// Splice replaces everything between beginTag and endTag (exclusive) with
// the given content lines, keeping both tag lines in place as anchors so the
// operation is idempotent for a fixed content.
//
// Tags are matched against whitespace-trimmed lines; when a tag appears more
// than once the last occurrence wins, so documents carrying example tag
// pairs earlier in the file still splice at the live pair. A missing tag
// makes the splice a no-op: the original lines come back together with a
// *TagError naming the absent tag(s).
func Splice(lines []string, beginTag, endTag string, content []string) ([]string, error) {
	beginIndex, endIndex := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case beginTag:
			beginIndex = i
		case endTag:
			endIndex = i
		}
	}

	var missing []string
	if beginIndex < 0 {
		missing = append(missing, beginTag)
	}
	if endIndex < 0 {
		missing = append(missing, endTag)
	}
	if len(missing) > 0 {
		return lines, &TagError{Tags: missing}
	}

	if beginIndex > endIndex {
		return nil, fmt.Errorf("%w: begin %d, end %d", ErrInvalidRange, beginIndex, endIndex)
	}

	result := make([]string, 0, beginIndex+1+len(content)+len(lines)-endIndex)
	result = append(result, lines[:beginIndex+1]...)
	result = append(result, content...)
	result = append(result, lines[endIndex:]...)
	return result, nil
}
