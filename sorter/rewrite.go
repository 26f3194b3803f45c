/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sorter

import (
	"strings"

	"bennypowers.dev/tailsort/extract"
)

// Edit pairs a matched span with its replacement text.
type Edit struct {
	// Match is the span in the original document.
	Match extract.Match

	// Text is the sorted class string to substitute.
	Text string
}

// Rewrite substitutes each edit's span with its text in a single linear
// pass, copying every other byte verbatim. Spans must be non-overlapping
// and increasing by start offset, computed against the original content.
// The second return value is false when no edit changed anything; callers
// treat that as "unchanged" and keep the original.
func Rewrite(content string, edits []Edit) (string, bool) {
	changed := false
	for _, e := range edits {
		if e.Text != e.Match.Value {
			changed = true
			break
		}
	}
	if !changed {
		return content, false
	}

	var sb strings.Builder
	sb.Grow(len(content))

	pos := 0
	for _, e := range edits {
		sb.WriteString(content[pos:e.Match.Start])
		sb.WriteString(e.Text)
		pos = e.Match.End
	}
	sb.WriteString(content[pos:])

	return sb.String(), true
}
