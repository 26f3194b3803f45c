/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package dialect

import "strings"

// Section is a contiguous document range eligible for class scanning.
// Start is the byte offset of Text within the original document, so
// concatenating sections and excluded ranges in order reconstructs the
// document exactly.
type Section struct {
	// Start is the document-absolute byte offset of Text.
	Start int

	// Text is the section content.
	Text string
}

// Sections splits a document into class-eligible ranges for the dialect.
// It never fails: documents missing the dialect's structural markers fall
// back to a single whole-document section.
func Sections(content string, d Dialect) []Section {
	switch d {
	case Vue:
		return wrapperSections(content, "<template", "</template>")
	case Svelte:
		return markupSections(content)
	case Astro:
		return frontmatterSections(content)
	default:
		return []Section{{Start: 0, Text: content}}
	}
}

// wrapperSections returns the interior of the first wrapper tag pair, or
// the whole document when the wrapper is absent or malformed.
func wrapperSections(content, openTag, closeTag string) []Section {
	whole := []Section{{Start: 0, Text: content}}

	open := strings.Index(content, openTag)
	if open < 0 {
		return whole
	}
	gt := strings.IndexByte(content[open:], '>')
	if gt < 0 {
		return whole
	}
	start := open + gt + 1

	end := strings.Index(content[start:], closeTag)
	if end < 0 {
		return whole
	}
	end += start

	return []Section{{Start: start, Text: content[start:end]}}
}

// markupSections returns the document ranges outside top-level <script>
// and <style> blocks, in original order.
func markupSections(content string) []Section {
	type span struct{ start, end int }

	var excluded []span
	for _, tag := range []struct{ open, close string }{
		{"<script", "</script>"},
		{"<style", "</style>"},
	} {
		pos := 0
		for {
			open := strings.Index(content[pos:], tag.open)
			if open < 0 {
				break
			}
			open += pos
			end := strings.Index(content[open:], tag.close)
			if end < 0 {
				// Unterminated block: leave the rest included.
				break
			}
			end += open + len(tag.close)
			excluded = append(excluded, span{open, end})
			pos = end
		}
	}

	if len(excluded) == 0 {
		return []Section{{Start: 0, Text: content}}
	}

	// Exclusions from the two scans interleave; restore document order.
	for i := 1; i < len(excluded); i++ {
		for j := i; j > 0 && excluded[j].start < excluded[j-1].start; j-- {
			excluded[j], excluded[j-1] = excluded[j-1], excluded[j]
		}
	}

	var sections []Section
	pos := 0
	for _, ex := range excluded {
		if pos < ex.start {
			sections = append(sections, Section{Start: pos, Text: content[pos:ex.start]})
		}
		pos = ex.end
	}
	if pos < len(content) {
		sections = append(sections, Section{Start: pos, Text: content[pos:]})
	}
	return sections
}

// frontmatterSections returns the document range after the closing ---
// fence, or the whole document when no frontmatter is present.
func frontmatterSections(content string) []Section {
	whole := []Section{{Start: 0, Text: content}}

	if !strings.HasPrefix(strings.TrimLeft(content, " \t\r\n"), "---") {
		return whole
	}

	open := strings.Index(content, "---")
	if open < 0 {
		return whole
	}
	closing := strings.Index(content[open+3:], "---")
	if closing < 0 {
		return whole
	}
	end := open + 3 + closing + 3

	// Markup starts on the line after the closing fence.
	if nl := strings.IndexByte(content[end:], '\n'); nl >= 0 {
		end += nl + 1
	}

	return []Section{{Start: end, Text: content[end:]}}
}
