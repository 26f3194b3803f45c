/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract locates class-bearing string literals in document text.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"bennypowers.dev/tailsort/dialect"
)

// Match is the exact byte range of one matched class string. Start and End
// delimit the literal's interior, excluding the quotes.
type Match struct {
	// Start is the byte offset of the first content byte.
	Start int

	// End is the byte offset one past the last content byte.
	End int

	// Value is the matched class string.
	Value string

	// Quote is the quote character enclosing the literal.
	Quote byte
}

// stringLiteralRE matches one quoted string literal in argument position.
var stringLiteralRE = regexp.MustCompile("\"([^\"]*)\"|'([^']*)'|`([^`]*)`")

// Extractor finds class strings by attribute name and by utility-function
// call. Either name set may be empty, which disables that match source.
// An Extractor is immutable after construction and safe for concurrent use.
type Extractor struct {
	attrQuoted []attrPattern
	attrExpr   []*regexp.Regexp
	funcs      []*regexp.Regexp
}

type attrPattern struct {
	re    *regexp.Regexp
	quote byte
}

// New compiles the match patterns for the given attribute and function
// names. Names are matched at identifier boundaries only, so an attribute
// "class" never matches inside "subclass".
func New(attributes, functions []string) *Extractor {
	e := &Extractor{}

	for _, name := range attributes {
		quoted := regexp.QuoteMeta(name)
		e.attrQuoted = append(e.attrQuoted,
			attrPattern{regexp.MustCompile(boundary + quoted + `="([^"]*)"`), '"'},
			attrPattern{regexp.MustCompile(boundary + quoted + `='([^']*)'`), '\''},
		)
		e.attrExpr = append(e.attrExpr,
			regexp.MustCompile(boundary+quoted+`\s*=\s*\{([^}]*)\}`))
	}

	for _, name := range functions {
		e.funcs = append(e.funcs,
			regexp.MustCompile(boundary+regexp.QuoteMeta(name)+`\s*\(`))
	}

	return e
}

// boundary rejects partial identifier matches; RE2 has no lookbehind, so
// the preceding non-identifier byte (if any) is consumed by the pattern
// and the capture group supplies the literal's offsets.
const boundary = `(?:^|[^A-Za-z0-9_$-])`

// Matches returns every class string found in the section, with offsets
// translated to document-absolute positions. An empty result is normal.
func (e *Extractor) Matches(sec dialect.Section) []Match {
	matches := e.FromAttributes(sec.Text)
	matches = append(matches, e.FromFunctions(sec.Text)...)
	for i := range matches {
		matches[i].Start += sec.Start
		matches[i].End += sec.Start
	}
	return matches
}

// FromAttributes finds quoted attribute values (class="...") and string
// literals inside JSX expression attributes (className={...}).
func (e *Extractor) FromAttributes(content string) []Match {
	var matches []Match

	for _, p := range e.attrQuoted {
		for _, m := range p.re.FindAllStringSubmatchIndex(content, -1) {
			start, end := m[2], m[3]
			value := content[start:end]
			if strings.TrimSpace(value) == "" {
				continue
			}
			matches = append(matches, Match{Start: start, End: end, Value: value, Quote: p.quote})
		}
	}

	for _, re := range e.attrExpr {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			matches = append(matches, stringLiterals(content, m[2], m[3])...)
		}
	}

	return matches
}

// FromFunctions finds string literals in the arguments of utility-function
// calls such as clsx("...", "...").
func (e *Extractor) FromFunctions(content string) []Match {
	var matches []Match

	for _, re := range e.funcs {
		for _, m := range re.FindAllStringIndex(content, -1) {
			argsStart := m[1]
			argsEnd, ok := matchingParen(content, argsStart)
			if !ok {
				continue
			}
			matches = append(matches, stringLiterals(content, argsStart, argsEnd)...)
		}
	}

	return matches
}

// matchingParen scans forward from just past an opening parenthesis and
// returns the offset of its matching close. Parentheses inside string
// literals do not count toward nesting.
func matchingParen(content string, from int) (int, bool) {
	depth := 1
	var quote byte
	for i := from; i < len(content); i++ {
		c := content[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// stringLiterals extracts quoted literals from content[from:to]. Literals
// containing "$" are skipped: they are template placeholders, not class
// lists.
func stringLiterals(content string, from, to int) []Match {
	var matches []Match
	for _, m := range stringLiteralRE.FindAllStringSubmatchIndex(content[from:to], -1) {
		var start, end int
		for g := 1; g <= 3; g++ {
			if m[2*g] >= 0 {
				start, end = from+m[2*g], from+m[2*g+1]
				break
			}
		}
		value := content[start:end]
		if strings.TrimSpace(value) == "" || strings.Contains(value, "$") {
			continue
		}
		matches = append(matches, Match{Start: start, End: end, Value: value, Quote: content[start-1]})
	}
	return matches
}

// Dedupe sorts matches by start offset and drops duplicates and any span
// overlapping an earlier one, so rewriting can proceed left to right.
func Dedupe(matches []Match) []Match {
	if len(matches) < 2 {
		return matches
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End < matches[j].End
	})

	out := matches[:1]
	for _, m := range matches[1:] {
		if m.Start < out[len(out)-1].End {
			continue
		}
		out = append(out, m)
	}
	return out
}
