/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package engine runs the class-sorting pipeline over whole documents.
package engine

import (
	"bennypowers.dev/tailsort/config"
	"bennypowers.dev/tailsort/dialect"
	"bennypowers.dev/tailsort/extract"
	"bennypowers.dev/tailsort/fs"
	"bennypowers.dev/tailsort/sorter"
)

// Engine formats documents according to one configuration. Construction
// compiles the match patterns once; a single Engine is safe for concurrent
// use across documents.
type Engine struct {
	enabled   bool
	extractor *extract.Extractor
}

// New creates an engine from the configuration.
func New(cfg *config.Config) *Engine {
	return &Engine{
		enabled:   cfg.Enabled,
		extractor: extract.New(cfg.Attributes, cfg.Functions),
	}
}

// Format sorts every class list in the document and returns the rewritten
// text. The second return value is false when the document is already in
// canonical order (or the engine is disabled); the returned text is then
// the original content. Format never fails on well-formed text: missing
// dialect markers, absent matches, and unknown utilities all degrade to
// defined fallbacks.
func (e *Engine) Format(content string, d dialect.Dialect) (string, bool) {
	if !e.enabled {
		return content, false
	}

	var matches []extract.Match
	for _, sec := range dialect.Sections(content, d) {
		matches = append(matches, e.extractor.Matches(sec)...)
	}
	matches = extract.Dedupe(matches)

	edits := make([]sorter.Edit, len(matches))
	for i, m := range matches {
		edits[i] = sorter.Edit{Match: m, Text: sorter.SortString(m.Value)}
	}

	return sorter.Rewrite(content, edits)
}

// FormatFile reads path, formats it under the dialect implied by its
// extension, and returns the result. It never writes.
func (e *Engine) FormatFile(filesystem fs.FileSystem, path string) (string, bool, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	out, changed := e.Format(string(data), dialect.FromPath(path))
	return out, changed, nil
}
