/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dialect identifies template formats and splits documents into
// the byte ranges that may contain utility classes.
package dialect

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect represents the structural template format of a document.
type Dialect int

const (
	// Unknown represents an undetermined format. The whole document is
	// scanned, at degraded accuracy.
	Unknown Dialect = iota

	// HTML represents plain markup documents.
	HTML

	// JSX represents React components with JSX syntax.
	JSX

	// TSX represents typed React components.
	TSX

	// Vue represents single-file components whose markup lives inside a
	// top-level <template> wrapper.
	Vue

	// Svelte represents components whose markup is interleaved with
	// top-level <script> and <style> blocks.
	Svelte

	// Astro represents components prefixed by a --- frontmatter fence.
	Astro
)

// String returns the string representation of the dialect.
func (d Dialect) String() string {
	switch d {
	case HTML:
		return "html"
	case JSX:
		return "jsx"
	case TSX:
		return "tsx"
	case Vue:
		return "vue"
	case Svelte:
		return "svelte"
	case Astro:
		return "astro"
	default:
		return "unknown"
	}
}

// FromString returns the dialect for a string representation.
func FromString(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "html", "htm":
		return HTML, nil
	case "jsx":
		return JSX, nil
	case "tsx":
		return TSX, nil
	case "vue":
		return Vue, nil
	case "svelte":
		return Svelte, nil
	case "astro":
		return Astro, nil
	default:
		return Unknown, fmt.Errorf("unrecognized dialect: %s", s)
	}
}

// FromPath returns the dialect for a file path based on its extension.
// Unrecognized extensions return Unknown, never an error.
func FromPath(path string) Dialect {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "html", "htm":
		return HTML
	case "jsx":
		return JSX
	case "tsx":
		return TSX
	case "vue":
		return Vue
	case "svelte":
		return Svelte
	case "astro":
		return Astro
	default:
		return Unknown
	}
}
