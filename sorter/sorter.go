/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sorter sorts class lists and rewrites documents around them.
package sorter

import (
	"sort"
	"strings"

	"bennypowers.dev/tailsort/class"
)

// SortString sorts a space-separated class list into canonical order.
// Each token's text is preserved exactly; only the order changes. Tokens
// are joined with a single space, so irregular inter-token whitespace is
// normalized.
func SortString(classes string) string {
	trimmed := strings.TrimSpace(classes)
	if trimmed == "" {
		return ""
	}

	fields := strings.Fields(trimmed)
	parsed := make([]*class.Class, len(fields))
	for i, f := range fields {
		parsed[i] = class.Parse(f)
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return class.Less(parsed[i], parsed[j])
	})

	out := make([]string, len(parsed))
	for i, c := range parsed {
		out[i] = c.Raw
	}
	return strings.Join(out, " ")
}
