/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package class

import "strings"

// variantRanks orders variant prefixes: responsive breakpoints first, then
// dark mode, interactive state, group/peer, structural position, container
// queries, data/aria attributes, and print.
var variantRanks = map[string]int{
	// Responsive breakpoints
	"sm":  100,
	"md":  110,
	"lg":  120,
	"xl":  130,
	"2xl": 140,

	// Dark mode
	"dark": 200,

	// Interactive state
	"hover":    300,
	"focus":    310,
	"active":   320,
	"visited":  330,
	"disabled": 340,
	"enabled":  350,

	// Group and peer
	"group": 400,
	"peer":  410,

	// Structural position
	"first": 500,
	"last":  510,
	"odd":   520,
	"even":  530,

	// Container query breakpoints
	"@sm":  600,
	"@md":  610,
	"@lg":  620,
	"@xl":  630,
	"@2xl": 640,

	// Print media
	"print": 800,
}

// variantRankOther is the bucket for unrecognized variants.
const variantRankOther = 9999

// variantRank returns the sort bucket for a single variant prefix.
// data-* and aria-* variants carry arbitrary attribute names, so they are
// ranked by their family rather than by exact name.
func variantRank(variant string) int {
	if rank, ok := variantRanks[variant]; ok {
		return rank
	}
	if strings.HasPrefix(variant, "data-") {
		return 700
	}
	if strings.HasPrefix(variant, "aria-") {
		return 710
	}
	return variantRankOther
}
