/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package class

// Less reports whether a sorts before b in canonical class order.
// The comparison chain, outermost key first:
//
//  1. non-important before important
//  2. category rank
//  3. fewer variants before more variants
//  4. variant ranks pairwise, alphabetical within the same rank
//  5. positive before negative
//  6. plain values before arbitrary values
//  7. base text, alphabetical
//
// Classes equal under the whole chain compare as not-less; callers use a
// stable sort so their original relative order is preserved.
func Less(a, b *Class) bool {
	if a.Important != b.Important {
		return !a.Important
	}

	ar, br := a.categoryRank(), b.categoryRank()
	if ar != br {
		return ar < br
	}

	if len(a.Variants) != len(b.Variants) {
		return len(a.Variants) < len(b.Variants)
	}
	for i := range a.Variants {
		va, vb := a.Variants[i], b.Variants[i]
		ra, rb := variantRank(va), variantRank(vb)
		if ra != rb {
			return ra < rb
		}
		if va != vb {
			return va < vb
		}
	}

	if a.Negative != b.Negative {
		return !a.Negative
	}
	if a.HasArbitrary != b.HasArbitrary {
		return !a.HasArbitrary
	}

	return a.base() < b.base()
}
