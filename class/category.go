/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package class

// categoryRanks orders utility properties following the Tailwind
// recommended class order. Lower ranks sort earlier. The bucket numbers
// leave gaps so related buckets stay adjacent.
var categoryRanks = map[string]int{
	// Layout: display, box model
	"container":  100,
	"box":        100,
	"block":      100,
	"inline":     100,
	"hidden":     100,
	"float":      110,
	"clear":      110,
	"object":     110,
	"overflow":   110,
	"overscroll": 110,

	// Flexbox and grid
	"flex":    200,
	"grow":    200,
	"shrink":  200,
	"basis":   200,
	"order":   200,
	"grid":    210,
	"col":     210,
	"row":     210,
	"gap":     210,
	"auto":    210,
	"justify": 210,
	"items":   210,
	"content": 210,
	"place":   210,

	// Spacing
	"m":       300,
	"mx":      300,
	"my":      300,
	"mt":      300,
	"mr":      300,
	"mb":      300,
	"ml":      300,
	"margin":  300,
	"p":       310,
	"px":      310,
	"py":      310,
	"pt":      310,
	"pr":      310,
	"pb":      310,
	"pl":      310,
	"padding": 310,
	"space":   320,

	// Sizing
	"w":      400,
	"width":  400,
	"h":      400,
	"height": 400,
	"min":    410,
	"max":    410,

	// Position and z-index
	"position": 500,
	"static":   500,
	"fixed":    500,
	"absolute": 500,
	"relative": 500,
	"sticky":   500,
	"top":      510,
	"right":    510,
	"bottom":   510,
	"left":     510,
	"inset":    510,
	"z":        520,

	// Typography
	"font":       600,
	"text":       600,
	"tracking":   600,
	"leading":    600,
	"list":       600,
	"align":      600,
	"whitespace": 610,
	"break":      610,
	"truncate":   610,

	// Backgrounds
	"bg":   700,
	"from": 700,
	"via":  700,
	"to":   700,

	// Borders
	"border":  800,
	"divide":  800,
	"outline": 800,
	"ring":    800,
	"rounded": 810,

	// Effects
	"shadow":  900,
	"opacity": 900,
	"mix":     900,
	"blur":    900,

	// Filters
	"filter":     1000,
	"backdrop":   1000,
	"brightness": 1000,
	"contrast":   1000,
	"grayscale":  1000,

	// Tables
	"caption": 1100,
	"table":   1100,

	// Transitions and animation
	"transition": 1200,
	"duration":   1200,
	"ease":       1200,
	"delay":      1200,
	"animate":    1200,

	// Transforms
	"transform": 1300,
	"origin":    1300,
	"scale":     1300,
	"rotate":    1300,
	"translate": 1300,
	"skew":      1300,

	// Interactivity
	"cursor":     1400,
	"select":     1400,
	"resize":     1400,
	"pointer":    1400,
	"appearance": 1400,

	// SVG
	"fill":   1500,
	"stroke": 1500,

	// Accessibility
	"sr":     1600,
	"screen": 1600,
}

// categoryRankOther is the bucket for unrecognized properties.
const categoryRankOther = 9999

// categoryRank returns the sort bucket for the class's property.
func (c *Class) categoryRank() int {
	if rank, ok := categoryRanks[c.categoryKey()]; ok {
		return rank
	}
	return categoryRankOther
}
